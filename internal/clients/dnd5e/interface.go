package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e -source=interface.go

import (
	"context"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
)

// Client fetches reference data the embedded catalog does not carry
type Client interface {
	GetClass(ctx context.Context, key string) (*rulebook.ClassDefinition, error)
	GetRace(ctx context.Context, key string) (*rulebook.RaceDefinition, error)
	GetSpell(ctx context.Context, key string) (*rulebook.Spell, error)
	// ListSpells returns spell keys for a class, optionally limited to one spell level
	ListSpells(ctx context.Context, classKey string, level *int) ([]string, error)
}

// API is the part of the dnd5e-api client the adapter uses
type API interface {
	GetClass(key string) (*entities.Class, error)
	GetRace(key string) (*entities.Race, error)
	GetSpell(key string) (*entities.Spell, error)
	ListSpells(input *apiDnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
}
