package engine

import (
	"context"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/calculators"
)

// Service is the engine boundary: derived stats, resource state and actions
// for one character at a time
type Service interface {
	// ComputeDerivedStats validates the snapshot and computes its stats
	ComputeDerivedStats(ctx context.Context, snapshot *character.Snapshot) (*calculators.DerivedStats, error)

	// InitializeResources builds a fresh resource state, storing it when a
	// character ID is given
	InitializeResources(ctx context.Context, input *InitializeResourcesInput) (*resources.State, error)

	// GetResources loads the stored state of a character
	GetResources(ctx context.Context, characterID string) (*resources.State, error)

	// MutateResources applies one operation and returns the authoritative state
	MutateResources(ctx context.Context, input *MutateResourcesInput) (*MutateResourcesOutput, error)

	// AggregateActions lists the character's actions
	AggregateActions(ctx context.Context, input *AggregateActionsInput) (*AggregateActionsOutput, error)

	// Sheet computes stats, resource state and actions in one read
	Sheet(ctx context.Context, input *AggregateActionsInput) (*SheetOutput, error)
}
