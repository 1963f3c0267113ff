package engine

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/actions"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/calculators"
)

// InitializeResourcesInput describes the character a state is built for
type InitializeResourcesInput struct {
	// CharacterID stores the new state when set
	CharacterID string
	Snapshot    *character.Snapshot
	// MaxHP overrides the computed maximum when positive
	MaxHP int
}

// MutateResourcesInput applies Operation either to State, when given, or to
// the stored state of CharacterID
type MutateResourcesInput struct {
	CharacterID string
	State       *resources.State
	Operation   resources.Operation
}

// MutateResourcesOutput holds the state before and after the operation
type MutateResourcesOutput struct {
	Previous *resources.State
	State    *resources.State
}

// AggregateActionsInput describes one action listing. State wins over the
// stored state of CharacterID; with neither, a fresh state is assumed.
type AggregateActionsInput struct {
	CharacterID string
	Snapshot    *character.Snapshot
	Spells      []string
	State       *resources.State
}

// AggregateActionsOutput lists actions and the spell names that could not be resolved
type AggregateActionsOutput struct {
	Actions       []actions.Descriptor `json:"actions"`
	MissingSpells []string             `json:"missing_spells,omitempty"`
}

// SheetOutput is everything a character sheet shows
type SheetOutput struct {
	Stats         *calculators.DerivedStats `json:"stats"`
	State         *resources.State          `json:"state"`
	Actions       []actions.Descriptor      `json:"actions"`
	MissingSpells []string                  `json:"missing_spells,omitempty"`
}
