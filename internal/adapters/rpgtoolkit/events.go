package rpgtoolkit

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Event types published after resource writes
const (
	EventResourcesInitialized = "resources.initialized"
	EventResourcesMutated     = "resources.mutated"
	EventResourcesRest        = "resources.rest"
	EventCharacterDied        = "character.died"
)

// Event context keys
const (
	ContextKeyOperation = "operation"
	ContextKeyRest      = "rest"
	ContextKeyDead      = "dead"
	ContextKeyStateID   = "state_id"
	ContextKeyCurrentHP = "current_hp"
)

// ResourceEvent is a resource change as seen by subscribers
type ResourceEvent struct {
	Type        string
	CharacterID string
	StateID     string
	Operation   resources.OperationType
	Rest        shared.RestType
	CurrentHP   int
	Dead        bool
}

// InitializedEvent describes a freshly built state
func InitializedEvent(characterID string, state *resources.State) ResourceEvent {
	return withState(ResourceEvent{
		Type:        EventResourcesInitialized,
		CharacterID: characterID,
	}, state)
}

// MutationEvents lists the events one applied operation produces: always a
// mutation, a rest event for rests, and a death event when the operation
// killed the character.
func MutationEvents(characterID string, op resources.Operation, before, after *resources.State) []ResourceEvent {
	base := withState(ResourceEvent{
		CharacterID: characterID,
		Operation:   op.Type(),
	}, after)

	mutated := base
	mutated.Type = EventResourcesMutated
	out := []ResourceEvent{mutated}

	switch op.Type() {
	case resources.OpShortRest:
		rest := base
		rest.Type = EventResourcesRest
		rest.Rest = shared.RestTypeShort
		out = append(out, rest)
	case resources.OpLongRest:
		rest := base
		rest.Type = EventResourcesRest
		rest.Rest = shared.RestTypeLong
		out = append(out, rest)
	}

	wasDead := before != nil && before.IsDead()
	if after != nil && after.IsDead() && !wasDead {
		died := base
		died.Type = EventCharacterDied
		out = append(out, died)
	}

	return out
}

func withState(e ResourceEvent, state *resources.State) ResourceEvent {
	if state == nil {
		return e
	}
	e.StateID = state.ID
	e.CurrentHP = state.CurrentHP
	e.Dead = state.IsDead()
	return e
}
