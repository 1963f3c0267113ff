package resources

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// InMemoryRepository keeps states in a map. States are copied in and out so
// callers never share memory with the store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	states map[string]*resources.State
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		states: make(map[string]*resources.State),
	}
}

func (r *InMemoryRepository) Get(_ context.Context, characterID string) (*resources.State, error) {
	if characterID == "" {
		return nil, engineerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[characterID]
	if !ok {
		return nil, engineerr.NotFoundf("resource state for character '%s' not found", characterID).
			WithMeta("character_id", characterID)
	}
	return state.Clone(), nil
}

func (r *InMemoryRepository) Save(_ context.Context, characterID string, state *resources.State) error {
	if characterID == "" {
		return engineerr.InvalidArgument("character ID is required")
	}
	if state == nil {
		return engineerr.InvalidArgument("resource state cannot be nil")
	}

	stored := state.Clone()
	stored.CharacterID = characterID

	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[characterID] = stored
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, characterID string) error {
	if characterID == "" {
		return engineerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, characterID)
	return nil
}
