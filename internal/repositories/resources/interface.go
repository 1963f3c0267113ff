package resources

//go:generate mockgen -destination=mock/mock.go -package=mockresources -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
)

// Repository persists one resource state per character. Saving replaces the
// stored state wholesale.
type Repository interface {
	// Get returns the stored state, or a not found error
	Get(ctx context.Context, characterID string) (*resources.State, error)

	// Save stores the state under the character ID
	Save(ctx context.Context, characterID string, state *resources.State) error

	// Delete removes the stored state; deleting a missing state is not an error
	Delete(ctx context.Context, characterID string) error
}
