package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// ExplorationStore defines the interface for persisting exploration
// documents. Persistence is triggered by the host after a successful commit
// or rename; the editing core itself never writes mid-session.
type ExplorationStore interface {
	// Save persists the exploration under the given ID.
	Save(ctx context.Context, id string, exp *domain.Exploration) error

	// Load retrieves the exploration for a given ID.
	// Returns domain.ErrExplorationNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.Exploration, error)

	// Delete removes the exploration for a given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored explorations.
	List(ctx context.Context) ([]string, error)
}
