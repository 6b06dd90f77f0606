package driven

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// DatasetStore holds the latest successful load of each dataset.
// Stored datasets are shared by reference and must not be mutated.
type DatasetStore interface {
	// Save stores a dataset, replacing any previous load of the same kind.
	Save(ctx context.Context, ds *domain.Dataset) error

	// Get retrieves the dataset of a kind.
	// Returns domain.ErrNotFound when it has not been loaded.
	Get(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error)

	// List returns all loaded datasets.
	List(ctx context.Context) ([]*domain.Dataset, error)
}
