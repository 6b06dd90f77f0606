package driving

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// DatasetService loads CSV snapshots into canonical datasets.
type DatasetService interface {
	// Load fetches, parses and normalises a dataset, replacing any previous
	// load. Fetch and parse failures abort the load.
	Load(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error)

	// Get returns the loaded dataset, loading it on first use.
	Get(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error)

	// List returns all loaded datasets.
	List(ctx context.Context) ([]*domain.Dataset, error)
}
