package driving

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// ContributionService provides the campaign contribution dashboard.
type ContributionService interface {
	// Summary returns totals with ranked contributors and committees.
	// limit <= 0 uses the configured top N.
	Summary(ctx context.Context, filter domain.FilterOptions, limit int) (*domain.ContributionSummary, error)

	// List returns the itemised contributions, filtered then sorted.
	List(ctx context.Context, filter domain.FilterOptions, order domain.SortOptions) ([]domain.Transaction, error)
}
