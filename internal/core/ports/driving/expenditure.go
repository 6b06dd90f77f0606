package driving

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// ExpenditureService provides the independent expenditure dashboard.
type ExpenditureService interface {
	// Summary returns totals, per-candidate splits and top spenders.
	Summary(ctx context.Context, filter domain.FilterOptions) (*domain.ExpenditureSummary, error)

	// List returns the itemised expenditures, filtered then sorted.
	List(ctx context.Context, filter domain.FilterOptions, order domain.SortOptions) ([]domain.Transaction, error)

	// Organizations returns the distinct spending organisations in first-seen order.
	Organizations(ctx context.Context) ([]string, error)
}
