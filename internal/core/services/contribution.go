package services

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// Ensure ContributionDashboard implements the interface.
var _ driving.ContributionService = (*ContributionDashboard)(nil)

// ContributionDashboard derives the campaign contribution views.
// Form exclusion, the merge override and de-duplication happen at load time.
type ContributionDashboard struct {
	datasets driving.DatasetService
	settings driving.SettingsService
}

// NewContributionDashboard creates a new contribution dashboard service.
func NewContributionDashboard(datasets driving.DatasetService, settings driving.SettingsService) *ContributionDashboard {
	return &ContributionDashboard{datasets: datasets, settings: settings}
}

// Summary returns totals with ranked contributors and committees.
func (s *ContributionDashboard) Summary(
	ctx context.Context,
	filter domain.FilterOptions,
	limit int,
) (*domain.ContributionSummary, error) {
	ds, err := s.datasets.Get(ctx, domain.DatasetContributions)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		settings, err := s.settings.Get()
		if err != nil {
			return nil, err
		}
		limit = settings.Dashboard.TopN
	}

	txs := Filter(ds.Transactions, filter)
	return &domain.ContributionSummary{
		Total:           Total(txs),
		Count:           len(txs),
		TopContributors: Aggregate(txs, PayerKey, PayerName, limit),
		TopCommittees:   Aggregate(txs, EntityKey, EntityName, limit),
		Excluded:        ds.Excluded,
		Duplicates:      ds.Duplicates,
	}, nil
}

// List returns the itemised contributions, filtered then sorted.
func (s *ContributionDashboard) List(
	ctx context.Context,
	filter domain.FilterOptions,
	order domain.SortOptions,
) ([]domain.Transaction, error) {
	ds, err := s.datasets.Get(ctx, domain.DatasetContributions)
	if err != nil {
		return nil, err
	}
	return Sort(Filter(ds.Transactions, filter), order), nil
}
