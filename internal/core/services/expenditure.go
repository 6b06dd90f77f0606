package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// Ensure ExpenditureDashboard implements the interface.
var _ driving.ExpenditureService = (*ExpenditureDashboard)(nil)

// ExpenditureDashboard derives the independent expenditure views.
type ExpenditureDashboard struct {
	datasets driving.DatasetService
	settings driving.SettingsService
}

// NewExpenditureDashboard creates a new expenditure dashboard service.
func NewExpenditureDashboard(datasets driving.DatasetService, settings driving.SettingsService) *ExpenditureDashboard {
	return &ExpenditureDashboard{datasets: datasets, settings: settings}
}

// Summary returns the filtered total, per-candidate splits and, when no
// entity filter is set, the top spending organisations.
func (s *ExpenditureDashboard) Summary(
	ctx context.Context,
	filter domain.FilterOptions,
) (*domain.ExpenditureSummary, error) {
	ds, err := s.datasets.Get(ctx, domain.DatasetExpenditures)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	txs := Filter(ds.Transactions, filter)
	summary := &domain.ExpenditureSummary{
		Total:            Total(txs),
		Count:            len(txs),
		Candidates:       CandidateSplits(txs, settings.Dashboard.Candidates),
		TopOrganizations: []domain.AggregateEntry{},
	}
	if filter.HasEntity() {
		summary.Entity = DisplayName(filter.Entity)
	} else {
		summary.TopOrganizations = Aggregate(ds.Transactions, EntityKey, EntityName, settings.Dashboard.TopN)
	}
	return summary, nil
}

// List returns the itemised expenditures, filtered then sorted.
func (s *ExpenditureDashboard) List(
	ctx context.Context,
	filter domain.FilterOptions,
	order domain.SortOptions,
) ([]domain.Transaction, error) {
	ds, err := s.datasets.Get(ctx, domain.DatasetExpenditures)
	if err != nil {
		return nil, err
	}
	return Sort(Filter(ds.Transactions, filter), order), nil
}

// Organizations returns the distinct spending organisations in first-seen order.
func (s *ExpenditureDashboard) Organizations(ctx context.Context) ([]string, error) {
	ds, err := s.datasets.Get(ctx, domain.DatasetExpenditures)
	if err != nil {
		return nil, err
	}
	groups := Group(ds.Transactions, EntityKey, EntityName)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Key != "" {
			names = append(names, g.Name)
		}
	}
	return names, nil
}

// CandidateSplits sums support and oppose spending around each candidate.
// Positions other than support or oppose count only towards Total.
func CandidateSplits(txs []domain.Transaction, candidates []string) []domain.CandidateSpending {
	out := make([]domain.CandidateSpending, 0, len(candidates))
	for _, c := range candidates {
		key := NormalizeName(c)
		split := domain.CandidateSpending{
			Candidate: c,
			Support:   decimal.Zero,
			Oppose:    decimal.Zero,
			Total:     decimal.Zero,
		}
		for i := range txs {
			tx := &txs[i]
			if NormalizeName(tx.Candidate) != key {
				continue
			}
			switch {
			case tx.Position.IsSupport():
				split.Support = split.Support.Add(tx.Amount)
			case tx.Position.IsOppose():
				split.Oppose = split.Oppose.Add(tx.Amount)
			}
			split.Total = split.Total.Add(tx.Amount)
		}
		out = append(out, split)
	}
	return out
}
