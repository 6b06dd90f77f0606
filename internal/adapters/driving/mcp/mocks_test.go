package mcp

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// mockExpenditureService is a mock implementation of driving.ExpenditureService.
type mockExpenditureService struct {
	summary    *domain.ExpenditureSummary
	txs        []domain.Transaction
	orgs       []string
	err        error
	lastFilter domain.FilterOptions
	lastOrder  domain.SortOptions
}

func (m *mockExpenditureService) Summary(_ context.Context, f domain.FilterOptions) (*domain.ExpenditureSummary, error) {
	m.lastFilter = f
	if m.err != nil {
		return nil, m.err
	}
	if m.summary == nil {
		return &domain.ExpenditureSummary{}, nil
	}
	return m.summary, nil
}

func (m *mockExpenditureService) List(_ context.Context, f domain.FilterOptions, o domain.SortOptions) ([]domain.Transaction, error) {
	m.lastFilter = f
	m.lastOrder = o
	return m.txs, m.err
}

func (m *mockExpenditureService) Organizations(context.Context) ([]string, error) {
	return m.orgs, m.err
}

// mockContributionService is a mock implementation of driving.ContributionService.
type mockContributionService struct {
	summary    *domain.ContributionSummary
	err        error
	lastFilter domain.FilterOptions
	lastLimit  int
}

func (m *mockContributionService) Summary(_ context.Context, f domain.FilterOptions, limit int) (*domain.ContributionSummary, error) {
	m.lastFilter = f
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if m.summary == nil {
		return &domain.ContributionSummary{}, nil
	}
	return m.summary, nil
}

func (m *mockContributionService) List(context.Context, domain.FilterOptions, domain.SortOptions) ([]domain.Transaction, error) {
	return nil, m.err
}

// mockBallotService is a mock implementation of driving.BallotService.
type mockBallotService struct {
	report       *domain.BallotReport
	comparison   *domain.Comparison
	err          error
	lastElection domain.Election
}

func (m *mockBallotService) Report(_ context.Context, e domain.Election) (*domain.BallotReport, error) {
	m.lastElection = e
	if m.err != nil {
		return nil, m.err
	}
	if m.report == nil {
		return &domain.BallotReport{Election: e}, nil
	}
	return m.report, nil
}

func (m *mockBallotService) Compare(context.Context) (*domain.Comparison, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.comparison == nil {
		return &domain.Comparison{}, nil
	}
	return m.comparison, nil
}

func validPorts() *Ports {
	return &Ports{
		Expenditures:  &mockExpenditureService{},
		Contributions: &mockContributionService{},
		Ballots:       &mockBallotService{},
	}
}
