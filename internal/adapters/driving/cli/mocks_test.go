package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sdvotes/runoff/internal/core/domain"
)

type mockDatasetService struct {
	LoadFunc func(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error)
}

func (m *mockDatasetService) Load(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, kind)
	}
	return &domain.Dataset{ID: "load-" + string(kind), Kind: kind, Source: "data/" + string(kind) + ".csv"}, nil
}

func (m *mockDatasetService) Get(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error) {
	return m.Load(ctx, kind)
}

func (m *mockDatasetService) List(_ context.Context) ([]*domain.Dataset, error) {
	return nil, nil
}

type mockExpenditureService struct {
	SummaryFunc func(ctx context.Context, filter domain.FilterOptions) (*domain.ExpenditureSummary, error)
	ListFunc    func(ctx context.Context, filter domain.FilterOptions, order domain.SortOptions) ([]domain.Transaction, error)
	Orgs        []string

	lastFilter domain.FilterOptions
	lastOrder  domain.SortOptions
}

func (m *mockExpenditureService) Summary(ctx context.Context, filter domain.FilterOptions) (*domain.ExpenditureSummary, error) {
	m.lastFilter = filter
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, filter)
	}
	return &domain.ExpenditureSummary{
		Total: decimal.NewFromInt(15000),
		Count: 3,
		Candidates: []domain.CandidateSpending{
			{Candidate: "Paloma Aguirre", Support: decimal.NewFromInt(10000), Total: decimal.NewFromInt(10000)},
			{Candidate: "John McCann", Oppose: decimal.NewFromInt(5000), Total: decimal.NewFromInt(5000)},
		},
		TopOrganizations: []domain.AggregateEntry{
			{Key: "LINCOLN CLUB", Name: "The Lincoln Club of San Diego County", Total: decimal.NewFromInt(10000), Count: 2},
		},
	}, nil
}

func (m *mockExpenditureService) List(
	ctx context.Context, filter domain.FilterOptions, order domain.SortOptions,
) ([]domain.Transaction, error) {
	m.lastFilter = filter
	m.lastOrder = order
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, order)
	}
	return []domain.Transaction{
		{
			Date:            domain.NewDate(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)),
			Amount:          decimal.NewFromInt(2500),
			ReceivingEntity: "Lincoln Club",
			Candidate:       "John McCann",
			Position:        domain.PositionSupport,
			Description:     "Mailer",
		},
		{
			Date:            domain.Date{Raw: "TBD"},
			Amount:          decimal.NewFromInt(100),
			ReceivingEntity: "Labor Council",
		},
	}, nil
}

func (m *mockExpenditureService) Organizations(_ context.Context) ([]string, error) {
	return m.Orgs, nil
}

type mockContributionService struct {
	SummaryFunc func(ctx context.Context, filter domain.FilterOptions, limit int) (*domain.ContributionSummary, error)

	lastFilter domain.FilterOptions
	lastLimit  int
	lastOrder  domain.SortOptions
}

func (m *mockContributionService) Summary(
	ctx context.Context, filter domain.FilterOptions, limit int,
) (*domain.ContributionSummary, error) {
	m.lastFilter = filter
	m.lastLimit = limit
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, filter, limit)
	}
	return &domain.ContributionSummary{
		Total:           decimal.RequireFromString("1250.50"),
		Count:           4,
		TopContributors: []domain.AggregateEntry{{Name: "Jane Doe", Total: decimal.NewFromInt(1000), Count: 2}},
		TopCommittees:   []domain.AggregateEntry{{Name: "Aguirre for Supervisor 2025", Total: decimal.RequireFromString("1250.50"), Count: 4}},
		Excluded:        2,
		Duplicates:      1,
	}, nil
}

func (m *mockContributionService) List(
	_ context.Context, filter domain.FilterOptions, order domain.SortOptions,
) ([]domain.Transaction, error) {
	m.lastFilter = filter
	m.lastOrder = order
	return []domain.Transaction{
		{PayerFirstName: "Jane", PayerName: "Doe", ReceivingEntity: "Aguirre for Supervisor 2025", Amount: decimal.NewFromInt(500), FormType: "F460"},
	}, nil
}

type mockBallotService struct {
	ReportFunc  func(ctx context.Context, election domain.Election) (*domain.BallotReport, error)
	CompareFunc func(ctx context.Context) (*domain.Comparison, error)
}

func (m *mockBallotService) Report(ctx context.Context, election domain.Election) (*domain.BallotReport, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx, election)
	}
	return &domain.BallotReport{
		Election: election,
		Stats: &domain.TurnoutStats{
			Label:      "6/20/2025",
			Registered: 1000,
			Returned:   250,
			Turnout:    domain.PercentOf(250, 1000),
			Party:      domain.PartyBreakdown{Dem: 125, Rep: 75, Other: 50},
			Share:      domain.SharesOf(domain.PartyBreakdown{Dem: 125, Rep: 75, Other: 50}, 250),
		},
		Deltas: []domain.BatchDelta{
			{Label: "6/13/2025", TotalChange: 100, Share: domain.SharesOf(domain.PartyBreakdown{Dem: 50, Rep: 30, Other: 20}, 100)},
			{Label: "6/20/2025", TotalChange: 0, Share: domain.SharesOf(domain.PartyBreakdown{}, 0)},
		},
	}, nil
}

func (m *mockBallotService) Compare(ctx context.Context) (*domain.Comparison, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx)
	}
	return &domain.Comparison{
		Offsets: []int{2, 1},
		Left: domain.AlignedSeries{Name: "Primary", Points: []domain.AlignedPoint{
			{DaysBefore: 2, Present: true, Turnout: domain.NewPercent(10), Share: domain.PartyShares{Dem: domain.NewPercent(40)}},
			{DaysBefore: 1},
		}},
		Right: domain.AlignedSeries{Name: "Runoff", Points: []domain.AlignedPoint{
			{DaysBefore: 2},
			{DaysBefore: 1, Present: true, Turnout: domain.NewPercent(20), Share: domain.PartyShares{Dem: domain.NewPercent(45)}},
		}},
	}, nil
}

type mockSettingsService struct {
	values map[string]string
	SetErr error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"dashboard.top_n", "data.base"}
}

func (m *mockSettingsService) Raw(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockSettingsService) Path() string {
	return "/tmp/runoff/config.toml"
}

// testServices are the mocks installed by setupTestServices.
type testServices struct {
	datasets      *mockDatasetService
	expenditures  *mockExpenditureService
	contributions *mockContributionService
	ballots       *mockBallotService
	settings      *mockSettingsService
}

// setupTestServices installs fresh mocks and resets command flags.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		datasets:      &mockDatasetService{},
		expenditures:  &mockExpenditureService{},
		contributions: &mockContributionService{},
		ballots:       &mockBallotService{},
		settings:      &mockSettingsService{},
	}
	SetServices(&Services{
		Datasets:      ts.datasets,
		Expenditures:  ts.expenditures,
		Contributions: ts.contributions,
		Ballots:       ts.ballots,
		Settings:      ts.settings,
	})
	resetFlags()

	return ts, func() {
		datasetService = nil
		expenditureService = nil
		contributionService = nil
		ballotService = nil
		settingsService = nil
		resetFlags()
	}
}

func resetFlags() {
	expEntity, expSearch, expSort, expDesc, expLimit, expJSON = "", "", "", false, 0, false
	conSearch, conSort, conDesc, conLimit, conJSON = "", "", false, 0, false
	ballotsJSON = false
}

// execute runs the root command with args and returns the combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
