package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// defaultListLimit caps expenditure_list when no limit is given.
const defaultListLimit = 50

// ExpenditureSummaryInput is the input schema for expenditure_summary.
type ExpenditureSummaryInput struct {
	Entity string `json:"entity,omitempty" jsonschema:"restrict to one spending organisation; empty or All for every organisation"`
}

// ExpenditureSummaryOutput is the output schema for expenditure_summary.
type ExpenditureSummaryOutput struct {
	Entity           string            `json:"entity,omitempty"`
	Total            string            `json:"total"`
	Count            int               `json:"count"`
	Candidates       []CandidateOutput `json:"candidates"`
	TopOrganizations []RankingOutput   `json:"top_organizations,omitempty"`
}

// CandidateOutput is one candidate's support and opposition spending.
type CandidateOutput struct {
	Candidate string `json:"candidate"`
	Support   string `json:"support"`
	Oppose    string `json:"oppose"`
	Total     string `json:"total"`
}

// RankingOutput is one row of a top-N ranking.
type RankingOutput struct {
	Name  string `json:"name"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// ExpenditureListInput is the input schema for expenditure_list.
type ExpenditureListInput struct {
	Entity     string `json:"entity,omitempty" jsonschema:"restrict to one spending organisation"`
	Search     string `json:"search,omitempty" jsonschema:"case-insensitive text matched against names, committees and descriptions"`
	Sort       string `json:"sort,omitempty" jsonschema:"sort column: date, amount, payer, entity, candidate, position, description, form_type or id"`
	Descending bool   `json:"descending,omitempty" jsonschema:"sort in descending order"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of rows to return (default 50)"`
}

// TransactionListOutput is the output schema for expenditure_list.
type TransactionListOutput struct {
	Transactions []TransactionOutput `json:"transactions"`
	Count        int                 `json:"count"`
	Truncated    bool                `json:"truncated"`
}

// TransactionOutput is a single itemised transaction.
type TransactionOutput struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Entity      string `json:"entity"`
	Payer       string `json:"payer,omitempty"`
	Candidate   string `json:"candidate,omitempty"`
	Position    string `json:"position,omitempty"`
	Description string `json:"description,omitempty"`
	FormType    string `json:"form_type,omitempty"`
}

// ContributionSummaryInput is the input schema for contribution_summary.
type ContributionSummaryInput struct {
	Search string `json:"search,omitempty" jsonschema:"case-insensitive text matched against contributor and committee names"`
	Limit  int    `json:"limit,omitempty" jsonschema:"entries per ranking (default: configured top N)"`
}

// ContributionSummaryOutput is the output schema for contribution_summary.
type ContributionSummaryOutput struct {
	Total           string          `json:"total"`
	Count           int             `json:"count"`
	Excluded        int             `json:"excluded"`
	Duplicates      int             `json:"duplicates"`
	TopContributors []RankingOutput `json:"top_contributors"`
	TopCommittees   []RankingOutput `json:"top_committees"`
}

// BallotStatsInput is the input schema for ballot_stats.
type BallotStatsInput struct {
	Election string `json:"election,omitempty" jsonschema:"primary or runoff (default runoff)"`
}

// BallotStatsOutput is the output schema for ballot_stats.
type BallotStatsOutput struct {
	Election string        `json:"election"`
	Stats    *StatsOutput  `json:"stats"`
	Deltas   []DeltaOutput `json:"deltas"`
}

// StatsOutput holds the headline turnout numbers. Percentages are null
// when undefined.
type StatsOutput struct {
	Date       string       `json:"date"`
	Label      string       `json:"label"`
	Registered int64        `json:"registered"`
	Returned   int64        `json:"returned"`
	Turnout    *float64     `json:"turnout"`
	Party      PartyCounts  `json:"party"`
	Share      SharesOutput `json:"share"`
}

// DeltaOutput is the change between two consecutive snapshots.
type DeltaOutput struct {
	Date        string       `json:"date"`
	Label       string       `json:"label"`
	TotalChange int64        `json:"total_change"`
	Change      PartyCounts  `json:"change"`
	Share       SharesOutput `json:"share"`
}

// PartyCounts is a count per party bucket.
type PartyCounts struct {
	Dem   int64 `json:"dem"`
	Rep   int64 `json:"rep"`
	Other int64 `json:"other"`
}

// SharesOutput is a percentage per party bucket.
type SharesOutput struct {
	Dem   *float64 `json:"dem"`
	Rep   *float64 `json:"rep"`
	Other *float64 `json:"other"`
}

// BallotCompareInput is the (empty) input schema for ballot_compare.
type BallotCompareInput struct{}

// BallotCompareOutput is the output schema for ballot_compare.
type BallotCompareOutput struct {
	Offsets []int        `json:"offsets"`
	Left    SeriesOutput `json:"left"`
	Right   SeriesOutput `json:"right"`
}

// SeriesOutput is one election on the shared days-before axis.
type SeriesOutput struct {
	Name   string        `json:"name"`
	Points []PointOutput `json:"points"`
}

// PointOutput is one election's values at an offset. Absent points carry
// null percentages.
type PointOutput struct {
	DaysBefore int          `json:"days_before"`
	Present    bool         `json:"present"`
	Date       string       `json:"date,omitempty"`
	Turnout    *float64     `json:"turnout"`
	Share      SharesOutput `json:"share"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "expenditure_summary",
		Description: "Total independent expenditures, support/oppose split per candidate and the top spending organisations",
	}, s.handleExpenditureSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "expenditure_list",
		Description: "Itemised independent expenditures, filtered and sorted",
	}, s.handleExpenditureList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "contribution_summary",
		Description: "Total campaign contributions with the top contributors and receiving committees",
	}, s.handleContributionSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ballot_stats",
		Description: "Latest ballot-return turnout, party share and per-batch changes for an election",
	}, s.handleBallotStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ballot_compare",
		Description: "Primary and runoff turnout aligned on days before election day",
	}, s.handleBallotCompare)
}

func (s *Server) handleExpenditureSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExpenditureSummaryInput,
) (*mcp.CallToolResult, ExpenditureSummaryOutput, error) {
	sum, err := s.ports.Expenditures.Summary(ctx, domain.FilterOptions{Entity: input.Entity})
	if err != nil {
		return nil, ExpenditureSummaryOutput{}, err
	}

	output := ExpenditureSummaryOutput{
		Entity:           sum.Entity,
		Total:            money(sum.Total),
		Count:            sum.Count,
		Candidates:       make([]CandidateOutput, len(sum.Candidates)),
		TopOrganizations: ranking(sum.TopOrganizations),
	}
	for i, c := range sum.Candidates {
		output.Candidates[i] = CandidateOutput{
			Candidate: c.Candidate,
			Support:   money(c.Support),
			Oppose:    money(c.Oppose),
			Total:     money(c.Total),
		}
	}
	return nil, output, nil
}

func (s *Server) handleExpenditureList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExpenditureListInput,
) (*mcp.CallToolResult, TransactionListOutput, error) {
	field := domain.SortField(strings.ToLower(strings.TrimSpace(input.Sort)))
	if field != "" && !field.IsValid() {
		return nil, TransactionListOutput{}, fmt.Errorf("%w: unknown sort field %q", domain.ErrInvalidInput, input.Sort)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	txs, err := s.ports.Expenditures.List(ctx,
		domain.FilterOptions{Entity: input.Entity, Search: input.Search},
		domain.SortOptions{Field: field, Descending: input.Descending})
	if err != nil {
		return nil, TransactionListOutput{}, err
	}

	output := TransactionListOutput{Count: len(txs), Truncated: len(txs) > limit}
	txs = txs[:min(limit, len(txs))]
	output.Transactions = make([]TransactionOutput, len(txs))
	for i := range txs {
		output.Transactions[i] = transaction(&txs[i])
	}
	return nil, output, nil
}

func (s *Server) handleContributionSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContributionSummaryInput,
) (*mcp.CallToolResult, ContributionSummaryOutput, error) {
	sum, err := s.ports.Contributions.Summary(ctx, domain.FilterOptions{Search: input.Search}, input.Limit)
	if err != nil {
		return nil, ContributionSummaryOutput{}, err
	}
	return nil, ContributionSummaryOutput{
		Total:           money(sum.Total),
		Count:           sum.Count,
		Excluded:        sum.Excluded,
		Duplicates:      sum.Duplicates,
		TopContributors: ranking(sum.TopContributors),
		TopCommittees:   ranking(sum.TopCommittees),
	}, nil
}

func (s *Server) handleBallotStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BallotStatsInput,
) (*mcp.CallToolResult, BallotStatsOutput, error) {
	election, err := parseElection(input.Election)
	if err != nil {
		return nil, BallotStatsOutput{}, err
	}

	report, err := s.ports.Ballots.Report(ctx, election)
	if err != nil {
		return nil, BallotStatsOutput{}, err
	}

	output := BallotStatsOutput{
		Election: string(report.Election),
		Deltas:   make([]DeltaOutput, len(report.Deltas)),
	}
	if st := report.Stats; st != nil {
		output.Stats = &StatsOutput{
			Date:       st.Date.String(),
			Label:      st.Label,
			Registered: st.Registered,
			Returned:   st.Returned,
			Turnout:    percent(st.Turnout),
			Party:      counts(st.Party),
			Share:      shares(st.Share),
		}
	}
	for i, d := range report.Deltas {
		output.Deltas[i] = DeltaOutput{
			Date:        d.Date.String(),
			Label:       d.Label,
			TotalChange: d.TotalChange,
			Change:      counts(d.Change),
			Share:       shares(d.Share),
		}
	}
	return nil, output, nil
}

func (s *Server) handleBallotCompare(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ BallotCompareInput,
) (*mcp.CallToolResult, BallotCompareOutput, error) {
	cmp, err := s.ports.Ballots.Compare(ctx)
	if err != nil {
		return nil, BallotCompareOutput{}, err
	}
	return nil, BallotCompareOutput{
		Offsets: cmp.Offsets,
		Left:    series(cmp.Left),
		Right:   series(cmp.Right),
	}, nil
}

func parseElection(s string) (domain.Election, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return domain.ElectionRunoff, nil
	}
	e := domain.Election(s)
	if !e.IsValid() {
		return "", fmt.Errorf("%w: unknown election %q (valid: primary, runoff)", domain.ErrInvalidInput, s)
	}
	return e, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ranking(entries []domain.AggregateEntry) []RankingOutput {
	out := make([]RankingOutput, len(entries))
	for i, e := range entries {
		out[i] = RankingOutput{Name: e.Name, Total: money(e.Total), Count: e.Count}
	}
	return out
}

func transaction(tx *domain.Transaction) TransactionOutput {
	return TransactionOutput{
		ID:          tx.ID,
		Date:        tx.Date.String(),
		Amount:      money(tx.Amount),
		Entity:      tx.ReceivingEntity,
		Payer:       tx.FullPayerName(),
		Candidate:   tx.Candidate,
		Position:    string(tx.Position),
		Description: tx.Description,
		FormType:    tx.FormType,
	}
}

func percent(p domain.Percent) *float64 {
	v, ok := p.Value()
	if !ok {
		return nil
	}
	return &v
}

func counts(b domain.PartyBreakdown) PartyCounts {
	return PartyCounts{Dem: b.Dem, Rep: b.Rep, Other: b.Other}
}

func shares(s domain.PartyShares) SharesOutput {
	return SharesOutput{Dem: percent(s.Dem), Rep: percent(s.Rep), Other: percent(s.Other)}
}

func series(a domain.AlignedSeries) SeriesOutput {
	out := SeriesOutput{Name: a.Name, Points: make([]PointOutput, len(a.Points))}
	for i, p := range a.Points {
		pt := PointOutput{
			DaysBefore: p.DaysBefore,
			Present:    p.Present,
			Turnout:    percent(p.Turnout),
			Share:      shares(p.Share),
		}
		if p.Present {
			pt.Date = p.Date.String()
		}
		out.Points[i] = pt
	}
	return out
}
