package domain

import "github.com/shopspring/decimal"

// AggregateEntry is the monetary total for one normalised entity.
type AggregateEntry struct {
	// Key is the normalised grouping key.
	Key string `json:"key"`

	// Name is the display name, taken from the first transaction seen.
	Name string `json:"name"`

	// Total is the sum of member amounts.
	Total decimal.Decimal `json:"total"`

	// Count is the number of member transactions.
	Count int `json:"count"`
}

// CandidateSpending splits independent expenditures around one candidate.
type CandidateSpending struct {
	Candidate string          `json:"candidate"`
	Support   decimal.Decimal `json:"support"`
	Oppose    decimal.Decimal `json:"oppose"`
	Total     decimal.Decimal `json:"total"`
}

// ExpenditureSummary is the headline view of independent expenditures.
type ExpenditureSummary struct {
	// Entity is the organisation filter applied, empty for all.
	Entity string `json:"entity,omitempty"`

	// Total is the sum over the filtered expenditures.
	Total decimal.Decimal `json:"total"`

	// Count is the number of filtered expenditures.
	Count int `json:"count"`

	// Candidates holds support/oppose sums for each configured candidate.
	Candidates []CandidateSpending `json:"candidates"`

	// TopOrganizations ranks spenders over the whole dataset, ignoring
	// any search text. Empty when an entity filter is applied.
	TopOrganizations []AggregateEntry `json:"top_organizations"`
}

// ContributionSummary is the headline view of campaign contributions.
type ContributionSummary struct {
	Total           decimal.Decimal  `json:"total"`
	Count           int              `json:"count"`
	TopContributors []AggregateEntry `json:"top_contributors"`
	TopCommittees   []AggregateEntry `json:"top_committees"`

	// Excluded is the number of rows dropped by form-type exclusion.
	Excluded int `json:"excluded"`

	// Duplicates is the number of rows collapsed by de-duplication.
	Duplicates int `json:"duplicates"`
}
