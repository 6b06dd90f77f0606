package domain

import "time"

// Party identifies a voter registration bucket.
type Party string

// Party buckets as reported by the Registrar of Voters.
const (
	PartyDem   Party = "dem"
	PartyRep   Party = "rep"
	PartyOther Party = "other"
)

// Parties lists every party bucket in display order.
var Parties = []Party{PartyDem, PartyRep, PartyOther}

// Label returns the display label.
func (p Party) Label() string {
	switch p {
	case PartyDem:
		return "Democratic"
	case PartyRep:
		return "Republican"
	case PartyOther:
		return "Other"
	default:
		return string(p)
	}
}

// PartyBreakdown holds a count per party bucket.
type PartyBreakdown struct {
	Dem   int64 `json:"dem"`
	Rep   int64 `json:"rep"`
	Other int64 `json:"other"`
}

// Get returns the count for a party.
func (b PartyBreakdown) Get(p Party) int64 {
	switch p {
	case PartyDem:
		return b.Dem
	case PartyRep:
		return b.Rep
	case PartyOther:
		return b.Other
	default:
		return 0
	}
}

// Sum returns the total across all parties.
func (b PartyBreakdown) Sum() int64 {
	return b.Dem + b.Rep + b.Other
}

// Sub returns b − o per party.
func (b PartyBreakdown) Sub(o PartyBreakdown) PartyBreakdown {
	return PartyBreakdown{Dem: b.Dem - o.Dem, Rep: b.Rep - o.Rep, Other: b.Other - o.Other}
}

// PartyShares holds a percentage per party bucket.
type PartyShares struct {
	Dem   Percent `json:"dem"`
	Rep   Percent `json:"rep"`
	Other Percent `json:"other"`
}

// Get returns the share for a party.
func (s PartyShares) Get(p Party) Percent {
	switch p {
	case PartyDem:
		return s.Dem
	case PartyRep:
		return s.Rep
	case PartyOther:
		return s.Other
	default:
		return UndefinedPercent()
	}
}

// SharesOf computes each party's percentage of total.
// All shares are undefined when total is zero.
func SharesOf(b PartyBreakdown, total int64) PartyShares {
	return PartyShares{
		Dem:   PercentOf(b.Dem, total),
		Rep:   PercentOf(b.Rep, total),
		Other: PercentOf(b.Other, total),
	}
}

// Snapshot is one row of a cumulative ballot-return series.
// The first snapshot of a series is the registration baseline.
type Snapshot struct {
	Date  Date           `json:"date"`
	Label string         `json:"label"`
	Total int64          `json:"total"`
	Party PartyBreakdown `json:"party"`
}

// TurnoutStats are the headline numbers for the latest snapshot.
type TurnoutStats struct {
	Date       Date           `json:"date"`
	Label      string         `json:"label"`
	Registered int64          `json:"registered"`
	Returned   int64          `json:"returned"`
	Turnout    Percent        `json:"turnout"`
	Party      PartyBreakdown `json:"party"`
	Share      PartyShares    `json:"share"`
}

// BatchDelta is the change between two consecutive snapshots.
type BatchDelta struct {
	Date        Date           `json:"date"`
	Label       string         `json:"label"`
	TotalChange int64          `json:"total_change"`
	Change      PartyBreakdown `json:"change"`

	// Share is each party's percentage of TotalChange.
	// Undefined when TotalChange is zero.
	Share PartyShares `json:"share"`
}

// Election identifies one of the two tracked elections.
type Election string

// Tracked elections.
const (
	ElectionPrimary Election = "primary"
	ElectionRunoff  Election = "runoff"
)

// IsValid returns true if the election is recognised.
func (e Election) IsValid() bool {
	return e == ElectionPrimary || e == ElectionRunoff
}

// Dataset returns the ballot-return dataset for the election.
func (e Election) Dataset() DatasetKind {
	if e == ElectionPrimary {
		return DatasetBallotsPrimary
	}
	return DatasetBallotsRunoff
}

// BallotReport is the ballot-return view of one election.
type BallotReport struct {
	Election Election `json:"election"`

	// Stats is nil when fewer than two snapshots exist.
	Stats *TurnoutStats `json:"stats"`

	Deltas []BatchDelta `json:"deltas"`
}

// ElectionSeries is a snapshot sequence anchored on its election day.
type ElectionSeries struct {
	Name         string
	ElectionDate time.Time
	Snapshots    []Snapshot
}

// AlignedPoint is one election's value at a days-before-election offset.
// Present is false when that election has no snapshot at the offset; the
// percentages are then undefined rather than zero.
type AlignedPoint struct {
	DaysBefore int         `json:"days_before"`
	Present    bool        `json:"present"`
	Date       Date        `json:"date"`
	Turnout    Percent     `json:"turnout"`
	Share      PartyShares `json:"share"`
}

// AlignedSeries is one election re-indexed onto the shared offset axis.
type AlignedSeries struct {
	Name   string         `json:"name"`
	Points []AlignedPoint `json:"points"`
}

// Comparison holds two elections on a dense, descending offset range.
type Comparison struct {
	// Offsets runs from the global maximum to the global minimum offset.
	Offsets []int `json:"offsets"`

	Left  AlignedSeries `json:"left"`
	Right AlignedSeries `json:"right"`
}
