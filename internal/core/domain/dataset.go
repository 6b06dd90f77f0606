package domain

import "time"

// DatasetKind identifies one of the CSV snapshots the tracker reads.
type DatasetKind string

// Known datasets.
const (
	DatasetExpenditures   DatasetKind = "expenditures"
	DatasetContributions  DatasetKind = "contributions"
	DatasetBallotsPrimary DatasetKind = "ballots_primary"
	DatasetBallotsRunoff  DatasetKind = "ballots_runoff"
)

// DatasetKinds lists every dataset in load order.
var DatasetKinds = []DatasetKind{
	DatasetExpenditures, DatasetContributions, DatasetBallotsPrimary, DatasetBallotsRunoff,
}

// IsValid returns true if the dataset kind is recognised.
func (k DatasetKind) IsValid() bool {
	switch k {
	case DatasetExpenditures, DatasetContributions, DatasetBallotsPrimary, DatasetBallotsRunoff:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k DatasetKind) String() string {
	return string(k)
}

// Dataset is the canonical result of loading one CSV snapshot.
// It is immutable after construction and may be shared across readers.
type Dataset struct {
	// ID uniquely identifies this load.
	ID string `json:"id"`

	Kind DatasetKind `json:"kind"`

	// Source is the path or URL the CSV text came from.
	Source string `json:"source"`

	LoadedAt time.Time `json:"loaded_at"`

	// Rows is the number of records the parser produced.
	Rows int `json:"rows"`

	// Rejected counts rows with none of the expected columns.
	Rejected int `json:"rejected"`

	// Excluded counts rows dropped by a reporting-form exclusion.
	Excluded int `json:"excluded"`

	// Duplicates counts rows collapsed by de-duplication.
	Duplicates int `json:"duplicates"`

	// Transactions is populated for expenditures and contributions.
	Transactions []Transaction `json:"-"`

	// Snapshots is populated for ballot returns.
	Snapshots []Snapshot `json:"-"`
}

// Len returns the number of canonical items in the dataset.
func (d *Dataset) Len() int {
	if d.Kind == DatasetBallotsPrimary || d.Kind == DatasetBallotsRunoff {
		return len(d.Snapshots)
	}
	return len(d.Transactions)
}
