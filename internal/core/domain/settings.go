package domain

import (
	"path"
	"strings"
	"time"
)

// Default dataset file names, relative to DataSettings.Base.
const (
	DefaultExpendituresFile   = "expenditures.csv"
	DefaultContributionsFile  = "contributions.csv"
	DefaultBallotsPrimaryFile = "ballot_returns_primary.csv"
	DefaultBallotsRunoffFile  = "ballot_returns_runoff.csv"
)

// DataSettings locates the CSV snapshots.
type DataSettings struct {
	// Base is a directory or an http(s) URL prefix.
	Base string

	// Files maps each dataset to its file name under Base.
	Files map[DatasetKind]string
}

// IsRemote returns true if Base is an HTTP(S) URL.
func (d DataSettings) IsRemote() bool {
	return strings.HasPrefix(d.Base, "http://") || strings.HasPrefix(d.Base, "https://")
}

// File returns the configured file name for a dataset.
func (d DataSettings) File(kind DatasetKind) (string, bool) {
	name, ok := d.Files[kind]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Location returns a human-readable location for a dataset.
func (d DataSettings) Location(kind DatasetKind) string {
	name, ok := d.File(kind)
	if !ok {
		return ""
	}
	if d.IsRemote() {
		return strings.TrimSuffix(d.Base, "/") + "/" + name
	}
	return path.Join(d.Base, name)
}

// ElectionSettings anchors the ballot-return series.
type ElectionSettings struct {
	PrimaryDate time.Time
	RunoffDate  time.Time
}

// Date returns the election day for an election.
func (e ElectionSettings) Date(el Election) time.Time {
	if el == ElectionPrimary {
		return e.PrimaryDate
	}
	return e.RunoffDate
}

// DashboardSettings controls summary views.
type DashboardSettings struct {
	// TopN is the number of ranked entries in summary tables.
	TopN int

	// Candidates receive per-candidate support/oppose breakdowns.
	Candidates []string
}

// ContributionSettings controls contribution ingestion.
type ContributionSettings struct {
	// ExcludedForms are reporting forms dropped before normalisation.
	ExcludedForms []string
}

// FetchSettings controls remote dataset retrieval.
type FetchSettings struct {
	// RequestsPerSecond paces HTTP fetches.
	RequestsPerSecond float64
}

// MergeOverride collapses one filer's committee into a named reporting
// entity. It exists for committees that are legally distinct but report
// as one; it is never inferred.
type MergeOverride struct {
	FilerID string
	Name    string
}

// IsConfigured returns true if the override names both a filer and a target.
func (m MergeOverride) IsConfigured() bool {
	return strings.TrimSpace(m.FilerID) != "" && strings.TrimSpace(m.Name) != ""
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Data          DataSettings
	Election      ElectionSettings
	Dashboard     DashboardSettings
	Contributions ContributionSettings
	Fetch         FetchSettings
	Merge         MergeOverride
}

// DefaultAppSettings returns settings for the 2025 District 1 runoff.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Data: DataSettings{
			Base: "data",
			Files: map[DatasetKind]string{
				DatasetExpenditures:   DefaultExpendituresFile,
				DatasetContributions:  DefaultContributionsFile,
				DatasetBallotsPrimary: DefaultBallotsPrimaryFile,
				DatasetBallotsRunoff:  DefaultBallotsRunoffFile,
			},
		},
		Election: ElectionSettings{
			PrimaryDate: time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC),
			RunoffDate:  time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		Dashboard: DashboardSettings{
			TopN:       10,
			Candidates: []string{"Paloma Aguirre", "John McCann"},
		},
		Contributions: ContributionSettings{
			ExcludedForms: []string{"F497P2"},
		},
		Fetch: FetchSettings{
			RequestsPerSecond: 4,
		},
	}
}
