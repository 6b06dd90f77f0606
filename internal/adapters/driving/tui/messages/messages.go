// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/sdvotes/runoff/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewExpenditures is the independent expenditure dashboard.
	ViewExpenditures
	// ViewContributions is the campaign contribution dashboard.
	ViewContributions
	// ViewBallots is the ballot-return dashboard.
	ViewBallots
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewExpenditures:
		return "expenditures"
	case ViewContributions:
		return "contributions"
	case ViewBallots:
		return "ballots"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ExpendituresLoaded carries the expenditure dashboard data.
type ExpendituresLoaded struct {
	Summary       *domain.ExpenditureSummary
	Items         []domain.Transaction
	Organizations []string
	Err           error
}

// ContributionsLoaded carries the contribution dashboard data.
type ContributionsLoaded struct {
	Summary *domain.ContributionSummary
	Items   []domain.Transaction
	Err     error
}

// BallotsLoaded carries both elections' reports and their comparison.
type BallotsLoaded struct {
	Primary    *domain.BallotReport
	Runoff     *domain.BallotReport
	Comparison *domain.Comparison
	Err        error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
