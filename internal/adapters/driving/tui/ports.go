// Package tui provides the interactive terminal dashboard for runoff.
// It is a driving adapter: every view reads through the driving ports.
package tui

import (
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// Ports aggregates the driving ports the dashboard reads from.
type Ports struct {
	// Expenditures backs the independent-expenditure view.
	Expenditures driving.ExpenditureService

	// Contributions backs the contributions view.
	Contributions driving.ContributionService

	// Ballots backs the ballot-return view.
	Ballots driving.BallotService

	// Settings is optional; it supplies the election dates shown in the menu.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Expenditures == nil {
		return ErrMissingExpenditureService
	}
	if p.Contributions == nil {
		return ErrMissingContributionService
	}
	if p.Ballots == nil {
		return ErrMissingBallotService
	}
	return nil
}
