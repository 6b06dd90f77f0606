package mcp

import (
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// Ports aggregates the read-only driving ports the MCP server needs.
type Ports struct {
	Expenditures  driving.ExpenditureService
	Contributions driving.ContributionService
	Ballots       driving.BallotService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
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
