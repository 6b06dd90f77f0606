package driving

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// BallotService provides the ballot-return dashboard.
type BallotService interface {
	// Report returns current statistics and batch deltas for an election.
	Report(ctx context.Context, election domain.Election) (*domain.BallotReport, error)

	// Compare aligns the primary and runoff on days before election day.
	Compare(ctx context.Context) (*domain.Comparison, error)
}
