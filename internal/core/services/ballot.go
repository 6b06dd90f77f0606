package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
	"github.com/sdvotes/runoff/internal/logger"
)

// Ensure BallotDashboard implements the interface.
var _ driving.BallotService = (*BallotDashboard)(nil)

// Series names used in comparisons.
const (
	SeriesPrimary = "Primary"
	SeriesRunoff  = "Runoff"
)

// BallotDashboard derives the ballot-return views.
type BallotDashboard struct {
	datasets driving.DatasetService
	settings driving.SettingsService
}

// NewBallotDashboard creates a new ballot-return dashboard service.
func NewBallotDashboard(datasets driving.DatasetService, settings driving.SettingsService) *BallotDashboard {
	return &BallotDashboard{datasets: datasets, settings: settings}
}

// Report returns current statistics and batch deltas for an election.
// Stats is nil when there are too few snapshots to compute them.
func (s *BallotDashboard) Report(ctx context.Context, election domain.Election) (*domain.BallotReport, error) {
	if !election.IsValid() {
		return nil, fmt.Errorf("%w: unknown election %q", domain.ErrInvalidInput, election)
	}
	ds, err := s.datasets.Get(ctx, election.Dataset())
	if err != nil {
		return nil, err
	}

	report := &domain.BallotReport{
		Election: election,
		Deltas:   BatchDeltas(ds.Snapshots),
	}
	stats, err := CurrentStats(ds.Snapshots)
	switch {
	case err == nil:
		report.Stats = stats
	case errors.Is(err, domain.ErrInsufficientData):
		logger.Debug("%s stats unavailable: %v", election, err)
	default:
		return nil, err
	}
	return report, nil
}

// Compare aligns the primary and runoff on days before election day.
func (s *BallotDashboard) Compare(ctx context.Context) (*domain.Comparison, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	primary, err := s.datasets.Get(ctx, domain.DatasetBallotsPrimary)
	if err != nil {
		return nil, err
	}
	runoff, err := s.datasets.Get(ctx, domain.DatasetBallotsRunoff)
	if err != nil {
		return nil, err
	}

	cmp := Align(
		domain.ElectionSeries{
			Name:         SeriesPrimary,
			ElectionDate: settings.Election.PrimaryDate,
			Snapshots:    primary.Snapshots,
		},
		domain.ElectionSeries{
			Name:         SeriesRunoff,
			ElectionDate: settings.Election.RunoffDate,
			Snapshots:    runoff.Snapshots,
		},
	)
	return &cmp, nil
}
