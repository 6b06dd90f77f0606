package services

import (
	"fmt"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// CurrentStats computes turnout and party share for the latest snapshot.
// snaps[0] is the registration baseline. With fewer than two snapshots the
// stats are not computed and domain.ErrInsufficientData is returned.
func CurrentStats(snaps []domain.Snapshot) (*domain.TurnoutStats, error) {
	if len(snaps) < 2 {
		return nil, fmt.Errorf("%w: need a baseline and one batch, have %d snapshots",
			domain.ErrInsufficientData, len(snaps))
	}
	baseline := snaps[0]
	latest := snaps[len(snaps)-1]
	return &domain.TurnoutStats{
		Date:       latest.Date,
		Label:      latest.Label,
		Registered: baseline.Total,
		Returned:   latest.Total,
		Turnout:    domain.PercentOf(latest.Total, baseline.Total),
		Party:      latest.Party,
		Share:      domain.SharesOf(latest.Party, latest.Total),
	}, nil
}

// BatchDeltas derives the change between consecutive return batches.
// The first entry is the first batch's absolute counts; each later entry is
// the difference from the previous batch. Fewer than three snapshots yield
// an empty list. A zero change leaves the party shares undefined.
func BatchDeltas(snaps []domain.Snapshot) []domain.BatchDelta {
	if len(snaps) < 3 {
		return []domain.BatchDelta{}
	}
	deltas := make([]domain.BatchDelta, 0, len(snaps)-1)
	first := snaps[1]
	deltas = append(deltas, domain.BatchDelta{
		Date:        first.Date,
		Label:       first.Label,
		TotalChange: first.Total,
		Change:      first.Party,
		Share:       domain.SharesOf(first.Party, first.Total),
	})
	for i := 2; i < len(snaps); i++ {
		prev, cur := snaps[i-1], snaps[i]
		change := cur.Party.Sub(prev.Party)
		total := cur.Total - prev.Total
		deltas = append(deltas, domain.BatchDelta{
			Date:        cur.Date,
			Label:       cur.Label,
			TotalChange: total,
			Change:      change,
			Share:       domain.SharesOf(change, total),
		})
	}
	return deltas
}
