package services

import (
	"math"
	"time"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/logger"
)

// DaysBefore returns ceil((election − date) / 1 day) on calendar days.
func DaysBefore(election, date time.Time) int {
	e := time.Date(election.Year(), election.Month(), election.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(e.Sub(d).Hours() / 24))
}

// Align re-indexes two elections onto a shared days-before-election axis.
// Each series is measured against its own baseline, which is not plotted.
// The axis runs densely from the largest offset down to the smallest; an
// offset a series has no snapshot for is marked absent, not zero.
// Snapshots without a parseable date cannot be placed and are skipped.
// When two snapshots share an offset the later one wins.
func Align(a, b domain.ElectionSeries) domain.Comparison {
	left := offsetPoints(a)
	right := offsetPoints(b)

	lo, hi, ok := offsetRange(left, right)
	if !ok {
		return domain.Comparison{
			Offsets: []int{},
			Left:    domain.AlignedSeries{Name: a.Name, Points: []domain.AlignedPoint{}},
			Right:   domain.AlignedSeries{Name: b.Name, Points: []domain.AlignedPoint{}},
		}
	}

	offsets := make([]int, 0, hi-lo+1)
	for off := hi; off >= lo; off-- {
		offsets = append(offsets, off)
	}
	return domain.Comparison{
		Offsets: offsets,
		Left:    domain.AlignedSeries{Name: a.Name, Points: densify(left, offsets)},
		Right:   domain.AlignedSeries{Name: b.Name, Points: densify(right, offsets)},
	}
}

func offsetPoints(s domain.ElectionSeries) map[int]domain.AlignedPoint {
	points := make(map[int]domain.AlignedPoint)
	if len(s.Snapshots) < 2 {
		return points
	}
	baseline := s.Snapshots[0]
	for _, snap := range s.Snapshots[1:] {
		if !snap.Date.Valid {
			logger.Warn("align %s: skipping snapshot %q without a date", s.Name, snap.Label)
			continue
		}
		off := DaysBefore(s.ElectionDate, snap.Date.Time)
		points[off] = domain.AlignedPoint{
			DaysBefore: off,
			Present:    true,
			Date:       snap.Date,
			Turnout:    domain.PercentOf(snap.Total, baseline.Total),
			Share:      domain.SharesOf(snap.Party, snap.Total),
		}
	}
	return points
}

func offsetRange(sets ...map[int]domain.AlignedPoint) (lo, hi int, ok bool) {
	for _, set := range sets {
		for off := range set {
			if !ok {
				lo, hi, ok = off, off, true
				continue
			}
			lo = min(lo, off)
			hi = max(hi, off)
		}
	}
	return lo, hi, ok
}

func densify(points map[int]domain.AlignedPoint, offsets []int) []domain.AlignedPoint {
	out := make([]domain.AlignedPoint, len(offsets))
	for i, off := range offsets {
		if p, ok := points[off]; ok {
			out[i] = p
			continue
		}
		out[i] = domain.AlignedPoint{
			DaysBefore: off,
			Turnout:    domain.UndefinedPercent(),
			Share:      domain.SharesOf(domain.PartyBreakdown{}, 0),
		}
	}
	return out
}
