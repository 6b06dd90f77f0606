package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvotes/runoff/internal/core/domain"
)

func snap(label string, dem, rep, other int64) domain.Snapshot {
	return domain.Snapshot{
		Date:  ParseDate(label),
		Label: label,
		Total: dem + rep + other,
		Party: domain.PartyBreakdown{Dem: dem, Rep: rep, Other: other},
	}
}

func TestBatchDeltas_Example(t *testing.T) {
	snaps := []domain.Snapshot{
		{Label: "Registration", Total: 1000},
		{Label: "6/10/2025", Total: 200},
		{Label: "6/11/2025", Total: 350},
	}

	deltas := BatchDeltas(snaps)

	require.Len(t, deltas, 2)
	assert.Equal(t, int64(200), deltas[0].TotalChange)
	assert.Equal(t, int64(150), deltas[1].TotalChange)
}

func TestBatchDeltas_FirstEntryIsAbsolute(t *testing.T) {
	snaps := []domain.Snapshot{
		snap("Registration", 500, 300, 200),
		snap("6/10/2025", 60, 30, 10),
		snap("6/11/2025", 90, 50, 10),
	}

	deltas := BatchDeltas(snaps)

	require.Len(t, deltas, 2)
	assert.Equal(t, snaps[1].Party, deltas[0].Change)
	v, ok := deltas[0].Share.Dem.Value()
	require.True(t, ok)
	assert.InDelta(t, 60.0, v, 1e-9)

	assert.Equal(t, domain.PartyBreakdown{Dem: 30, Rep: 20, Other: 0}, deltas[1].Change)
	v, ok = deltas[1].Share.Rep.Value()
	require.True(t, ok)
	assert.InDelta(t, 40.0, v, 1e-9)
	v, ok = deltas[1].Share.Other.Value()
	require.True(t, ok)
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestBatchDeltas_ZeroChangeIsUndefined(t *testing.T) {
	snaps := []domain.Snapshot{
		snap("Registration", 500, 300, 200),
		snap("6/10/2025", 60, 30, 10),
		snap("6/11/2025", 60, 30, 10),
	}

	deltas := BatchDeltas(snaps)

	require.Len(t, deltas, 2)
	assert.Equal(t, int64(0), deltas[1].TotalChange)
	for _, p := range domain.Parties {
		assert.False(t, deltas[1].Share.Get(p).Defined(), p)
	}
	assert.Equal(t, "-", deltas[1].Share.Dem.String())
}

func TestBatchDeltas_TooFewSnapshots(t *testing.T) {
	assert.Empty(t, BatchDeltas(nil))
	assert.Empty(t, BatchDeltas([]domain.Snapshot{snap("Registration", 1, 1, 1)}))
	deltas := BatchDeltas([]domain.Snapshot{snap("Registration", 1, 1, 1), snap("6/1/2025", 1, 0, 0)})
	assert.NotNil(t, deltas)
	assert.Empty(t, deltas)
}

func TestBatchDeltas_PartyChangesSumToTotal(t *testing.T) {
	snaps := []domain.Snapshot{
		snap("Registration", 5000, 4000, 3000),
		snap("6/10/2025", 120, 80, 40),
		snap("6/11/2025", 300, 210, 95),
		snap("6/12/2025", 300, 210, 95),
		snap("6/13/2025", 810, 600, 333),
	}

	for _, d := range BatchDeltas(snaps) {
		assert.Equal(t, d.TotalChange, d.Change.Sum(), d.Label)
	}
}

func TestCurrentStats(t *testing.T) {
	snaps := []domain.Snapshot{
		snap("Registration", 500, 300, 200),
		snap("6/10/2025", 60, 30, 10),
		snap("6/11/2025", 120, 60, 20),
	}

	stats, err := CurrentStats(snaps)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), stats.Registered)
	assert.Equal(t, int64(200), stats.Returned)
	assert.Equal(t, "6/11/2025", stats.Label)
	turnout, ok := stats.Turnout.Value()
	require.True(t, ok)
	assert.InDelta(t, 20.0, turnout, 1e-9)
	dem, _ := stats.Share.Dem.Value()
	assert.InDelta(t, 60.0, dem, 1e-9)
	assert.Equal(t, "20.0%", stats.Turnout.String())
}

func TestCurrentStats_InsufficientData(t *testing.T) {
	for _, snaps := range [][]domain.Snapshot{nil, {snap("Registration", 1, 1, 1)}} {
		stats, err := CurrentStats(snaps)

		assert.Nil(t, stats)
		assert.True(t, errors.Is(err, domain.ErrInsufficientData))
	}
}

func TestCurrentStats_ZeroBaseline(t *testing.T) {
	snaps := []domain.Snapshot{
		{Label: "Registration"},
		{Label: "6/10/2025"},
	}

	stats, err := CurrentStats(snaps)

	require.NoError(t, err)
	assert.False(t, stats.Turnout.Defined())
	assert.False(t, stats.Share.Dem.Defined())
}

func TestCurrentStats_TurnoutBounds(t *testing.T) {
	series := [][]domain.Snapshot{
		{snap("Registration", 10, 10, 10), snap("6/1/2025", 0, 0, 0)},
		{snap("Registration", 10, 10, 10), snap("6/1/2025", 10, 10, 10)},
		{snap("Registration", 400, 300, 300), snap("6/1/2025", 1, 2, 3), snap("6/2/2025", 200, 150, 100)},
	}
	for _, snaps := range series {
		stats, err := CurrentStats(snaps)
		require.NoError(t, err)
		v, ok := stats.Turnout.Value()
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}
