package ballots

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/messages"
	"github.com/sdvotes/runoff/internal/core/domain"
)

type mockService struct {
	err      error
	compared bool
}

func day(d int) domain.Date {
	return domain.NewDate(time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC))
}

func (m *mockService) Report(_ context.Context, e domain.Election) (*domain.BallotReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if e == domain.ElectionPrimary {
		return &domain.BallotReport{Election: e}, nil
	}
	return &domain.BallotReport{
		Election: e,
		Stats: &domain.TurnoutStats{
			Date:       day(3),
			Label:      "Jun 3",
			Registered: 1000,
			Returned:   400,
			Turnout:    domain.PercentOf(400, 1000),
			Party:      domain.PartyBreakdown{Dem: 200, Rep: 150, Other: 50},
			Share:      domain.SharesOf(domain.PartyBreakdown{Dem: 200, Rep: 150, Other: 50}, 400),
		},
		Deltas: []domain.BatchDelta{
			{Date: day(2), Label: "Jun 2", TotalChange: 100, Share: domain.SharesOf(domain.PartyBreakdown{Dem: 60, Rep: 30, Other: 10}, 100)},
			{Date: day(3), Label: "Jun 3", TotalChange: 0, Share: domain.SharesOf(domain.PartyBreakdown{}, 0)},
		},
	}, nil
}

func (m *mockService) Compare(context.Context) (*domain.Comparison, error) {
	m.compared = true
	return &domain.Comparison{
		Offsets: []int{2, 1},
		Left: domain.AlignedSeries{Name: "Primary", Points: []domain.AlignedPoint{
			{DaysBefore: 2, Present: true, Turnout: domain.NewPercent(10), Share: domain.PartyShares{Dem: domain.NewPercent(50)}},
			{DaysBefore: 1},
		}},
		Right: domain.AlignedSeries{Name: "Runoff", Points: []domain.AlignedPoint{
			{DaysBefore: 2},
			{DaysBefore: 1, Present: true, Turnout: domain.NewPercent(20), Share: domain.PartyShares{Dem: domain.NewPercent(40)}},
		}},
	}, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, svc *mockService) *View {
	t.Helper()
	v := NewView(nil, svc)
	v.SetDimensions(100, 50)
	cmd := v.Init()
	require.NotNil(t, cmd)
	assert.True(t, v.Loading())
	v.Update(cmd())
	assert.False(t, v.Loading())
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, domain.ElectionRunoff, v.Election())
	assert.False(t, v.Comparing())
}

func TestView_Init_LoadsReportsAndComparison(t *testing.T) {
	svc := &mockService{}
	v := loaded(t, svc)

	assert.True(t, svc.compared)
	assert.NoError(t, v.Err())

	out := v.View()
	assert.Contains(t, out, "Runoff election")
	assert.Contains(t, out, "Jun 3")
	assert.Contains(t, out, "40.0%")
	assert.Contains(t, out, "Democratic")
}

func TestView_Init_NilService(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(v.Init()())

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "ballot service not available")
}

func TestView_LoadErrorIsTerminal(t *testing.T) {
	v := loaded(t, &mockService{err: errors.New("no runoff file")})

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "Could not load ballot returns: no runoff file")

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ElectionRunoff, v.Election())
}

func TestView_TabSwitchesElection(t *testing.T) {
	v := loaded(t, &mockService{})

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ElectionPrimary, v.Election())
	out := v.View()
	assert.Contains(t, out, "Primary election")
	assert.Contains(t, out, "Not enough snapshots yet")
	assert.Contains(t, out, "No batches yet")

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ElectionRunoff, v.Election())
}

func TestView_BatchShares(t *testing.T) {
	v := loaded(t, &mockService{})

	out := v.View()

	assert.Contains(t, out, "Batches")
	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, "30.0%")
}

func TestView_CompareToggle(t *testing.T) {
	v := loaded(t, &mockService{})

	v.Update(runes("c"))
	require.True(t, v.Comparing())

	out := v.View()
	assert.Contains(t, out, "Primary vs runoff")
	assert.Contains(t, out, "10.0% / 50.0%")
	assert.Contains(t, out, "20.0% / 40.0%")

	v.Update(runes("c"))
	assert.False(t, v.Comparing())
}

func TestView_ReverseOrder(t *testing.T) {
	v := loaded(t, &mockService{})

	out := v.View()
	assert.Less(t, strings.Index(out, "Jun 3     "), strings.Index(out, "Jun 2"))

	v.Update(runes("r"))
	out = v.View()
	assert.Contains(t, out, "oldest first")
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := loaded(t, &mockService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestView_Reset(t *testing.T) {
	v := loaded(t, &mockService{})
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v.Update(runes("c"))

	v.Reset()

	assert.Equal(t, domain.ElectionRunoff, v.Election())
	assert.False(t, v.Comparing())
}

