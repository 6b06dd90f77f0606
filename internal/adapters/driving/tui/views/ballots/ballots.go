// Package ballots provides the ballot-return dashboard view.
package ballots

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/chart"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/status"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/keymap"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/messages"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// View is the ballot-return dashboard.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.BallotService
	ctx     context.Context
	status  *status.Bar

	reports    map[domain.Election]*domain.BallotReport
	comparison *domain.Comparison

	election   domain.Election
	comparing  bool
	newestLast bool

	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new ballot view.
func NewView(s *styles.Styles, service driving.BallotService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:   s,
		keymap:   km,
		service:  service,
		ctx:      context.Background(),
		status:   status.NewBar(s, km.BallotHelp()),
		election: domain.ElectionRunoff,
		width:    80,
		height:   24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads both elections and their comparison.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)

	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		if service == nil {
			return messages.BallotsLoaded{Err: errors.New("ballot service not available")}
		}
		primary, err := service.Report(ctx, domain.ElectionPrimary)
		if err != nil {
			return messages.BallotsLoaded{Err: err}
		}
		runoff, err := service.Report(ctx, domain.ElectionRunoff)
		if err != nil {
			return messages.BallotsLoaded{Err: err}
		}
		cmp, err := service.Compare(ctx)
		if err != nil {
			return messages.BallotsLoaded{Err: err}
		}
		return messages.BallotsLoaded{Primary: primary, Runoff: runoff, Comparison: cmp}
	}
}

// Reset returns to the runoff summary and clears errors.
func (v *View) Reset() {
	v.election = domain.ElectionRunoff
	v.comparing = false
	v.newestLast = false
	v.err = nil
	v.status.Clear()
}

// Update handles messages for the ballot view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.BallotsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetState(status.StateError)
			v.status.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.reports = map[domain.Election]*domain.BallotReport{
			domain.ElectionPrimary: msg.Primary,
			domain.ElectionRunoff:  msg.Runoff,
		}
		v.comparison = msg.Comparison
		v.refreshStatus()

	case tea.KeyMsg:
		k := msg.String()
		if keymap.Matches(k, v.keymap.Back) {
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		}
		if v.err != nil || v.loading {
			return v, nil
		}
		switch {
		case keymap.Matches(k, v.keymap.Election):
			if v.election == domain.ElectionRunoff {
				v.election = domain.ElectionPrimary
			} else {
				v.election = domain.ElectionRunoff
			}
			v.comparing = false
		case keymap.Matches(k, v.keymap.Compare):
			v.comparing = !v.comparing
		case keymap.Matches(k, v.keymap.Reverse):
			v.newestLast = !v.newestLast
		}
		v.refreshStatus()
	}
	return v, nil
}

func (v *View) refreshStatus() {
	v.status.SetState(status.StateReady)
	order := "newest first"
	if v.newestLast {
		order = "oldest first"
	}
	if v.comparing {
		v.status.SetMessage("primary vs runoff · " + order)
		return
	}
	v.status.SetMessage(string(v.election) + " · " + order)
}

// Election returns the election being shown.
func (v *View) Election() domain.Election {
	return v.election
}

// Comparing reports whether the comparison table is shown.
func (v *View) Comparing() bool {
	return v.comparing
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Ballot Returns"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Could not load ballot returns: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back to menu"))
		return b.String()
	case v.reports == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	if v.comparing {
		b.WriteString(v.renderComparison())
	} else {
		report := v.reports[v.election]
		b.WriteString(v.renderStats(report))
		b.WriteString("\n\n")
		b.WriteString(v.renderDeltas(report))
	}
	b.WriteString("\n\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderStats(report *domain.BallotReport) string {
	title := v.styles.Subtitle.Render(titleCase(string(v.election)) + " election")
	if report == nil || report.Stats == nil {
		return title + "\n" + v.styles.Muted.Render("Not enough snapshots yet")
	}

	s := report.Stats
	lines := []string{
		title + v.styles.Muted.Render("  as of "+s.Label),
		fmt.Sprintf("  Registered %s   Returned %s",
			v.styles.Figure.Render(fmt.Sprint(s.Registered)), v.styles.Figure.Render(fmt.Sprint(s.Returned))),
		chart.Labelled(v.styles, "Turnout", fraction(s.Turnout), s.Turnout.String(), v.width, v.styles.Theme().Primary),
		"",
		v.styles.Subtitle.Render("Share of returned ballots"),
	}
	for _, p := range domain.Parties {
		share := s.Share.Get(p)
		lines = append(lines, chart.Labelled(v.styles, p.Label(), fraction(share),
			fmt.Sprintf("%d  %s", s.Party.Get(p), share), v.width, v.styles.Theme().PartyColor(p)))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderDeltas(report *domain.BallotReport) string {
	header := v.styles.Subtitle.Render("Batches")
	if report == nil || len(report.Deltas) == 0 {
		return header + "\n" + v.styles.Muted.Render("  No batches yet")
	}

	deltas := slices.Clone(report.Deltas)
	if !v.newestLast {
		slices.Reverse(deltas)
	}

	rows := max(v.height-24, 3)
	lines := []string{header, v.styles.Muted.Render(fmt.Sprintf("  %-12s %10s %8s %8s %8s", "Batch", "Ballots", "Dem", "Rep", "Other"))}
	for i, d := range deltas {
		if i >= rows {
			lines = append(lines, v.styles.Muted.Render(fmt.Sprintf("  … %d more", len(deltas)-rows)))
			break
		}
		lines = append(lines, fmt.Sprintf("  %-12s %10d %s %s %s",
			clip(d.Label, 12), d.TotalChange,
			v.partyCell(domain.PartyDem, d.Share.Dem),
			v.partyCell(domain.PartyRep, d.Share.Rep),
			v.partyCell(domain.PartyOther, d.Share.Other)))
	}
	return strings.Join(lines, "\n")
}

func (v *View) partyCell(p domain.Party, pct domain.Percent) string {
	return lipgloss.NewStyle().Width(9).Align(lipgloss.Right).
		Foreground(v.styles.Theme().PartyColor(p)).Render(pct.String())
}

func (v *View) renderComparison() string {
	cmp := v.comparison
	header := v.styles.Subtitle.Render("Primary vs runoff, days before election")
	if cmp == nil || len(cmp.Offsets) == 0 {
		return header + "\n" + v.styles.Muted.Render("  No dated snapshots to compare")
	}

	idx := make([]int, len(cmp.Offsets))
	for i := range idx {
		idx[i] = i
	}
	if v.newestLast {
		slices.Reverse(idx)
	}

	lines := []string{header, v.styles.Muted.Render(fmt.Sprintf("  %5s  %-20s  %-20s",
		"Days", cmp.Left.Name+" turnout/dem", cmp.Right.Name+" turnout/dem"))}
	for _, i := range idx {
		lines = append(lines, fmt.Sprintf("  %5d  %-20s  %-20s",
			cmp.Offsets[i], cell(cmp.Left.Points[i]), cell(cmp.Right.Points[i])))
	}
	return strings.Join(lines, "\n")
}

func cell(p domain.AlignedPoint) string {
	if !p.Present {
		return "-"
	}
	return p.Turnout.String() + " / " + p.Share.Dem.String()
}

func fraction(p domain.Percent) float64 {
	f, ok := p.Value()
	if !ok {
		return 0
	}
	return f / 100
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func clip(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}

