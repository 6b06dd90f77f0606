// Package expenditures provides the independent expenditure dashboard view.
package expenditures

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/chart"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/list"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/query"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/status"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/keymap"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/messages"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// sortFields is the order "s" cycles through.
var sortFields = []domain.SortField{
	"", domain.SortByAmount, domain.SortByDate, domain.SortByEntity,
	domain.SortByCandidate, domain.SortByPosition,
}

// View is the expenditure dashboard.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.ExpenditureService
	ctx     context.Context

	summary  *domain.ExpenditureSummary
	orgs     []string
	entity   int // 0 is all organisations, otherwise orgs[entity-1]
	table    *list.Table
	controls *query.Controls
	status   *status.Bar

	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new expenditure view.
func NewView(s *styles.Styles, service driving.ExpenditureService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:   s,
		keymap:   km,
		service:  service,
		ctx:      context.Background(),
		table:    list.NewTable(s, describe),
		controls: query.NewControls(s, km, sortFields),
		status:   status.NewBar(s, []key.Binding{km.Filter, km.Sort, km.Reverse, km.Entity, km.Back}),
		width:    80,
		height:   24,
	}
}

func describe(tx *domain.Transaction) string {
	parts := []string{tx.ReceivingEntity}
	if tx.Candidate != "" {
		parts = append(parts, strings.TrimSpace(string(tx.Position)+" "+tx.Candidate))
	}
	return strings.Join(parts, " · ")
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the dashboard.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Reset clears filters and errors before the view is shown again.
func (v *View) Reset() {
	v.controls.Reset()
	v.entity = 0
	v.err = nil
	v.status.Clear()
}

// Entity returns the selected organisation, empty for all.
func (v *View) Entity() string {
	if v.entity == 0 || v.entity > len(v.orgs) {
		return ""
	}
	return v.orgs[v.entity-1]
}

func (v *View) load() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)

	ctx, service := v.ctx, v.service
	filter := domain.FilterOptions{Entity: v.Entity(), Search: v.controls.Search()}
	order := v.controls.Order()

	return func() tea.Msg {
		if service == nil {
			return messages.ExpendituresLoaded{Err: errors.New("expenditure service not available")}
		}
		summary, err := service.Summary(ctx, domain.FilterOptions{Entity: filter.Entity})
		if err != nil {
			return messages.ExpendituresLoaded{Err: err}
		}
		items, err := service.List(ctx, filter, order)
		if err != nil {
			return messages.ExpendituresLoaded{Err: err}
		}
		orgs, err := service.Organizations(ctx)
		if err != nil {
			return messages.ExpendituresLoaded{Err: err}
		}
		return messages.ExpendituresLoaded{Summary: summary, Items: items, Organizations: orgs}
	}
}

// Update handles messages for the expenditure view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ExpendituresLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetState(status.StateError)
			v.status.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.summary = msg.Summary
		v.orgs = msg.Organizations
		v.table.SetRows(msg.Items)
		v.refreshStatus()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if !v.controls.Filtering() && keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	}
	if v.err != nil || v.loading {
		return v, nil
	}

	handled, changed, cmd := v.controls.HandleKey(msg)
	if handled {
		if changed {
			return v, v.load()
		}
		v.refreshStatus()
		return v, cmd
	}

	if keymap.Matches(msg.String(), v.keymap.Entity) {
		v.entity = (v.entity + 1) % (len(v.orgs) + 1)
		return v, v.load()
	}

	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) refreshStatus() {
	if v.controls.Filtering() {
		v.status.SetState(status.StateFiltering)
		return
	}
	v.status.SetState(status.StateReady)
	v.status.SetMessage(fmt.Sprintf("%d rows · sort: %s", v.table.Count(), v.controls.Label()))
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	title := "Independent Expenditures"
	if e := v.Entity(); e != "" {
		title += " · " + e
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Could not load expenditures: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back to menu"))
		return b.String()
	case v.summary == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	header := v.renderSummary()
	b.WriteString(header)
	b.WriteString("\n\n")
	if c := v.controls.View(); c != "" {
		b.WriteString(c)
		b.WriteString("\n")
	}

	used := lipgloss.Height(b.String()) + 1
	v.table.SetDimensions(v.width, max(v.height-used-1, 3))
	b.WriteString(v.table.View())
	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderSummary() string {
	s := v.summary
	lines := []string{
		v.styles.Normal.Render("Total spent  ") + v.styles.Figure.Render(domain.FormatMoney(s.Total)) +
			v.styles.Muted.Render(fmt.Sprintf("  (%d expenditures)", s.Count)),
		"",
		v.renderCandidates(),
	}
	if s.Entity == "" {
		lines = append(lines, "", chart.Ranking(v.styles, "Top organisations", s.TopOrganizations, v.width))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderCandidates() string {
	peak := domain.CandidateSpending{}
	for _, c := range v.summary.Candidates {
		if c.Total.GreaterThan(peak.Total) {
			peak = c
		}
	}

	lines := []string{v.styles.Subtitle.Render("By candidate")}
	theme := v.styles.Theme()
	for _, c := range v.summary.Candidates {
		colour := theme.CandidateColor(c.Candidate)
		lines = append(lines,
			lipgloss.NewStyle().Bold(true).Foreground(colour).Render("  "+c.Candidate),
			chart.Labelled(v.styles, "support", chart.Fraction(c.Support, peak.Total), domain.FormatMoney(c.Support), v.width, colour),
			chart.Labelled(v.styles, "oppose", chart.Fraction(c.Oppose, peak.Total), domain.FormatMoney(c.Oppose), v.width, theme.Error),
		)
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.controls.SetWidth(width)
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
