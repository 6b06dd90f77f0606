// Package contributions provides the campaign contribution dashboard view.
package contributions

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

var sortFields = []domain.SortField{
	"", domain.SortByAmount, domain.SortByDate, domain.SortByPayer,
	domain.SortByEntity, domain.SortByFormType,
}

// sideBySide is the width at which the two rankings share a row.
const sideBySide = 140

// View is the contribution dashboard.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.ContributionService
	ctx     context.Context

	summary  *domain.ContributionSummary
	table    *list.Table
	controls *query.Controls
	status   *status.Bar

	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new contribution view.
func NewView(s *styles.Styles, service driving.ContributionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:   s,
		keymap:   km,
		service:  service,
		ctx:      context.Background(),
		table:    list.NewTable(s, payerAndCommittee),
		controls: query.NewControls(s, km, sortFields),
		status:   status.NewBar(s, []key.Binding{km.Filter, km.Sort, km.Reverse, km.Back}),
		width:    80,
		height:   24,
	}
}

func payerAndCommittee(tx *domain.Transaction) string {
	return tx.FullPayerName() + " → " + tx.ReceivingEntity
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
	v.err = nil
	v.status.Clear()
}

func (v *View) load() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)

	ctx, service := v.ctx, v.service
	filter := domain.FilterOptions{Search: v.controls.Search()}
	order := v.controls.Order()

	return func() tea.Msg {
		if service == nil {
			return messages.ContributionsLoaded{Err: errors.New("contribution service not available")}
		}
		summary, err := service.Summary(ctx, domain.FilterOptions{}, 0)
		if err != nil {
			return messages.ContributionsLoaded{Err: err}
		}
		items, err := service.List(ctx, filter, order)
		if err != nil {
			return messages.ContributionsLoaded{Err: err}
		}
		return messages.ContributionsLoaded{Summary: summary, Items: items}
	}
}

// Update handles messages for the contribution view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ContributionsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetState(status.StateError)
			v.status.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.summary = msg.Summary
		v.table.SetRows(msg.Items)
		v.refreshStatus()
		return v, nil

	case tea.KeyMsg:
		if !v.controls.Filtering() && keymap.Matches(msg.String(), v.keymap.Back) {
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		}
		if v.err != nil || v.loading {
			return v, nil
		}
		handled, changed, cmd := v.controls.HandleKey(msg)
		if changed {
			return v, v.load()
		}
		if handled {
			v.refreshStatus()
			return v, cmd
		}
		v.table, cmd = v.table.Update(msg)
		return v, cmd
	}
	return v, nil
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
	b.WriteString(v.styles.Title.Render("Campaign Contributions"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Could not load contributions: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back to menu"))
		return b.String()
	case v.summary == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}

	s := v.summary
	b.WriteString(v.styles.Normal.Render("Total raised  ") + v.styles.Figure.Render(domain.FormatMoney(s.Total)) +
		v.styles.Muted.Render(fmt.Sprintf("  (%d contributions, %d excluded, %d duplicates)", s.Count, s.Excluded, s.Duplicates)))
	b.WriteString("\n\n")

	if v.width >= sideBySide {
		half := v.width / 2
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(chart.Ranking(v.styles, "Top contributors", s.TopContributors, half)),
			chart.Ranking(v.styles, "Top committees", s.TopCommittees, half)))
	} else {
		b.WriteString(chart.Ranking(v.styles, "Top contributors", s.TopContributors, v.width))
		b.WriteString("\n\n")
		b.WriteString(chart.Ranking(v.styles, "Top committees", s.TopCommittees, v.width))
	}
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
