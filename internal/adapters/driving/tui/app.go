package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/messages"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/views/ballots"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/views/contributions"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/views/expenditures"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/views/menu"
	"github.com/sdvotes/runoff/internal/core/domain"
)

// App is the root model. It owns one view per dashboard and routes
// messages to whichever is active.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView          *menu.View
	expendituresView  *expenditures.View
	contributionsView *contributions.View
	ballotsView       *ballots.View

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	if ports.Settings != nil {
		if cfg, err := ports.Settings.Get(); err == nil {
			menuView.SetSubtitle(subtitle(cfg))
		}
	}

	return &App{
		ports:             ports,
		ctx:               context.Background(),
		styles:            s,
		menuView:          menuView,
		expendituresView:  expenditures.NewView(s, ports.Expenditures),
		contributionsView: contributions.NewView(s, ports.Contributions),
		ballotsView:       ballots.NewView(s, ports.Ballots),
		currentView:       messages.ViewMenu,
	}, nil
}

func subtitle(cfg *domain.AppSettings) string {
	runoff := cfg.Election.Date(domain.ElectionRunoff)
	if runoff.IsZero() {
		return ""
	}
	return "San Diego County District 1 Supervisor · runoff " + runoff.Format("January 2, 2006")
}

// WithContext sets the context used by every view's service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.expendituresView.SetContext(ctx)
	a.contributionsView.SetContext(ctx)
	a.ballotsView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("runoff")
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewExpenditures:
			a.expendituresView.Reset()
			return a, a.expendituresView.Init()
		case messages.ViewContributions:
			a.contributionsView.Reset()
			return a, a.contributionsView.Init()
		case messages.ViewBallots:
			a.ballotsView.Reset()
			return a, a.ballotsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.ExpendituresLoaded:
		a.err = msg.Err
		a.expendituresView, cmd = a.expendituresView.Update(msg)
		return a, cmd

	case messages.ContributionsLoaded:
		a.err = msg.Err
		a.contributionsView, cmd = a.contributionsView.Update(msg)
		return a, cmd

	case messages.BallotsLoaded:
		a.err = msg.Err
		a.ballotsView, cmd = a.ballotsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewExpenditures:
		a.expendituresView, cmd = a.expendituresView.Update(msg)
	case messages.ViewContributions:
		a.contributionsView, cmd = a.contributionsView.Update(msg)
	case messages.ViewBallots:
		a.ballotsView, cmd = a.ballotsView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewExpenditures:
		return a.expendituresView.View()
	case messages.ViewContributions:
		return a.contributionsView.View()
	case messages.ViewBallots:
		return a.ballotsView.View()
	case messages.ViewHelp:
		return a.styles.Title.Render("Help") + "\n\n" + helpText
	default:
		return a.menuView.View()
	}
}

const helpText = `Everywhere:
  esc         Back to menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate
  enter       Open dashboard
  q           Quit

Expenditures and contributions:
  j/k, ↑/↓    Move through transactions
  /           Filter by name, committee or description
  s           Cycle sort column
  r           Reverse sort order
  e           Cycle organisation (expenditures)

Ballot returns:
  tab         Switch primary / runoff
  c           Compare elections by days before election day
  r           Reverse batch order

[esc] back to menu`

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last load error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions resizes the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.expendituresView.SetDimensions(width, height)
	a.contributionsView.SetDimensions(width, height)
	a.ballotsView.SetDimensions(width, height)
}
