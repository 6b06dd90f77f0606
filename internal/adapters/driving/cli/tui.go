package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

Datasets are loaded when a dashboard is opened; a dataset that fails
to load shows its error until you return to the menu.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Open dashboard
  /        - Filter transactions
  s        - Cycle sort column
  r        - Reverse order
  e        - Cycle organisation (expenditures)
  Tab      - Switch primary / runoff (ballot returns)
  c        - Compare elections (ballot returns)
  Esc      - Back / cancel filter
  q        - Quit from the menu`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "runoff: dashboard crashed: %v\n%s\n", r, debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Expenditures:  expenditureService,
		Contributions: contributionService,
		Ballots:       ballotService,
		Settings:      settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("start dashboard: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
