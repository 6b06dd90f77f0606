// Package cli provides the cobra command tree for the runoff tracker.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/core/ports/driving"
	"github.com/sdvotes/runoff/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dataBase  string
)

// Services configured by SetServices or the bootstrap hook.
var (
	datasetService      driving.DatasetService
	expenditureService  driving.ExpenditureService
	contributionService driving.ContributionService
	ballotService       driving.BallotService
	settingsService     driving.SettingsService
)

// Services groups the driving ports the commands call.
type Services struct {
	Datasets      driving.DatasetService
	Expenditures  driving.ExpenditureService
	Contributions driving.ContributionService
	Ballots       driving.BallotService
	Settings      driving.SettingsService
}

// Options are the global flag values handed to the bootstrap hook.
type Options struct {
	Verbose   bool
	ConfigDir string
	DataBase  string
}

// Bootstrap builds the services once global flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "runoff",
	Short: "San Diego District 1 runoff tracker",
	Long: `Runoff tracks the 2025 San Diego County District 1 Supervisor runoff.

It loads CSV snapshots of independent expenditures, campaign contributions
and ballot returns, then reports spending totals, top contributors and
turnout by party, including a primary-versus-runoff comparison aligned on
days before election day.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.runoff)")
	rootCmd.PersistentFlags().StringVar(&dataBase, "data", "", "dataset directory or http(s) URL prefix")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices installs the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	datasetService = s.Datasets
	expenditureService = s.Expenditures
	contributionService = s.Contributions
	ballotService = s.Ballots
	settingsService = s.Settings
}

// SetBootstrap registers the hook that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}
	services, err := bootstrap(Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		DataBase:  dataBase,
	})
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}
