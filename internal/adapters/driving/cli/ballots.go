package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/core/domain"
)

var ballotsJSON bool

var ballotsCmd = &cobra.Command{
	Use:   "ballots",
	Short: "Mail ballot returns by party",
	Long: `Report ballot returns from the Registrar of Voters snapshots.

The first snapshot of each election is the registration baseline; later
snapshots are cumulative returns.`,
}

var ballotsStatsCmd = &cobra.Command{
	Use:       "stats [primary|runoff]",
	Short:     "Show current turnout and party share",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(domain.ElectionPrimary), string(domain.ElectionRunoff)},
	RunE:      runBallotsStats,
}

var ballotsDeltasCmd = &cobra.Command{
	Use:       "deltas [primary|runoff]",
	Short:     "Show the change between consecutive snapshots",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(domain.ElectionPrimary), string(domain.ElectionRunoff)},
	RunE:      runBallotsDeltas,
}

var ballotsCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare primary and runoff returns by days before election",
	RunE:  runBallotsCompare,
}

func init() {
	for _, c := range []*cobra.Command{ballotsStatsCmd, ballotsDeltasCmd, ballotsCompareCmd} {
		c.Flags().BoolVar(&ballotsJSON, "json", false, "output as JSON")
		ballotsCmd.AddCommand(c)
	}
	rootCmd.AddCommand(ballotsCmd)
}

func electionArg(args []string) (domain.Election, error) {
	if len(args) == 0 {
		return domain.ElectionRunoff, nil
	}
	e := domain.Election(args[0])
	if !e.IsValid() {
		return "", fmt.Errorf("unknown election %q (valid: primary, runoff)", args[0])
	}
	return e, nil
}

func ballotReport(cmd *cobra.Command, args []string) (*domain.BallotReport, error) {
	if ballotService == nil {
		return nil, errors.New("ballot service not configured")
	}
	election, err := electionArg(args)
	if err != nil {
		return nil, err
	}
	report, err := ballotService.Report(cmd.Context(), election)
	if err != nil {
		return nil, fmt.Errorf("ballot report failed: %w", err)
	}
	return report, nil
}

func runBallotsStats(cmd *cobra.Command, args []string) error {
	report, err := ballotReport(cmd, args)
	if err != nil {
		return err
	}

	if ballotsJSON {
		return outputJSON(cmd, report.Stats)
	}

	if report.Stats == nil {
		cmd.Printf("Not enough %s snapshots to compute statistics.\n", report.Election)
		return nil
	}
	s := report.Stats
	cmd.Printf("Election:    %s\n", report.Election)
	cmd.Printf("As of:       %s\n", s.Label)
	cmd.Printf("Registered:  %d\n", s.Registered)
	cmd.Printf("Returned:    %d\n", s.Returned)
	cmd.Printf("Turnout:     %s\n", s.Turnout)
	cmd.Println()
	for _, p := range domain.Parties {
		cmd.Printf("  %-10s %10d  %7s\n", p.Label(), s.Party.Get(p), s.Share.Get(p))
	}
	return nil
}

func runBallotsDeltas(cmd *cobra.Command, args []string) error {
	report, err := ballotReport(cmd, args)
	if err != nil {
		return err
	}

	if ballotsJSON {
		return outputJSON(cmd, report.Deltas)
	}

	if len(report.Deltas) == 0 {
		cmd.Printf("Not enough %s snapshots to compute batch changes.\n", report.Election)
		return nil
	}
	cmd.Printf("  %-12s %10s  %7s %7s %7s\n", "Batch", "Change", "Dem", "Rep", "Other")
	for _, d := range report.Deltas {
		cmd.Printf("  %-12s %10d  %7s %7s %7s\n",
			truncate(d.Label, 12), d.TotalChange, d.Share.Dem, d.Share.Rep, d.Share.Other)
	}
	return nil
}

func runBallotsCompare(cmd *cobra.Command, _ []string) error {
	if ballotService == nil {
		return errors.New("ballot service not configured")
	}

	cmp, err := ballotService.Compare(cmd.Context())
	if err != nil {
		return fmt.Errorf("ballot comparison failed: %w", err)
	}

	if ballotsJSON {
		return outputJSON(cmd, cmp)
	}

	if len(cmp.Offsets) == 0 {
		cmd.Println("No dated snapshots to compare.")
		return nil
	}
	cmd.Printf("  %-6s  %-22s  %-22s\n", "Days", cmp.Left.Name+" turnout/dem", cmp.Right.Name+" turnout/dem")
	for i, off := range cmp.Offsets {
		l, r := cmp.Left.Points[i], cmp.Right.Points[i]
		cmd.Printf("  %-6d  %-22s  %-22s\n", off, alignedCell(l), alignedCell(r))
	}
	return nil
}

func alignedCell(p domain.AlignedPoint) string {
	if !p.Present {
		return "-"
	}
	return fmt.Sprintf("%s / %s", p.Turnout, p.Share.Dem)
}
