package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/core/domain"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage the CSV snapshots",
}

var datasetsLoadCmd = &cobra.Command{
	Use:   "load [dataset...]",
	Short: "Load datasets and report row counts",
	Long: `Fetch, parse and normalise datasets, reporting what was kept and dropped.

Datasets: expenditures, contributions, ballots_primary, ballots_runoff.
With no arguments every dataset is loaded. A failure in one dataset does
not stop the others; the command fails if any dataset failed.`,
	RunE: runDatasetsLoad,
}

func init() {
	datasetsCmd.AddCommand(datasetsLoadCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func runDatasetsLoad(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	kinds := domain.DatasetKinds
	if len(args) > 0 {
		kinds = make([]domain.DatasetKind, 0, len(args))
		for _, a := range args {
			k := domain.DatasetKind(a)
			if !k.IsValid() {
				return fmt.Errorf("%w: %s", domain.ErrUnknownDataset, a)
			}
			kinds = append(kinds, k)
		}
	}

	failed := 0
	for _, kind := range kinds {
		ds, err := datasetService.Load(cmd.Context(), kind)
		if err != nil {
			failed++
			cmd.Printf("  %-16s FAILED  %v\n", kind, err)
			continue
		}
		cmd.Printf("  %-16s %5d kept  %4d rejected  %4d excluded  %4d duplicates  (%s)\n",
			kind, ds.Len(), ds.Rejected, ds.Excluded, ds.Duplicates, ds.ID)
		cmd.Printf("  %-16s from %s\n", "", ds.Source)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d datasets failed to load", failed, len(kinds))
	}
	return nil
}
