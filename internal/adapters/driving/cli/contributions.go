package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/core/domain"
)

var (
	conSearch string
	conSort   string
	conDesc   bool
	conLimit  int
	conJSON   bool
)

var contributionsCmd = &cobra.Command{
	Use:     "contributions",
	Aliases: []string{"con"},
	Short:   "Campaign contributions to the runoff committees",
	Long: `Report contributions received by the candidate committees.

Rows on excluded reporting forms are dropped and duplicate filings of the
same gift are collapsed before any totals are computed.`,
}

var contributionsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total raised, top contributors and committees",
	RunE:  runContributionsSummary,
}

var contributionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List itemised contributions",
	RunE:  runContributionsList,
}

func init() {
	contributionsSummaryCmd.Flags().StringVarP(&conSearch, "search", "s", "", "case-insensitive text filter")
	contributionsSummaryCmd.Flags().IntVarP(&conLimit, "limit", "n", 0, "ranked entries (0 = configured top N)")
	contributionsSummaryCmd.Flags().BoolVar(&conJSON, "json", false, "output as JSON")

	contributionsListCmd.Flags().StringVarP(&conSearch, "search", "s", "", "case-insensitive text filter")
	contributionsListCmd.Flags().StringVar(&conSort, "sort", "", "sort field")
	contributionsListCmd.Flags().BoolVar(&conDesc, "desc", false, "sort descending")
	contributionsListCmd.Flags().IntVarP(&conLimit, "limit", "n", 0, "maximum number of rows (0 = all)")
	contributionsListCmd.Flags().BoolVar(&conJSON, "json", false, "output as JSON")

	contributionsCmd.AddCommand(contributionsSummaryCmd)
	contributionsCmd.AddCommand(contributionsListCmd)
	rootCmd.AddCommand(contributionsCmd)
}

func runContributionsSummary(cmd *cobra.Command, _ []string) error {
	if contributionService == nil {
		return errors.New("contribution service not configured")
	}

	summary, err := contributionService.Summary(cmd.Context(), domain.FilterOptions{Search: conSearch}, conLimit)
	if err != nil {
		return fmt.Errorf("contribution summary failed: %w", err)
	}

	if conJSON {
		return outputJSON(cmd, summary)
	}

	cmd.Printf("Total raised:  %s (%d contributions)\n", domain.FormatMoney(summary.Total), summary.Count)
	if summary.Excluded > 0 || summary.Duplicates > 0 {
		cmd.Printf("Dropped:       %d excluded, %d duplicates\n", summary.Excluded, summary.Duplicates)
	}
	cmd.Println()
	printRanking(cmd, "Top contributors", summary.TopContributors)
	cmd.Println()
	printRanking(cmd, "Top committees", summary.TopCommittees)
	return nil
}

func runContributionsList(cmd *cobra.Command, _ []string) error {
	if contributionService == nil {
		return errors.New("contribution service not configured")
	}

	field, err := parseSortField(conSort)
	if err != nil {
		return err
	}

	txs, err := contributionService.List(cmd.Context(),
		domain.FilterOptions{Search: conSearch},
		domain.SortOptions{Field: field, Descending: conDesc})
	if err != nil {
		return fmt.Errorf("list contributions failed: %w", err)
	}
	if conLimit > 0 && len(txs) > conLimit {
		txs = txs[:conLimit]
	}

	if conJSON {
		return outputJSON(cmd, txs)
	}
	printTransactions(cmd, txs, func(tx *domain.Transaction) string {
		return tx.FullPayerName() + " -> " + tx.ReceivingEntity
	})
	return nil
}
