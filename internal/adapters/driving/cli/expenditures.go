package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/core/domain"
)

var (
	expEntity string
	expSearch string
	expSort   string
	expDesc   bool
	expLimit  int
	expJSON   bool
)

var expendituresCmd = &cobra.Command{
	Use:     "expenditures",
	Aliases: []string{"exp"},
	Short:   "Independent expenditures in the runoff",
	Long: `Report outside spending for and against the runoff candidates.

Expenditures are grouped by spending organisation after name normalisation,
so variant spellings of the same committee are counted together.`,
}

var expendituresSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total spending, candidate splits and top spenders",
	RunE:  runExpendituresSummary,
}

var expendituresListCmd = &cobra.Command{
	Use:   "list",
	Short: "List itemised expenditures",
	Long: `List itemised expenditures, filtered by organisation and search text.

Sort fields: date, amount, payer, entity, candidate, position,
description, form_type, id.`,
	RunE: runExpendituresList,
}

var expendituresOrgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List the spending organisations",
	RunE:  runExpendituresOrgs,
}

func init() {
	expendituresSummaryCmd.Flags().StringVarP(&expEntity, "entity", "e", "", "only this organisation")
	expendituresSummaryCmd.Flags().BoolVar(&expJSON, "json", false, "output as JSON")

	expendituresListCmd.Flags().StringVarP(&expEntity, "entity", "e", "", "only this organisation")
	expendituresListCmd.Flags().StringVarP(&expSearch, "search", "s", "", "case-insensitive text filter")
	expendituresListCmd.Flags().StringVar(&expSort, "sort", "", "sort field")
	expendituresListCmd.Flags().BoolVar(&expDesc, "desc", false, "sort descending")
	expendituresListCmd.Flags().IntVarP(&expLimit, "limit", "n", 0, "maximum number of rows (0 = all)")
	expendituresListCmd.Flags().BoolVar(&expJSON, "json", false, "output as JSON")

	expendituresCmd.AddCommand(expendituresSummaryCmd)
	expendituresCmd.AddCommand(expendituresListCmd)
	expendituresCmd.AddCommand(expendituresOrgsCmd)
	rootCmd.AddCommand(expendituresCmd)
}

func runExpendituresSummary(cmd *cobra.Command, _ []string) error {
	if expenditureService == nil {
		return errors.New("expenditure service not configured")
	}

	summary, err := expenditureService.Summary(cmd.Context(), domain.FilterOptions{Entity: expEntity})
	if err != nil {
		return fmt.Errorf("expenditure summary failed: %w", err)
	}

	if expJSON {
		return outputJSON(cmd, summary)
	}

	if summary.Entity != "" {
		cmd.Printf("Organisation:  %s\n", summary.Entity)
	}
	cmd.Printf("Total spent:   %s (%d expenditures)\n", domain.FormatMoney(summary.Total), summary.Count)
	cmd.Println()

	cmd.Println("By candidate:")
	for _, c := range summary.Candidates {
		cmd.Printf("  %-20s support %14s  oppose %14s  total %14s\n",
			truncate(c.Candidate, 20),
			domain.FormatMoney(c.Support), domain.FormatMoney(c.Oppose), domain.FormatMoney(c.Total))
	}

	if summary.Entity == "" {
		cmd.Println()
		printRanking(cmd, "Top organisations", summary.TopOrganizations)
	}
	return nil
}

func runExpendituresList(cmd *cobra.Command, _ []string) error {
	if expenditureService == nil {
		return errors.New("expenditure service not configured")
	}

	field, err := parseSortField(expSort)
	if err != nil {
		return err
	}

	txs, err := expenditureService.List(cmd.Context(),
		domain.FilterOptions{Entity: expEntity, Search: expSearch},
		domain.SortOptions{Field: field, Descending: expDesc})
	if err != nil {
		return fmt.Errorf("list expenditures failed: %w", err)
	}
	if expLimit > 0 && len(txs) > expLimit {
		txs = txs[:expLimit]
	}

	if expJSON {
		return outputJSON(cmd, txs)
	}
	printTransactions(cmd, txs, func(tx *domain.Transaction) string { return tx.ReceivingEntity })
	return nil
}

func runExpendituresOrgs(cmd *cobra.Command, _ []string) error {
	if expenditureService == nil {
		return errors.New("expenditure service not configured")
	}

	orgs, err := expenditureService.Organizations(cmd.Context())
	if err != nil {
		return fmt.Errorf("list organisations failed: %w", err)
	}
	if len(orgs) == 0 {
		cmd.Println("No organisations found.")
		return nil
	}
	for _, o := range orgs {
		cmd.Println(o)
	}
	return nil
}
