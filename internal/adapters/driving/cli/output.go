package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// defaultWidth is used when output is not a terminal.
const defaultWidth = 100

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputWidth returns the terminal width when writing to a TTY.
func outputWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// nameWidth is the column left for a name after fixed-width columns.
func nameWidth(cmd *cobra.Command, fixed int) int {
	return max(outputWidth(cmd)-fixed, 16)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}

func printRanking(cmd *cobra.Command, title string, entries []domain.AggregateEntry) {
	cmd.Println(title + ":")
	if len(entries) == 0 {
		cmd.Println("  (none)")
		return
	}
	w := nameWidth(cmd, 30)
	for i, e := range entries {
		cmd.Printf("  %2d. %-*s %15s  (%d)\n", i+1, w, truncate(e.Name, w), domain.FormatMoney(e.Total), e.Count)
	}
}

func printTransactions(cmd *cobra.Command, txs []domain.Transaction, name func(*domain.Transaction) string) {
	if len(txs) == 0 {
		cmd.Println("No transactions found.")
		return
	}
	w := nameWidth(cmd, 32)
	for i := range txs {
		tx := &txs[i]
		cmd.Printf("  %-10s  %-*s %15s\n", truncate(tx.Date.String(), 10), w, truncate(name(tx), w), domain.FormatMoney(tx.Amount))
		if detail := transactionDetail(tx); detail != "" {
			cmd.Printf("  %10s  %s\n", "", truncate(detail, w+16))
		}
	}
	cmd.Printf("\n%d transactions\n", len(txs))
}

func transactionDetail(tx *domain.Transaction) string {
	var parts []string
	if tx.Position != "" || tx.Candidate != "" {
		parts = append(parts, strings.TrimSpace(string(tx.Position)+" "+tx.Candidate))
	}
	if tx.Description != "" {
		parts = append(parts, tx.Description)
	}
	if tx.FormType != "" {
		parts = append(parts, tx.FormType)
	}
	return strings.Join(parts, " | ")
}

func parseSortField(s string) (domain.SortField, error) {
	if s == "" {
		return "", nil
	}
	f := domain.SortField(strings.ToLower(s))
	if !f.IsValid() {
		names := make([]string, len(domain.SortFields))
		for i, sf := range domain.SortFields {
			names[i] = sf.String()
		}
		return "", fmt.Errorf("unknown sort field %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return f, nil
}
