// Package chart renders horizontal bar charts for the dashboards.
package chart

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
	"github.com/sdvotes/runoff/internal/core/domain"
)

// labelWidth bounds the name column of a ranking.
const labelWidth = 32

// Fraction returns part/whole as a float in [0, 1], zero when whole is not positive.
func Fraction(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Float64()
	return min(max(f, 0), 1)
}

// Ranking renders one bar per entry, scaled to the largest total.
func Ranking(s *styles.Styles, title string, entries []domain.AggregateEntry, width int) string {
	var b strings.Builder
	b.WriteString(s.Subtitle.Render(title))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(s.Muted.Render("  (none)"))
		return b.String()
	}

	peak := decimal.Zero
	for _, e := range entries {
		if e.Total.GreaterThan(peak) {
			peak = e.Total
		}
	}

	nameW := min(labelWidth, max(width/3, 10))
	barW := max(width-nameW-22, 5)
	for i, e := range entries {
		line := fmt.Sprintf("  %-*s %s %15s",
			nameW, clip(e.Name, nameW),
			s.Bar(Fraction(e.Total, peak), barW, s.Theme().Primary),
			domain.FormatMoney(e.Total))
		b.WriteString(line)
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Labelled renders "label  bar  value" with the bar in colour c.
func Labelled(s *styles.Styles, label string, fraction float64, value string, width int, c lipgloss.Color) string {
	nameW := 12
	barW := max(width-nameW-19, 5)
	return fmt.Sprintf("  %-*s %s %15s", nameW, clip(label, nameW), s.Bar(fraction, barW, c), value)
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:max(n-3, 0)]) + "..."
}
