// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
	"github.com/sdvotes/runoff/internal/core/domain"
)

// NameFunc picks the name column for a transaction.
type NameFunc func(tx *domain.Transaction) string

// Table displays transactions in a navigable, scrolling list.
type Table struct {
	rows     []domain.Transaction
	name     NameFunc
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewTable creates a new transaction table.
func NewTable(s *styles.Styles, name NameFunc) *Table {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if name == nil {
		name = func(tx *domain.Transaction) string { return tx.ReceivingEntity }
	}

	return &Table{
		name:   name,
		styles: s,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (t *Table) Update(msg tea.Msg) (*Table, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			t.MoveUp()
		case "down", "j":
			t.MoveDown()
		case "pgup":
			t.selected = max(t.selected-t.visible(), 0)
		case "pgdown":
			t.selected = max(min(t.selected+t.visible(), len(t.rows)-1), 0)
		}
	}
	return t, nil
}

// visible returns how many rows fit in the table height.
func (t *Table) visible() int {
	return max(t.height-1, 1)
}

// View renders the table.
func (t *Table) View() string {
	if len(t.rows) == 0 {
		return t.styles.Muted.Render("No matching transactions")
	}

	nameWidth := max(t.width-34, 12)
	lines := make([]string, 0, t.visible()+1)
	lines = append(lines, t.styles.Subtitle.Render(
		fmt.Sprintf("  %-10s  %-*s %15s", "Date", nameWidth, "Name", "Amount")))

	start := 0
	if t.selected >= t.visible() {
		start = t.selected - t.visible() + 1
	}
	end := min(start+t.visible(), len(t.rows))

	for i := start; i < end; i++ {
		tx := &t.rows[i]
		line := fmt.Sprintf("%-10s  %-*s %15s",
			clip(tx.Date.String(), 10), nameWidth, clip(t.name(tx), nameWidth), domain.FormatMoney(tx.Amount))
		if i == t.selected {
			lines = append(lines, t.styles.Selected.Render("> "+line))
		} else {
			lines = append(lines, t.styles.Normal.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:max(n-3, 0)]) + "..."
}

// SetRows replaces the table contents and resets the selection.
func (t *Table) SetRows(rows []domain.Transaction) {
	t.rows = rows
	t.selected = 0
}

// Rows returns the current rows.
func (t *Table) Rows() []domain.Transaction {
	return t.rows
}

// Selected returns the index of the selected row.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRow returns the currently selected row, or nil if none.
func (t *Table) SelectedRow() *domain.Transaction {
	if t.selected < 0 || t.selected >= len(t.rows) {
		return nil
	}
	return &t.rows[t.selected]
}

// MoveUp moves selection up.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// MoveDown moves selection down.
func (t *Table) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
	}
}

// SetDimensions sets the component dimensions.
func (t *Table) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Count returns the number of rows.
func (t *Table) Count() int {
	return len(t.rows)
}
