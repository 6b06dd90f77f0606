// Package query provides the filter and sort controls shared by the
// transaction views.
package query

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/components/input"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/keymap"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
	"github.com/sdvotes/runoff/internal/core/domain"
)

// Controls tracks the free-text filter and sort order of a list.
// The first sort field is the starting column; an empty field keeps
// source order.
type Controls struct {
	filter *input.FilterInput
	keymap *keymap.KeyMap
	fields []domain.SortField
	sort   int
	desc   bool
	search string
}

// NewControls creates controls cycling through fields.
func NewControls(s *styles.Styles, km *keymap.KeyMap, fields []domain.SortField) *Controls {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if len(fields) == 0 {
		fields = []domain.SortField{""}
	}
	return &Controls{
		filter: input.NewFilterInput(s),
		keymap: km,
		fields: fields,
	}
}

// Filtering reports whether the filter input has focus.
func (c *Controls) Filtering() bool {
	return c.filter.Focused()
}

// HandleKey processes filter, sort and reverse keys. handled reports that
// the key was consumed; changed reports that the query options changed
// and the list should be reloaded.
func (c *Controls) HandleKey(msg tea.KeyMsg) (handled, changed bool, cmd tea.Cmd) {
	if c.filter.Focused() {
		switch msg.String() {
		case "enter":
			c.filter.Blur()
			changed = c.filter.Value() != c.search
			c.search = c.filter.Value()
			return true, changed, nil
		case "esc":
			c.filter.SetValue(c.search)
			c.filter.Blur()
			return true, false, nil
		}
		c.filter, cmd = c.filter.Update(msg)
		return true, false, cmd
	}

	switch k := msg.String(); {
	case keymap.Matches(k, c.keymap.Filter):
		return true, false, c.filter.Focus()
	case keymap.Matches(k, c.keymap.Sort):
		c.sort = (c.sort + 1) % len(c.fields)
		return true, true, nil
	case keymap.Matches(k, c.keymap.Reverse):
		c.desc = !c.desc
		return true, true, nil
	}
	return false, false, nil
}

// Search returns the applied filter text.
func (c *Controls) Search() string {
	return c.search
}

// Order returns the current sort options.
func (c *Controls) Order() domain.SortOptions {
	return domain.SortOptions{Field: c.fields[c.sort], Descending: c.desc}
}

// Label describes the current order, e.g. "amount ↓".
func (c *Controls) Label() string {
	o := c.Order()
	if o.Field == "" {
		if o.Descending {
			return "file order ↓"
		}
		return "file order"
	}
	if o.Descending {
		return o.Field.String() + " ↓"
	}
	return o.Field.String() + " ↑"
}

// View renders the filter input while editing, or the applied filter.
func (c *Controls) View() string {
	if c.filter.Focused() || c.search != "" {
		return c.filter.View()
	}
	return ""
}

// SetWidth sets the filter input width.
func (c *Controls) SetWidth(width int) {
	c.filter.SetWidth(width)
}

// Reset clears the filter and order.
func (c *Controls) Reset() {
	c.filter.Reset()
	c.filter.Blur()
	c.search = ""
	c.sort = 0
	c.desc = false
}
