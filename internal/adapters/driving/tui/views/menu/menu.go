// Package menu provides the dashboard picker shown at startup.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdvotes/runoff/internal/adapters/driving/tui/keymap"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/messages"
	"github.com/sdvotes/runoff/internal/adapters/driving/tui/styles"
)

// Item is a single menu entry.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// View is the main menu.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	subtitle string
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Expenditures", Description: "Independent spending by organisation and candidate", View: messages.ViewExpenditures},
			{Label: "Contributions", Description: "Money raised by the candidate committees", View: messages.ViewContributions},
			{Label: "Ballot Returns", Description: "Turnout, party share and primary comparison", View: messages.ViewBallots},
			{Label: "Help", Description: "Key bindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		subtitle: "San Diego County District 1 Supervisor",
		width:    80,
		height:   24,
	}
}

// SetSubtitle replaces the line shown under the title.
func (v *View) SetSubtitle(s string) {
	if s != "" {
		v.subtitle = s
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case keymap.Matches(k, v.keymap.Select):
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg { return messages.ViewChanged{View: item.View} }
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Runoff"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.subtitle))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		if item.Description != "" && v.width >= 60 {
			b.WriteString(v.styles.Muted.Render("  " + item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu entries.
func (v *View) Items() []Item {
	return v.items
}
