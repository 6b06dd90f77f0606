// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Candidates maps a lower-case surname to its campaign colour.
	Candidates map[string]lipgloss.Color

	// Parties maps each registration bucket to its colour.
	Parties map[domain.Party]lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Candidates: map[string]lipgloss.Color{
			"aguirre": lipgloss.Color("#2563EB"),
			"mccann":  lipgloss.Color("#DC2626"),
		},
		Parties: map[domain.Party]lipgloss.Color{
			domain.PartyDem:   lipgloss.Color("#3B82F6"),
			domain.PartyRep:   lipgloss.Color("#EF4444"),
			domain.PartyOther: lipgloss.Color("#A6ADC8"),
		},
	}
}

// CandidateColor returns the campaign colour for a candidate name,
// or Secondary when the name matches no configured surname.
func (t *Theme) CandidateColor(name string) lipgloss.Color {
	lower := strings.ToLower(name)
	for surname, c := range t.Candidates {
		if strings.Contains(lower, surname) {
			return c
		}
	}
	return t.Secondary
}

// PartyColor returns the colour for a party bucket.
func (t *Theme) PartyColor(p domain.Party) lipgloss.Color {
	if c, ok := t.Parties[p]; ok {
		return c
	}
	return t.Muted
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Figure style for headline numbers.
	Figure lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Figure: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Bar renders a horizontal bar filling fraction of width cells.
// Any non-zero fraction draws at least one cell.
func (s *Styles) Bar(fraction float64, width int, c lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	n := int(fraction*float64(width) + 0.5)
	if n == 0 && fraction > 0 {
		n = 1
	}
	filled := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", n))
	return filled + s.Muted.Render(strings.Repeat("░", width-n))
}
