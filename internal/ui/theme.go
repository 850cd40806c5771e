package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vitrinedev/vitrine/internal/store"
)

// Theme defines colors for the UI. The two palettes map onto the
// store's persisted light/dark preference.
type Theme struct {
	Name store.Theme

	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Success    string
	Warning    string
	Danger     string
	Border     string

	SelectionBg   string
	SelectionText string
}

var lightTheme = Theme{
	Name: store.ThemeLight,

	Background: "#fafafa",
	Surface:    "#eeeeee",
	Text:       "#1a1a1a",
	Muted:      "#6b6b6b",
	Accent:     "#2f5fd0",
	Success:    "#1d7a33",
	Warning:    "#9a6b00",
	Danger:     "#b3261e",
	Border:     "#c4c4c4",

	SelectionBg:   "#d4e0fb",
	SelectionText: "#10244f",
}

var darkTheme = Theme{
	Name: store.ThemeDark,

	Background: "#1e1e2e",
	Surface:    "#2a2a3c",
	Text:       "#e6e6f0",
	Muted:      "#8b8ba3",
	Accent:     "#89b4fa",
	Success:    "#a6e3a1",
	Warning:    "#f9e2af",
	Danger:     "#f38ba8",
	Border:     "#45455e",

	SelectionBg:   "#3b4261",
	SelectionText: "#cdd6f4",
}

// GetTheme maps the store's theme preference onto a palette.
func GetTheme(name store.Theme) Theme {
	if name == store.ThemeDark {
		return darkTheme
	}
	return lightTheme
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		TabOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
	}
}
