// Package styles provides the lipgloss theme and widgets of the terminal vomnibar.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors of a theme.
type Palette struct {
	Background string
	Surface    string
	Selected   string
	Text       string
	Muted      string
	Accent     string
	Search     string
	Tab        string
	Border     string
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Selected:   "#2d2d2d",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Search:     "#60a5fa",
		Tab:        "#f59e0b",
		Border:     "#333333",
	}
}

// Theme holds the colors and pre-built styles of the vomnibar widgets.
type Theme struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	SuccessStyle lipgloss.Style

	// Input box around the query.
	Input lipgloss.Style

	// Completion rows and the tag in front of each label.
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Tag         lipgloss.Style
	SearchTag   lipgloss.Style
	TabTag      lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
	}

	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Accent)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(lipgloss.Color(p.Surface)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.Row = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)
	t.RowSelected = t.Row.
		Foreground(t.Accent).
		Background(lipgloss.Color(p.Selected)).
		Bold(true)

	t.Tag = lipgloss.NewStyle().Foreground(t.Muted)
	t.SearchTag = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Search))
	t.TabTag = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Tab))

	return t
}
