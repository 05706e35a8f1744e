package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewQueryInput creates the vomnibar query field. Its content is driven
// from outside, so it never receives key messages itself.
func NewQueryInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Enter URL or search query...")
	ti.Prompt = "→ "
	ti.CharLimit = 0
	return ti
}

// EngineBadge renders the active search engine next to the query.
func (t *Theme) EngineBadge(label string) string {
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1).
		Render(label)
}

// InputBox wraps the rendered query line in the input border.
func (t *Theme) InputBox(input string) string {
	return t.Input.Render(input)
}
