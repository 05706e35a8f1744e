package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// VomnibarKeyMap lists the vomnibar keys for the help line. Matching is
// done by the key resolver; these bindings only describe it.
type VomnibarKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	OpenList key.Binding
	Open     key.Binding
	ShowURL  key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k VomnibarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Dismiss}
}

// FullHelp returns keybindings for expanded help.
func (k VomnibarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.OpenList},
		{k.Open, k.ShowURL},
		{k.Dismiss, k.Quit},
	}
}

// DefaultVomnibarKeyMap returns the vomnibar keybindings.
func DefaultVomnibarKeyMap() VomnibarKeyMap {
	return VomnibarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab", "ctrl+k", "ctrl+p"),
			key.WithHelp("↑/^k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j", "ctrl+n"),
			key.WithHelp("↓/^j", "down"),
		),
		OpenList: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "list / next"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		ShowURL: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "edit url"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
