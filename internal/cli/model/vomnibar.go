package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vomnibar/internal/cli/styles"
)

const defaultWidth = 80

// VomnibarModel is the Bubble Tea model hosting a vomnibar Session.
// It only renders snapshots; all state lives in the session.
type VomnibarModel struct {
	session *Session
	theme   *styles.Theme
	input   textinput.Model
	help    help.Model
	keys    styles.VomnibarKeyMap

	state stateMsg
	width int
}

// NewVomnibarModel creates the model for session.
func NewVomnibarModel(theme *styles.Theme, session *Session) VomnibarModel {
	input := styles.NewQueryInput(theme)
	input.Focus()

	return VomnibarModel{
		session: session,
		theme:   theme,
		input:   input,
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultVomnibarKeyMap(),
		state:   stateMsg{selection: -1},
		width:   defaultWidth,
	}
}

// Init implements tea.Model.
func (m VomnibarModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m VomnibarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.session.Key(msg)

	case stateMsg:
		// Snapshots are sent in order, but drop anything stale regardless.
		if msg.seq <= m.state.seq {
			return m, nil
		}
		m.state = msg
		m.input.SetValue(msg.value)
		m.input.SetCursor(msg.cursor)

	case doneMsg:
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m VomnibarModel) View() string {
	t := m.theme

	query := m.input.View()
	if engine := m.state.engine; engine != nil {
		label := engine.Description
		if label == "" {
			label = engine.Keyword
		}
		query = lipgloss.JoinHorizontal(lipgloss.Center, t.EngineBadge(label), " ", query)
	}

	sections := []string{t.InputBox(query)}
	if list := t.CompletionList(m.state.completions, m.state.selection, m.width); list != "" {
		sections = append(sections, list)
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Ensure interface compliance.
var _ tea.Model = (*VomnibarModel)(nil)
