package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/infrastructure/textinput"
	"github.com/bnema/vomnibar/internal/ui/input"
)

func TestKeyEvents_ResolveToVomnibarActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want entity.KeyAction
	}{
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, entity.KeyActionDismiss},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, entity.KeyActionTab},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, entity.KeyActionUp},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, entity.KeyActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, entity.KeyActionDown},
		{"ctrl k", tea.KeyMsg{Type: tea.KeyCtrlK}, entity.KeyActionUp},
		{"ctrl p", tea.KeyMsg{Type: tea.KeyCtrlP}, entity.KeyActionUp},
		{"ctrl j", tea.KeyMsg{Type: tea.KeyCtrlJ}, entity.KeyActionDown},
		{"ctrl n", tea.KeyMsg{Type: tea.KeyCtrlN}, entity.KeyActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, entity.KeyActionEnter},
		{"alt enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, entity.KeyActionCtrlEnter},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, entity.KeyActionDelete},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, entity.KeyActionNone},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("golang")}, entity.KeyActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entity.KeyActionNone
			for _, ev := range KeyEvents(tt.msg) {
				if action, ok := input.Resolve(ev); ok {
					got = action
					break
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyEvents_EnterHasBothPhases(t *testing.T) {
	events := KeyEvents(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, events, 2)
	assert.Equal(t, entity.PhaseKeyDown, events[0].Phase)
	assert.Equal(t, entity.PhaseCommit, events[1].Phase)
}

func TestApplyEdit(t *testing.T) {
	buf := textinput.NewBuffer()

	assert.True(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")}))
	assert.True(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeySpace}))
	assert.True(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("wörld")}))
	assert.Equal(t, "hello wörld", buf.Value())

	assert.False(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, 10, buf.SelectionEnd())
	assert.True(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyDelete}))
	assert.Equal(t, "hello wörl", buf.Value())

	assert.True(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyCtrlW}))
	assert.Equal(t, "hello ", buf.Value())

	assert.False(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyCtrlA}))
	assert.Equal(t, 0, buf.SelectionEnd())
	assert.False(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyBackspace}), "nothing before the cursor")

	assert.True(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyCtrlU}))
	assert.Empty(t, buf.Value())
	assert.False(t, applyEdit(buf, tea.KeyMsg{Type: tea.KeyCtrlU}))
}
