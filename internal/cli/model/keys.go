package model

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/infrastructure/textinput"
)

// ctrlLetters maps terminal control keys to the letter they are typed with.
var ctrlLetters = map[tea.KeyType]string{
	tea.KeyCtrlA: "a",
	tea.KeyCtrlE: "e",
	tea.KeyCtrlJ: "j",
	tea.KeyCtrlK: "k",
	tea.KeyCtrlN: "n",
	tea.KeyCtrlP: "p",
	tea.KeyCtrlU: "u",
	tea.KeyCtrlW: "w",
}

// KeyEvents converts a terminal key message into the events delivered to
// the vomnibar. Enter yields a key-down followed by a commit, every other
// key a single key-down.
//
// Terminals cannot report Ctrl+Enter, so Alt+Enter stands in for it.
func KeyEvents(msg tea.KeyMsg) []entity.KeyEvent {
	mods := entity.Modifiers{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyEnter:
		enter := entity.Modifiers{Ctrl: msg.Alt}
		return []entity.KeyEvent{
			{Key: entity.KeyEnter, Modifiers: enter, Phase: entity.PhaseKeyDown},
			{Key: entity.KeyEnter, Modifiers: enter, Phase: entity.PhaseCommit},
		}
	case tea.KeyEsc:
		return keyDown(entity.KeyEscape, mods)
	case tea.KeyTab:
		return keyDown(entity.KeyTab, mods)
	case tea.KeyShiftTab:
		mods.Shift = true
		return keyDown(entity.KeyTab, mods)
	case tea.KeyUp:
		return keyDown(entity.KeyUp, mods)
	case tea.KeyDown:
		return keyDown(entity.KeyDown, mods)
	case tea.KeyLeft:
		return keyDown(entity.KeyLeft, mods)
	case tea.KeyRight:
		return keyDown(entity.KeyRight, mods)
	case tea.KeyBackspace:
		return keyDown(entity.KeyBackspace, mods)
	case tea.KeyDelete:
		return keyDown(entity.KeyDelete, mods)
	case tea.KeySpace:
		return keyDown(" ", mods)
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			r := msg.Runes[0]
			mods.Shift = unicode.IsUpper(r)
			return keyDown(strings.ToLower(string(r)), mods)
		}
		return nil
	}

	if letter, ok := ctrlLetters[msg.Type]; ok {
		mods.Ctrl = true
		return keyDown(letter, mods)
	}
	return nil
}

func keyDown(key string, mods entity.Modifiers) []entity.KeyEvent {
	return []entity.KeyEvent{{Key: key, Modifiers: mods, Phase: entity.PhaseKeyDown}}
}

// applyEdit performs the text editing a key the vomnibar did not consume
// stands for. It reports whether the text changed.
func applyEdit(buf *textinput.Buffer, msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		buf.Insert(string(msg.Runes))
		return true
	case tea.KeySpace:
		buf.Insert(" ")
		return true
	case tea.KeyBackspace:
		return buf.DeleteBackward()
	case tea.KeyDelete:
		return deleteForward(buf)
	case tea.KeyLeft:
		buf.SetCursor(buf.SelectionEnd() - 1)
	case tea.KeyRight:
		buf.SetCursor(buf.SelectionEnd() + 1)
	case tea.KeyHome, tea.KeyCtrlA:
		buf.SetCursor(0)
	case tea.KeyEnd, tea.KeyCtrlE:
		buf.SetCursor(len([]rune(buf.Value())))
	case tea.KeyCtrlU:
		if buf.Value() == "" {
			return false
		}
		buf.Replace("", 0)
		return true
	case tea.KeyCtrlW:
		return deleteWordBackward(buf)
	}
	return false
}

func deleteForward(buf *textinput.Buffer) bool {
	runes := []rune(buf.Value())
	cursor := buf.SelectionEnd()
	if cursor >= len(runes) {
		return false
	}
	buf.Replace(string(runes[:cursor])+string(runes[cursor+1:]), cursor)
	return true
}

func deleteWordBackward(buf *textinput.Buffer) bool {
	runes := []rune(buf.Value())
	cursor := buf.SelectionEnd()
	if cursor == 0 {
		return false
	}

	start := cursor
	for start > 0 && unicode.IsSpace(runes[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	buf.Replace(string(runes[:start])+string(runes[cursor:]), start)
	return true
}
