package component

import (
	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/entity"
)

// Selection tracks which completion is highlighted and the preview text it
// substitutes into the input.
//
// index stays in [initial, len(completions)-1], or equals initial when the
// list is empty. initial is -1 ("nothing selected") or 0 ("first entry").
type Selection struct {
	input    port.InputField
	renderer port.Renderer

	completions []entity.Completion
	index       int
	initial     int

	// previousInput holds the text to restore once a previewed completion
	// is no longer selected.
	previousInput    string
	hasPreviousInput bool
}

// NewSelection creates a selection bound to input. renderer may be nil.
func NewSelection(input port.InputField, renderer port.Renderer) *Selection {
	return &Selection{
		input:    input,
		renderer: renderer,
		index:    -1,
		initial:  -1,
	}
}

// SetInitialSelection sets the sentinel the index rests on when nothing is
// explicitly selected. It takes effect on the next Reset or SetCompletions.
func (s *Selection) SetInitialSelection(value int) {
	if value != 0 {
		value = -1
	}
	s.initial = value
}

// InitialSelection returns the current sentinel.
func (s *Selection) InitialSelection() int {
	return s.initial
}

// Index returns the selected index.
func (s *Selection) Index() int {
	return s.index
}

// Completions returns the current result set.
func (s *Selection) Completions() []entity.Completion {
	return s.completions
}

// Current returns the selected completion, or nil.
func (s *Selection) Current() *entity.Completion {
	if s.index < 0 || s.index >= len(s.completions) {
		return nil
	}
	return &s.completions[s.index]
}

// hasPreview reports whether the input currently shows substituted text.
func (s *Selection) hasPreview() bool {
	return s.hasPreviousInput
}

// MoveDown selects the next completion, wrapping past the end back to the
// initial value.
func (s *Selection) MoveDown() {
	if len(s.completions) == 0 {
		return
	}
	s.index++
	if s.index == len(s.completions) {
		s.index = s.initial
	}
	s.apply()
}

// MoveUp selects the previous completion, wrapping below the initial value
// to the last entry.
func (s *Selection) MoveUp() {
	if len(s.completions) == 0 {
		return
	}
	s.index--
	if s.index < s.initial {
		s.index = len(s.completions) - 1
	}
	s.apply()
}

// SetCompletions replaces the result set. The first entry is selected when it
// asks for auto-selection; otherwise the index returns to the initial value.
func (s *Selection) SetCompletions(completions []entity.Completion) {
	s.completions = completions

	s.index = s.initial
	if len(completions) > 0 && completions[0].AutoSelect {
		s.index = 0
	}
	s.index = s.clamp(s.index)
	s.apply()
}

// Substitute shows text in the input in place of what was typed, keeping the
// typed text for a later revert.
func (s *Selection) Substitute(text string) {
	s.substitute(text)
	if s.renderer != nil {
		s.renderer.RenderInput(s.input.Value(), s.input.SelectionEnd())
	}
}

// substitute leaves rendering to the caller.
func (s *Selection) substitute(text string) {
	s.snapshot()
	s.input.SetValue(text)
}

// DropPreview forgets the preview snapshot without restoring it, keeping
// whatever the input shows now, and returns the index to the initial value.
// It reports whether a snapshot existed.
func (s *Selection) DropPreview() bool {
	if !s.hasPreviousInput {
		return false
	}
	s.clearSnapshot()
	s.index = s.initial
	s.render()
	return true
}

// Reset empties the result set and the snapshot. The input is left alone.
func (s *Selection) Reset() {
	s.completions = nil
	s.index = s.initial
	s.clearSnapshot()
	s.render()
}

func (s *Selection) clamp(index int) int {
	if len(s.completions) == 0 {
		return s.initial
	}
	return min(len(s.completions)-1, max(s.initial, index))
}

// apply re-derives the input text from the selected completion.
func (s *Selection) apply() {
	if current := s.Current(); current.HasInsertText() {
		s.substitute(current.InsertText)
	} else if s.hasPreviousInput {
		s.input.SetValue(s.previousInput)
		s.clearSnapshot()
	}
	s.render()
}

func (s *Selection) snapshot() {
	if s.hasPreviousInput {
		return
	}
	s.previousInput = s.input.Value()
	s.hasPreviousInput = true
}

func (s *Selection) clearSnapshot() {
	s.previousInput = ""
	s.hasPreviousInput = false
}

func (s *Selection) render() {
	if s.renderer != nil {
		s.renderer.RenderSelection(s.index)
	}
}
