// Package textinput provides a headless implementation of the vomnibar input
// field and the dispatcher that fans input events out to handlers.
package textinput

import (
	"sync"

	"github.com/bnema/vomnibar/internal/application/port"
)

// Buffer is an in-memory single-line input. Positions are rune offsets.
// Programmatic changes through SetValue never notify handlers; only edits
// reported through a Dispatcher do.
type Buffer struct {
	mu      sync.RWMutex
	value   []rune
	cursor  int
	focused bool
}

// Compile-time interface check.
var _ port.InputField = (*Buffer)(nil)

// NewBuffer creates an empty, unfocused buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Value returns the current text.
func (b *Buffer) Value() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.value)
}

// SetValue replaces the text and moves the cursor to the end.
func (b *Buffer) SetValue(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = []rune(value)
	b.cursor = len(b.value)
}

// SelectionEnd returns the cursor position.
func (b *Buffer) SelectionEnd() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// SetCursor moves the cursor, clamped to the text.
func (b *Buffer) SetCursor(pos int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = b.clamp(pos)
}

// Focus gives the buffer keyboard focus.
func (b *Buffer) Focus() {
	b.mu.Lock()
	b.focused = true
	b.mu.Unlock()
}

// Blur removes keyboard focus.
func (b *Buffer) Blur() {
	b.mu.Lock()
	b.focused = false
	b.mu.Unlock()
}

// Focused reports whether the buffer has focus.
func (b *Buffer) Focused() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.focused
}

// Insert types text at the cursor.
func (b *Buffer) Insert(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ins := []rune(text)
	out := make([]rune, 0, len(b.value)+len(ins))
	out = append(out, b.value[:b.cursor]...)
	out = append(out, ins...)
	out = append(out, b.value[b.cursor:]...)

	b.value = out
	b.cursor += len(ins)
}

// DeleteBackward removes the rune before the cursor. It reports whether the
// text changed.
func (b *Buffer) DeleteBackward() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cursor == 0 {
		return false
	}
	b.value = append(b.value[:b.cursor-1], b.value[b.cursor:]...)
	b.cursor--
	return true
}

// Replace sets text and cursor together, as reported by a host that owns
// the real input element.
func (b *Buffer) Replace(value string, cursor int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = []rune(value)
	b.cursor = b.clamp(cursor)
}

func (b *Buffer) clamp(pos int) int {
	return min(max(pos, 0), len(b.value))
}
