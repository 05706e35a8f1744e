package port

import (
	"context"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

// InputField is the vomnibar's single-line text input.
// Cursor positions are rune offsets.
type InputField interface {
	Value() string
	SetValue(value string)

	// SelectionEnd returns the end of the current selection, which is the
	// cursor position when nothing is selected.
	SelectionEnd() int
	SetCursor(pos int)

	Focus()
	Blur()
}

// InputHandler consumes normalized input events.
type InputHandler interface {
	// HandleKey processes a key event and reports whether it was consumed.
	HandleKey(ctx context.Context, event entity.KeyEvent) bool

	// HandleInput is called after the user changed the input text.
	HandleInput(ctx context.Context)
}

// EventSource lets handlers register for input events.
type EventSource interface {
	Subscribe(handler InputHandler)
}
