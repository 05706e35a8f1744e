package textinput

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

func TestBuffer_InsertAndDeleteUseRuneOffsets(t *testing.T) {
	b := NewBuffer()
	b.SetValue("héllo")
	assert.Equal(t, 5, b.SelectionEnd())

	b.SetCursor(2)
	b.Insert("ü")
	assert.Equal(t, "hüéllo", b.Value())
	assert.Equal(t, 3, b.SelectionEnd())

	assert.True(t, b.DeleteBackward())
	assert.Equal(t, "héllo", b.Value())
	assert.Equal(t, 2, b.SelectionEnd())

	b.SetCursor(0)
	assert.False(t, b.DeleteBackward())
}

func TestBuffer_CursorIsClamped(t *testing.T) {
	b := NewBuffer()
	b.Replace("abc", 10)
	assert.Equal(t, 3, b.SelectionEnd())

	b.SetCursor(-4)
	assert.Equal(t, 0, b.SelectionEnd())
}

func TestBuffer_Focus(t *testing.T) {
	b := NewBuffer()
	assert.False(t, b.Focused())
	b.Focus()
	assert.True(t, b.Focused())
	b.Blur()
	assert.False(t, b.Focused())
}

type recordingHandler struct {
	consume bool
	keys    []entity.KeyEvent
	inputs  int
}

func (h *recordingHandler) HandleKey(_ context.Context, ev entity.KeyEvent) bool {
	h.keys = append(h.keys, ev)
	return h.consume
}

func (h *recordingHandler) HandleInput(context.Context) {
	h.inputs++
}

func TestDispatcher_KeyStopsAtFirstConsumer(t *testing.T) {
	first := &recordingHandler{consume: true}
	second := &recordingHandler{}

	d := NewDispatcher()
	d.Subscribe(first)
	d.Subscribe(second)
	d.Subscribe(nil)

	ev := entity.KeyEvent{Key: entity.KeyDown, Phase: entity.PhaseKeyDown}
	assert.True(t, d.Key(context.Background(), ev))
	assert.Len(t, first.keys, 1)
	assert.Empty(t, second.keys)

	d.Input(context.Background())
	assert.Equal(t, 1, first.inputs)
	assert.Equal(t, 1, second.inputs)
}

func TestDispatcher_PressSendsBothPhases(t *testing.T) {
	h := &recordingHandler{}
	d := NewDispatcher()
	d.Subscribe(h)

	assert.False(t, d.Press(context.Background(), entity.KeyEnter, entity.Modifiers{Shift: true}))
	if assert.Len(t, h.keys, 2) {
		assert.Equal(t, entity.PhaseKeyDown, h.keys[0].Phase)
		assert.Equal(t, entity.PhaseCommit, h.keys[1].Phase)
		assert.True(t, h.keys[1].Shift)
	}
}
