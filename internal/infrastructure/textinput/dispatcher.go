package textinput

import (
	"context"
	"sync"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/entity"
)

// Dispatcher delivers input events to subscribed handlers in subscription
// order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []port.InputHandler
}

// Compile-time interface check.
var _ port.EventSource = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher with no handlers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers handler.
func (d *Dispatcher) Subscribe(handler port.InputHandler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	d.handlers = append(d.handlers, handler)
	d.mu.Unlock()
}

// Key offers ev to each handler until one consumes it.
func (d *Dispatcher) Key(ctx context.Context, ev entity.KeyEvent) bool {
	for _, h := range d.snapshot() {
		if h.HandleKey(ctx, ev) {
			return true
		}
	}
	return false
}

// Input notifies every handler that the text changed.
func (d *Dispatcher) Input(ctx context.Context) {
	for _, h := range d.snapshot() {
		h.HandleInput(ctx)
	}
}

// Press delivers a key-down followed by a commit event, the way a host
// reports one physical key press. It reports whether either was consumed.
func (d *Dispatcher) Press(ctx context.Context, key string, mods entity.Modifiers) bool {
	down := d.Key(ctx, entity.KeyEvent{Key: key, Modifiers: mods, Phase: entity.PhaseKeyDown})
	committed := d.Key(ctx, entity.KeyEvent{Key: key, Modifiers: mods, Phase: entity.PhaseCommit})
	return down || committed
}

func (d *Dispatcher) snapshot() []port.InputHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]port.InputHandler, len(d.handlers))
	copy(out, d.handlers)
	return out
}
