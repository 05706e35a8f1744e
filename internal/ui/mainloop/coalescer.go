// Package mainloop provides the single-threaded task loop the vomnibar
// controller runs on, and a coalescer for bursts of same-key work.
package mainloop

import "sync"

// Coalescer collapses bursts of work per key. While a key has a task
// scheduled, further posts only swap the function that task will run, so
// at most one task per key is ever queued.
type Coalescer[K comparable] struct {
	schedule func(func())

	mu      sync.Mutex
	latest  map[K]func()
	stopped bool
}

// NewCoalescer creates a coalescer that schedules work through schedule.
func NewCoalescer[K comparable](schedule func(func())) *Coalescer[K] {
	if schedule == nil {
		panic("mainloop.NewCoalescer: schedule function cannot be nil")
	}
	return &Coalescer[K]{
		schedule: schedule,
		latest:   make(map[K]func()),
	}
}

// Post makes fn the work to run for key, scheduling a task unless one is
// already pending.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, pending := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if !pending {
		c.schedule(func() { c.run(key) })
	}
}

func (c *Coalescer[K]) run(key K) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	c.mu.Unlock()

	if ok {
		fn()
	}
}

// pending reports whether work for key is scheduled but has not run.
func (c *Coalescer[K]) pending(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.latest[key]
	return ok
}

// Stop drops all pending work. Later posts are ignored.
func (c *Coalescer[K]) Stop() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
