package mainloop

import "sync"

// Serial runs posted functions one at a time, in posting order, on a
// goroutine it starts on demand. Post never blocks the caller, so a task
// posted from the UI loop is guaranteed to start after every task that loop
// posted earlier.
type Serial struct {
	mu      sync.Mutex
	queue   []func()
	running bool
	closed  bool
}

// NewSerial creates an idle executor.
func NewSerial() *Serial {
	return &Serial{}
}

// Post appends fn to the queue. It is dropped once Close was called.
func (s *Serial) Post(fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, fn)
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.drain()
}

func (s *Serial) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.running = false
			s.mu.Unlock()
			return
		}
		fn := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.mu.Unlock()

		fn()
	}
}

// Close drops queued work. The task running now, if any, completes.
func (s *Serial) Close() {
	s.mu.Lock()
	s.closed = true
	s.queue = nil
	s.mu.Unlock()
}
