package mainloop

import (
	"context"
	"sync"
)

const defaultQueueSize = 64

// Loop executes posted tasks sequentially on the goroutine calling Run.
// Everything that touches controller state is posted here, so the
// controller itself needs no locks.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with the given queue size.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		tasks: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Post schedules fn. It blocks while the queue is full and returns false
// once the loop has stopped. Tasks run in posting order.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// PostAsync schedules fn without ever blocking the caller. Use it from tasks
// running on the loop itself; when the queue is full fn is enqueued from a
// separate goroutine and may run after tasks posted later.
func (l *Loop) PostAsync(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.done:
		return
	case l.tasks <- fn:
		return
	default:
	}

	go l.Post(fn)
}

// Run executes tasks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) stop() {
	l.once.Do(func() { close(l.done) })
}
