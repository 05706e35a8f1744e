package mainloop

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerial_RunsInPostingOrder(t *testing.T) {
	s := NewSerial()

	var (
		mu  sync.Mutex
		got []int
	)
	done := make(chan struct{})
	for i := range 100 {
		s.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 99 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued work did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestSerial_PostNeverBlocksOnRunningTask(t *testing.T) {
	s := NewSerial()
	release := make(chan struct{})
	ran := make(chan struct{})

	s.Post(func() { <-release })

	posted := make(chan struct{})
	go func() {
		s.Post(func() { close(ran) })
		close(posted)
	}()

	select {
	case <-posted:
	case <-time.After(time.Second):
		t.Fatal("Post blocked behind a running task")
	}

	close(release)
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("second task never ran")
	}
}

func TestSerial_CloseDropsQueuedWork(t *testing.T) {
	s := NewSerial()
	release := make(chan struct{})
	started := make(chan struct{})

	s.Post(func() {
		close(started)
		<-release
	})
	<-started

	ran := false
	s.Post(func() { ran = true })
	s.Close()
	close(release)

	s.Post(func() { ran = true })
	time.Sleep(20 * time.Millisecond)
	assert.False(t, ran)
}
