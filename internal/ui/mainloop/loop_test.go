package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsTasksInOrder(t *testing.T) {
	l := NewLoop(0)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	var got []int
	var wg sync.WaitGroup
	wg.Add(1)
	for i := 0; i < 10; i++ {
		v := i
		require.True(t, l.Post(func() { got = append(got, v) }))
	}
	l.Post(wg.Done)
	wg.Wait()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLoop_PostAfterStopFails(t *testing.T) {
	l := NewLoop(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_ = l.Run(ctx)
	<-l.Done()

	assert.False(t, l.Post(func() {}))
	assert.False(t, l.Post(nil))
}

func TestLoop_PostFromLoopNeverBlocksOnFullQueue(t *testing.T) {
	l := NewLoop(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = l.Run(ctx) }()

	done := make(chan struct{})
	var count int
	require.True(t, l.Post(func() {
		for range 5 {
			l.PostAsync(func() {
				count++
				if count == 5 {
					close(done)
				}
			})
		}
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("follow-up tasks did not run")
	}
}
