package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryQueue_ProcessesTasks(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
		done = make(chan struct{}, 3)
	)
	handlers := map[Kind]Handler{
		KindProcessInbound: func(_ context.Context, task Task) error {
			mu.Lock()
			seen = append(seen, task.ID)
			mu.Unlock()
			done <- struct{}{}
			return nil
		},
	}
	q := NewMemoryQueue(10, 2, time.Second, handlers, discardLogger())
	defer q.Shutdown(context.Background())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(ctx, NewTask(KindProcessInbound, nil, "corr")))
	}
	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("task not processed in time")
		}
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 3)
}

func TestMemoryQueue_FullBufferFailsFast(t *testing.T) {
	block := make(chan struct{})
	handlers := map[Kind]Handler{
		KindProcessInbound: func(_ context.Context, _ Task) error {
			<-block
			return nil
		},
	}
	q := NewMemoryQueue(1, 1, time.Minute, handlers, discardLogger())
	defer func() {
		close(block)
		q.Shutdown(context.Background())
	}()

	ctx := context.Background()
	// the worker takes one task, the buffer holds one more
	require.NoError(t, q.Enqueue(ctx, NewTask(KindProcessInbound, nil, "c")))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, q.Enqueue(ctx, NewTask(KindProcessInbound, nil, "c")))

	err := q.Enqueue(ctx, NewTask(KindProcessInbound, nil, "c"))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestMemoryQueue_RedeliversFailedTasks(t *testing.T) {
	var attempts int32
	done := make(chan struct{})
	handlers := map[Kind]Handler{
		KindProcessInbound: func(_ context.Context, _ Task) error {
			if atomic.AddInt32(&attempts, 1) < 3 {
				return errors.New("transient")
			}
			close(done)
			return nil
		},
	}
	q := NewMemoryQueue(10, 1, time.Second, handlers, discardLogger())
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), NewTask(KindProcessInbound, nil, "c")))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task not redelivered")
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestMemoryQueue_RedeliveryIsBounded(t *testing.T) {
	var attempts int32
	handlers := map[Kind]Handler{
		KindProcessInbound: func(_ context.Context, _ Task) error {
			atomic.AddInt32(&attempts, 1)
			return errors.New("always fails")
		},
	}
	q := NewMemoryQueue(10, 1, time.Second, handlers, discardLogger())

	require.NoError(t, q.Enqueue(context.Background(), NewTask(KindProcessInbound, nil, "c")))
	require.NoError(t, q.Shutdown(context.Background()))
	assert.Equal(t, int32(maxAttempts), atomic.LoadInt32(&attempts))
}

func TestMemoryQueue_ShutdownDrainsBuffer(t *testing.T) {
	var processed int32
	handlers := map[Kind]Handler{
		KindProcessInbound: func(_ context.Context, _ Task) error {
			atomic.AddInt32(&processed, 1)
			return nil
		},
	}
	q := NewMemoryQueue(10, 1, time.Second, handlers, discardLogger())

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(ctx, NewTask(KindProcessInbound, nil, "c")))
	}
	require.NoError(t, q.Shutdown(ctx))
	assert.Equal(t, int32(5), atomic.LoadInt32(&processed))

	err := q.Enqueue(ctx, NewTask(KindProcessInbound, nil, "c"))
	assert.ErrorIs(t, err, ErrQueueFull, "intake stops after shutdown")
}

func TestMemoryQueue_Health(t *testing.T) {
	q := NewMemoryQueue(10, 4, time.Second, nil, discardLogger())
	defer q.Shutdown(context.Background())

	h := q.Health()
	assert.Equal(t, "memory", h.Backend)
	assert.Equal(t, 4, h.Workers)
}

func TestNewTask(t *testing.T) {
	task := NewTask(KindProcessInbound, []byte(`{"x":1}`), "corr-1")
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, KindProcessInbound, task.Kind)
	assert.Equal(t, "corr-1", task.CorrelationID)
	assert.False(t, task.EnqueuedAt.IsZero())
}
