package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MemoryQueue is the in-process backend: a buffered channel drained by a
// fixed worker pool. Failed tasks are redelivered up to maxAttempts with the
// task re-enqueued at the back.
type MemoryQueue struct {
	tasks       chan delivery
	handlers    map[Kind]Handler
	workerCount int
	taskTimeout time.Duration
	logger      *slog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}
}

type delivery struct {
	task    Task
	attempt int
}

// maxAttempts bounds redelivery of failing tasks in the memory backend.
const maxAttempts = 3

// NewMemoryQueue builds the queue and starts its workers.
func NewMemoryQueue(size, workerCount int, taskTimeout time.Duration, handlers map[Kind]Handler, logger *slog.Logger) *MemoryQueue {
	q := &MemoryQueue{
		tasks:       make(chan delivery, size),
		handlers:    handlers,
		workerCount: workerCount,
		taskTimeout: taskTimeout,
		logger:      logger,
		stopped:     make(chan struct{}),
	}
	for i := 0; i < workerCount; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue implements TaskQueue. It never blocks: a full buffer fails fast.
func (q *MemoryQueue) Enqueue(_ context.Context, task Task) error {
	select {
	case <-q.stopped:
		return ErrQueueFull
	default:
	}
	select {
	case q.tasks <- delivery{task: task, attempt: 1}:
		return nil
	default:
		return ErrQueueFull
	}
}

// The tasks channel is never closed; redelivery may still write to it while
// shutdown is in flight. Workers exit through the stopped signal after
// draining whatever remains buffered.
func (q *MemoryQueue) worker() {
	defer q.wg.Done()
	for {
		select {
		case d := <-q.tasks:
			q.process(d)
		case <-q.stopped:
			for {
				select {
				case d := <-q.tasks:
					q.process(d)
				default:
					return
				}
			}
		}
	}
}

func (q *MemoryQueue) process(d delivery) {
	handler, ok := q.handlers[d.task.Kind]
	if !ok {
		q.logger.Error("no handler for task kind",
			slog.String("task_id", d.task.ID),
			slog.String("kind", string(d.task.Kind)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), q.taskTimeout)
	err := handler(ctx, d.task)
	cancel()
	if err == nil {
		return
	}

	q.logger.Warn("task failed",
		slog.String("task_id", d.task.ID),
		slog.String("kind", string(d.task.Kind)),
		slog.Int("attempt", d.attempt),
		slog.String("error", err.Error()))

	if d.attempt >= maxAttempts {
		q.logger.Error("task exhausted redelivery",
			slog.String("task_id", d.task.ID),
			slog.String("kind", string(d.task.Kind)))
		return
	}
	select {
	case q.tasks <- delivery{task: d.task, attempt: d.attempt + 1}:
	default:
		q.logger.Error("dropping failed task, queue full",
			slog.String("task_id", d.task.ID))
	}
}

// Shutdown implements TaskQueue: stop intake, let workers drain the buffer,
// bounded by ctx.
func (q *MemoryQueue) Shutdown(ctx context.Context) error {
	q.stopOnce.Do(func() {
		close(q.stopped)
	})

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Health implements HealthReporter.
func (q *MemoryQueue) Health() Health {
	return Health{Backend: "memory", Depth: len(q.tasks), Workers: q.workerCount}
}
