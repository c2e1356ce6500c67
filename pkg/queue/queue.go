// Package queue decouples webhook admission from message processing. The
// memory backend drains tasks with an in-process worker pool; the push_http
// backend hands tasks to an external queue service that redelivers them to
// the /internal handlers.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQueueFull is returned by Enqueue when the backend cannot accept the
// task; the admission handler maps it to 503.
var ErrQueueFull = errors.New("task queue full")

// Kind routes a task to its handler.
type Kind string

// Task kinds.
const (
	KindProcessInbound  Kind = "process_inbound"
	KindProcessOutbound Kind = "process_outbound"
)

// Task is one unit of deferred work.
type Task struct {
	ID            string          `json:"id"`
	Kind          Kind            `json:"kind"`
	Payload       json.RawMessage `json:"payload"`
	CorrelationID string          `json:"correlation_id"`
	EnqueuedAt    time.Time       `json:"enqueued_at"`
}

// NewTask builds a Task with a fresh id.
func NewTask(kind Kind, payload json.RawMessage, correlationID string) Task {
	return Task{
		ID:            uuid.NewString(),
		Kind:          kind,
		Payload:       payload,
		CorrelationID: correlationID,
		EnqueuedAt:    time.Now().UTC(),
	}
}

// Handler processes one task. A non-nil error requeues the task when the
// backend supports redelivery.
type Handler func(ctx context.Context, task Task) error

// TaskQueue accepts tasks for asynchronous processing.
type TaskQueue interface {
	// Enqueue accepts the task or fails fast with ErrQueueFull.
	Enqueue(ctx context.Context, task Task) error

	// Shutdown stops intake and waits for in-flight tasks up to the context
	// deadline.
	Shutdown(ctx context.Context) error
}

// Health is a point-in-time snapshot of queue state for the health endpoint.
type Health struct {
	Backend string `json:"backend"`
	Depth   int    `json:"depth"`
	Workers int    `json:"workers"`
}

// HealthReporter is implemented by backends that can describe themselves.
type HealthReporter interface {
	Health() Health
}
