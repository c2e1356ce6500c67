package queue

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

// PushHTTPQueue hands tasks to a queue service that redelivers them as POSTs
// to this service's /internal handlers. The base URL points at the delivery
// target; the internal token authenticates the eventual delivery.
type PushHTTPQueue struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewPushHTTPQueue builds the backend.
func NewPushHTTPQueue(client *http.Client, baseURL, token string) *PushHTTPQueue {
	return &PushHTTPQueue{client: client, baseURL: baseURL, token: token}
}

// Enqueue implements TaskQueue. The task payload is posted as-is: it is
// already the request body the /internal handler for the kind binds.
func (q *PushHTTPQueue) Enqueue(ctx context.Context, task Task) error {
	body := task.Payload
	url := fmt.Sprintf("%s/internal/%s", q.baseURL, task.Kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building enqueue request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Token", q.token)

	resp, err := q.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueueFull, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: enqueue returned %d", ErrQueueFull, resp.StatusCode)
	}
	return nil
}

// Shutdown implements TaskQueue. The external service owns in-flight tasks.
func (q *PushHTTPQueue) Shutdown(context.Context) error { return nil }

// Health implements HealthReporter. Depth is not observable from here.
func (q *PushHTTPQueue) Health() Health {
	return Health{Backend: "push_http"}
}
