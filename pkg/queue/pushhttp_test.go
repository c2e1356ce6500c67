package queue

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushHTTPQueue_Enqueue_PostsPayloadToKindEndpoint(t *testing.T) {
	var (
		gotPath  string
		gotToken string
		gotBody  []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Internal-Token")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	q := NewPushHTTPQueue(srv.Client(), srv.URL, "internal-token")
	payload := []byte(`{"payload":{"object":"whatsapp_business_account"},"inbound_event_id":"wamid.1","correlation_id":"corr-1"}`)
	task := NewTask(KindProcessInbound, payload, "corr-1")

	require.NoError(t, q.Enqueue(context.Background(), task))
	assert.Equal(t, "/internal/process_inbound", gotPath)
	assert.Equal(t, "internal-token", gotToken)
	assert.JSONEq(t, string(payload), string(gotBody),
		"the delivered body is the handler's request shape, not a task envelope")
}

func TestPushHTTPQueue_Enqueue_NonSuccessIsQueueFull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	q := NewPushHTTPQueue(srv.Client(), srv.URL, "internal-token")
	err := q.Enqueue(context.Background(), NewTask(KindProcessInbound, []byte(`{}`), "corr-1"))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPushHTTPQueue_Enqueue_UnreachableTargetIsQueueFull(t *testing.T) {
	q := NewPushHTTPQueue(&http.Client{}, "http://127.0.0.1:1", "internal-token")
	err := q.Enqueue(context.Background(), NewTask(KindProcessInbound, []byte(`{}`), "corr-1"))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPushHTTPQueue_Health(t *testing.T) {
	q := NewPushHTTPQueue(&http.Client{}, "http://localhost", "tok")
	assert.Equal(t, "push_http", q.Health().Backend)
}
