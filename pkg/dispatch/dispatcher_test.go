package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/wire"
)

func newDispatcher(t *testing.T, baseURL string, store dedupe.OutboundStore, breaker config.BreakerConfig) *Dispatcher {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := NewDispatcher(
		&http.Client{Timeout: 5 * time.Second},
		config.WhatsAppConfig{
			AccessToken:   "token",
			PhoneNumberID: "1234567890",
			APIVersion:    "v21.0",
			BaseURL:       baseURL,
		},
		breaker,
		store,
		dedupe.NewKeyspace("zapgate", "test", "scope"),
		time.Hour,
		logger,
	)
	d.baseBackoff = time.Millisecond
	return d
}

func textRequest(key string) wire.Request {
	return wire.Request{
		To:             "+5511988887777",
		Kind:           wire.KindText,
		Text:           "Olá!",
		IdempotencyKey: key,
	}
}

func sentResponse(id string) string {
	return `{"messages":[{"id":"` + id + `"}]}`
}

func TestSend_Success(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v21.0/1234567890/messages", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "whatsapp", payload["messaging_product"])
		assert.Equal(t, "5511988887777", payload["to"])

		io.WriteString(w, sentResponse("wamid.1"))
	}))
	defer srv.Close()

	store := dedupe.NewMemoryStore()
	d := newDispatcher(t, srv.URL, store, config.BreakerConfig{})

	resp, err := d.Send(context.Background(), textRequest("key-1"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "wamid.1", resp.MessageID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSend_DuplicateShortCircuitsWithoutHTTP(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		io.WriteString(w, sentResponse("wamid.1"))
	}))
	defer srv.Close()

	store := dedupe.NewMemoryStore()
	d := newDispatcher(t, srv.URL, store, config.BreakerConfig{})
	ctx := context.Background()

	first, err := d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, first.MessageID, second.MessageID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "duplicate must not hit the provider")
}

func TestSend_ValidationFailureNeverHitsProvider(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	d := newDispatcher(t, srv.URL, dedupe.NewMemoryStore(), config.BreakerConfig{})

	req := textRequest("key-1")
	req.Text = ""
	resp, err := d.Send(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, CodeValidationError, resp.ErrorCode)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestSend_RetryableThenSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, sentResponse("wamid.2"))
	}))
	defer srv.Close()

	d := newDispatcher(t, srv.URL, dedupe.NewMemoryStore(), config.BreakerConfig{})

	resp, err := d.Send(context.Background(), textRequest("key-1"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "wamid.2", resp.MessageID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSend_RetryableExhaustedKeepsEntryPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store := dedupe.NewMemoryStore()
	d := newDispatcher(t, srv.URL, store, config.BreakerConfig{})
	ctx := context.Background()

	resp, err := d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, CodeRetryableError, resp.ErrorCode)
	assert.True(t, resp.Retryable)

	key := dedupe.NewKeyspace("zapgate", "test", "scope").Key("out:key-1")
	prior, err := store.CheckAndMark(ctx, key, "ignored", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, dedupe.StatusPending, prior.Status,
		"retryable failure leaves the entry claimable by redelivery")
}

func TestSend_PermanentProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"(#131030) Recipient not in allowed list","type":"OAuthException","code":131030}}`)
	}))
	defer srv.Close()

	store := dedupe.NewMemoryStore()
	d := newDispatcher(t, srv.URL, store, config.BreakerConfig{})
	ctx := context.Background()

	resp, err := d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.False(t, resp.Retryable)
	assert.Equal(t, CodeAPIError, resp.ErrorCode)
	assert.Equal(t, "OAuthException", resp.ProviderErrorType)
	assert.Equal(t, 131030, resp.ProviderErrorCode)

	key := dedupe.NewKeyspace("zapgate", "test", "scope").Key("out:key-1")
	prior, err := store.CheckAndMark(ctx, key, "ignored", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, dedupe.StatusFailed, prior.Status)
}

func TestSend_RedeliveryAfterRetryableSucceedsOnce(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, sentResponse("wamid.3"))
	}))
	defer srv.Close()

	store := dedupe.NewMemoryStore()
	d := newDispatcher(t, srv.URL, store, config.BreakerConfig{})
	ctx := context.Background()

	// first delivery exhausts its three attempts against 503s
	resp, err := d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	require.True(t, resp.Retryable)

	// the redelivery claims the still-pending entry and succeeds
	resp, err = d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "wamid.3", resp.MessageID)

	// a third delivery is a sent duplicate, no provider call
	before := atomic.LoadInt32(&calls)
	resp, err = d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, before, atomic.LoadInt32(&calls))
}

func TestSend_BreakerOpensAndFailsFast(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store := dedupe.NewMemoryStore()
	d := newDispatcher(t, srv.URL, store, config.BreakerConfig{
		Enabled:      true,
		FailMax:      2,
		ResetTimeout: time.Minute,
		HalfOpenMax:  1,
	})
	ctx := context.Background()

	// trips the breaker within the first send's retry loop
	resp, err := d.Send(ctx, textRequest("key-1"))
	require.NoError(t, err)
	require.False(t, resp.Success)

	before := atomic.LoadInt32(&calls)
	resp, err = d.Send(ctx, textRequest("key-2"))
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.False(t, resp.Retryable, "open breaker sheds load without redelivery churn")
	assert.Equal(t, before, atomic.LoadInt32(&calls), "open breaker must not call the provider")
}

// newClosedRedisStore yields an outbound store whose backend is already gone.
func newClosedRedisStore(t *testing.T) dedupe.OutboundStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()
	return dedupe.NewRedisStore(client)
}

func TestSend_DedupeBackendDownIsInfrastructureError(t *testing.T) {
	store := newClosedRedisStore(t)
	d := newDispatcher(t, "http://127.0.0.1:0", store, config.BreakerConfig{})

	_, err := d.Send(context.Background(), textRequest("key-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, dedupe.ErrBackendUnavailable)
}
