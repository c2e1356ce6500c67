package webhookapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/abuse"
	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/dispatch"
	"github.com/zapgate/zapgate/pkg/masking"
	"github.com/zapgate/zapgate/pkg/pipeline"
	"github.com/zapgate/zapgate/pkg/queue"
	"github.com/zapgate/zapgate/pkg/services"
	"github.com/zapgate/zapgate/pkg/session"
)

const (
	testWebhookSecret = "topsecret"
	testVerifyToken   = "verify-me"
	testInternalToken = "internal-token"
)

// newTestRouter wires a full memory-backed server against a stub provider.
func newTestRouter(t *testing.T, mutate func(*config.Settings)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"messages":[{"id":"wamid.out.1"}]}`)
	}))
	t.Cleanup(provider.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Settings{
		Environment: config.EnvironmentDevelopment,
		HTTPPort:    "0",
		Webhook:     config.WebhookConfig{Secret: testWebhookSecret, VerifyToken: testVerifyToken},
		WhatsApp: config.WhatsAppConfig{
			AccessToken:   "token",
			PhoneNumberID: "1234567890",
			APIVersion:    "v21.0",
			BaseURL:       provider.URL,
		},
		Dedupe:        config.DedupeConfig{TTL: time.Hour},
		Queue:         config.QueueConfig{InternalToken: testInternalToken},
		Flood:         config.FloodConfig{Threshold: 100, Window: time.Minute},
		UserKeyPepper: "pepper",
	}
	if mutate != nil {
		mutate(cfg)
	}

	keyspace := dedupe.NewKeyspace("zapgate", string(cfg.Environment), cfg.TenantID)
	sessions := session.NewManager(session.NewMemoryStore(), time.Hour, 3, 200, logger)
	dispatcher := dispatch.NewDispatcher(&http.Client{Timeout: 5 * time.Second},
		cfg.WhatsApp, config.BreakerConfig{}, dedupe.NewMemoryStore(), keyspace, time.Hour, logger)
	pipe := pipeline.New(nil, config.LLMConfig{MinResponses: 3}, logger)

	inbound := services.NewInboundService(cfg, masking.NewService(), sessions,
		abuse.NewMemoryFloodDetector(cfg.Flood.Threshold, cfg.Flood.Window), pipe,
		dispatcher, dedupe.NewMemoryStore(), keyspace, nil, nil, logger)
	outbound := services.NewOutboundService(dispatcher, logger)

	tasks := queue.NewMemoryQueue(16, 1, time.Second, map[queue.Kind]queue.Handler{
		queue.KindProcessInbound: func(context.Context, queue.Task) error { return nil },
	}, logger)
	t.Cleanup(func() { tasks.Shutdown(context.Background()) })

	admission := services.NewAdmissionService(cfg, dedupe.NewMemoryStore(), keyspace, tasks, logger)
	srv := NewServer(cfg, admission, inbound, outbound, nil, nil, tasks, nil, logger)
	return srv.Router()
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookPayload(messageID string) []byte {
	return []byte(`{
		"object": "whatsapp_business_account",
		"entry": [{"id": "e1", "changes": [{"field": "messages", "value": {
			"messaging_product": "whatsapp",
			"messages": [{"id": "` + messageID + `", "from": "5511988887777", "timestamp": "1757500000",
				"type": "text", "text": {"body": "oi, preciso de ajuda"}}]
		}}]}]
	}`)
}

func do(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["service"])
}

func TestVerifyWebhook_Handshake(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(router, httptest.NewRequest(http.MethodGet,
		"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token="+testVerifyToken+"&hub.challenge=12345", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())
}

func TestVerifyWebhook_WrongToken(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(router, httptest.NewRequest(http.MethodGet,
		"/webhooks/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReceiveWebhook_BadSignature(t *testing.T) {
	router := newTestRouter(t, nil)
	body := webhookPayload("wamid.1")

	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(make([]byte, 32)))
	w := do(router, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decode(t, w)["ok"])
}

func TestReceiveWebhook_Enqueues(t *testing.T) {
	router := newTestRouter(t, nil)
	body := webhookPayload("wamid.1")

	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature-256", sign(body))
	w := do(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, true, resp["enqueued"])
	assert.Equal(t, "wamid.1", resp["inbound_event_id"])
	assert.Equal(t, true, resp["signature_validated"])
	assert.Equal(t, false, resp["signature_skipped"])
	assert.NotEmpty(t, resp["task_id"])
}

func TestReceiveWebhook_ReplayIsAcknowledgedNotEnqueued(t *testing.T) {
	router := newTestRouter(t, nil)
	body := webhookPayload("wamid.1")

	first := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewReader(body))
	first.Header.Set("X-Hub-Signature-256", sign(body))
	require.Equal(t, http.StatusOK, do(router, first).Code)

	replay := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewReader(body))
	replay.Header.Set("X-Hub-Signature-256", sign(body))
	w := do(router, replay)
	require.Equal(t, http.StatusOK, w.Code, "the provider expects 200 on replays")

	resp := decode(t, w)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, false, resp["enqueued"])
	assert.Equal(t, "wamid.1", resp["inbound_event_id"])
}

func TestReceiveWebhook_DevelopmentWithoutSecretSkipsSignature(t *testing.T) {
	router := newTestRouter(t, func(cfg *config.Settings) {
		cfg.Webhook.Secret = ""
	})
	body := webhookPayload("wamid.1")

	w := do(router, httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, false, resp["signature_validated"])
	assert.Equal(t, true, resp["signature_skipped"])
}

func TestCorrelationIDEchoedAndMinted(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "corr-abc")
	assert.Equal(t, "corr-abc", do(router, req).Header().Get("X-Correlation-ID"))

	minted := do(router, httptest.NewRequest(http.MethodGet, "/health", nil)).Header().Get("X-Correlation-ID")
	assert.NotEmpty(t, minted)
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestInternalToken_Required(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(router, httptest.NewRequest(http.MethodGet, "/internal/queue_health", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/internal/queue_health", nil)
	req.Header.Set("X-Internal-Token", "wrong")
	assert.Equal(t, http.StatusUnauthorized, do(router, req).Code)
}

func TestInternalToken_EmptyConfiguredTokenRejectsEverything(t *testing.T) {
	router := newTestRouter(t, func(cfg *config.Settings) {
		cfg.Queue.InternalToken = ""
	})

	req := httptest.NewRequest(http.MethodGet, "/internal/queue_health", nil)
	req.Header.Set("X-Internal-Token", "")
	assert.Equal(t, http.StatusUnauthorized, do(router, req).Code)
}

func TestProcessInbound_DirectCall(t *testing.T) {
	router := newTestRouter(t, nil)

	envelope, err := json.Marshal(map[string]any{
		"payload":        json.RawMessage(webhookPayload("wamid.direct.1")),
		"correlation_id": "corr-1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/internal/process_inbound", bytes.NewReader(envelope))
	req.Header.Set("X-Internal-Token", testInternalToken)
	w := do(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, true, resp["processed"])
	assert.Equal(t, "wamid.direct.1", resp["inbound_event_id"])
}

func TestProcessInbound_QueueDeliveryMatchesHandlerShape(t *testing.T) {
	router := newTestRouter(t, nil)

	// Capture the exact bytes the push backend delivers for an admitted task.
	var delivered []byte
	var deliveredPath string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deliveredPath = r.URL.Path
		delivered, _ = io.ReadAll(r.Body)
	}))
	defer relay.Close()

	taskPayload, err := json.Marshal(services.InboundTaskPayload{
		Payload:        webhookPayload("wamid.push.1"),
		InboundEventID: "wamid.push.1",
		CorrelationID:  "corr-push",
	})
	require.NoError(t, err)

	pushQueue := queue.NewPushHTTPQueue(relay.Client(), relay.URL, testInternalToken)
	require.NoError(t, pushQueue.Enqueue(context.Background(),
		queue.NewTask(queue.KindProcessInbound, taskPayload, "corr-push")))
	require.Equal(t, "/internal/process_inbound", deliveredPath)

	req := httptest.NewRequest(http.MethodPost, "/internal/process_inbound", bytes.NewReader(delivered))
	req.Header.Set("X-Internal-Token", testInternalToken)
	w := do(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, true, resp["processed"])
	assert.Equal(t, false, resp["skipped"])
	assert.Equal(t, "wamid.push.1", resp["inbound_event_id"],
		"the handler must see the admitted event id, not a body digest")
}

func TestProcessInbound_MissingPayload(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/internal/process_inbound",
		bytes.NewReader([]byte(`{"correlation_id":"corr-1"}`)))
	req.Header.Set("X-Internal-Token", testInternalToken)
	assert.Equal(t, http.StatusBadRequest, do(router, req).Code)
}

func TestProcessOutbound_DirectCall(t *testing.T) {
	router := newTestRouter(t, nil)

	body := []byte(`{
		"To": "+5511988887777",
		"Kind": "text",
		"IdempotencyKey": "out-key-1",
		"Text": "Olá!"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/internal/process_outbound", bytes.NewReader(body))
	req.Header.Set("X-Internal-Token", testInternalToken)
	w := do(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAuditExport_UnconfiguredStoreAnswers503(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/internal/audit_export",
		bytes.NewReader([]byte(`{"user_key":"abc"}`)))
	req.Header.Set("X-Internal-Token", testInternalToken)
	assert.Equal(t, http.StatusServiceUnavailable, do(router, req).Code)
}

func TestQueueHealth(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/internal/queue_health", nil)
	req.Header.Set("X-Internal-Token", testInternalToken)
	w := do(router, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "memory", decode(t, w)["backend"])
}
