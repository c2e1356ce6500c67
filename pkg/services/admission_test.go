package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/queue"
)

// captureQueue records enqueued tasks without processing them.
type captureQueue struct {
	tasks []queue.Task
	err   error
}

func (q *captureQueue) Enqueue(_ context.Context, task queue.Task) error {
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *captureQueue) Shutdown(context.Context) error { return nil }

func admissionSettings(env config.Environment, secret string) *config.Settings {
	return &config.Settings{
		Environment: env,
		Webhook:     config.WebhookConfig{Secret: secret, VerifyToken: "verify-me"},
		Dedupe:      config.DedupeConfig{TTL: time.Hour},
	}
}

func newAdmission(t *testing.T, cfg *config.Settings, tasks queue.TaskQueue) *AdmissionService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ks := dedupe.NewKeyspace("zapgate", string(cfg.Environment), "scope")
	return NewAdmissionService(cfg, dedupe.NewMemoryStore(), ks, tasks, logger)
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func inboundBody(messageID string) []byte {
	return []byte(`{
		"object": "whatsapp_business_account",
		"entry": [{"id": "e1", "changes": [{"field": "messages", "value": {
			"messaging_product": "whatsapp",
			"messages": [{"id": "` + messageID + `", "from": "5511988887777", "timestamp": "1757500000",
				"type": "text", "text": {"body": "oi"}}]
		}}]}]
	}`)
}

func TestVerifySignature_Valid(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "topsecret"), &captureQueue{})
	body := []byte(`{"object":"whatsapp_business_account"}`)

	validated, skipped, err := svc.VerifySignature(body, signBody("topsecret", body))
	require.NoError(t, err)
	assert.True(t, validated)
	assert.False(t, skipped)
}

func TestVerifySignature_Mismatch(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "topsecret"), &captureQueue{})
	body := []byte(`{"object":"whatsapp_business_account"}`)

	_, _, err := svc.VerifySignature(body, signBody("wrong-secret", body))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifySignature_MalformedHeader(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "topsecret"), &captureQueue{})

	_, _, err := svc.VerifySignature([]byte("{}"), "md5=abc")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.VerifySignature([]byte("{}"), "sha256=zz-not-hex")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifySignature_DevelopmentSkipsWithoutSecret(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentDevelopment, ""), &captureQueue{})

	validated, skipped, err := svc.VerifySignature([]byte("{}"), "")
	require.NoError(t, err)
	assert.False(t, validated)
	assert.True(t, skipped)
}

func TestVerifySignature_ProductionRequiresSecret(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, ""), &captureQueue{})

	_, _, err := svc.VerifySignature([]byte("{}"), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyHandshake(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), &captureQueue{})

	challenge, err := svc.VerifyHandshake("subscribe", "verify-me", "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", challenge)

	_, err = svc.VerifyHandshake("subscribe", "wrong", "12345")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.VerifyHandshake("unsubscribe", "verify-me", "12345")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdmit_EnqueuesTask(t *testing.T) {
	q := &captureQueue{}
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), q)

	res, err := svc.Admit(context.Background(), inboundBody("wamid.1"), "corr-1", true, false)
	require.NoError(t, err)
	assert.True(t, res.Enqueued)
	assert.Equal(t, "wamid.1", res.InboundEventID)
	assert.True(t, res.SignatureValidated)

	require.Len(t, q.tasks, 1)
	assert.Equal(t, queue.KindProcessInbound, q.tasks[0].Kind)

	var payload InboundTaskPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload, &payload))
	assert.Equal(t, "wamid.1", payload.InboundEventID)
	assert.Equal(t, "corr-1", payload.CorrelationID)
}

func TestAdmit_DuplicateIsAcknowledgedNotEnqueued(t *testing.T) {
	q := &captureQueue{}
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), q)
	ctx := context.Background()

	first, err := svc.Admit(ctx, inboundBody("wamid.1"), "corr-1", true, false)
	require.NoError(t, err)
	require.True(t, first.Enqueued)

	second, err := svc.Admit(ctx, inboundBody("wamid.1"), "corr-2", true, false)
	require.NoError(t, err)
	assert.False(t, second.Enqueued, "replayed webhook must not enqueue")
	assert.Equal(t, first.InboundEventID, second.InboundEventID)
	assert.Len(t, q.tasks, 1)
}

func TestAdmit_MalformedBody(t *testing.T) {
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), &captureQueue{})

	_, err := svc.Admit(context.Background(), []byte(`{broken`), "corr-1", true, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdmit_StatusOnlyPayloadUsesBodyDigest(t *testing.T) {
	q := &captureQueue{}
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), q)

	body := []byte(`{"object":"whatsapp_business_account","entry":[]}`)
	res, err := svc.Admit(context.Background(), body, "corr-1", true, false)
	require.NoError(t, err)
	assert.Contains(t, res.InboundEventID, "payload:")
	assert.True(t, res.Enqueued)
}

func TestAdmit_QueueFullIsBackendUnavailable(t *testing.T) {
	q := &captureQueue{err: queue.ErrQueueFull}
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), q)

	_, err := svc.Admit(context.Background(), inboundBody("wamid.1"), "corr-1", true, false)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestAdmit_EnqueueFailureReleasesDedupeMark(t *testing.T) {
	q := &captureQueue{err: queue.ErrQueueFull}
	svc := newAdmission(t, admissionSettings(config.EnvironmentProduction, "s"), q)
	ctx := context.Background()

	_, err := svc.Admit(ctx, inboundBody("wamid.1"), "corr-1", true, false)
	require.ErrorIs(t, err, ErrBackendUnavailable)

	q.err = nil
	res, err := svc.Admit(ctx, inboundBody("wamid.1"), "corr-2", true, false)
	require.NoError(t, err)
	assert.True(t, res.Enqueued, "the provider's retry must be admitted once the queue recovers")
	assert.Len(t, q.tasks, 1)
}
