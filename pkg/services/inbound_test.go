package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/abuse"
	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/dispatch"
	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/masking"
	"github.com/zapgate/zapgate/pkg/models"
	"github.com/zapgate/zapgate/pkg/pipeline"
	"github.com/zapgate/zapgate/pkg/session"
)

// inboundFixture is a full memory-backed processing stack against a scripted
// provider endpoint.
type inboundFixture struct {
	svc      *InboundService
	sessions *session.Manager
	sends    *int32
}

func newInboundFixture(t *testing.T, provider http.HandlerFunc) *inboundFixture {
	t.Helper()
	return newInboundFixtureFlood(t, provider, 100)
}

func newInboundFixtureFlood(t *testing.T, provider http.HandlerFunc, floodThreshold int) *inboundFixture {
	t.Helper()
	var sends int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&sends, 1)
		if provider != nil {
			provider(w, r)
			return
		}
		io.WriteString(w, `{"messages":[{"id":"wamid.out.1"}]}`)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Settings{
		Environment: config.EnvironmentDevelopment,
		WhatsApp: config.WhatsAppConfig{
			AccessToken:   "token",
			PhoneNumberID: "1234567890",
			APIVersion:    "v21.0",
			BaseURL:       srv.URL,
		},
		Dedupe:        config.DedupeConfig{TTL: time.Hour},
		UserKeyPepper: "pepper",
	}

	sessions := session.NewManager(session.NewMemoryStore(), time.Hour, 3, 200, logger)
	keyspace := dedupe.NewKeyspace("zapgate", "test", "scope")
	dispatcher := dispatch.NewDispatcher(&http.Client{Timeout: 5 * time.Second},
		cfg.WhatsApp, config.BreakerConfig{}, dedupe.NewMemoryStore(), keyspace, time.Hour, logger)
	pipe := pipeline.New(nil, config.LLMConfig{MinResponses: 3}, logger)

	svc := NewInboundService(cfg, masking.NewService(), sessions,
		abuse.NewMemoryFloodDetector(floodThreshold, time.Minute), pipe, dispatcher,
		dedupe.NewMemoryStore(), keyspace, nil, nil, logger)
	return &inboundFixture{svc: svc, sessions: sessions, sends: &sends}
}

func textWebhook(messageID, from, text string) []byte {
	return []byte(`{
		"object": "whatsapp_business_account",
		"entry": [{"id": "e1", "changes": [{"field": "messages", "value": {
			"messaging_product": "whatsapp",
			"messages": [{"id": "` + messageID + `", "from": "` + from + `", "timestamp": "1757500000",
				"type": "text", "text": {"body": "` + text + `"}}]
		}}]}]
	}`)
}

func TestProcessInbound_TextMessageSendsReply(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	result, err := f.svc.ProcessInbound(ctx, textWebhook("wamid.1", "5511988887777", "preciso de ajuda"),
		"", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Equal(t, "wamid.1", result.InboundEventID)
	assert.Equal(t, []string{"wamid.1"}, result.OutboundTasks,
		"the reply is keyed on the inbound message id")
	assert.Equal(t, int32(1), atomic.LoadInt32(f.sends))

	sess, err := f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, fsm.StateAwaitingUser, sess.CurrentState)
	assert.Equal(t, models.OutcomeAwaitingUser, sess.Outcome)
	require.Len(t, sess.MessageHistory, 1)
}

func TestProcessInbound_ReplayIsDeduped(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	body := textWebhook("wamid.1", "5511988887777", "oi")
	_, err := f.svc.ProcessInbound(ctx, body, "", "corr-1", false, false)
	require.NoError(t, err)

	result, err := f.svc.ProcessInbound(ctx, body, "", "corr-2", false, false)
	require.NoError(t, err)
	assert.True(t, result.Deduped)
	assert.False(t, result.Processed)
	assert.Equal(t, int32(1), atomic.LoadInt32(f.sends), "replay must not send again")
}

func TestProcessInbound_AlreadyAdmittedSkipsDedupeMark(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	body := textWebhook("wamid.1", "5511988887777", "oi")
	result, err := f.svc.ProcessInbound(ctx, body, "wamid.1", "corr-1", false, true)
	require.NoError(t, err)
	assert.True(t, result.Processed)
}

func TestProcessInbound_StatusOnlyIsSkipped(t *testing.T) {
	f := newInboundFixture(t, nil)

	body := []byte(`{"object":"whatsapp_business_account","entry":[{"id":"e1","changes":[{"field":"messages","value":{"messaging_product":"whatsapp"}}]}]}`)
	result, err := f.svc.ProcessInbound(context.Background(), body, "", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, atomic.LoadInt32(f.sends))
}

func TestProcessInbound_UnknownTypeIsUnsupported(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	body := []byte(`{
		"object": "whatsapp_business_account",
		"entry": [{"id": "e1", "changes": [{"field": "messages", "value": {
			"messaging_product": "whatsapp",
			"messages": [{"id": "wamid.1", "from": "5511988887777", "timestamp": "1757500000", "type": "ephemeral"}]
		}}]}]
	}`)
	result, err := f.svc.ProcessInbound(ctx, body, "", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Empty(t, result.OutboundTasks)
	assert.Zero(t, atomic.LoadInt32(f.sends))

	sess, err := f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUnsupported, sess.Outcome)
	assert.True(t, sess.CurrentState.IsTerminal())
}

func TestProcessInbound_SpamShortCircuits(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	body := textWebhook("wamid.1", "5511988887777", strings.Repeat("k", 40))
	result, err := f.svc.ProcessInbound(ctx, body, "", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Zero(t, atomic.LoadInt32(f.sends), "spam must not reach the provider")

	sess, err := f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDuplicateOrSpam, sess.Outcome)
	assert.Equal(t, fsm.StateSpam, sess.CurrentState)
}

func TestProcessInbound_FloodShortCircuits(t *testing.T) {
	f := newInboundFixtureFlood(t, nil, 2)
	ctx := context.Background()

	for i, id := range []string{"wamid.1", "wamid.2"} {
		result, err := f.svc.ProcessInbound(ctx, textWebhook(id, "5511988887777", "mensagem normal"),
			"", "corr-1", false, false)
		require.NoError(t, err)
		require.True(t, result.Processed, "message %d is under the threshold", i+1)
	}
	require.Equal(t, int32(2), atomic.LoadInt32(f.sends))

	result, err := f.svc.ProcessInbound(ctx, textWebhook("wamid.3", "5511988887777", "mensagem normal"),
		"", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Equal(t, int32(2), atomic.LoadInt32(f.sends), "flooded message must not reach the provider")

	sess, err := f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDuplicateOrSpam, sess.Outcome)
}

func TestProcessInbound_IntentQueueFullSchedulesFollowup(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	sess, err := f.sessions.GetOrCreate(ctx, "5511988887777")
	require.NoError(t, err)
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.True(t, f.sessions.PushIntent(sess, "pendente", 0.9, now))
	}
	_, err = f.sessions.Persist(ctx, sess, func(doc *session.Session) {
		doc.Outcome = models.OutcomeAwaitingUser
	})
	require.NoError(t, err)

	body := textWebhook("wamid.9", "5511988887777", "e mais uma solicitação")
	result, err := f.svc.ProcessInbound(ctx, body, "", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Zero(t, atomic.LoadInt32(f.sends))

	sess, err = f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeScheduledFollowup, sess.Outcome)
}

func TestProcessInbound_FullQueueWithAnsweredDemandsStillProcessed(t *testing.T) {
	f := newInboundFixture(t, nil)
	ctx := context.Background()

	sess, err := f.sessions.GetOrCreate(ctx, "5511988887777")
	require.NoError(t, err)
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.True(t, f.sessions.PushIntent(sess, "pendente", 0.9, now))
	}
	_, err = f.sessions.Persist(ctx, sess, func(doc *session.Session) {
		doc.Outcome = models.OutcomeSelfServeInfo
	})
	require.NoError(t, err)

	body := textWebhook("wamid.10", "5511988887777", "certo, e sobre o boleto?")
	result, err := f.svc.ProcessInbound(ctx, body, "", "corr-1", false, false)
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Equal(t, int32(1), atomic.LoadInt32(f.sends),
		"a session whose demands were answered is not deferred on capacity alone")

	sess, err = f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAwaitingUser, sess.Outcome)
}

func TestProcessInbound_ProviderFailureMarksSessionFailed(t *testing.T) {
	f := newInboundFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	ctx := context.Background()

	_, err := f.svc.ProcessInbound(ctx, textWebhook("wamid.1", "5511988887777", "oi, tudo bem?"),
		"", "corr-1", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderRetryable)

	sess, err := f.sessions.Load(ctx, "5511988887777")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailedInternal, sess.Outcome)
	assert.Equal(t, fsm.StateFailed, sess.CurrentState)
}

func TestProcessInbound_MalformedBody(t *testing.T) {
	f := newInboundFixture(t, nil)

	_, err := f.svc.ProcessInbound(context.Background(), []byte(`{oops`), "", "corr-1", false, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
