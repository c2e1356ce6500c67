package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/models"
	"github.com/zapgate/zapgate/pkg/queue"
)

// AdmissionResult is the webhook-side outcome returned to the provider.
type AdmissionResult struct {
	Enqueued           bool   `json:"enqueued"`
	TaskID             string `json:"task_id,omitempty"`
	InboundEventID     string `json:"inbound_event_id"`
	SignatureValidated bool   `json:"signature_validated"`
	SignatureSkipped   bool   `json:"signature_skipped"`
}

// InboundTaskPayload is the task body carried from admission to processing.
type InboundTaskPayload struct {
	Payload          json.RawMessage `json:"payload"`
	InboundEventID   string          `json:"inbound_event_id"`
	CorrelationID    string          `json:"correlation_id"`
	SignatureSkipped bool            `json:"signature_skipped"`
}

// AdmissionService is the webhook admission path: signature, parse, dedupe
// mark, enqueue. It performs no LLM or provider calls, keeping webhook
// latency bounded.
type AdmissionService struct {
	cfg      *config.Settings
	inbound  dedupe.Store
	keyspace dedupe.Keyspace
	tasks    queue.TaskQueue
	logger   *slog.Logger
}

// NewAdmissionService builds the service.
func NewAdmissionService(cfg *config.Settings, inbound dedupe.Store, keyspace dedupe.Keyspace, tasks queue.TaskQueue, logger *slog.Logger) *AdmissionService {
	return &AdmissionService{
		cfg:      cfg,
		inbound:  inbound,
		keyspace: keyspace,
		tasks:    tasks,
		logger:   logger,
	}
}

// VerifySignature checks the X-Hub-Signature-256 header over body. The
// comparison is constant time. When no secret is configured in development
// the check is skipped and flagged.
func (s *AdmissionService) VerifySignature(body []byte, header string) (validated, skipped bool, err error) {
	if s.cfg.Webhook.Secret == "" {
		if s.cfg.Environment.IsDevelopment() {
			return false, true, nil
		}
		return false, false, fmt.Errorf("%w: webhook secret not configured", ErrUnauthorized)
	}

	sig, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false, false, fmt.Errorf("%w: malformed signature header", ErrUnauthorized)
	}
	provided, err := hex.DecodeString(sig)
	if err != nil {
		return false, false, fmt.Errorf("%w: malformed signature hex", ErrUnauthorized)
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.Webhook.Secret))
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), provided) {
		return false, false, fmt.Errorf("%w: signature mismatch", ErrUnauthorized)
	}
	return true, false, nil
}

// VerifyHandshake handles the GET subscription handshake: returns the
// challenge to echo, or ErrUnauthorized.
func (s *AdmissionService) VerifyHandshake(mode, verifyToken, challenge string) (string, error) {
	if mode != "subscribe" || s.cfg.Webhook.VerifyToken == "" ||
		verifyToken != s.cfg.Webhook.VerifyToken {
		return "", fmt.Errorf("%w: verify token mismatch", ErrUnauthorized)
	}
	return challenge, nil
}

// InboundEventID derives the idempotency id for a payload: the first message
// id, else a digest of the body.
func InboundEventID(payload *models.WebhookPayload, body []byte) string {
	if id := payload.FirstMessageID(); id != "" {
		return id
	}
	sum := sha256.Sum256(body)
	return "payload:" + hex.EncodeToString(sum[:])
}

// Admit parses the already-verified body, deduplicates it, and enqueues the
// processing task. Duplicate payloads return Enqueued=false with no error.
func (s *AdmissionService) Admit(ctx context.Context, body []byte, correlationID string, signatureValidated, signatureSkipped bool) (AdmissionResult, error) {
	payload, err := models.ParseWebhookPayload(body)
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result := AdmissionResult{
		InboundEventID:     InboundEventID(payload, body),
		SignatureValidated: signatureValidated,
		SignatureSkipped:   signatureSkipped,
	}

	isNew, err := s.inbound.MarkIfNew(ctx, s.keyspace.Key("in:"+result.InboundEventID), s.cfg.Dedupe.TTL)
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if !isNew {
		s.logger.Info("duplicate webhook ignored",
			slog.String("inbound_event_id", result.InboundEventID),
			slog.String("correlation_id", correlationID))
		return result, nil
	}

	taskPayload, err := json.Marshal(InboundTaskPayload{
		Payload:          body,
		InboundEventID:   result.InboundEventID,
		CorrelationID:    correlationID,
		SignatureSkipped: signatureSkipped,
	})
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("encoding task payload: %w", err)
	}

	task := queue.NewTask(queue.KindProcessInbound, taskPayload, correlationID)
	if err := s.tasks.Enqueue(ctx, task); err != nil {
		// The event never reached the queue. Release the mark so the
		// provider's retry of the same webhook is admitted, not deduplicated.
		if unmarkErr := s.inbound.Unmark(ctx, s.keyspace.Key("in:"+result.InboundEventID)); unmarkErr != nil {
			s.logger.Warn("releasing dedupe mark after enqueue failure failed",
				slog.String("inbound_event_id", result.InboundEventID),
				slog.String("error", unmarkErr.Error()))
		}
		return AdmissionResult{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	result.Enqueued = true
	result.TaskID = task.ID
	s.logger.Info("webhook admitted",
		slog.String("inbound_event_id", result.InboundEventID),
		slog.String("task_id", task.ID),
		slog.String("correlation_id", correlationID),
		slog.Duration("admission_age", time.Since(task.EnqueuedAt)))
	return result, nil
}
