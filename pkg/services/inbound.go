package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapgate/zapgate/pkg/abuse"
	"github.com/zapgate/zapgate/pkg/audit"
	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/dispatch"
	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/masking"
	"github.com/zapgate/zapgate/pkg/models"
	"github.com/zapgate/zapgate/pkg/pipeline"
	"github.com/zapgate/zapgate/pkg/session"
	"github.com/zapgate/zapgate/pkg/wire"
)

// InboundResult is the processing-side outcome of one inbound event.
type InboundResult struct {
	InboundEventID string   `json:"inbound_event_id"`
	Processed      bool     `json:"processed"`
	Deduped        bool     `json:"deduped"`
	Skipped        bool     `json:"skipped"`
	OutboundTasks  []string `json:"outbound_tasks"`
}

// InboundService is the worker-side processor: session, abuse guard, FSM,
// decision pipeline, outbound send, audit.
type InboundService struct {
	cfg        *config.Settings
	masker     *masking.Service
	sessions   *session.Manager
	flood      abuse.FloodDetector
	pipeline   *pipeline.Pipeline
	dispatcher *dispatch.Dispatcher
	inbound    dedupe.Store
	keyspace   dedupe.Keyspace
	chain      *audit.Chain
	proclog    *ProcessingLog
	logger     *slog.Logger
}

// NewInboundService builds the processor. chain and proclog may be nil in
// memory-only development runs.
func NewInboundService(
	cfg *config.Settings,
	masker *masking.Service,
	sessions *session.Manager,
	flood abuse.FloodDetector,
	pipe *pipeline.Pipeline,
	dispatcher *dispatch.Dispatcher,
	inbound dedupe.Store,
	keyspace dedupe.Keyspace,
	chain *audit.Chain,
	proclog *ProcessingLog,
	logger *slog.Logger,
) *InboundService {
	return &InboundService{
		cfg:        cfg,
		masker:     masker,
		sessions:   sessions,
		flood:      flood,
		pipeline:   pipe,
		dispatcher: dispatcher,
		inbound:    inbound,
		keyspace:   keyspace,
		chain:      chain,
		proclog:    proclog,
		logger:     logger,
	}
}

// ProcessInbound runs the full pipeline for one webhook payload.
// alreadyAdmitted distinguishes queue deliveries (the admission handler
// marked the event id) from direct internal calls (this method marks it).
func (s *InboundService) ProcessInbound(ctx context.Context, body []byte, inboundEventID, correlationID string, signatureSkipped, alreadyAdmitted bool) (InboundResult, error) {
	payload, err := models.ParseWebhookPayload(body)
	if err != nil {
		return InboundResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if inboundEventID == "" {
		inboundEventID = InboundEventID(payload, body)
	}
	result := InboundResult{InboundEventID: inboundEventID, OutboundTasks: []string{}}

	if !alreadyAdmitted {
		isNew, err := s.inbound.MarkIfNew(ctx, s.keyspace.Key("in:"+inboundEventID), s.cfg.Dedupe.TTL)
		if err != nil {
			return result, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		if !isNew {
			result.Deduped = true
			s.record(ctx, result, "", "", ProcStatusDeduped, "", signatureSkipped)
			return result, nil
		}
	}

	messages := payload.Normalize()
	if len(messages) == 0 {
		// Status-only webhooks (delivery receipts) carry no messages.
		result.Skipped = true
		s.record(ctx, result, "", "", ProcStatusSkipped, "", signatureSkipped)
		return result, nil
	}

	logger := s.logger.With(
		slog.String("inbound_event_id", inboundEventID),
		slog.String("correlation_id", correlationID))

	var firstErr error
	for i := range messages {
		if err := s.processMessage(ctx, &messages[i], &result, correlationID, signatureSkipped, logger); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return result, firstErr
	}
	result.Processed = true
	return result, nil
}

func (s *InboundService) processMessage(ctx context.Context, msg *models.Message, result *InboundResult, correlationID string, signatureSkipped bool, logger *slog.Logger) error {
	userKey := masking.UserKey(s.cfg.UserKeyPepper, s.cfg.TenantID, msg.FromNumber)

	sess, err := s.sessions.GetOrCreate(ctx, msg.ChatID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	// Unsupported message types terminate early with their own outcome.
	if msg.Type == models.MessageTypeUnknown {
		return s.finishTerminal(ctx, sess, result, userKey, correlationID, signatureSkipped,
			models.OutcomeUnsupported, "unsupported message type", logger)
	}

	maskedText := s.masker.Mask(msg.TextContent())
	receivedAt := time.Unix(msg.Timestamp, 0)
	if msg.Timestamp == 0 {
		receivedAt = time.Now()
	}
	firstOfDay := s.sessions.AppendUserMessage(sess, msg.MessageID, correlationID, maskedText, receivedAt)

	// Abuse guard, evaluated before any LLM call.
	if outcome, reason, hit := s.abuseCheck(ctx, sess, msg.TextContent()); hit {
		return s.finishTerminal(ctx, sess, result, userKey, correlationID, signatureSkipped, outcome, reason, logger)
	}

	// The FSM drives the walk; the pipeline fills in the decisions.
	if r := fsm.Dispatch(sess.CurrentState, fsm.EventUserSentText); r.Valid {
		sess.CurrentState = r.NextState
	}

	decision := s.pipeline.Decide(ctx, pipeline.Input{
		UserText:     maskedText,
		History:      historyTexts(sess),
		CurrentState: sess.CurrentState,
		OpenItems:    openItems(sess),
		FirstOfDay:   firstOfDay,
	})

	if removed := s.sessions.ResolveIntents(sess, decision.Detection.FulfilledItems); removed > 0 {
		logger.Info("fulfilled intents drained", slog.Int("count", removed))
	}
	if decision.Arbitration.ApplyState {
		if !s.sessions.PushIntent(sess, intentLabel(decision), decision.Detection.Confidence, receivedAt) {
			return s.finishTerminal(ctx, sess, result, userKey, correlationID, signatureSkipped,
				models.OutcomeScheduledFollowup, "intent queue at capacity", logger)
		}
	}
	if r := fsm.Dispatch(sess.CurrentState, fsm.EventDetected); r.Valid {
		sess.CurrentState = r.NextState
	}

	if decision.Plan.Safety.RequireHandoff {
		return s.handoff(ctx, sess, result, userKey, correlationID, signatureSkipped, msg, decision, logger)
	}

	if r := fsm.Dispatch(sess.CurrentState, fsm.EventResponseGenerated); r.Valid {
		sess.CurrentState = r.NextState
	}
	if r := fsm.Dispatch(sess.CurrentState, fsm.EventMessageTypeSelected); r.Valid {
		sess.CurrentState = r.NextState
	}

	sendErr := s.send(ctx, msg, decision, result, logger)
	outcome := models.OutcomeAwaitingUser
	if sendErr != nil {
		outcome = models.OutcomeFailedInternal
		if r := fsm.Dispatch(sess.CurrentState, fsm.EventInternalError); r.Valid {
			sess.CurrentState = r.NextState
		}
	}

	if _, err := s.sessions.Persist(ctx, sess, func(doc *session.Session) {
		doc.CurrentState = sess.CurrentState
		doc.Outcome = outcome
		doc.IntentQueue = sess.IntentQueue
		doc.MessageHistory = sess.MessageHistory
	}); err != nil {
		return fmt.Errorf("%w: persisting session: %v", ErrBackendUnavailable, err)
	}

	s.auditAppend(ctx, userKey, "inbound_processed", string(outcome), correlationID, logger)
	s.record(ctx, *result, sess.ID, string(outcome), procStatus(sendErr), errString(sendErr), signatureSkipped)
	return sendErr
}

// abuseCheck runs the three guard checks in order and reports the terminal
// outcome when one fires.
func (s *InboundService) abuseCheck(ctx context.Context, sess *session.Session, text string) (models.Outcome, string, bool) {
	flooded, err := s.flood.RecordAndCheck(ctx, sess.ID)
	if err != nil {
		// Fail-safe by contract; detectors already log the degradation.
		flooded = false
	}
	if flooded {
		return models.OutcomeDuplicateOrSpam, "flood threshold exceeded", true
	}
	if abuse.IsSpamText(text) {
		return models.OutcomeDuplicateOrSpam, "spam content heuristic", true
	}
	// Capacity alone does not defer a message: a session whose demands were
	// already answered or routed is processed normally so fulfilled intents
	// can be drained by the detector.
	if s.sessions.IntentQueueFull(sess) && pendingDemand(sess.Outcome) {
		return models.OutcomeScheduledFollowup, "intent queue at capacity", true
	}
	return "", "", false
}

// pendingDemand reports whether the session's last outcome left user demands
// open.
func pendingDemand(o models.Outcome) bool {
	return o == models.OutcomeAwaitingUser || o == models.OutcomeScheduledFollowup
}

// finishTerminal drives the session into its terminal state, persists the
// outcome, and records the event.
func (s *InboundService) finishTerminal(ctx context.Context, sess *session.Session, result *InboundResult, userKey, correlationID string, signatureSkipped bool, outcome models.Outcome, reason string, logger *slog.Logger) error {
	event := fsm.EventAbuseDetected
	if outcome == models.OutcomeFailedInternal {
		event = fsm.EventInternalError
	}
	if r := fsm.Dispatch(sess.CurrentState, event); r.Valid {
		sess.CurrentState = r.NextState
	}

	if _, err := s.sessions.Persist(ctx, sess, func(doc *session.Session) {
		doc.CurrentState = sess.CurrentState
		doc.Outcome = outcome
	}); err != nil {
		return fmt.Errorf("%w: persisting session: %v", ErrBackendUnavailable, err)
	}

	logger.Info("inbound short-circuited",
		slog.String("outcome", string(outcome)),
		slog.String("reason", reason))
	s.auditAppend(ctx, userKey, "inbound_short_circuit", reason, correlationID, logger)
	s.record(ctx, *result, sess.ID, string(outcome), ProcStatusProcessed, "", signatureSkipped)
	return nil
}

// handoff escalates the session to a human and notifies the user.
func (s *InboundService) handoff(ctx context.Context, sess *session.Session, result *InboundResult, userKey, correlationID string, signatureSkipped bool, msg *models.Message, decision pipeline.Decision, logger *slog.Logger) error {
	if r := fsm.Dispatch(sess.CurrentState, fsm.EventHandoffRequested); r.Valid {
		sess.CurrentState = r.NextState
	}
	if r := fsm.Dispatch(sess.CurrentState, fsm.EventHandoffRequested); r.Valid {
		sess.CurrentState = r.NextState
	}

	notice := decision.Plan
	notice.Kind = models.PlanKindText
	if notice.Text == "" {
		notice.Text = "Vou te transferir para um de nossos atendentes."
	}
	decision.Plan = notice
	sendErr := s.send(ctx, msg, decision, result, logger)

	if _, err := s.sessions.Persist(ctx, sess, func(doc *session.Session) {
		doc.CurrentState = sess.CurrentState
		doc.Outcome = models.OutcomeHandoffHuman
		doc.MessageHistory = sess.MessageHistory
	}); err != nil {
		return fmt.Errorf("%w: persisting session: %v", ErrBackendUnavailable, err)
	}

	s.auditAppend(ctx, userKey, "handoff_requested", decision.Plan.Reason, correlationID, logger)
	s.record(ctx, *result, sess.ID, string(models.OutcomeHandoffHuman), procStatus(sendErr), errString(sendErr), signatureSkipped)
	return sendErr
}

// send builds and dispatches the reply, keyed on the inbound message id for
// end-to-end idempotency.
func (s *InboundService) send(ctx context.Context, msg *models.Message, decision pipeline.Decision, result *InboundResult, logger *slog.Logger) error {
	req, err := wire.FromPlan(decision.Plan, "+"+msg.FromNumber, msg.MessageID, reactionTarget(msg, decision))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderPermanent, err)
	}

	resp, err := s.dispatcher.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if !resp.Success {
		logger.Warn("outbound send failed",
			slog.String("error_code", string(resp.ErrorCode)),
			slog.String("error", masking.SanitizeForLog(resp.ErrorMsg)))
		if resp.Retryable {
			return fmt.Errorf("%w: %s", ErrProviderRetryable, resp.ErrorCode)
		}
		return fmt.Errorf("%w: %s", ErrProviderPermanent, resp.ErrorCode)
	}

	result.OutboundTasks = append(result.OutboundTasks, req.IdempotencyKey)
	logger.Info("outbound sent",
		slog.String("provider_message_id", resp.MessageID),
		slog.String("plan_kind", string(decision.Plan.Kind)))
	return nil
}

func (s *InboundService) auditAppend(ctx context.Context, userKey, action, reason, correlationID string, logger *slog.Logger) {
	if s.chain == nil {
		return
	}
	reason = s.masker.Mask(reason)
	if err := s.chain.Append(ctx, userKey, s.cfg.TenantID, action, reason, correlationID, audit.ActorSystem); err != nil {
		logger.Warn("audit append failed", slog.String("error", err.Error()))
	}
}

func (s *InboundService) record(ctx context.Context, result InboundResult, sessionID, outcome, status, errMsg string, signatureSkipped bool) {
	s.proclog.Record(ctx, ProcessingRecord{
		InboundEventID:   result.InboundEventID,
		SessionID:        sessionID,
		Status:           status,
		Outcome:          outcome,
		SignatureSkipped: signatureSkipped,
		ErrorMessage:     masking.SanitizeForLog(errMsg),
		OutboundTasks:    result.OutboundTasks,
	})
}

func historyTexts(sess *session.Session) []string {
	out := make([]string, 0, len(sess.MessageHistory))
	for _, h := range sess.MessageHistory {
		if h.Text != "" {
			out = append(out, h.Text)
		}
	}
	return out
}

func openItems(sess *session.Session) []string {
	out := make([]string, 0, len(sess.IntentQueue))
	for _, it := range sess.IntentQueue {
		out = append(out, it.Intent)
	}
	return out
}

func intentLabel(d pipeline.Decision) string {
	if len(d.Detection.DetectedRequests) > 0 {
		return d.Detection.DetectedRequests[0]
	}
	return string(d.Detection.SelectedState)
}

func reactionTarget(msg *models.Message, d pipeline.Decision) string {
	if d.Plan.Kind == models.PlanKindReaction {
		return msg.MessageID
	}
	return ""
}

func procStatus(err error) string {
	if err != nil {
		return ProcStatusFailed
	}
	return ProcStatusProcessed
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
