package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/zapgate/zapgate/ent"
)

// ProcessingRecord is the observability row written after each inbound task.
type ProcessingRecord struct {
	InboundEventID   string
	CorrelationID    string
	SessionID        string
	Status           string
	Outcome          string
	SignatureSkipped bool
	ErrorMessage     string
	OutboundTasks    []string
}

// Processing statuses.
const (
	ProcStatusProcessed = "processed"
	ProcStatusDeduped   = "deduped"
	ProcStatusSkipped   = "skipped"
	ProcStatusFailed    = "failed"
)

// ProcessingLog records inbound processing outcomes. A nil client turns the
// recorder into a no-op for memory-only development runs.
type ProcessingLog struct {
	client *ent.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewProcessingLog builds the recorder.
func NewProcessingLog(client *ent.Client, ttl time.Duration, logger *slog.Logger) *ProcessingLog {
	return &ProcessingLog{client: client, ttl: ttl, logger: logger}
}

// Record upserts the row for the record's inbound event id. Failures are
// logged, never propagated: observability must not fail processing.
func (p *ProcessingLog) Record(ctx context.Context, rec ProcessingRecord) {
	if p == nil || p.client == nil {
		return
	}
	now := time.Now().UTC()
	err := p.client.InboundProcessingLog.Create().
		SetID(rec.InboundEventID).
		SetCorrelationID(rec.CorrelationID).
		SetSessionID(rec.SessionID).
		SetStatus(rec.Status).
		SetOutcome(rec.Outcome).
		SetSignatureSkipped(rec.SignatureSkipped).
		SetErrorMessage(rec.ErrorMessage).
		SetOutboundTasks(rec.OutboundTasks).
		SetTTLExpireAt(now.Add(p.ttl)).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		// Redelivered task: refresh the existing row.
		err = p.client.InboundProcessingLog.UpdateOneID(rec.InboundEventID).
			SetStatus(rec.Status).
			SetOutcome(rec.Outcome).
			SetErrorMessage(rec.ErrorMessage).
			SetOutboundTasks(rec.OutboundTasks).
			SetTTLExpireAt(now.Add(p.ttl)).
			Exec(ctx)
	}
	if err != nil {
		p.logger.Warn("recording processing log failed",
			slog.String("inbound_event_id", rec.InboundEventID),
			slog.String("error", err.Error()))
	}
}
