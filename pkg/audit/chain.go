package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zapgate/zapgate/ent"
	"github.com/zapgate/zapgate/ent/auditevent"
)

// Chain is the database-backed audit log writer. Appends are serialized per
// user key by a unique (user_key, prev_hash) constraint: two writers racing
// on the same chain head cannot both win.
type Chain struct {
	client *ent.Client
	logger *slog.Logger
}

// NewChain wraps an ent client.
func NewChain(client *ent.Client, logger *slog.Logger) *Chain {
	return &Chain{client: client, logger: logger}
}

// GetLatestEvent returns the chain head for userKey, nil when the chain is
// empty.
func (c *Chain) GetLatestEvent(ctx context.Context, userKey string) (*Event, error) {
	row, err := c.client.AuditEvent.Query().
		Where(auditevent.UserKeyEQ(userKey)).
		Order(ent.Desc(auditevent.FieldTimestamp)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying chain head: %w", err)
	}
	e := fromRow(row)
	return &e, nil
}

// AppendEvent writes e with the given expected chain head. It verifies the
// head inside a transaction, computes the hash, and inserts; a concurrent
// writer surfaces as ErrChainConflict either at the head check or at the
// uniqueness constraint.
func (c *Chain) AppendEvent(ctx context.Context, e Event, expectedPrevHash string) error {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("opening audit transaction: %w", err)
	}
	defer tx.Rollback()

	head, err := tx.AuditEvent.Query().
		Where(auditevent.UserKeyEQ(e.UserKey)).
		Order(ent.Desc(auditevent.FieldTimestamp)).
		First(ctx)
	observed := ""
	if err == nil {
		observed = head.Hash
	} else if !ent.IsNotFound(err) {
		return fmt.Errorf("querying chain head: %w", err)
	}
	if observed != expectedPrevHash {
		return ErrChainConflict
	}

	e.PrevHash = expectedPrevHash
	e.Hash = ComputeHash(e, e.PrevHash)

	err = tx.AuditEvent.Create().
		SetID(e.EventID).
		SetUserKey(e.UserKey).
		SetTenantID(e.TenantID).
		SetTimestamp(e.Timestamp.UTC()).
		SetActor(auditevent.Actor(e.Actor)).
		SetAction(e.Action).
		SetReason(e.Reason).
		SetPrevHash(e.PrevHash).
		SetHash(e.Hash).
		SetCorrelationID(e.CorrelationID).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return ErrChainConflict
	}
	if err != nil {
		return fmt.Errorf("inserting audit event: %w", err)
	}
	return tx.Commit()
}

// Append records an action for userKey, reading the chain head itself and
// retrying once on a concurrent append.
func (c *Chain) Append(ctx context.Context, userKey, tenantID, action, reason, correlationID string, actor Actor) error {
	for attempt := 0; attempt < 2; attempt++ {
		head, err := c.GetLatestEvent(ctx, userKey)
		if err != nil {
			return err
		}
		expected := ""
		if head != nil {
			expected = head.Hash
		}

		e := Event{
			EventID:       uuid.NewString(),
			UserKey:       userKey,
			TenantID:      tenantID,
			Timestamp:     time.Now().UTC(),
			Actor:         actor,
			Action:        action,
			Reason:        reason,
			CorrelationID: correlationID,
		}
		err = c.AppendEvent(ctx, e, expected)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrChainConflict) {
			return err
		}
		c.logger.Debug("audit append lost the chain head race, retrying",
			slog.String("user_key", userKey))
	}
	return ErrChainConflict
}

// ListEvents returns up to limit events for userKey, oldest first.
func (c *Chain) ListEvents(ctx context.Context, userKey string, limit int) ([]Event, error) {
	q := c.client.AuditEvent.Query().
		Where(auditevent.UserKeyEQ(userKey)).
		Order(ent.Asc(auditevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}
	events := make([]Event, len(rows))
	for i, row := range rows {
		events[i] = fromRow(row)
	}
	return events, nil
}

func fromRow(row *ent.AuditEvent) Event {
	return Event{
		EventID:       row.ID,
		UserKey:       row.UserKey,
		TenantID:      row.TenantID,
		Timestamp:     row.Timestamp,
		Actor:         Actor(row.Actor),
		Action:        row.Action,
		Reason:        row.Reason,
		PrevHash:      row.PrevHash,
		Hash:          row.Hash,
		CorrelationID: row.CorrelationID,
	}
}
