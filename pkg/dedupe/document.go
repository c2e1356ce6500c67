package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/zapgate/zapgate/ent"
	"github.com/zapgate/zapgate/ent/dedupeentry"
)

// DocumentStore backs dedupe on the relational database. Postgres has no
// native TTL, so every row carries an expiry instant: expired rows are treated
// as absent here and removed by the periodic collector.
type DocumentStore struct {
	client *ent.Client
}

// NewDocumentStore wraps an ent client.
func NewDocumentStore(client *ent.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// MarkIfNew implements Store. Uniqueness rides on the primary key; a
// constraint violation means a prior mark exists.
func (s *DocumentStore) MarkIfNew(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	now := time.Now().UTC()

	err := s.client.DedupeEntry.Create().
		SetID(key).
		SetStatus(dedupeentry.StatusPending).
		SetTTLExpireAt(now.Add(ttl)).
		Exec(ctx)
	if err == nil {
		return true, nil
	}
	if !ent.IsConstraintError(err) {
		return false, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	// A row exists. If it is past its expiry the collector has not swept it
	// yet; reclaim it atomically so exactly one caller wins.
	n, err := s.client.DedupeEntry.Update().
		Where(dedupeentry.IDEQ(key), dedupeentry.TTLExpireAtLT(now)).
		SetStatus(dedupeentry.StatusPending).
		ClearOriginalMessageID().
		ClearLastError().
		SetTTLExpireAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return n == 1, nil
}

// Unmark implements Store. An already-absent row is fine; the collector may
// have swept it first.
func (s *DocumentStore) Unmark(ctx context.Context, key string) error {
	_, err := s.client.DedupeEntry.Delete().
		Where(dedupeentry.IDEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// CheckAndMark implements OutboundStore.
func (s *DocumentStore) CheckAndMark(ctx context.Context, key, intendedID string, ttl time.Duration) (Result, error) {
	now := time.Now().UTC()

	err := s.client.DedupeEntry.Create().
		SetID(key).
		SetStatus(dedupeentry.StatusPending).
		SetOriginalMessageID(intendedID).
		SetTTLExpireAt(now.Add(ttl)).
		Exec(ctx)
	if err == nil {
		return Result{Status: StatusPending}, nil
	}
	if !ent.IsConstraintError(err) {
		return Result{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	existing, err := s.client.DedupeEntry.Get(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	if !existing.TTLExpireAt.After(now) {
		n, err := s.client.DedupeEntry.Update().
			Where(dedupeentry.IDEQ(key), dedupeentry.TTLExpireAtLT(now)).
			SetStatus(dedupeentry.StatusPending).
			SetOriginalMessageID(intendedID).
			ClearLastError().
			SetTTLExpireAt(now.Add(ttl)).
			Save(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		if n == 1 {
			return Result{Status: StatusPending}, nil
		}
		// Lost the reclaim race; fall through and report the live entry.
		if existing, err = s.client.DedupeEntry.Get(ctx, key); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
	}

	return Result{
		IsDuplicate:       true,
		Status:            Status(existing.Status),
		OriginalMessageID: existing.OriginalMessageID,
		Error:             existing.LastError,
	}, nil
}

// MarkSent implements OutboundStore.
func (s *DocumentStore) MarkSent(ctx context.Context, key, providerMessageID string) error {
	err := s.client.DedupeEntry.Update().
		Where(dedupeentry.IDEQ(key)).
		SetStatus(dedupeentry.StatusSent).
		SetOriginalMessageID(providerMessageID).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// MarkFailed implements OutboundStore. The predicate keeps sent terminal.
func (s *DocumentStore) MarkFailed(ctx context.Context, key, errMsg string) error {
	err := s.client.DedupeEntry.Update().
		Where(dedupeentry.IDEQ(key), dedupeentry.StatusNEQ(dedupeentry.StatusSent)).
		SetStatus(dedupeentry.StatusFailed).
		SetLastError(errMsg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}
