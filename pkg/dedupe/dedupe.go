// Package dedupe provides at-most-once marking of message ids. Two logical
// stores share the backends: the inbound store records presence only; the
// outbound store tracks the send lifecycle for end-to-end idempotency.
//
// All backends are fail-closed: a backend error propagates so the caller can
// surface a retryable failure instead of processing a possible duplicate.
package dedupe

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrBackendUnavailable wraps backend failures so callers can map them to a
// retryable 5xx.
var ErrBackendUnavailable = errors.New("dedupe backend unavailable")

// Status is the outbound send lifecycle state of a dedupe entry.
type Status string

// Outbound dedupe statuses. Sent is terminal.
const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Result describes a prior outbound entry found by CheckAndMark.
type Result struct {
	IsDuplicate       bool
	Status            Status
	OriginalMessageID string
	Error             string
}

// Store marks inbound event ids.
type Store interface {
	// MarkIfNew atomically records key with the given TTL. Returns true when
	// the key was new, false when a live entry already existed.
	MarkIfNew(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Unmark removes a mark so the same key can be admitted again. Callers
	// use it to roll back a mark whose hand-off to the queue failed; a
	// missing key is not an error.
	Unmark(ctx context.Context, key string) error
}

// OutboundStore tracks the outbound send lifecycle per idempotency key.
type OutboundStore interface {
	// CheckAndMark creates a pending entry when none exists; otherwise the
	// existing entry is returned unmodified with IsDuplicate set.
	CheckAndMark(ctx context.Context, key, intendedID string, ttl time.Duration) (Result, error)

	// MarkSent upgrades the entry to sent with the provider message id.
	// Sent is terminal; concurrent callers are harmless.
	MarkSent(ctx context.Context, key, providerMessageID string) error

	// MarkFailed records a failed send. It never downgrades a sent entry.
	MarkFailed(ctx context.Context, key, errMsg string) error
}

// Keyspace namespaces dedupe keys so shared substrates never collide across
// services, environments or tenants.
type Keyspace struct {
	prefix string
}

// NewKeyspace builds the `<service>:<environment>:<scope>:dedupe:` prefix.
// Scope is typically the tenant id or business phone number id.
func NewKeyspace(service, environment, scope string) Keyspace {
	if scope == "" {
		scope = "default"
	}
	return Keyspace{prefix: fmt.Sprintf("%s:%s:%s:dedupe:", service, environment, scope)}
}

// Key returns the fully namespaced form of key.
func (k Keyspace) Key(key string) string {
	return k.prefix + key
}
