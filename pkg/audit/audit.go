// Package audit is the append-only, hash-linked decision log. Events chain
// per user key: each hash covers a canonical serialization of the event plus
// the previous hash, so mutating any stored event invalidates every later
// hash in that user's chain.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrChainConflict is returned by AppendEvent when the observed chain head
// differs from the caller's expectation; a concurrent writer appended first.
var ErrChainConflict = errors.New("audit chain head moved")

// Actor identifies who caused an audited action.
type Actor string

// Audit actors.
const (
	ActorSystem Actor = "SYSTEM"
	ActorUser   Actor = "USER"
	ActorAdmin  Actor = "ADMIN"
)

// IsValid checks if the actor is one of the known values.
func (a Actor) IsValid() bool {
	switch a {
	case ActorSystem, ActorUser, ActorAdmin:
		return true
	default:
		return false
	}
}

// Event is one audit record. Hash and PrevHash are set by the writer.
type Event struct {
	EventID       string
	UserKey       string
	TenantID      string
	Timestamp     time.Time
	Actor         Actor
	Action        string
	Reason        string
	PrevHash      string
	Hash          string
	CorrelationID string
}

// Canonical returns the deterministic serialization hashed into the chain:
// fixed key order, RFC3339Nano UTC timestamps, one field per line. Optional
// fields are present with empty values so the encoding is total.
func Canonical(e Event) string {
	var b strings.Builder
	b.WriteString("event_id=" + e.EventID + "\n")
	b.WriteString("user_key=" + e.UserKey + "\n")
	b.WriteString("tenant_id=" + e.TenantID + "\n")
	b.WriteString("timestamp=" + e.Timestamp.UTC().Format(time.RFC3339Nano) + "\n")
	b.WriteString("actor=" + string(e.Actor) + "\n")
	b.WriteString("action=" + e.Action + "\n")
	b.WriteString("reason=" + e.Reason + "\n")
	b.WriteString("correlation_id=" + e.CorrelationID + "\n")
	return b.String()
}

// ComputeHash returns the hex SHA-256 over the canonical fields and the
// previous hash.
func ComputeHash(e Event, prevHash string) string {
	sum := sha256.Sum256([]byte(Canonical(e) + prevHash))
	return hex.EncodeToString(sum[:])
}

// VerifyChain checks a user's events, ordered oldest first, against the
// linking and hashing invariants. The returned error names the first broken
// event.
func VerifyChain(events []Event) error {
	prev := ""
	for i, e := range events {
		if e.PrevHash != prev {
			return fmt.Errorf("event %d (%s): prev_hash mismatch", i, e.EventID)
		}
		if got := ComputeHash(e, e.PrevHash); got != e.Hash {
			return fmt.Errorf("event %d (%s): hash mismatch", i, e.EventID)
		}
		prev = e.Hash
	}
	return nil
}
