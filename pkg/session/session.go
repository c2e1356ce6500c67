// Package session maps chat ids to per-conversation state documents. The
// manager owns lifecycle (create, expiry, history bounds, persist); stores
// only move documents in and out of a backend.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/models"
)

// ErrVersionConflict is returned by Persist when another writer advanced the
// session version first. The caller reloads and retries.
var ErrVersionConflict = errors.New("session version conflict")

// ErrNotFound is returned by Load when no live session exists for a chat id.
var ErrNotFound = errors.New("session not found")

// Session is the per-conversation state document.
type Session struct {
	ID             string
	ChatID         string
	CurrentState   fsm.State
	Outcome        models.Outcome
	IntentQueue    []models.IntentEntry
	MessageHistory []models.HistoryEntry
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ExpiresAt      time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// HasMessage reports whether messageID already appears in the history.
func (s *Session) HasMessage(messageID string) bool {
	for _, h := range s.MessageHistory {
		if h.MessageID == messageID {
			return true
		}
	}
	return false
}

// Store moves session documents in and out of a backend.
type Store interface {
	// Load returns the stored session for chatID, ErrNotFound when absent.
	// Expiry is the manager's concern, not the store's.
	Load(ctx context.Context, chatID string) (*Session, error)

	// Create inserts a fresh session document.
	Create(ctx context.Context, s *Session) error

	// Save persists s only when the stored version still equals s.Version,
	// then increments it. Returns ErrVersionConflict otherwise.
	Save(ctx context.Context, s *Session) error

	// Delete removes the session for chatID. Missing rows are not an error.
	Delete(ctx context.Context, chatID string) error
}
