package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/models"
)

// Manager owns session lifecycle on top of a Store: lazy expiry on load,
// state normalization, bounded history and intent queue, and optimistic
// persistence.
type Manager struct {
	store             Store
	timeout           time.Duration
	maxIntents        int
	historyMaxEntries int
	logger            *slog.Logger
}

// NewManager builds a Manager with the configured bounds.
func NewManager(store Store, timeout time.Duration, maxIntents, historyMaxEntries int, logger *slog.Logger) *Manager {
	return &Manager{
		store:             store,
		timeout:           timeout,
		maxIntents:        maxIntents,
		historyMaxEntries: historyMaxEntries,
		logger:            logger,
	}
}

// MaxIntents returns the configured intent queue capacity.
func (m *Manager) MaxIntents() int { return m.maxIntents }

// Load returns the live session for chatID. Expired sessions are deleted
// and reported as ErrNotFound.
func (m *Manager) Load(ctx context.Context, chatID string) (*Session, error) {
	s, err := m.store.Load(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if s.Expired(time.Now().UTC()) {
		if err := m.store.Delete(ctx, chatID); err != nil {
			return nil, fmt.Errorf("deleting expired session: %w", err)
		}
		return nil, ErrNotFound
	}
	m.normalizeCurrentState(ctx, s)
	return s, nil
}

// GetOrCreate loads the live session for chatID or creates a fresh one.
func (m *Manager) GetOrCreate(ctx context.Context, chatID string) (*Session, error) {
	s, err := m.Load(ctx, chatID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	s = &Session{
		ID:           uuid.NewString(),
		ChatID:       chatID,
		CurrentState: fsm.StateInitial,
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(m.timeout),
	}
	if err := m.store.Create(ctx, s); err != nil {
		// A concurrent creator may have won; surface their document.
		if existing, loadErr := m.Load(ctx, chatID); loadErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return s, nil
}

// AppendUserMessage records a message reference in the session history. It is
// idempotent by message id. The returned flag reports whether this is the
// first message of the current UTC day for the session, which downstream
// greeting policy keys on.
func (m *Manager) AppendUserMessage(s *Session, messageID, correlationID, maskedText string, receivedAt time.Time) bool {
	receivedAt = receivedAt.UTC()

	firstOfDay := true
	y, mo, d := receivedAt.Date()
	for _, h := range s.MessageHistory {
		hy, hmo, hd := h.ReceivedAt.UTC().Date()
		if hy == y && hmo == mo && hd == d {
			firstOfDay = false
			break
		}
	}

	if s.HasMessage(messageID) {
		return firstOfDay
	}

	s.MessageHistory = append(s.MessageHistory, models.HistoryEntry{
		MessageID:     messageID,
		ReceivedAt:    receivedAt,
		CorrelationID: correlationID,
		Text:          maskedText,
	})
	if over := len(s.MessageHistory) - m.historyMaxEntries; over > 0 {
		s.MessageHistory = append(s.MessageHistory[:0], s.MessageHistory[over:]...)
	}
	return firstOfDay
}

// PushIntent appends an intent to the queue. Returns false when the queue is
// already at capacity; the caller classifies that as a scheduled followup.
func (m *Manager) PushIntent(s *Session, intent string, confidence float64, arrivedAt time.Time) bool {
	if len(s.IntentQueue) >= m.maxIntents {
		return false
	}
	s.IntentQueue = append(s.IntentQueue, models.IntentEntry{
		Intent:     intent,
		Confidence: confidence,
		ArrivedAt:  arrivedAt.UTC(),
	})
	return true
}

// IntentQueueFull reports whether the intent queue is at capacity.
func (m *Manager) IntentQueueFull(s *Session) bool {
	return len(s.IntentQueue) >= m.maxIntents
}

// ResolveIntents removes queued intents whose label appears in fulfilled,
// freeing capacity for new demands. Returns the number of entries removed.
func (m *Manager) ResolveIntents(s *Session, fulfilled []string) int {
	if len(fulfilled) == 0 || len(s.IntentQueue) == 0 {
		return 0
	}
	done := make(map[string]bool, len(fulfilled))
	for _, f := range fulfilled {
		done[f] = true
	}
	kept := s.IntentQueue[:0]
	for _, it := range s.IntentQueue {
		if !done[it.Intent] {
			kept = append(kept, it)
		}
	}
	removed := len(s.IntentQueue) - len(kept)
	s.IntentQueue = kept
	return removed
}

// Persist refreshes the expiry and saves the session under optimistic
// concurrency. On a version conflict it reloads once, reapplies mutate on
// the fresh document, and saves again.
func (m *Manager) Persist(ctx context.Context, s *Session, mutate func(*Session)) (*Session, error) {
	if mutate != nil {
		mutate(s)
	}
	m.touch(s)

	err := m.store.Save(ctx, s)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrVersionConflict) {
		return nil, err
	}

	fresh, loadErr := m.Load(ctx, s.ChatID)
	if loadErr != nil {
		return nil, fmt.Errorf("reloading after version conflict: %w", loadErr)
	}
	if mutate != nil {
		mutate(fresh)
	}
	m.touch(fresh)
	if err := m.store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (m *Manager) touch(s *Session) {
	now := time.Now().UTC()
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(m.timeout)
}

// normalizeCurrentState coerces an unrecognized stored state to INITIAL.
// This absorbs schema drift across deployments reading the same store.
func (m *Manager) normalizeCurrentState(ctx context.Context, s *Session) {
	if s.CurrentState.IsValid() {
		return
	}
	previous := s.CurrentState
	s.CurrentState = fsm.StateInitial
	m.logger.Warn("invalid_state_normalized",
		slog.String("chat_id", s.ChatID),
		slog.String("stored_state", string(previous)))
	if err := m.store.Save(ctx, s); err != nil {
		// Best effort; the in-memory document is already normalized.
		m.logger.Warn("persisting normalized state failed",
			slog.String("chat_id", s.ChatID),
			slog.String("error", err.Error()))
	}
}
