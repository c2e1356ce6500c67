package session

import (
	"context"
	"sync"

	"github.com/zapgate/zapgate/pkg/models"
)

// MemoryStore is an in-process Store. Development only; boot-time validation
// rejects it in staging and production.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (s *MemoryStore) Load(_ context.Context, chatID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[chatID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSession(stored), nil
}

func (s *MemoryStore) Create(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ChatID]; ok {
		return ErrVersionConflict
	}
	s.sessions[sess.ChatID] = cloneSession(sess)
	return nil
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[sess.ChatID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != sess.Version {
		return ErrVersionConflict
	}
	sess.Version++
	s.sessions[sess.ChatID] = cloneSession(sess)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
	return nil
}

func cloneSession(src *Session) *Session {
	dst := *src
	dst.IntentQueue = append([]models.IntentEntry(nil), src.IntentQueue...)
	dst.MessageHistory = append([]models.HistoryEntry(nil), src.MessageHistory...)
	return &dst
}
