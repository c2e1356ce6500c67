package dedupe

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process dedupe backend. Development only; boot-time
// validation rejects it in staging and production.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	status            Status
	originalMessageID string
	lastError         string
	expiresAt         time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// MarkIfNew implements Store.
func (s *MemoryStore) MarkIfNew(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if e, ok := s.entries[key]; ok && e.expiresAt.After(now) {
		return false, nil
	}
	s.entries[key] = &memoryEntry{status: StatusPending, expiresAt: now.Add(ttl)}
	return true, nil
}

// Unmark implements Store.
func (s *MemoryStore) Unmark(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// CheckAndMark implements OutboundStore.
func (s *MemoryStore) CheckAndMark(_ context.Context, key, intendedID string, ttl time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if e, ok := s.entries[key]; ok && e.expiresAt.After(now) {
		return Result{
			IsDuplicate:       true,
			Status:            e.status,
			OriginalMessageID: e.originalMessageID,
			Error:             e.lastError,
		}, nil
	}
	s.entries[key] = &memoryEntry{
		status:            StatusPending,
		originalMessageID: intendedID,
		expiresAt:         now.Add(ttl),
	}
	return Result{Status: StatusPending}, nil
}

// MarkSent implements OutboundStore.
func (s *MemoryStore) MarkSent(_ context.Context, key, providerMessageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.status = StatusSent
		e.originalMessageID = providerMessageID
		e.lastError = ""
	}
	return nil
}

// MarkFailed implements OutboundStore. Sent entries are left untouched.
func (s *MemoryStore) MarkFailed(_ context.Context, key, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && e.status != StatusSent {
		e.status = StatusFailed
		e.lastError = errMsg
	}
	return nil
}
