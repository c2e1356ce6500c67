package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/fsm"
)

func newManager(t *testing.T, store Store) *Manager {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(store, time.Hour, 3, 5, logger)
}

func TestGetOrCreate_FreshSession(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	ctx := context.Background()

	s, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, "chat-1", s.ChatID)
	assert.Equal(t, fsm.StateInitial, s.CurrentState)
	assert.NotEmpty(t, s.ID)
	assert.True(t, s.ExpiresAt.After(time.Now().UTC()))
}

func TestGetOrCreate_ReturnsExisting(t *testing.T) {
	store := NewMemoryStore()
	m := newManager(t, store)
	ctx := context.Background()

	first, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	_, err = m.Persist(ctx, first, func(s *Session) { s.CurrentState = fsm.StateAwaitingUser })
	require.NoError(t, err)

	second, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, fsm.StateAwaitingUser, second.CurrentState)
}

func TestLoad_ExpiredSessionIsDiscarded(t *testing.T) {
	store := NewMemoryStore()
	m := newManager(t, store)
	ctx := context.Background()

	s, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	s.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, s))

	_, err = m.Load(ctx, "chat-1")
	assert.ErrorIs(t, err, ErrNotFound)

	fresh, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, fresh.ID, "expired session must be replaced")
}

func TestLoad_NormalizesInvalidState(t *testing.T) {
	store := NewMemoryStore()
	m := newManager(t, store)
	ctx := context.Background()

	s, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	s.CurrentState = fsm.State("LEGACY_STATE")
	require.NoError(t, store.Save(ctx, s))

	loaded, err := m.Load(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, fsm.StateInitial, loaded.CurrentState)
}

func TestAppendUserMessage_IdempotentByMessageID(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	now := time.Now().UTC()

	m.AppendUserMessage(s, "msg-1", "corr-1", "oi", now)
	m.AppendUserMessage(s, "msg-1", "corr-2", "oi", now.Add(time.Second))

	assert.Len(t, s.MessageHistory, 1)
}

func TestAppendUserMessage_FirstOfDay(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, m.AppendUserMessage(s, "msg-1", "c", "oi", day1))
	assert.False(t, m.AppendUserMessage(s, "msg-2", "c", "oi de novo", day1.Add(2*time.Hour)))

	day2 := day1.Add(24 * time.Hour)
	assert.True(t, m.AppendUserMessage(s, "msg-3", "c", "bom dia", day2))
}

func TestAppendUserMessage_DuplicateStillReportsDay(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	m.AppendUserMessage(s, "msg-1", "c", "oi", day1)

	// replay of msg-1 the next day: not first (no message recorded that day
	// yet means it still is the first of that day)
	day2 := day1.Add(24 * time.Hour)
	assert.True(t, m.AppendUserMessage(s, "msg-1", "c", "oi", day2))
	assert.Len(t, s.MessageHistory, 1, "replayed id must not append")
}

func TestAppendUserMessage_HistoryBounded(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	now := time.Now().UTC()

	for i := 0; i < 8; i++ {
		m.AppendUserMessage(s, "msg-"+string(rune('a'+i)), "c", "texto", now.Add(time.Duration(i)*time.Second))
	}

	require.Len(t, s.MessageHistory, 5)
	assert.Equal(t, "msg-d", s.MessageHistory[0].MessageID, "oldest entries drop first")
	assert.Equal(t, "msg-h", s.MessageHistory[4].MessageID)
}

func TestPushIntent_Bounded(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	now := time.Now().UTC()

	assert.True(t, m.PushIntent(s, "pedido", 0.9, now))
	assert.True(t, m.PushIntent(s, "troca", 0.8, now))
	assert.True(t, m.PushIntent(s, "reembolso", 0.7, now))
	assert.False(t, m.PushIntent(s, "quarta", 0.6, now), "queue capacity is 3")
	assert.Len(t, s.IntentQueue, 3)
	assert.True(t, m.IntentQueueFull(s))
}

func TestResolveIntents_DrainsFulfilled(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	now := time.Now().UTC()

	require.True(t, m.PushIntent(s, "pedido", 0.9, now))
	require.True(t, m.PushIntent(s, "troca", 0.8, now))
	require.True(t, m.PushIntent(s, "reembolso", 0.7, now))
	require.True(t, m.IntentQueueFull(s))

	removed := m.ResolveIntents(s, []string{"pedido", "reembolso"})
	assert.Equal(t, 2, removed)
	require.Len(t, s.IntentQueue, 1)
	assert.Equal(t, "troca", s.IntentQueue[0].Intent)
	assert.False(t, m.IntentQueueFull(s), "draining frees capacity for new demands")
	assert.True(t, m.PushIntent(s, "segunda-via", 0.6, now))
}

func TestResolveIntents_NoMatchesIsNoop(t *testing.T) {
	m := newManager(t, NewMemoryStore())
	s := &Session{ChatID: "chat-1"}
	now := time.Now().UTC()

	require.True(t, m.PushIntent(s, "pedido", 0.9, now))
	assert.Zero(t, m.ResolveIntents(s, []string{"outro"}))
	assert.Zero(t, m.ResolveIntents(s, nil))
	assert.Len(t, s.IntentQueue, 1)
}

func TestPersist_RefreshesExpiry(t *testing.T) {
	store := NewMemoryStore()
	m := newManager(t, store)
	ctx := context.Background()

	s, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)
	stale := time.Now().UTC().Add(time.Minute)
	s.ExpiresAt = stale

	saved, err := m.Persist(ctx, s, nil)
	require.NoError(t, err)
	assert.True(t, saved.ExpiresAt.After(stale), "persist must slide the expiry window")
}

func TestPersist_RetriesOnceOnVersionConflict(t *testing.T) {
	store := NewMemoryStore()
	m := newManager(t, store)
	ctx := context.Background()

	s, err := m.GetOrCreate(ctx, "chat-1")
	require.NoError(t, err)

	// concurrent writer advances the version
	other, err := store.Load(ctx, "chat-1")
	require.NoError(t, err)
	other.CurrentState = fsm.StateTriage
	require.NoError(t, store.Save(ctx, other))

	saved, err := m.Persist(ctx, s, func(fresh *Session) {
		fresh.Outcome = "AWAITING_USER"
	})
	require.NoError(t, err)
	assert.Equal(t, fsm.StateTriage, saved.CurrentState, "retry must base on the fresh document")
	assert.Equal(t, "AWAITING_USER", string(saved.Outcome))
}

func TestMemoryStore_SaveVersionConflict(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := &Session{ID: "s1", ChatID: "chat-1", CurrentState: fsm.StateInitial,
		ExpiresAt: time.Now().UTC().Add(time.Hour)}
	require.NoError(t, store.Create(ctx, s))

	a, err := store.Load(ctx, "chat-1")
	require.NoError(t, err)
	b, err := store.Load(ctx, "chat-1")
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, a))
	assert.ErrorIs(t, store.Save(ctx, b), ErrVersionConflict)
}

func TestMemoryStore_LoadReturnsIsolatedCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := &Session{ID: "s1", ChatID: "chat-1", ExpiresAt: time.Now().UTC().Add(time.Hour)}
	require.NoError(t, store.Create(ctx, s))

	a, err := store.Load(ctx, "chat-1")
	require.NoError(t, err)
	a.CurrentState = fsm.StateFailed

	b, err := store.Load(ctx, "chat-1")
	require.NoError(t, err)
	assert.NotEqual(t, fsm.StateFailed, b.CurrentState, "mutating a loaded copy must not leak")
}
