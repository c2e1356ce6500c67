package database

import (
	"context"
	stdsql "database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zapgate/zapgate/ent"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
	"github.com/zapgate/zapgate/pkg/audit"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/services"
	"github.com/zapgate/zapgate/pkg/session"
)

// newTestClient connects to the CI database when CI_DATABASE_URL is set and
// spins up a throwaway PostgreSQL container otherwise. Tests use Ent
// auto-migration instead of the embedded SQL migrations.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("zapgate_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClient_Health(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestDedupeDocumentStore_InboundMark(t *testing.T) {
	client := newTestClient(t)
	store := dedupe.NewDocumentStore(client.Client)
	ctx := context.Background()

	isNew, err := store.MarkIfNew(ctx, "zapgate:test:default:dedupe:in:wamid.1", time.Hour)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = store.MarkIfNew(ctx, "zapgate:test:default:dedupe:in:wamid.1", time.Hour)
	require.NoError(t, err)
	assert.False(t, isNew, "second mark of the same key is a duplicate")
}

func TestDedupeDocumentStore_OutboundLifecycle(t *testing.T) {
	client := newTestClient(t)
	store := dedupe.NewDocumentStore(client.Client)
	ctx := context.Background()
	key := "zapgate:test:default:dedupe:out:wamid.1"

	res, err := store.CheckAndMark(ctx, key, "wamid.1", time.Hour)
	require.NoError(t, err)
	assert.False(t, res.IsDuplicate)

	require.NoError(t, store.MarkSent(ctx, key, "wamid.provider.1"))

	res, err = store.CheckAndMark(ctx, key, "wamid.1", time.Hour)
	require.NoError(t, err)
	assert.True(t, res.IsDuplicate)
	assert.Equal(t, dedupe.StatusSent, res.Status)
	assert.Equal(t, "wamid.provider.1", res.OriginalMessageID)

	// Sent is terminal; a late failure report must not downgrade it.
	require.NoError(t, store.MarkFailed(ctx, key, "late timeout"))
	res, err = store.CheckAndMark(ctx, key, "wamid.1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, dedupe.StatusSent, res.Status)
}

func TestSessionDocumentStore_VersionConflict(t *testing.T) {
	client := newTestClient(t)
	store := session.NewDocumentStore(client.Client)
	ctx := context.Background()

	now := time.Now().UTC()
	sess := &session.Session{
		ID:        "sess-1",
		ChatID:    "5511988887777",
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	loaded, err := store.Load(ctx, sess.ChatID)
	require.NoError(t, err)
	stale, err := store.Load(ctx, sess.ChatID)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, loaded))

	err = store.Save(ctx, stale)
	assert.ErrorIs(t, err, session.ErrVersionConflict)
}

func TestAuditChain_AppendAndVerify(t *testing.T) {
	client := newTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	chain := audit.NewChain(client.Client, logger)
	ctx := context.Background()

	for _, action := range []string{"inbound_processed", "handoff_requested", "inbound_processed"} {
		require.NoError(t, chain.Append(ctx, "user-key-1", "tenant-a", action, "ok", "corr-1", audit.ActorSystem))
	}

	events, err := chain.ListEvents(ctx, "user-key-1", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Empty(t, events[0].PrevHash, "genesis event has no predecessor")
	assert.Equal(t, events[0].Hash, events[1].PrevHash)
	assert.NoError(t, audit.VerifyChain(events))
}

func TestProcessingLog_UpsertsByEventID(t *testing.T) {
	client := newTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proclog := services.NewProcessingLog(client.Client, time.Hour, logger)
	ctx := context.Background()

	proclog.Record(ctx, services.ProcessingRecord{
		InboundEventID: "wamid.1",
		CorrelationID:  "corr-1",
		Status:         services.ProcStatusFailed,
		Outcome:        "FAILED_INTERNAL",
		ErrorMessage:   "provider timeout",
	})
	// Redelivered task refreshes the same row instead of inserting a second.
	proclog.Record(ctx, services.ProcessingRecord{
		InboundEventID: "wamid.1",
		CorrelationID:  "corr-1",
		Status:         services.ProcStatusProcessed,
		Outcome:        "AWAITING_USER",
		OutboundTasks:  []string{"wamid.1"},
	})

	rows, err := client.InboundProcessingLog.Query().
		Where(inboundprocessinglog.ID("wamid.1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, services.ProcStatusProcessed, rows[0].Status)
	assert.Equal(t, "AWAITING_USER", rows[0].Outcome)
}

func TestCollector_SweepsExpiredRows(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, client.DedupeEntry.Create().
		SetID("zapgate:test:default:dedupe:in:expired").
		SetTTLExpireAt(past).
		Exec(ctx))
	require.NoError(t, client.DedupeEntry.Create().
		SetID("zapgate:test:default:dedupe:in:live").
		SetTTLExpireAt(time.Now().UTC().Add(time.Hour)).
		Exec(ctx))

	collector := NewCollector(client.Client, time.Hour)
	collector.sweep(ctx)

	n, err := client.DedupeEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.DedupeEntry.Get(ctx, "zapgate:test:default:dedupe:in:live")
	assert.NoError(t, err)
}
