package dedupe

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_MarkIfNew(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	isNew, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.False(t, isNew)
}

func TestRedisStore_MarkIfNew_TTLExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	isNew, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew, "key must be reusable after TTL")
}

func TestRedisStore_Unmark(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	_, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Unmark(ctx, "k1"))

	isNew, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew, "an unmarked key is admitted again")

	assert.NoError(t, store.Unmark(ctx, "absent"))
}

func TestRedisStore_MarkIfNew_BackendDown(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.MarkIfNew(context.Background(), "k1", time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestRedisStore_OutboundLifecycle(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	res, err := store.CheckAndMark(ctx, "out1", "msg-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, res.IsDuplicate)

	require.NoError(t, store.MarkSent(ctx, "out1", "wamid.42"))

	res, err = store.CheckAndMark(ctx, "out1", "ignored", time.Minute)
	require.NoError(t, err)
	assert.True(t, res.IsDuplicate)
	assert.Equal(t, StatusSent, res.Status)
	assert.Equal(t, "wamid.42", res.OriginalMessageID)
}

func TestRedisStore_MarkFailed_RecordsError(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	_, err := store.CheckAndMark(ctx, "out1", "msg-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.MarkFailed(ctx, "out1", "provider 400"))

	res, err := store.CheckAndMark(ctx, "out1", "ignored", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "provider 400", res.Error)
}

func TestRedisStore_MarkFailed_NeverDowngradesSent(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	_, err := store.CheckAndMark(ctx, "out1", "msg-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.MarkSent(ctx, "out1", "wamid.42"))
	require.NoError(t, store.MarkFailed(ctx, "out1", "late failure"))

	res, err := store.CheckAndMark(ctx, "out1", "ignored", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, res.Status)
	assert.Equal(t, "wamid.42", res.OriginalMessageID)
}
