package dedupe

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_MarkIfNew(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	isNew, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.False(t, isNew)
}

func TestMemoryStore_MarkIfNew_ExpiredEntryIsReclaimed(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.MarkIfNew(ctx, "k1", -time.Second)
	require.NoError(t, err)

	isNew, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew, "expired entries count as absent")
}

func TestMemoryStore_Unmark(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Unmark(ctx, "k1"))

	isNew, err := store.MarkIfNew(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew, "an unmarked key is admitted again")

	assert.NoError(t, store.Unmark(ctx, "absent"))
}

func TestMemoryStore_ConcurrentMarkIfNew_ExactlyOneWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	results := make(chan bool, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			isNew, err := store.MarkIfNew(ctx, "contended", time.Minute)
			require.NoError(t, err)
			results <- isNew
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for isNew := range results {
		if isNew {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent marker may win")
}

func TestMemoryStore_OutboundLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	res, err := store.CheckAndMark(ctx, "out1", "msg-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, res.IsDuplicate)
	assert.Equal(t, StatusPending, res.Status)

	res, err = store.CheckAndMark(ctx, "out1", "msg-other", time.Minute)
	require.NoError(t, err)
	assert.True(t, res.IsDuplicate)
	assert.Equal(t, StatusPending, res.Status)
	assert.Equal(t, "msg-1", res.OriginalMessageID)

	require.NoError(t, store.MarkSent(ctx, "out1", "wamid.123"))
	res, err = store.CheckAndMark(ctx, "out1", "ignored", time.Minute)
	require.NoError(t, err)
	assert.True(t, res.IsDuplicate)
	assert.Equal(t, StatusSent, res.Status)
	assert.Equal(t, "wamid.123", res.OriginalMessageID)
}

func TestMemoryStore_MarkFailed_NeverDowngradesSent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CheckAndMark(ctx, "out1", "msg-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.MarkSent(ctx, "out1", "wamid.123"))
	require.NoError(t, store.MarkFailed(ctx, "out1", "late failure"))

	res, err := store.CheckAndMark(ctx, "out1", "ignored", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, res.Status, "sent is terminal")
	assert.Empty(t, res.Error)
}

func TestKeyspace(t *testing.T) {
	ks := NewKeyspace("zapgate", "production", "tenant-a")
	assert.Equal(t, "zapgate:production:tenant-a:dedupe:in:abc", ks.Key("in:abc"))

	ks = NewKeyspace("zapgate", "development", "")
	assert.Equal(t, "zapgate:development:default:dedupe:x", ks.Key("x"))
}
