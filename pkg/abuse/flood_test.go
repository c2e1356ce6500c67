package abuse

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFloodDetector_Threshold(t *testing.T) {
	d := NewMemoryFloodDetector(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		flooded, err := d.RecordAndCheck(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, flooded, "messages up to the threshold pass")
	}
	flooded, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, flooded, "fourth message inside the window exceeds threshold 3")
}

func TestMemoryFloodDetector_UsersIsolated(t *testing.T) {
	d := NewMemoryFloodDetector(2, time.Minute)
	ctx := context.Background()

	_, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)

	flooded, err := d.RecordAndCheck(ctx, "user-2")
	require.NoError(t, err)
	assert.False(t, flooded, "counters are per user")
}

func TestMemoryFloodDetector_WindowSlides(t *testing.T) {
	d := NewMemoryFloodDetector(2, 10*time.Millisecond)
	ctx := context.Background()

	_, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	flooded, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, flooded, "arrivals outside the window are pruned")
}

func newRedisFlood(t *testing.T, threshold int, window time.Duration) (*RedisFloodDetector, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRedisFloodDetector(client, "zapgate:test:scope", threshold, window, logger), mr
}

func TestRedisFloodDetector_Threshold(t *testing.T) {
	d, _ := newRedisFlood(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		flooded, err := d.RecordAndCheck(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, flooded)
	}
	flooded, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, flooded)
}

func TestRedisFloodDetector_WindowExpiry(t *testing.T) {
	d, mr := newRedisFlood(t, 2, time.Minute)
	ctx := context.Background()

	_, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	flooded, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, flooded, "counter resets after the window expires")
}

func TestRedisFloodDetector_SteadyTrafficDoesNotExtendWindow(t *testing.T) {
	d, mr := newRedisFlood(t, 3, time.Minute)
	ctx := context.Background()

	// Four messages 40s apart: each window holds at most two, so a user
	// under the per-window threshold is never flagged however long they chat.
	for i := 0; i < 4; i++ {
		flooded, err := d.RecordAndCheck(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, flooded, "message %d is under the threshold for its window", i+1)
		mr.FastForward(40 * time.Second)
	}
}

func TestRedisFloodDetector_DegradedBackendAllows(t *testing.T) {
	d, mr := newRedisFlood(t, 1, time.Minute)
	mr.Close()

	flooded, err := d.RecordAndCheck(context.Background(), "user-1")
	assert.NoError(t, err, "flood detection is fail-safe")
	assert.False(t, flooded)
}

func TestRedisFloodDetector_KeyNamespace(t *testing.T) {
	d, mr := newRedisFlood(t, 10, time.Minute)
	ctx := context.Background()

	_, err := d.RecordAndCheck(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("zapgate:test:scope:flood:user-1"))
}
