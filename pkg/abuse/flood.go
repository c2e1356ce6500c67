// Package abuse holds the inbound protection checks: per-user flood
// detection over a sliding window and a content spam heuristic.
package abuse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// FloodDetector counts messages per user and reports when the rate crosses
// the configured threshold inside the window.
//
// Flood detection is fail-safe, the opposite of dedupe: on a backend error
// implementations log and report not-flooded so a degraded counter store
// never blocks legitimate traffic.
type FloodDetector interface {
	// RecordAndCheck registers one message for userKey and returns true when
	// the user is over the threshold for the current window.
	RecordAndCheck(ctx context.Context, userKey string) (bool, error)
}

// RedisFloodDetector implements FloodDetector on a fixed-window Redis
// counter keyed per user.
type RedisFloodDetector struct {
	client    *redis.Client
	keyspace  string
	threshold int
	window    time.Duration
	logger    *slog.Logger
}

// NewRedisFloodDetector builds a detector on the given client. Keys are
// namespaced as `<keyspace>:flood:<userKey>`.
func NewRedisFloodDetector(client *redis.Client, keyspace string, threshold int, window time.Duration, logger *slog.Logger) *RedisFloodDetector {
	return &RedisFloodDetector{
		client:    client,
		keyspace:  keyspace,
		threshold: threshold,
		window:    window,
		logger:    logger,
	}
}

func (d *RedisFloodDetector) RecordAndCheck(ctx context.Context, userKey string) (bool, error) {
	key := fmt.Sprintf("%s:flood:%s", d.keyspace, userKey)

	count, err := d.client.Incr(ctx, key).Result()
	if err != nil {
		d.logger.Warn("flood check degraded, allowing message",
			slog.String("user_key", userKey),
			slog.String("error", err.Error()))
		return false, nil
	}
	// The window opens at the first arrival. Later arrivals only count; they
	// must not push the expiry out, or steady traffic would never reset it.
	if count == 1 {
		if err := d.client.Expire(ctx, key, d.window).Err(); err != nil {
			d.logger.Warn("setting flood window expiry failed",
				slog.String("user_key", userKey),
				slog.String("error", err.Error()))
		}
	}
	return count > int64(d.threshold), nil
}

// MemoryFloodDetector implements FloodDetector with per-user timestamp
// lists. Development only.
type MemoryFloodDetector struct {
	mu        sync.Mutex
	arrivals  map[string][]time.Time
	threshold int
	window    time.Duration
}

// NewMemoryFloodDetector builds an in-process detector.
func NewMemoryFloodDetector(threshold int, window time.Duration) *MemoryFloodDetector {
	return &MemoryFloodDetector{
		arrivals:  make(map[string][]time.Time),
		threshold: threshold,
		window:    window,
	}
}

func (d *MemoryFloodDetector) RecordAndCheck(_ context.Context, userKey string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-d.window)

	kept := d.arrivals[userKey][:0]
	for _, t := range d.arrivals[userKey] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	d.arrivals[userKey] = kept

	return len(kept) > d.threshold, nil
}
