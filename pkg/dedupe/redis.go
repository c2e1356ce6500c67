package dedupe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs dedupe on Redis with native TTLs. Inbound marks are a
// bare SETNX; outbound entries are JSON values so the send lifecycle
// survives process restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

type redisEntry struct {
	Status            Status `json:"status"`
	OriginalMessageID string `json:"original_message_id,omitempty"`
	Error             string `json:"error,omitempty"`
}

// MarkIfNew implements Store via SET NX EX.
func (s *RedisStore) MarkIfNew(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return ok, nil
}

// Unmark implements Store via DEL.
func (s *RedisStore) Unmark(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// CheckAndMark implements OutboundStore.
func (s *RedisStore) CheckAndMark(ctx context.Context, key, intendedID string, ttl time.Duration) (Result, error) {
	fresh, err := json.Marshal(redisEntry{Status: StatusPending, OriginalMessageID: intendedID})
	if err != nil {
		return Result{}, err
	}

	created, err := s.client.SetNX(ctx, key, fresh, ttl).Result()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if created {
		return Result{Status: StatusPending}, nil
	}

	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// Entry expired between SETNX and GET; treat as new next call.
		return Result{Status: StatusPending}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	var existing redisEntry
	if err := json.Unmarshal([]byte(raw), &existing); err != nil {
		return Result{}, fmt.Errorf("corrupt dedupe entry for key %s: %w", key, err)
	}
	return Result{
		IsDuplicate:       true,
		Status:            existing.Status,
		OriginalMessageID: existing.OriginalMessageID,
		Error:             existing.Error,
	}, nil
}

// MarkSent implements OutboundStore. Sent always wins, so a plain overwrite
// with KEEPTTL is enough.
func (s *RedisStore) MarkSent(ctx context.Context, key, providerMessageID string) error {
	value, err := json.Marshal(redisEntry{Status: StatusSent, OriginalMessageID: providerMessageID})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, value, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// markFailedScript flips an entry to failed unless it is already sent; the
// guard must be atomic against a concurrent MarkSent.
var markFailedScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if not v then return 0 end
local cur = cjson.decode(v)
if cur.status == 'sent' then return 0 end
cur.status = 'failed'
cur.error = ARGV[1]
redis.call('SET', KEYS[1], cjson.encode(cur), 'KEEPTTL')
return 1
`)

// MarkFailed implements OutboundStore.
func (s *RedisStore) MarkFailed(ctx context.Context, key, errMsg string) error {
	if err := markFailedScript.Run(ctx, s.client, []string{key}, errMsg).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}
