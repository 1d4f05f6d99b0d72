package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"luxestay/pkg/logger"

	"github.com/go-redis/redis/v8"
)

const idempotencyKeyPrefix = "idempotency:"

// RedisIdempotencyStore shares replay state across API instances. Redis
// errors degrade to "not cached" so a Redis outage never fails a request.
type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, ttl: ttl, log: log}
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*CachedResponse, bool) {
	data, err := s.client.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		s.log.Warn("Idempotency lookup failed", "error", err)
		return nil, false
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		s.log.Warn("Idempotency entry is corrupt", "error", err)
		return nil, false
	}
	return &cached, true
}

func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, response *CachedResponse) {
	response.CreatedAt = time.Now()
	data, err := json.Marshal(response)
	if err != nil {
		s.log.Warn("Idempotency entry could not be encoded", "error", err)
		return
	}
	// SetNX keeps the first response when two requests race on one key.
	if err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, data, s.ttl).Err(); err != nil {
		s.log.Warn("Idempotency store failed", "error", err)
	}
}

// Stop is a no-op; the Redis client is owned and closed by pkg/client.
func (s *RedisIdempotencyStore) Stop() {}
