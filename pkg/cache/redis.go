package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis. Values are JSON encoded and
// expire through Redis' own key TTL.
type RedisStore[V any] struct {
	redis     *redis.Client
	name      string
	namespace string
	ttl       time.Duration
}

// NewRedisStore creates a Redis-backed store. Keys are written as
// <namespace>:<name>:<request key>. A non-positive ttl falls back to DefaultTTL.
func NewRedisStore[V any](redisClient *redis.Client, namespace, name string, ttl time.Duration) *RedisStore[V] {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore[V]{
		redis:     redisClient,
		name:      name,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (s *RedisStore[V]) redisKey(key RequestKey) string {
	return s.namespace + ":" + s.name + ":" + key.String()
}

// Get retrieves a value by key.
// Returns ErrCacheMiss if the key doesn't exist or has expired.
func (s *RedisStore[V]) Get(ctx context.Context, key RequestKey) (V, error) {
	var value V

	data, err := s.redis.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			CacheMisses.WithLabelValues(s.name).Inc()
			return value, ErrCacheMiss
		}
		CacheErrors.WithLabelValues(s.name, "get").Inc()
		return value, fmt.Errorf("redis get: %w", err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		CacheErrors.WithLabelValues(s.name, "get").Inc()
		return value, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	CacheHits.WithLabelValues(s.name).Inc()
	return value, nil
}

// Set stores a value with the store TTL.
func (s *RedisStore[V]) Set(ctx context.Context, key RequestKey, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		CacheErrors.WithLabelValues(s.name, "set").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := s.redis.Set(ctx, s.redisKey(key), data, s.ttl).Err(); err != nil {
		CacheErrors.WithLabelValues(s.name, "set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes a value.
func (s *RedisStore[V]) Delete(ctx context.Context, key RequestKey) error {
	if err := s.redis.Del(ctx, s.redisKey(key)).Err(); err != nil {
		CacheErrors.WithLabelValues(s.name, "delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Cleanup is a no-op: Redis evicts expired keys itself.
func (s *RedisStore[V]) Cleanup(context.Context) (int, error) {
	return 0, nil
}

// TTL returns the configured time to live.
func (s *RedisStore[V]) TTL() time.Duration {
	return s.ttl
}

// Ensure RedisStore implements Store
var _ Store[Payload] = (*RedisStore[Payload])(nil)
