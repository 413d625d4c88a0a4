package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store with expire-after-write semantics.
// It has no size bound; expired entries are removed lazily by Get and in
// bulk by Cleanup.
type MemoryStore[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
}

// NewMemoryStore creates an in-memory store. name labels its metrics.
// A non-positive ttl falls back to DefaultTTL.
func NewMemoryStore[V any](name string, ttl time.Duration) *MemoryStore[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore[V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// Get retrieves a value. Returns ErrCacheMiss if the key doesn't exist or is expired.
func (s *MemoryStore[V]) Get(_ context.Context, key RequestKey) (V, error) {
	k := key.String()

	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()

	var zero V
	if !ok {
		CacheMisses.WithLabelValues(s.name).Inc()
		return zero, ErrCacheMiss
	}

	if e.IsExpired(s.now()) {
		s.evict(k)
		CacheMisses.WithLabelValues(s.name).Inc()
		return zero, ErrCacheMiss
	}

	CacheHits.WithLabelValues(s.name).Inc()
	return e.Value, nil
}

// Set stores a value; its TTL starts now.
func (s *MemoryStore[V]) Set(_ context.Context, key RequestKey, value V) error {
	e := newEntry(value, s.now(), s.ttl)

	s.mu.Lock()
	s.entries[key.String()] = e
	size := len(s.entries)
	s.mu.Unlock()

	CacheEntries.WithLabelValues(s.name).Set(float64(size))
	return nil
}

// Delete removes a value.
func (s *MemoryStore[V]) Delete(_ context.Context, key RequestKey) error {
	s.mu.Lock()
	delete(s.entries, key.String())
	size := len(s.entries)
	s.mu.Unlock()

	CacheEntries.WithLabelValues(s.name).Set(float64(size))
	return nil
}

// Cleanup removes every expired entry. The scan holds only the read lock;
// each eviction takes the write lock briefly and re-checks expiry so a
// concurrent Set is never lost.
func (s *MemoryStore[V]) Cleanup(ctx context.Context) (int, error) {
	now := s.now()

	s.mu.RLock()
	var expired []string
	for k, e := range s.entries {
		if e.IsExpired(now) {
			expired = append(expired, k)
		}
	}
	s.mu.RUnlock()

	evicted := 0
	for _, k := range expired {
		if err := ctx.Err(); err != nil {
			return evicted, err
		}
		if s.evictIfExpired(k, now) {
			evicted++
		}
	}

	return evicted, nil
}

// Len returns the number of entries, expired ones included.
func (s *MemoryStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// TTL returns the configured time to live.
func (s *MemoryStore[V]) TTL() time.Duration {
	return s.ttl
}

func (s *MemoryStore[V]) evict(k string) {
	s.evictIfExpired(k, s.now())
}

func (s *MemoryStore[V]) evictIfExpired(k string, now time.Time) bool {
	s.mu.Lock()
	e, ok := s.entries[k]
	if !ok || !e.IsExpired(now) {
		s.mu.Unlock()
		return false
	}
	delete(s.entries, k)
	size := len(s.entries)
	s.mu.Unlock()

	CacheEvictions.WithLabelValues(s.name).Inc()
	CacheEntries.WithLabelValues(s.name).Set(float64(size))
	return true
}

// Ensure MemoryStore implements Store
var _ Store[string] = (*MemoryStore[string])(nil)
