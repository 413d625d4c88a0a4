package cache

import (
	"time"
)

// entry is a value held by MemoryStore together with its expiry.
type entry[V any] struct {
	// Value is the stored value
	Value V

	// StoredAt is when the value was last written
	StoredAt time.Time

	// Expires is StoredAt plus the store TTL
	Expires time.Time
}

func newEntry[V any](value V, now time.Time, ttl time.Duration) entry[V] {
	return entry[V]{
		Value:    value,
		StoredAt: now,
		Expires:  now.Add(ttl),
	}
}

// IsExpired returns true if the entry has expired at the given instant.
func (e entry[V]) IsExpired(now time.Time) bool {
	return !now.Before(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e entry[V]) TTL(now time.Time) time.Duration {
	ttl := e.Expires.Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}
