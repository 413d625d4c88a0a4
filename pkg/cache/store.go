package cache

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is how long validators and payloads live after their last write.
const DefaultTTL = 24 * time.Hour

// Store names used for metrics labels and Redis key prefixes.
const (
	StoreValidators = "validators"
	StoreResponses  = "responses"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Store is a time-expiring mapping from RequestKey to V.
//
// Implementations must be safe for concurrent use. Expiry is measured from the
// last Set and is enforced lazily by Get; Cleanup evicts expired entries
// eagerly.
type Store[V any] interface {
	// Get returns the live value for key or ErrCacheMiss.
	Get(ctx context.Context, key RequestKey) (V, error)

	// Set stores value for key, resetting its time to live.
	Set(ctx context.Context, key RequestKey, value V) error

	// Delete removes key. Idempotent.
	Delete(ctx context.Context, key RequestKey) error

	// Cleanup evicts all expired entries and reports how many were removed.
	Cleanup(ctx context.Context) (int, error)
}
