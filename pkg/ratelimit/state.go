// Package ratelimit tracks the Phrase API rate limit reported on responses.
// Phrase sends X-Rate-Limit-Limit, X-Rate-Limit-Remaining and
// X-Rate-Limit-Reset (unix seconds) on every call. The tracker only observes:
// it never delays or blocks a request.
package ratelimit

import (
	"time"
)

// Rate limit response headers.
const (
	HeaderLimit     = "X-Rate-Limit-Limit"
	HeaderRemaining = "X-Rate-Limit-Remaining"
	HeaderReset     = "X-Rate-Limit-Reset"
)

// LowWatermark is the share of the limit below which the state is reported
// as low and updates are logged as warnings.
const LowWatermark = 0.1

// State is the last rate limit window reported by the API.
type State struct {
	// Limit is the number of requests allowed per window.
	Limit int `json:"limit"`

	// Remaining is the number of requests left in the current window.
	Remaining int `json:"remaining"`

	// ResetAt is when the current window ends.
	ResetAt time.Time `json:"reset_at"`

	// LastUpdate is when the headers were last observed. The zero value
	// means no response carrying rate limit headers has been seen yet.
	LastUpdate time.Time `json:"last_update"`
}

// Known reports whether the state was ever populated from headers.
func (s State) Known() bool {
	return !s.LastUpdate.IsZero()
}

// IsStale returns true if the state is older than maxAge.
func (s State) IsStale(maxAge time.Duration) bool {
	return time.Since(s.LastUpdate) > maxAge
}

// IsLow returns true if fewer than LowWatermark of the requests are left.
// An unknown limit is never low.
func (s State) IsLow() bool {
	if s.Limit <= 0 {
		return false
	}
	return float64(s.Remaining) < float64(s.Limit)*LowWatermark
}

// TimeUntilReset returns the duration until the window resets.
// Returns 0 if the reset time has already passed.
func (s State) TimeUntilReset() time.Duration {
	d := time.Until(s.ResetAt)
	if d < 0 {
		return 0
	}
	return d
}
