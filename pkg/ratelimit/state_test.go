package ratelimit

import (
	"testing"
	"time"
)

func TestState_IsStale(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		maxAge   time.Duration
		expected bool
	}{
		{
			name:     "fresh state",
			state:    State{LastUpdate: time.Now()},
			maxAge:   5 * time.Minute,
			expected: false,
		},
		{
			name:     "stale state",
			state:    State{LastUpdate: time.Now().Add(-10 * time.Minute)},
			maxAge:   5 * time.Minute,
			expected: true,
		},
		{
			name:     "never updated",
			state:    State{},
			maxAge:   5 * time.Minute,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsStale(tt.maxAge); got != tt.expected {
				t.Errorf("IsStale() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestState_IsLow(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		remaining int
		expected  bool
	}{
		{name: "plenty left", limit: 1000, remaining: 900, expected: false},
		{name: "at watermark", limit: 1000, remaining: 100, expected: false},
		{name: "just below watermark", limit: 1000, remaining: 99, expected: true},
		{name: "exhausted", limit: 1000, remaining: 0, expected: true},
		{name: "unknown limit", limit: 0, remaining: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Limit: tt.limit, Remaining: tt.remaining}
			if got := s.IsLow(); got != tt.expected {
				t.Errorf("IsLow() = %v, want %v (remaining=%d/%d)", got, tt.expected, tt.remaining, tt.limit)
			}
		})
	}
}

func TestState_Known(t *testing.T) {
	if (State{}).Known() {
		t.Error("zero State should not be known")
	}
	if !(State{LastUpdate: time.Now()}).Known() {
		t.Error("updated State should be known")
	}
}

func TestState_TimeUntilReset(t *testing.T) {
	tests := []struct {
		name      string
		resetAt   time.Time
		expected  time.Duration
		tolerance time.Duration
	}{
		{
			name:      "reset in future",
			resetAt:   time.Now().Add(5 * time.Minute),
			expected:  5 * time.Minute,
			tolerance: 1 * time.Second,
		},
		{
			name:      "reset already passed",
			resetAt:   time.Now().Add(-5 * time.Minute),
			expected:  0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := State{ResetAt: tt.resetAt}.TimeUntilReset()
			diff := got - tt.expected
			if diff < 0 {
				diff = -diff
			}
			if diff > tt.tolerance {
				t.Errorf("TimeUntilReset() = %v, want %v (±%v)", got, tt.expected, tt.tolerance)
			}
		})
	}
}
