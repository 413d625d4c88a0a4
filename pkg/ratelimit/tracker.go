package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Prometheus metrics for rate limit tracking.
var (
	rateLimitRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "phrase_rate_limit_remaining",
		Help: "Requests remaining in the current Phrase rate limit window",
	})

	rateLimitLimit = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "phrase_rate_limit_limit",
		Help: "Requests allowed per Phrase rate limit window",
	})
)

// Redis hash fields of a shared state.
const (
	fieldLimit      = "limit"
	fieldRemaining  = "remaining"
	fieldReset      = "reset"
	fieldLastUpdate = "last_update"
)

// Tracker records the rate limit state from response headers.
// It is safe for concurrent use.
type Tracker struct {
	mu    sync.RWMutex
	state State

	redis    *redis.Client
	redisKey string

	logger zerolog.Logger
	now    func() time.Time
}

// NewTracker creates a tracker that keeps the state in memory.
func NewTracker(logger zerolog.Logger) *Tracker {
	return &Tracker{
		logger: logger,
		now:    time.Now,
	}
}

// NewSharedTracker creates a tracker that additionally mirrors every update
// into a Redis hash under key, so that other processes using the same token
// can read it with Load.
func NewSharedTracker(redisClient *redis.Client, key string, logger zerolog.Logger) *Tracker {
	t := NewTracker(logger)
	t.redis = redisClient
	t.redisKey = key
	return t
}

// State returns the last observed state.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// UpdateFromHeaders parses the rate limit headers of a response.
// Responses without X-Rate-Limit-Remaining are ignored.
func (t *Tracker) UpdateFromHeaders(ctx context.Context, headers http.Header) error {
	remainStr := headers.Get(HeaderRemaining)
	if remainStr == "" {
		return nil
	}

	remain, err := strconv.Atoi(remainStr)
	if err != nil {
		return fmt.Errorf("parse %s header: %w", HeaderRemaining, err)
	}

	limit := 0
	if limitStr := headers.Get(HeaderLimit); limitStr != "" {
		if limit, err = strconv.Atoi(limitStr); err != nil {
			return fmt.Errorf("parse %s header: %w", HeaderLimit, err)
		}
	}

	resetStr := headers.Get(HeaderReset)
	if resetStr == "" {
		return fmt.Errorf("%s header missing", HeaderReset)
	}
	resetUnix, err := strconv.ParseInt(resetStr, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s header: %w", HeaderReset, err)
	}

	state := State{
		Limit:      limit,
		Remaining:  remain,
		ResetAt:    time.Unix(resetUnix, 0),
		LastUpdate: t.now(),
	}

	t.mu.Lock()
	t.state = state
	t.mu.Unlock()

	rateLimitRemaining.Set(float64(remain))
	if limit > 0 {
		rateLimitLimit.Set(float64(limit))
	}

	if state.IsLow() {
		t.logger.Warn().
			Int("remaining", remain).
			Int("limit", limit).
			Time("reset_at", state.ResetAt).
			Msg("Phrase rate limit running low")
	} else {
		t.logger.Debug().
			Int("remaining", remain).
			Int("limit", limit).
			Time("reset_at", state.ResetAt).
			Msg("Phrase rate limit state updated")
	}

	if t.redis != nil {
		if err := t.store(ctx, state); err != nil {
			return fmt.Errorf("store rate limit state in redis: %w", err)
		}
	}
	return nil
}

func (t *Tracker) store(ctx context.Context, s State) error {
	pipe := t.redis.Pipeline()
	pipe.HSet(ctx, t.redisKey,
		fieldLimit, s.Limit,
		fieldRemaining, s.Remaining,
		fieldReset, s.ResetAt.Unix(),
		fieldLastUpdate, s.LastUpdate.UnixMilli(),
	)
	pipe.ExpireAt(ctx, t.redisKey, s.ResetAt.Add(time.Minute))
	_, err := pipe.Exec(ctx)
	return err
}

// Load reads the state shared in Redis. It returns the zero State when
// nothing was stored yet, and the in-memory state for trackers created
// with NewTracker.
func (t *Tracker) Load(ctx context.Context) (State, error) {
	if t.redis == nil {
		return t.State(), nil
	}

	fields, err := t.redis.HGetAll(ctx, t.redisKey).Result()
	if err != nil {
		return State{}, fmt.Errorf("get rate limit state: %w", err)
	}
	if len(fields) == 0 {
		t.logger.Debug().Str("key", t.redisKey).Msg("No rate limit state in Redis")
		return State{}, nil
	}

	var s State
	if s.Limit, err = strconv.Atoi(fields[fieldLimit]); err != nil {
		return State{}, fmt.Errorf("parse limit: %w", err)
	}
	if s.Remaining, err = strconv.Atoi(fields[fieldRemaining]); err != nil {
		return State{}, fmt.Errorf("parse remaining: %w", err)
	}
	reset, err := strconv.ParseInt(fields[fieldReset], 10, 64)
	if err != nil {
		return State{}, fmt.Errorf("parse reset: %w", err)
	}
	lastUpdate, err := strconv.ParseInt(fields[fieldLastUpdate], 10, 64)
	if err != nil {
		return State{}, fmt.Errorf("parse last update: %w", err)
	}
	s.ResetAt = time.Unix(reset, 0)
	s.LastUpdate = time.UnixMilli(lastUpdate)
	return s, nil
}
