package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCleanupInterval is how often the janitor evicts expired entries.
const DefaultCleanupInterval = time.Hour

// Cleaner evicts expired entries. Every Store is a Cleaner.
type Cleaner interface {
	Cleanup(ctx context.Context) (int, error)
}

type namedCleaner struct {
	name    string
	cleaner Cleaner
}

// Janitor periodically runs Cleanup on a set of stores in a background
// goroutine. Cleanup failures and panics are logged and never propagated.
type Janitor struct {
	interval time.Duration
	cleaners []namedCleaner
	logger   zerolog.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// NewJanitor creates a janitor. A non-positive interval falls back to
// DefaultCleanupInterval.
func NewJanitor(interval time.Duration, logger zerolog.Logger) *Janitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &Janitor{
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Register adds a store to clean. It must be called before Start.
func (j *Janitor) Register(name string, c Cleaner) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cleaners = append(j.cleaners, namedCleaner{name: name, cleaner: c})
}

// Interval returns the period between cleanup passes.
func (j *Janitor) Interval() time.Duration {
	return j.interval
}

// Start launches the background loop. The first pass runs one interval
// after Start. Calling Start more than once, or after Stop, does nothing.
func (j *Janitor) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.started || j.stopped {
		return
	}
	j.started = true

	go j.loop()
}

// Stop ends the background loop and waits for an in-flight pass to finish.
// It is safe to call multiple times.
func (j *Janitor) Stop() {
	j.mu.Lock()
	if j.stopped {
		j.mu.Unlock()
		return
	}
	j.stopped = true
	started := j.started
	close(j.stop)
	j.mu.Unlock()

	if started {
		<-j.done
	}
}

func (j *Janitor) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-j.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce cleans every registered store once.
func (j *Janitor) RunOnce(ctx context.Context) {
	j.mu.Lock()
	cleaners := append([]namedCleaner(nil), j.cleaners...)
	j.mu.Unlock()

	for _, nc := range cleaners {
		j.cleanStore(ctx, nc)
	}
}

func (j *Janitor) cleanStore(ctx context.Context, nc namedCleaner) {
	defer func() {
		if r := recover(); r != nil {
			CleanupRuns.WithLabelValues("panic").Inc()
			j.logger.Warn().
				Str("store", nc.name).
				Err(fmt.Errorf("panic: %v", r)).
				Msg("Cache cleanup panicked")
		}
	}()

	j.logger.Debug().Str("store", nc.name).Msg("Cache cleanup started")
	start := time.Now()

	evicted, err := nc.cleaner.Cleanup(ctx)
	if err != nil {
		CleanupRuns.WithLabelValues("error").Inc()
		j.logger.Warn().
			Err(err).
			Str("store", nc.name).
			Int("evicted", evicted).
			Msg("Error during cache cleanup")
		return
	}

	CleanupRuns.WithLabelValues("ok").Inc()
	j.logger.Info().
		Str("store", nc.name).
		Int("evicted", evicted).
		Dur("duration", time.Since(start)).
		Msg("Cache cleanup finished")
}
