package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by store (validators, responses)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phrase_cache_hits_total",
			Help: "Total number of Phrase cache hits",
		},
		[]string{"store"},
	)

	// CacheMisses tracks cache misses by store
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phrase_cache_misses_total",
			Help: "Total number of Phrase cache misses",
		},
		[]string{"store"},
	)

	// CacheEvictions tracks expired entries removed by store
	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phrase_cache_evictions_total",
			Help: "Total number of expired Phrase cache entries evicted",
		},
		[]string{"store"},
	)

	// CacheEntries tracks the number of in-memory entries by store
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "phrase_cache_entries",
			Help: "Current number of entries held in memory",
		},
		[]string{"store"},
	)

	// ConditionalRequestsSent tracks requests sent with If-None-Match
	ConditionalRequestsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "phrase_conditional_requests_total",
			Help: "Total number of conditional requests sent with If-None-Match",
		},
	)

	// NotModifiedResponses tracks 304 Not Modified responses
	NotModifiedResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "phrase_304_responses_total",
			Help: "Total number of Phrase 304 Not Modified responses",
		},
	)

	// CleanupRuns tracks janitor passes by result (ok, error, panic)
	CleanupRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phrase_cache_cleanup_runs_total",
			Help: "Total number of cache cleanup passes by result",
		},
		[]string{"result"},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phrase_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"store", "operation"}, // "get", "set", "delete"
	)
)
