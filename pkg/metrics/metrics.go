// Package metrics exposes the Prometheus metrics of the Phrase client.
// The metrics are defined in their own packages (client, cache, ratelimit)
// and registered through promauto on the default registry; this package
// serves them and documents the catalogue.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registerer all client metrics are registered on.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the gatherer matching Registry.
var Gatherer = prometheus.DefaultGatherer

// Handler returns an HTTP handler serving the metrics in the Prometheus
// exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - phrase_requests_total{operation, status} (Counter): Requests by facade operation and HTTP status
//   - phrase_request_duration_seconds{operation} (Histogram): Request duration by operation
//   - phrase_errors_total{kind} (Counter): Errors by kind (status, transport, decode, ...)
//
// Cache Metrics (pkg/cache):
//   - phrase_cache_hits_total{store} (Counter): Store hits (validators, responses)
//   - phrase_cache_misses_total{store} (Counter): Store misses
//   - phrase_cache_evictions_total{store} (Counter): Expired entries removed
//   - phrase_cache_entries{store} (Gauge): Entries held by in-memory stores
//   - phrase_cache_errors_total{store, operation} (Counter): Backend errors
//   - phrase_conditional_requests_total (Counter): Requests sent with If-None-Match
//   - phrase_304_responses_total (Counter): Not Modified responses
//   - phrase_cache_cleanup_runs_total{result} (Counter): Janitor passes by result
//
// Rate Limit Metrics (pkg/ratelimit):
//   - phrase_rate_limit_remaining (Gauge): Requests left in the current window
//   - phrase_rate_limit_limit (Gauge): Requests allowed per window
//
// Example Prometheus Queries:
//
//   # 304 ratio
//   rate(phrase_304_responses_total[5m]) / sum(rate(phrase_requests_total[5m]))
//
//   # Response store hit rate on 304
//   rate(phrase_cache_hits_total{store="responses"}[5m])
//
//   # P95 latency per operation
//   histogram_quantile(0.95, sum by (le, operation) (rate(phrase_request_duration_seconds_bucket[5m])))
//
//   # Rate limit nearly exhausted
//   phrase_rate_limit_remaining < 0.1 * phrase_rate_limit_limit
