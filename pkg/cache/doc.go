// Package cache provides conditional-request caching for the Phrase API client.
//
// The package holds the pieces of the response-caching decorator:
//
// - RequestKey: deterministic identity of a call (method, path, query)
// - Store: expire-after-write key/value contract with MemoryStore and RedisStore
// - Payload: the last successful body, tagged as structured (JSON) or raw bytes
// - Janitor: background eviction of expired entries
// - Prometheus metrics for observability
//
// # Basic Usage
//
//	validators := cache.NewMemoryStore[string](cache.StoreValidators, 24*time.Hour)
//	responses := cache.NewMemoryStore[cache.Payload](cache.StoreResponses, 24*time.Hour)
//
//	key := cache.KeyFromRequest(req)
//	if etag, err := validators.Get(ctx, key); err == nil {
//		cache.AddConditionalHeader(req, etag)
//	}
//
// # Shared Backend
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	responses := cache.NewRedisStore[cache.Payload](redisClient, namespace, cache.StoreResponses, ttl)
//
// # Eviction
//
//	janitor := cache.NewJanitor(time.Hour, logger)
//	janitor.Register(cache.StoreValidators, validators)
//	janitor.Register(cache.StoreResponses, responses)
//	janitor.Start()
//	defer janitor.Stop()
//
// # Metrics
//
//   - phrase_cache_hits_total{store} - Cache hits
//   - phrase_cache_misses_total{store} - Cache misses
//   - phrase_cache_evictions_total{store} - Expired entries removed
//   - phrase_cache_entries{store} - In-memory entry count
//   - phrase_conditional_requests_total - Requests sent with If-None-Match
//   - phrase_304_responses_total - Not Modified responses
//   - phrase_cache_cleanup_runs_total{result} - Janitor passes
//   - phrase_cache_errors_total{store,operation} - Backend errors
package cache
