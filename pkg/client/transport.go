package client

import (
	"errors"
	"net/http"

	"github.com/Sternrassler/phrase-client/pkg/cache"
	"github.com/rs/zerolog"
)

// cachingTransport sets the static and conditional headers on every
// outgoing request before handing it to the base transport.
type cachingTransport struct {
	base       http.RoundTripper
	validators cache.Store[string]
	authToken  string
	userAgent  string
	logger     zerolog.Logger
}

// RoundTrip implements http.RoundTripper. The caller's request is cloned,
// never modified.
func (t *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	out := req.Clone(ctx)

	// Drop any stale validator the caller may have set; the store decides.
	out.Header.Del(cache.HeaderIfNoneMatch)

	key := cache.KeyFromRequest(out)
	etag, err := t.validators.Get(ctx, key)
	switch {
	case err == nil:
		if cache.AddConditionalHeader(out, etag) {
			t.logger.Debug().
				Str("method", out.Method).
				Str("path", out.URL.Path).
				Str("etag", etag).
				Msg("Making conditional request")
		}
	case !errors.Is(err, cache.ErrCacheMiss):
		t.logger.Warn().Err(err).Str("key", key.String()).Msg("Validator lookup failed")
	}

	out.Header.Set("Authorization", "token "+t.authToken)
	out.Header.Set("User-Agent", t.userAgent)
	if out.Header.Get("Accept") == "" {
		out.Header.Set("Accept", "application/json")
	}

	return t.base.RoundTrip(out)
}
