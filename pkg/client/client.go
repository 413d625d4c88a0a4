// Package client provides a typed Phrase API v2 client with conditional
// response caching.
//
// Every request carries the client's token. When a previous response for
// the same method, path and query returned an ETag, the request is sent with
// If-None-Match and a 304 reply is answered from the stored payload.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Sternrassler/phrase-client/pkg/cache"
	"github.com/Sternrassler/phrase-client/pkg/logging"
	"github.com/Sternrassler/phrase-client/pkg/ratelimit"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// apiPrefix is the path prefix of every endpoint.
const apiPrefix = "/api/v2"

// Client is the Phrase API client. It is safe for concurrent use and owns
// its stores and janitor; call Close to stop the janitor.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	validators  cache.Store[string]
	responses   cache.Store[cache.Payload]
	janitor     *cache.Janitor
	rateLimiter *ratelimit.Tracker
	config      Config
	logger      zerolog.Logger

	closeOnce sync.Once
}

// New creates a client and starts its cache janitor.
func New(cfg Config) (*Client, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(logging.ComponentClient)
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		config:  cfg,
		logger:  logger,
	}

	if cfg.Redis != nil {
		namespace := cfg.CacheNamespace
		if namespace == "" {
			namespace = "phrase:" + uuid.NewString()
		}
		c.validators = cache.NewRedisStore[string](cfg.Redis, namespace, cache.StoreValidators, cfg.ValidatorTTL)
		c.responses = cache.NewRedisStore[cache.Payload](cfg.Redis, namespace, cache.StoreResponses, cfg.ResponseTTL)
		c.rateLimiter = ratelimit.NewSharedTracker(cfg.Redis, namespace+":rate_limit", logger)
		logger.Debug().Str("namespace", namespace).Msg("Using Redis cache")
	} else {
		c.validators = cache.NewMemoryStore[string](cache.StoreValidators, cfg.ValidatorTTL)
		c.responses = cache.NewMemoryStore[cache.Payload](cache.StoreResponses, cfg.ResponseTTL)
		c.rateLimiter = ratelimit.NewTracker(logger)
	}

	c.httpClient = newHTTPClient(cfg.HTTPClient, &cachingTransport{
		validators: c.validators,
		authToken:  cfg.AuthToken,
		userAgent:  cfg.UserAgent,
		logger:     logger,
	})

	c.janitor = cache.NewJanitor(cfg.CleanupInterval, logger.With().Str("component", logging.ComponentCache).Logger())
	c.janitor.Register(cache.StoreValidators, c.validators)
	c.janitor.Register(cache.StoreResponses, c.responses)
	c.janitor.Start()

	return c, nil
}

// newHTTPClient copies base and wraps its transport.
func newHTTPClient(base *http.Client, t *cachingTransport) *http.Client {
	hc := &http.Client{Timeout: DefaultTimeout}
	if base != nil {
		copied := *base
		hc = &copied
	}
	t.base = hc.Transport
	if t.base == nil {
		t.base = http.DefaultTransport
	}
	hc.Transport = t
	return hc
}

// Close stops the janitor and releases idle connections. The Redis client,
// if any, belongs to the caller and stays open.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.janitor.Stop()
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

// RateLimit returns the rate limit window reported by the last response.
func (c *Client) RateLimit() ratelimit.State {
	return c.rateLimiter.State()
}

// request describes one API call.
type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	accept    string
}

// endpoint joins path-escaped segments under the API prefix.
func endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(apiPrefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// query builds url.Values from name/value pairs, skipping empty values.
func query(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			v.Set(pairs[i], pairs[i+1])
		}
	}
	return v
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewError(KindInvalidArgument, name+" is required")
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	body, contentType, err := encodeBody(r.body)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + r.path
	if encoded := r.query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.accept != "" {
		req.Header.Set("Accept", r.accept)
	}
	return req, nil
}

// send performs the request and returns the raw response together with the
// key the response belongs to.
func (c *Client) send(ctx context.Context, r request) (*http.Response, cache.RequestKey, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, cache.RequestKey{}, WrapError(KindInvalidArgument, "build request", err)
	}
	key := cache.KeyFromRequest(req)

	c.logger.Debug().
		Str("operation", r.operation).
		Str("method", r.method).
		Str("path", req.URL.Path).
		Msg("Executing Phrase request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	requestDuration.WithLabelValues(r.operation).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(r.operation, "transport_error").Inc()
		return nil, key, WrapError(KindTransport, fmt.Sprintf("%s %s", r.method, req.URL.Path), err)
	}
	requestsTotal.WithLabelValues(r.operation, strconv.Itoa(resp.StatusCode)).Inc()

	if err := c.rateLimiter.UpdateFromHeaders(ctx, resp.Header); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to update rate limit from headers")
	}

	return resp, key, nil
}

// do performs the request and processes the response into target.
func (c *Client) do(ctx context.Context, r request, target any) (http.Header, error) {
	resp, key, err := c.send(ctx, r)
	if err != nil {
		return nil, c.fail(r, err)
	}

	header, err := c.process(ctx, key, resp, target)
	if err != nil {
		return header, c.fail(r, err)
	}
	return header, nil
}

// delete performs a delete request. It reports true only for 204 No Content.
func (c *Client) delete(ctx context.Context, r request) (bool, error) {
	resp, _, err := c.send(ctx, r)
	if err != nil {
		return false, c.fail(r, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 399 {
		body, _ := io.ReadAll(resp.Body)
		return false, c.fail(r, NewStatusError(resp.StatusCode, string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusNoContent, nil
}

// fail records and logs an operation error.
func (c *Client) fail(r request, err error) error {
	kind := kindOf(err)
	errorsTotal.WithLabelValues(string(kind)).Inc()

	event := c.logger.Warn().
		Err(err).
		Str("operation", r.operation).
		Str("method", r.method).
		Str("path", r.path).
		Str("kind", string(kind))
	if status := StatusCode(err); status != 0 {
		event = event.Int("status", status)
	}
	event.Msg("Phrase request failed")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return WrapError(KindTransport, r.operation, err)
	}
	return err
}
