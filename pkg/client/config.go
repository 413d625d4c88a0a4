package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Sternrassler/phrase-client/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the Phrase API host.
const DefaultBaseURL = "https://api.phraseapp.com"

// DefaultUserAgent identifies this client to the API.
const DefaultUserAgent = "phrase-client-go (https://github.com/Sternrassler/phrase-client)"

// DefaultTimeout applies when no HTTPClient is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the client configuration.
type Config struct {
	// BaseURL is the scheme and host of the API, without /api/v2.
	BaseURL string

	// AuthToken is sent as "Authorization: token <AuthToken>" (REQUIRED).
	AuthToken string

	UserAgent string

	// Caching
	ValidatorTTL    time.Duration // ETag lifetime after last write
	ResponseTTL     time.Duration // Payload lifetime after last write
	CleanupInterval time.Duration // Janitor period

	// HTTPClient supplies the transport, timeout and redirect policy.
	// Its Transport is wrapped, never modified.
	HTTPClient *http.Client

	// Redis, when set, backs both stores and the rate limit state.
	Redis *redis.Client

	// CacheNamespace prefixes Redis keys. Empty means a random namespace
	// owned by this client alone.
	CacheNamespace string

	// Logger defaults to the global logger with component=phrase-client.
	Logger *zerolog.Logger
}

// DefaultConfig returns a configuration for the public Phrase API.
func DefaultConfig(authToken string) Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		AuthToken:       authToken,
		UserAgent:       DefaultUserAgent,
		ValidatorTTL:    cache.DefaultTTL,
		ResponseTTL:     cache.DefaultTTL,
		CleanupInterval: cache.DefaultCleanupInterval,
	}
}

// withDefaults fills zero values and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.AuthToken == "" {
		return c, fmt.Errorf("auth token is required")
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return c, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return c, fmt.Errorf("base url must be an absolute http(s) url (got %q)", c.BaseURL)
	}

	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	for name, d := range map[string]time.Duration{
		"validator_ttl":    c.ValidatorTTL,
		"response_ttl":     c.ResponseTTL,
		"cleanup_interval": c.CleanupInterval,
	} {
		if d < 0 {
			return c, fmt.Errorf("%s must not be negative (got %s)", name, d)
		}
	}
	if c.ValidatorTTL == 0 {
		c.ValidatorTTL = cache.DefaultTTL
	}
	if c.ResponseTTL == 0 {
		c.ResponseTTL = cache.DefaultTTL
	}
	if c.CleanupInterval == 0 {
		c.CleanupInterval = cache.DefaultCleanupInterval
	}

	return c, nil
}
