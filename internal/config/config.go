// Package config loads the proxy configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/Sternrassler/phrase-client/pkg/client"
	"github.com/Sternrassler/phrase-client/pkg/logging"
)

// Config holds all proxy configuration.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Phrase PhraseConfig
	Redis  RedisConfig
	Log    LogConfig
}

// PhraseConfig holds API and cache settings.
type PhraseConfig struct {
	AuthToken       string        `env:"PHRASE_AUTH_TOKEN,required,notEmpty"`
	BaseURL         string        `env:"PHRASE_BASE_URL" envDefault:"https://api.phraseapp.com"`
	UserAgent       string        `env:"PHRASE_USER_AGENT"`
	ValidatorTTL    time.Duration `env:"PHRASE_ETAG_TTL" envDefault:"24h"`
	ResponseTTL     time.Duration `env:"PHRASE_RESPONSE_TTL" envDefault:"24h"`
	CleanupInterval time.Duration `env:"PHRASE_CLEANUP_INTERVAL" envDefault:"1h"`
	CacheNamespace  string        `env:"PHRASE_CACHE_NAMESPACE"`
}

// RedisConfig is optional. An empty Addr keeps the caches in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the struct tags cannot express.
func (c Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"PHRASE_ETAG_TTL":         c.Phrase.ValidatorTTL,
		"PHRASE_RESPONSE_TTL":     c.Phrase.ResponseTTL,
		"PHRASE_CLEANUP_INTERVAL": c.Phrase.CleanupInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	switch logging.LogLevel(c.Log.Level) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelDisabled:
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Log.Level)
	}
	return nil
}

// HasRedis reports whether a shared cache backend is configured.
func (c Config) HasRedis() bool {
	return c.Redis.Addr != ""
}

// RedisOptions returns connection options for REDIS_ADDR.
func (c Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

// Logging returns the logger configuration.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LogLevel(c.Log.Level)
	cfg.Pretty = c.Log.Pretty
	return cfg
}

// ClientConfig builds the Phrase client configuration. rdb may be nil.
func (c Config) ClientConfig(rdb *redis.Client) client.Config {
	cfg := client.DefaultConfig(c.Phrase.AuthToken)
	cfg.BaseURL = c.Phrase.BaseURL
	if c.Phrase.UserAgent != "" {
		cfg.UserAgent = c.Phrase.UserAgent
	}
	cfg.ValidatorTTL = c.Phrase.ValidatorTTL
	cfg.ResponseTTL = c.Phrase.ResponseTTL
	cfg.CleanupInterval = c.Phrase.CleanupInterval
	cfg.Redis = rdb
	cfg.CacheNamespace = c.Phrase.CacheNamespace
	return cfg
}
