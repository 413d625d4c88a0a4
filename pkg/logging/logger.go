// Package logging configures structured logging with zerolog.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	LevelDebug    LogLevel = "debug"
	LevelInfo     LogLevel = "info"
	LevelWarn     LogLevel = "warn"
	LevelError    LogLevel = "error"
	LevelDisabled LogLevel = "disabled"
)

// Component names used with NewLogger.
const (
	ComponentClient = "phrase-client"
	ComponentCache  = "phrase-cache"
	ComponentProxy  = "phrase-proxy"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output instead of JSON.
	Pretty bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// ParseLevel converts a level name to a zerolog.Level. Unknown names map to info.
func ParseLevel(level LogLevel) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(string(level))) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger derives a logger for a component from the global logger.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: request and cache flow
//   - Validator lookups, conditional requests, stored payloads
//   - Rate limit state updates
//
// Info: normal operation events
//   - Janitor passes
//   - Server startup/shutdown
//   - Parallel page fetches
//
// Warn: conditions that don't stop the caller
//   - API status failures
//   - Cache backend (Redis) errors, the call continues uncached
//   - Rate limit running low
//   - Cleanup errors
//
// Error: conditions requiring attention
//   - Server failures
//   - Configuration errors
//
// Context Fields:
//   - operation: facade operation name (get_project, download_locale, ...)
//   - method, path: outgoing request
//   - status: HTTP status code
//   - etag: validator sent or received
//   - cache_hit: whether a 304 was served from the response store
//   - store: validators or responses
//   - evicted: entries removed by a cleanup pass
//   - remaining, limit: rate limit window
