// Command phrase-proxy serves a read-only view of a Phrase account over HTTP,
// backed by the caching Phrase client.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/Sternrassler/phrase-client/internal/config"
	"github.com/Sternrassler/phrase-client/pkg/client"
	"github.com/Sternrassler/phrase-client/pkg/logging"
	"github.com/Sternrassler/phrase-client/pkg/metrics"
	"github.com/Sternrassler/phrase-client/pkg/models"
)

const requestTimeout = 30 * time.Second

// phraseAPI is the subset of the client the proxy serves.
type phraseAPI interface {
	ListAllProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
	ListLocales(ctx context.Context, projectID, branch string) ([]models.Locale, error)
	DownloadLocale(ctx context.Context, projectID, localeID string, opts *models.DownloadOptions) (models.Messages, error)
	DownloadLocaleAs(ctx context.Context, projectID, localeID string, format models.FileFormat, opts *models.DownloadOptions) ([]byte, error)
}

// pinger reports backend readiness. A nil pinger is always ready.
type pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging())
	logger := logging.NewLogger(logging.ComponentProxy)

	var rdb *redis.Client
	var ready pinger
	if cfg.HasRedis() {
		rdb = redis.NewClient(cfg.RedisOptions())
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")
		ready = rdb
	}

	clientCfg := cfg.ClientConfig(rdb)
	clientLogger := logging.NewLogger(logging.ComponentClient)
	clientCfg.Logger = &clientLogger

	phrase, err := client.New(clientCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Phrase client")
	}
	defer phrase.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(phrase, ready, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("base_url", clientCfg.BaseURL).Msg("Starting Phrase proxy")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func newRouter(api phraseAPI, ready pinger, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("Request served")
	}))

	r.Get("/health", healthHandler)
	r.Get("/ready", readyHandler(ready))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", listProjectsHandler(api))
		r.Get("/{projectID}", getProjectHandler(api))
		r.Get("/{projectID}/locales", listLocalesHandler(api))
		r.Get("/{projectID}/locales/{localeID}/download", downloadLocaleHandler(api))
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func readyHandler(ready pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ready.Ping(ctx).Err(); err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("Readiness check failed")
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func listProjectsHandler(api phraseAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		projects, err := api.ListAllProjects(ctx)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, projects)
	}
}

func getProjectHandler(api phraseAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		project, err := api.GetProject(ctx, chi.URLParam(r, "projectID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, project)
	}
}

func listLocalesHandler(api phraseAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		locales, err := api.ListLocales(ctx, chi.URLParam(r, "projectID"), r.URL.Query().Get("branch"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, locales)
	}
}

// downloadLocaleHandler returns JSON messages by default, or the raw file
// when ?format= names another file format.
func downloadLocaleHandler(api phraseAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		projectID := chi.URLParam(r, "projectID")
		localeID := chi.URLParam(r, "localeID")
		q := r.URL.Query()
		opts := &models.DownloadOptions{
			Branch:           q.Get("branch"),
			Tags:             q.Get("tags"),
			FallbackLocaleID: q.Get("fallback_locale_id"),
		}

		format := models.FileFormat(q.Get("format"))
		if format == "" || format == models.FormatJSON {
			messages, err := api.DownloadLocale(ctx, projectID, localeID, opts)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, r, messages)
			return
		}

		file, err := api.DownloadLocaleAs(ctx, projectID, localeID, format, opts)
		if err != nil {
			writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(file); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("Failed to write response")
		}
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("Failed to write response")
	}
}

// writeError maps client errors to proxy statuses: rejected arguments are
// 400, upstream 4xx statuses pass through, everything else is 502.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch code := client.StatusCode(err); {
	case errors.Is(err, client.ErrInvalidArgument):
		status = http.StatusBadRequest
	case code >= 400 && code < 500:
		status = code
	}

	hlog.FromRequest(r).Warn().Err(err).Int("status", status).Msg("Phrase request failed")
	http.Error(w, err.Error(), status)
}
