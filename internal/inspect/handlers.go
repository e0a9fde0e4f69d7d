// Package inspect serves generated levels and run history over a small
// JSON API. It is a debugging aid: levels are rebuilt from their seed on
// every request, the same way a run builds them.
package inspect

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/blobrun/internal/config"
	"github.com/vovakirdan/blobrun/internal/storage"
)

// Handler holds what the routes need. Store may be nil; score routes then
// answer 503.
type Handler struct {
	cfg    config.BlobrunConfig
	store  *storage.Store
	logger *log.Logger
}

// NewHandler creates a Handler building levels with cfg.
func NewHandler(cfg config.BlobrunConfig, store *storage.Store, logger *log.Logger) *Handler {
	return &Handler{cfg: cfg, store: store, logger: logger}
}

// Routes configures all routes and returns the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/games", h.ListGames)
		r.Get("/patterns", h.ListPatterns)

		r.Get("/levels/{seed}", h.GetLevel)
		r.Get("/levels/{seed}/ascii", h.GetLevelASCII)

		r.Get("/scores/{game}", h.GetScores)
		r.Get("/runs/{game}", h.GetRuns)
		r.Get("/runs/{game}/best", h.GetBestRun)
		r.Get("/runs/{game}/summary", h.GetSummary)
	})

	return r
}

// requestLogger logs one line per request.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // The status line is already out; nothing left to report to.
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
