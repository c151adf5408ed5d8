package api

import (
	"log/slog"
	"net/http"

	apimiddleware "github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig holds the dependencies of the inspection server.
type RouterConfig struct {
	State    StateSource
	Reviewer Reviewer
	// Metrics serves /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Burst     int
}

// NewRouter creates the inspection server router with all routes and
// middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.NewTraceMiddleware(log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("failed to write health check response", "error", err)
		}
	})

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	stateHandler := NewStateHandler(cfg.State, log)
	reviewHandler := NewReviewHandler(cfg.Reviewer, log)

	r.Route("/api", func(r chi.Router) {
		r.Use(apimiddleware.NewRateLimitMiddleware(cfg.RateLimit, cfg.Burst))

		r.Get("/state", stateHandler.GetState)

		r.Route("/decks/{deckID}", func(r chi.Router) {
			r.Get("/due", reviewHandler.GetDueCards)
			r.Get("/next", reviewHandler.GetNextCard)
			r.Post("/cards/{cardID}/review", reviewHandler.SubmitReview)
		})
	})

	return r
}
