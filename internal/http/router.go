// Package http assembles the API router.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nbastables/stats-api/internal/http/handlers"
	"github.com/nbastables/stats-api/internal/http/middleware"
	"github.com/nbastables/stats-api/internal/metrics"
)

// NewRouter builds the chi router with CORS, request logging, and all API
// routes mounted under /api.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/scoreboard", h.Scoreboard)
		r.Get("/boxscores", h.BoxScores)
		r.Get("/leaders", h.Leaders)
		r.Get("/standings", h.Standings)
		r.Get("/doubledoubles", h.DoubleDoubles)
		r.Get("/injuries", h.Injuries)

		r.Route("/players", func(r chi.Router) {
			r.Get("/search", h.PlayerSearch)
			r.Get("/stats", h.PlayerStats)
			r.Get("/advanced", h.PlayerAdvanced)
			r.Get("/{playerID}/last-n-games", h.LastNGames)
			r.Get("/{playerID}/season-avg", h.SeasonAverages)
		})

		r.Get("/games/{gameID}/players", h.GamePlayers)
	})

	return middleware.Logging(logger, recorder, r)
}
