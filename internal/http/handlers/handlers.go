// Package handlers implements the API endpoints over the aggregation
// service and the roster store.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/injuries"
	"github.com/nbastables/stats-api/internal/roster"
	"github.com/nbastables/stats-api/internal/timeutil"
)

// StatsService is the aggregation surface the handlers consume.
type StatsService interface {
	Scoreboard(ctx context.Context) (domain.ScoreboardResponse, error)
	BoxScores(ctx context.Context, daysOffset int) (domain.BoxScoresResponse, error)
	Leaders(ctx context.Context, daysOffset int) (domain.LeadersResponse, error)
	GamePlayers(ctx context.Context, gameID string) (domain.GamePlayersResponse, error)
	PlayerStats(ctx context.Context, ids []int) (domain.PlayerStatsResponse, error)
	PlayerAdvanced(ctx context.Context, ids []int) (domain.PlayerAdvancedResponse, error)
	Standings(ctx context.Context) (domain.StandingsResponse, error)
	DoubleDoubles(ctx context.Context, daysOffset int) (domain.DoubleDoublesResponse, error)
	LastNGames(ctx context.Context, playerID, n int) (domain.GameLogResponse, error)
	SeasonAverages(ctx context.Context, playerID int) (domain.SeasonAverages, error)
	Injuries(ctx context.Context) (*injuries.Report, error)
}

// Handler serves the API endpoints.
type Handler struct {
	svc    StatsService
	roster *roster.Store
	logger *slog.Logger
}

// New constructs a Handler.
func New(svc StatsService, rosterStore *roster.Store, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, roster: rosterStore, logger: logger}
}

// Health reports liveness and the current display date.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"date":   timeutil.DisplayDate(time.Now(), 0),
	}, h.logger)
}

// Scoreboard serves GET /api/scoreboard.
func (h *Handler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Scoreboard(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// BoxScores serves GET /api/boxscores.
func (h *Handler) BoxScores(w http.ResponseWriter, r *http.Request) {
	daysOffset, err := parseDaysOffset(r, defaultDaysOffset)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.BoxScores(r.Context(), daysOffset)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Leaders serves GET /api/leaders.
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	daysOffset, err := parseDaysOffset(r, defaultDaysOffset)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.Leaders(r.Context(), daysOffset)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Standings serves GET /api/standings.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Standings(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// DoubleDoubles serves GET /api/doubledoubles. Offset defaults to today so
// in-progress games count.
func (h *Handler) DoubleDoubles(w http.ResponseWriter, r *http.Request) {
	daysOffset, err := parseDaysOffset(r, 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.DoubleDoubles(r.Context(), daysOffset)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Injuries serves GET /api/injuries from the cached snapshot.
func (h *Handler) Injuries(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Injuries(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

// PlayerSearch serves GET /api/players/search.
func (h *Handler) PlayerSearch(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	players, err := h.roster.Search(query)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := domain.PlayerSearchResponse{Players: make([]domain.PlayerSearchResult, 0, len(players))}
	for _, p := range players {
		resp.Players = append(resp.Players, domain.PlayerSearchResult{ID: p.ID, Name: p.Name, TeamID: p.TeamID})
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// PlayerStats serves GET /api/players/stats.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.PlayerStats(r.Context(), ids)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// PlayerAdvanced serves GET /api/players/advanced.
func (h *Handler) PlayerAdvanced(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.PlayerAdvanced(r.Context(), ids)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// LastNGames serves GET /api/players/{playerID}/last-n-games.
func (h *Handler) LastNGames(w http.ResponseWriter, r *http.Request) {
	playerID, err := parsePlayerID(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	n, err := parseGameCount(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.LastNGames(r.Context(), playerID, n)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// SeasonAverages serves GET /api/players/{playerID}/season-avg.
func (h *Handler) SeasonAverages(w http.ResponseWriter, r *http.Request) {
	playerID, err := parsePlayerID(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp, err := h.svc.SeasonAverages(r.Context(), playerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// GamePlayers serves GET /api/games/{gameID}/players.
func (h *Handler) GamePlayers(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		writeError(w, r, http.StatusBadRequest, "missing game id", h.logger)
		return
	}
	resp, err := h.svc.GamePlayers(r.Context(), gameID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}
