package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nbastables/stats-api/internal/aggregate"
	"github.com/nbastables/stats-api/internal/http/middleware"
	"github.com/nbastables/stats-api/internal/injuries"
	"github.com/nbastables/stats-api/internal/logging"
	"github.com/nbastables/stats-api/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps service-layer failures onto response statuses:
// missing entities are 404, a missing injuries snapshot and upstream rate
// limiting are 503, other upstream failures are 502, everything else 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context(), h.logger)

	switch {
	case errors.Is(err, aggregate.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found", logger)
	case errors.Is(err, injuries.ErrNoSnapshot):
		writeError(w, r, http.StatusServiceUnavailable, "injuries report not yet available", logger)
	default:
		if _, ok := providers.AsRateLimitError(err); ok {
			writeError(w, r, http.StatusServiceUnavailable, "upstream rate limited", logger)
			return
		}
		if errors.Is(err, providers.ErrUpstreamUnavailable) || errors.Is(err, providers.ErrMalformedResponse) {
			if logger != nil {
				logger.Error("upstream failure", "err", err)
			}
			writeError(w, r, http.StatusBadGateway, "upstream data source unavailable", logger)
			return
		}
		if logger != nil {
			logger.Error("internal error", "err", err)
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error", logger)
	}
}
