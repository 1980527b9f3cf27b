package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultDaysOffset = 1
	maxDaysOffset     = 7

	minSearchQueryLen = 2

	defaultGameCount = 5
	maxGameCount     = 15
)

// parseDaysOffset reads the days_offset query parameter, bounded to the
// window upstream keeps per-day data for.
func parseDaysOffset(r *http.Request, defaultOffset int) (int, error) {
	raw := r.URL.Query().Get("days_offset")
	if raw == "" {
		return defaultOffset, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("days_offset must be an integer")
	}
	if offset < 0 || offset > maxDaysOffset {
		return 0, errors.New("days_offset must be between 0 and 7")
	}
	return offset, nil
}

// parseIDs reads the comma-separated ids query parameter.
func parseIDs(r *http.Request) ([]int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("ids"))
	if raw == "" {
		return nil, errors.New("missing ids parameter")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.New("ids must be comma-separated integers")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseSearchQuery(r *http.Request) (string, error) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < minSearchQueryLen {
		return "", errors.New("q must be at least 2 characters")
	}
	return query, nil
}

func parseGameCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return defaultGameCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("n must be an integer")
	}
	if n < 1 || n > maxGameCount {
		return 0, errors.New("n must be between 1 and 15")
	}
	return n, nil
}

func parsePlayerID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("player id must be a positive integer")
	}
	return id, nil
}
