package domain

// LeaderEntry is one player inside a league-leaders category. Ties share
// the top value, so a category can hold more than one entry.
type LeaderEntry struct {
	Name  string  `json:"name"`
	Team  string  `json:"team"`
	Value float64 `json:"value"`
}

// LeaderCategory groups the tied leaders of one statistic.
type LeaderCategory struct {
	Category string        `json:"category"`
	Players  []LeaderEntry `json:"players"`
}

// LeadersResponse is the /api/leaders payload.
type LeadersResponse struct {
	Date       string           `json:"date"`
	Categories []LeaderCategory `json:"categories"`
}
