// Package domain holds the JSON payload types served by the API. Field
// names and tags are part of the public contract and change only with a
// version bump.
package domain

// GameLeader is a single team's statistical leader for one game.
type GameLeader struct {
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
}

// ScoreboardTeam is one side of a live scoreboard game.
type ScoreboardTeam struct {
	Name   string     `json:"name"`
	Score  int        `json:"score"`
	Leader GameLeader `json:"leader"`
}

// GameSummary is one game on the live scoreboard.
type GameSummary struct {
	GameID   string         `json:"gameId"`
	Status   string         `json:"status"`
	HomeTeam ScoreboardTeam `json:"homeTeam"`
	AwayTeam ScoreboardTeam `json:"awayTeam"`
}

// ScoreboardResponse is the /api/scoreboard payload.
type ScoreboardResponse struct {
	Games []GameSummary `json:"games"`
}
