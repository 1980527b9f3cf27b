package domain

// GameLogEntry is one game of a player's recent game log. DNP marks games
// the player's team played without the player recording minutes.
type GameLogEntry struct {
	GameID   string `json:"gameId"`
	Matchup  string `json:"matchup"`
	Date     string `json:"date"`
	Minutes  string `json:"minutes"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
	DNP      bool   `json:"dnp"`
}

// GameLogResponse is the /api/players/{id}/last-n-games payload.
type GameLogResponse struct {
	PlayerID   int            `json:"playerId"`
	PlayerName string         `json:"playerName"`
	Games      []GameLogEntry `json:"games"`
}

// SeasonAverages is the /api/players/{id}/season-avg payload, computed from
// the player's most recent season totals.
type SeasonAverages struct {
	PlayerID     int     `json:"playerId"`
	PlayerName   string  `json:"playerName"`
	Season       string  `json:"season"`
	GamesPlayed  int     `json:"gp"`
	Minutes      float64 `json:"minutes"`
	Points       float64 `json:"points"`
	Rebounds     float64 `json:"rebounds"`
	Assists      float64 `json:"assists"`
	Steals       float64 `json:"steals"`
	Blocks       float64 `json:"blocks"`
	Turnovers    float64 `json:"turnovers"`
	FGMade       float64 `json:"fgm"`
	FGAttempted  float64 `json:"fga"`
	FGPct        float64 `json:"fgPct"`
	Fg3Made      float64 `json:"fg3m"`
	Fg3Attempted float64 `json:"fg3a"`
	Fg3Pct       float64 `json:"fg3Pct"`
	FTMade       float64 `json:"ftm"`
	FTAttempted  float64 `json:"fta"`
	FTPct        float64 `json:"ftPct"`
}
