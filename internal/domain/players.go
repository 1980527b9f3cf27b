package domain

// PlayerGameStats is the compact per-game line used by /api/players/stats.
type PlayerGameStats struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Team          string `json:"team"`
	Minutes       string `json:"minutes"`
	Points        int    `json:"points"`
	ThreePointers int    `json:"threePointers"`
	Rebounds      int    `json:"rebounds"`
	Assists       int    `json:"assists"`
	Blocks        int    `json:"blocks"`
	Steals        int    `json:"steals"`
	Turnovers     int    `json:"turnovers"`
}

// PlayerAdvancedStats extends the per-game line with shooting splits,
// efficiency metrics, and double-double flags for /api/players/advanced.
type PlayerAdvancedStats struct {
	PlayerGameStats
	FieldGoals      string  `json:"fieldGoals"`
	FieldGoalPct    float64 `json:"fieldGoalPct"`
	FreeThrows      string  `json:"freeThrows"`
	FreeThrowPct    float64 `json:"freeThrowPct"`
	EffectiveFGPct  float64 `json:"efgPct"`
	TrueShootingPct float64 `json:"tsPct"`
	PlusMinus       float64 `json:"plusMinus"`
	IsDoubleDouble  bool    `json:"isDoubleDouble"`
	IsTripleDouble  bool    `json:"isTripleDouble"`
}

// PlayerSearchResult is one row of /api/players/search output.
type PlayerSearchResult struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID int    `json:"teamId"`
}

// PlayerSearchResponse is the /api/players/search payload.
type PlayerSearchResponse struct {
	Players []PlayerSearchResult `json:"players"`
}

// PlayerStatsResponse is the /api/players/stats payload.
type PlayerStatsResponse struct {
	Date    string            `json:"date"`
	Players []PlayerGameStats `json:"players"`
}

// PlayerAdvancedResponse is the /api/players/advanced payload.
type PlayerAdvancedResponse struct {
	Date    string                `json:"date"`
	Players []PlayerAdvancedStats `json:"players"`
}
