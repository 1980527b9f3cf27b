package domain

// GamePlayerLine is a single player's line inside a live game boxscore,
// including plus-minus merged in from the advanced feed when available.
type GamePlayerLine struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Minutes           string  `json:"minutes"`
	Points            int     `json:"points"`
	FieldGoals        string  `json:"fieldGoals"`
	FieldGoalPct      float64 `json:"fgPct"`
	ThreePointers     string  `json:"threePt"`
	FreeThrows        string  `json:"freeThrows"`
	Rebounds          int     `json:"rebounds"`
	OffensiveRebounds int     `json:"offRebounds"`
	DefensiveRebounds int     `json:"defRebounds"`
	Assists           int     `json:"assists"`
	Steals            int     `json:"steals"`
	Blocks            int     `json:"blocks"`
	Turnovers         int     `json:"turnovers"`
	Fouls             int     `json:"fouls"`
	PlusMinus         float64 `json:"plusMinus"`
	EffectiveFGPct    float64 `json:"efgPct"`
	TrueShootingPct   float64 `json:"tsPct"`
}

// GamePlayersTeam is one team's roster of lines within a game.
type GamePlayersTeam struct {
	TeamID  int              `json:"teamId"`
	Name    string           `json:"name"`
	Score   int              `json:"score"`
	Players []GamePlayerLine `json:"players"`
}

// GamePlayersResponse is the /api/games/{id}/players payload.
type GamePlayersResponse struct {
	GameID string            `json:"gameId"`
	Status string            `json:"status"`
	Teams  []GamePlayersTeam `json:"teams"`
}
