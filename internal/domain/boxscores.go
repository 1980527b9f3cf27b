package domain

// TeamBoxScore is one team's full-game statistical line joined with its
// leading scorer for that game.
type TeamBoxScore struct {
	GameID            string     `json:"gameId"`
	TeamID            int        `json:"teamId"`
	Name              string     `json:"name"`
	Score             int        `json:"score"`
	FieldGoals        string     `json:"fieldGoals"`
	FieldGoalPct      float64    `json:"fieldGoalPct"`
	ThreePointers     string     `json:"threePointers"`
	ThreePointerPct   float64    `json:"threePointerPct"`
	FreeThrows        string     `json:"freeThrows"`
	FreeThrowPct      float64    `json:"freeThrowPct"`
	Rebounds          float64    `json:"rebounds"`
	OffensiveRebounds float64    `json:"offensiveRebounds"`
	Assists           float64    `json:"assists"`
	Steals            float64    `json:"steals"`
	Blocks            float64    `json:"blocks"`
	Turnovers         float64    `json:"turnovers"`
	Fouls             float64    `json:"fouls"`
	Leader            GameLeader `json:"leader"`
}

// BoxScoresResponse is the /api/boxscores payload.
type BoxScoresResponse struct {
	Date      string         `json:"date"`
	BoxScores []TeamBoxScore `json:"boxscores"`
}
