package domain

// StandingsRow is one team's conference standings line.
type StandingsRow struct {
	Rank       int     `json:"rank"`
	Team       string  `json:"team"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"winPct"`
	GamesBack  string  `json:"gamesBack"`
	HomeRecord string  `json:"home"`
	RoadRecord string  `json:"road"`
	LastTen    string  `json:"lastTen"`
	Streak     string  `json:"streak"`
}

// StandingsResponse is the /api/standings payload, split by conference.
type StandingsResponse struct {
	East []StandingsRow `json:"east"`
	West []StandingsRow `json:"west"`
}
