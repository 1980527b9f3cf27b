// Package providers defines the upstream data-source abstraction and the
// decorators (retry, instrumentation) layered around concrete clients.
package providers

import "context"

// GameLeaderStat is a team's statistical leader as reported by the live feed.
type GameLeaderStat struct {
	Name     string
	Points   float64
	Rebounds float64
	Assists  float64
}

// ScoreboardTeam is one side of a live scoreboard game.
type ScoreboardTeam struct {
	TeamID int
	Name   string
	Score  int
	Leader GameLeaderStat
}

// ScoreboardGame is one game from the live scoreboard feed.
type ScoreboardGame struct {
	GameID string
	Status string
	Home   ScoreboardTeam
	Away   ScoreboardTeam
}

// LivePlayerStats is a player's raw statistical line from the live boxscore
// feed. Minutes is the ISO-8601 duration as delivered upstream.
type LivePlayerStats struct {
	Minutes              string
	Points               int
	FieldGoalsMade       int
	FieldGoalsAttempted  int
	ThreePointersMade    int
	ThreePointersAttempt int
	FreeThrowsMade       int
	FreeThrowsAttempted  int
	ReboundsTotal        int
	ReboundsOffensive    int
	ReboundsDefensive    int
	Assists              int
	Steals               int
	Blocks               int
	Turnovers            int
	FoulsPersonal        int
	PlusMinusPoints      float64
}

// LivePlayer is one player's entry in a live boxscore. Status is the raw
// upstream value; "ACTIVE" means the player dressed for the game.
type LivePlayer struct {
	PersonID   int
	Name       string
	Status     string
	Statistics LivePlayerStats
}

// LiveBoxTeam is one team's side of a live boxscore.
type LiveBoxTeam struct {
	TeamID  int
	Name    string
	Tricode string
	Score   int
	Players []LivePlayer
}

// LiveBoxScore is the full live boxscore for one game.
type LiveBoxScore struct {
	GameID string
	Status string
	Home   LiveBoxTeam
	Away   LiveBoxTeam
}

// LeaderRow is one team's per-game leader from the daily leaders table.
type LeaderRow struct {
	GameID   string
	TeamID   int
	Name     string
	Points   float64
	Rebounds float64
	Assists  float64
}

// GameHeader is the id/status pair for one game on a day's schedule.
// Status values above 1 mean the game has started.
type GameHeader struct {
	GameID string
	Status int
}

// DaySchedule is a day's game headers joined with the team leaders table.
type DaySchedule struct {
	Headers []GameHeader
	Leaders []LeaderRow
}

// TeamBoxRow is one team's full-game line from the traditional boxscore.
type TeamBoxRow struct {
	TeamID            int
	City              string
	Nickname          string
	Score             int
	FieldGoalsMade    float64
	FieldGoalsAtt     float64
	FieldGoalPct      float64
	ThreePointersMade float64
	ThreePointersAtt  float64
	ThreePointerPct   float64
	FreeThrowsMade    float64
	FreeThrowsAtt     float64
	FreeThrowPct      float64
	ReboundsOffensive float64
	Rebounds          float64
	Assists           float64
	Steals            float64
	Blocks            float64
	Turnovers         float64
	Fouls             float64
}

// PlayerBoxRow is one player's full-game line from the traditional boxscore.
// Minutes is the raw upstream string; empty means the player did not play.
type PlayerBoxRow struct {
	PersonID          int
	Name              string
	TeamID            int
	TeamAbbrev        string
	Minutes           string
	FieldGoalsMade    int
	FieldGoalsAtt     int
	ThreePointersMade int
	ThreePointersAtt  int
	FreeThrowsMade    int
	FreeThrowsAtt     int
	Rebounds          int
	Assists           int
	Blocks            int
	Steals            int
	Turnovers         int
	Fouls             int
	Points            int
}

// AdvancedPlayerRow is the slice of the advanced boxscore the service uses.
type AdvancedPlayerRow struct {
	PersonID  int
	PlusMinus float64
}

// StandingRow is one team's line from the league standings table.
type StandingRow struct {
	City       string
	Name       string
	Conference string
	Rank       int
	Wins       int
	Losses     int
	WinPct     float64
	HomeRecord string
	RoadRecord string
	LastTen    string
	Streak     string
	GamesBack  string
}

// TeamGameRow is one game of a team's season game log, most recent first.
type TeamGameRow struct {
	Matchup string
	GameID  string
}

// SeasonTotalsRow is one season of a player's career totals.
type SeasonTotalsRow struct {
	Season       string
	GamesPlayed  int
	Minutes      float64
	Points       float64
	Rebounds     float64
	Assists      float64
	Steals       float64
	Blocks       float64
	Turnovers    float64
	FGMade       float64
	FGAttempted  float64
	FGPct        float64
	Fg3Made      float64
	Fg3Attempted float64
	Fg3Pct       float64
	FTMade       float64
	FTAttempted  float64
	FTPct        float64
}

// StatsProvider is the full upstream surface the aggregation layer consumes.
// Implementations must be safe for concurrent use; the per-game methods are
// called from a bounded fan-out.
type StatsProvider interface {
	// LiveScoreboard returns today's games from the live feed.
	LiveScoreboard(ctx context.Context) ([]ScoreboardGame, error)
	// LiveBoxScore returns the live boxscore for one game.
	LiveBoxScore(ctx context.Context, gameID string) (*LiveBoxScore, error)
	// TeamBoxScore returns both teams' lines for a completed or live game.
	TeamBoxScore(ctx context.Context, gameID string) ([]TeamBoxRow, error)
	// PlayerBoxScore returns every player's line for one game.
	PlayerBoxScore(ctx context.Context, gameID string) ([]PlayerBoxRow, error)
	// AdvancedBoxScore returns per-player advanced rows for one game.
	AdvancedBoxScore(ctx context.Context, gameID string) ([]AdvancedPlayerRow, error)
	// DaySchedule returns game headers and team leaders for a YYYY-MM-DD date.
	DaySchedule(ctx context.Context, date string) (*DaySchedule, error)
	// Standings returns the current league standings.
	Standings(ctx context.Context) ([]StandingRow, error)
	// TeamGameLog returns a team's completed games this season, newest first.
	TeamGameLog(ctx context.Context, teamID int) ([]TeamGameRow, error)
	// CareerSeasonTotals returns a player's per-season career totals.
	CareerSeasonTotals(ctx context.Context, playerID int) ([]SeasonTotalsRow, error)
}
