package nbastats

import (
	"context"
	"fmt"

	"github.com/nbastables/stats-api/internal/providers"
)

// Live CDN payload shapes. Only the fields the service reads are declared.

type liveScoreboardPayload struct {
	Scoreboard struct {
		Games []liveGame `json:"games"`
	} `json:"scoreboard"`
}

type liveGame struct {
	GameID         string       `json:"gameId"`
	GameStatusText string       `json:"gameStatusText"`
	HomeTeam       liveTeam     `json:"homeTeam"`
	AwayTeam       liveTeam     `json:"awayTeam"`
	GameLeaders    *liveLeaders `json:"gameLeaders"`
}

type liveTeam struct {
	TeamID   int    `json:"teamId"`
	TeamCity string `json:"teamCity"`
	TeamName string `json:"teamName"`
	Score    int    `json:"score"`
}

type liveLeaders struct {
	HomeLeaders liveLeader `json:"homeLeaders"`
	AwayLeaders liveLeader `json:"awayLeaders"`
}

type liveLeader struct {
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
}

type liveBoxScorePayload struct {
	Game struct {
		GameID         string      `json:"gameId"`
		GameStatusText string      `json:"gameStatusText"`
		HomeTeam       liveBoxTeam `json:"homeTeam"`
		AwayTeam       liveBoxTeam `json:"awayTeam"`
	} `json:"game"`
}

type liveBoxTeam struct {
	TeamID      int             `json:"teamId"`
	TeamCity    string          `json:"teamCity"`
	TeamName    string          `json:"teamName"`
	TeamTricode string          `json:"teamTricode"`
	Score       int             `json:"score"`
	Players     []liveBoxPlayer `json:"players"`
}

type liveBoxPlayer struct {
	PersonID   int          `json:"personId"`
	Name       string       `json:"name"`
	Status     string       `json:"status"`
	Statistics liveBoxStats `json:"statistics"`
}

type liveBoxStats struct {
	Minutes                 string  `json:"minutes"`
	Points                  int     `json:"points"`
	FieldGoalsMade          int     `json:"fieldGoalsMade"`
	FieldGoalsAttempted     int     `json:"fieldGoalsAttempted"`
	ThreePointersMade       int     `json:"threePointersMade"`
	ThreePointersAttempted  int     `json:"threePointersAttempted"`
	FreeThrowsMade          int     `json:"freeThrowsMade"`
	FreeThrowsAttempted     int     `json:"freeThrowsAttempted"`
	ReboundsTotal           int     `json:"reboundsTotal"`
	ReboundsOffensive       int     `json:"reboundsOffensive"`
	ReboundsDefensive       int     `json:"reboundsDefensive"`
	Assists                 int     `json:"assists"`
	Steals                  int     `json:"steals"`
	Blocks                  int     `json:"blocks"`
	Turnovers               int     `json:"turnovers"`
	FoulsPersonal           int     `json:"foulsPersonal"`
	PlusMinusPoints         float64 `json:"plusMinusPoints"`
}

// LiveScoreboard returns today's games from the live CDN feed.
func (c *Client) LiveScoreboard(ctx context.Context) ([]providers.ScoreboardGame, error) {
	var payload liveScoreboardPayload
	if err := c.getJSON(ctx, c.liveBaseURL+liveScoreboardPath, false, &payload); err != nil {
		return nil, err
	}

	games := make([]providers.ScoreboardGame, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		game := providers.ScoreboardGame{
			GameID: g.GameID,
			Status: g.GameStatusText,
			Home:   mapScoreboardTeam(g.HomeTeam),
			Away:   mapScoreboardTeam(g.AwayTeam),
		}
		if g.GameLeaders != nil {
			game.Home.Leader = mapGameLeader(g.GameLeaders.HomeLeaders)
			game.Away.Leader = mapGameLeader(g.GameLeaders.AwayLeaders)
		}
		games = append(games, game)
	}
	return games, nil
}

// LiveBoxScore returns the live boxscore for one game.
func (c *Client) LiveBoxScore(ctx context.Context, gameID string) (*providers.LiveBoxScore, error) {
	var payload liveBoxScorePayload
	url := c.liveBaseURL + fmt.Sprintf(liveBoxScorePath, gameID)
	if err := c.getJSON(ctx, url, false, &payload); err != nil {
		return nil, err
	}

	box := &providers.LiveBoxScore{
		GameID: payload.Game.GameID,
		Status: payload.Game.GameStatusText,
		Home:   mapLiveBoxTeam(payload.Game.HomeTeam),
		Away:   mapLiveBoxTeam(payload.Game.AwayTeam),
	}
	return box, nil
}

func mapScoreboardTeam(t liveTeam) providers.ScoreboardTeam {
	return providers.ScoreboardTeam{
		TeamID: t.TeamID,
		Name:   teamDisplayName(t.TeamCity, t.TeamName),
		Score:  t.Score,
	}
}

func mapGameLeader(l liveLeader) providers.GameLeaderStat {
	return providers.GameLeaderStat{
		Name:     l.Name,
		Points:   l.Points,
		Rebounds: l.Rebounds,
		Assists:  l.Assists,
	}
}

func mapLiveBoxTeam(t liveBoxTeam) providers.LiveBoxTeam {
	players := make([]providers.LivePlayer, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, providers.LivePlayer{
			PersonID: p.PersonID,
			Name:     p.Name,
			Status:   p.Status,
			Statistics: providers.LivePlayerStats{
				Minutes:              p.Statistics.Minutes,
				Points:               p.Statistics.Points,
				FieldGoalsMade:       p.Statistics.FieldGoalsMade,
				FieldGoalsAttempted:  p.Statistics.FieldGoalsAttempted,
				ThreePointersMade:    p.Statistics.ThreePointersMade,
				ThreePointersAttempt: p.Statistics.ThreePointersAttempted,
				FreeThrowsMade:       p.Statistics.FreeThrowsMade,
				FreeThrowsAttempted:  p.Statistics.FreeThrowsAttempted,
				ReboundsTotal:        p.Statistics.ReboundsTotal,
				ReboundsOffensive:    p.Statistics.ReboundsOffensive,
				ReboundsDefensive:    p.Statistics.ReboundsDefensive,
				Assists:              p.Statistics.Assists,
				Steals:               p.Statistics.Steals,
				Blocks:               p.Statistics.Blocks,
				Turnovers:            p.Statistics.Turnovers,
				FoulsPersonal:        p.Statistics.FoulsPersonal,
				PlusMinusPoints:      p.Statistics.PlusMinusPoints,
			},
		})
	}
	return providers.LiveBoxTeam{
		TeamID:  t.TeamID,
		Name:    teamDisplayName(t.TeamCity, t.TeamName),
		Tricode: t.TeamTricode,
		Score:   t.Score,
		Players: players,
	}
}

func teamDisplayName(city, nickname string) string {
	if city == "" {
		return nickname
	}
	return city + " " + nickname
}
