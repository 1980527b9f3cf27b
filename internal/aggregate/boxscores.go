package aggregate

import (
	"context"
	"sort"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/logging"
	"github.com/nbastables/stats-api/internal/namefix"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/timeutil"
)

// BoxScores returns team boxscores for the day daysOffset days back, each
// joined with that team's per-game leader. Games whose individual fetch
// fails are dropped rather than failing the whole response; a failure to
// list the day's games yields an empty response.
func (s *Service) BoxScores(ctx context.Context, daysOffset int) (domain.BoxScoresResponse, error) {
	key := keyBoxScores(daysOffset)
	ttl := cache.TTLForOffset(cache.TTLBoxScores, daysOffset)

	return cachedFetch(s, key, ttl, "boxscores", func() (domain.BoxScoresResponse, error) {
		resp := domain.BoxScoresResponse{
			Date:      timeutil.DisplayDate(s.now(), daysOffset),
			BoxScores: []domain.TeamBoxScore{},
		}

		date := timeutil.QueryDate(s.now(), daysOffset)
		sched, err := s.provider.DaySchedule(ctx, date)
		if err != nil {
			s.logWarn(ctx, "boxscores: day schedule unavailable",
				logging.FieldDate, date, "err", err)
			return resp, nil
		}

		leaders := leadersByGame(sched.Leaders)
		gameIDs := make([]string, 0, len(leaders))
		for gameID := range leaders {
			gameIDs = append(gameIDs, gameID)
		}

		results := fanOut(ctx, gameIDs, s.provider.TeamBoxScore)
		for _, res := range results {
			if res.err != nil {
				s.logWarn(ctx, "boxscores: game fetch failed",
					logging.FieldGameID, res.gameID, "err", res.err)
				continue
			}
			for _, team := range res.value {
				resp.BoxScores = append(resp.BoxScores, mapTeamBoxScore(res.gameID, team, leaders[res.gameID][team.TeamID]))
			}
		}

		sort.Slice(resp.BoxScores, func(i, j int) bool {
			a, b := resp.BoxScores[i], resp.BoxScores[j]
			if a.GameID != b.GameID {
				return a.GameID < b.GameID
			}
			return a.TeamID < b.TeamID
		})
		return resp, nil
	})
}

// leadersByGame indexes leader rows by game id, then team id.
func leadersByGame(rows []providers.LeaderRow) map[string]map[int]providers.LeaderRow {
	byGame := make(map[string]map[int]providers.LeaderRow)
	for _, row := range rows {
		byTeam, ok := byGame[row.GameID]
		if !ok {
			byTeam = make(map[int]providers.LeaderRow)
			byGame[row.GameID] = byTeam
		}
		byTeam[row.TeamID] = row
	}
	return byGame
}

// mapTeamBoxScore joins a team's line with its leader row. A missing leader
// row joins as the zero leader.
func mapTeamBoxScore(gameID string, team providers.TeamBoxRow, leader providers.LeaderRow) domain.TeamBoxScore {
	return domain.TeamBoxScore{
		GameID:            gameID,
		TeamID:            team.TeamID,
		Name:              team.City + " " + team.Nickname,
		Score:             team.Score,
		FieldGoals:        splits(int(team.FieldGoalsMade), int(team.FieldGoalsAtt)),
		FieldGoalPct:      team.FieldGoalPct,
		ThreePointers:     splits(int(team.ThreePointersMade), int(team.ThreePointersAtt)),
		ThreePointerPct:   team.ThreePointerPct,
		FreeThrows:        splits(int(team.FreeThrowsMade), int(team.FreeThrowsAtt)),
		FreeThrowPct:      team.FreeThrowPct,
		Rebounds:          team.Rebounds,
		OffensiveRebounds: team.ReboundsOffensive,
		Assists:           team.Assists,
		Steals:            team.Steals,
		Blocks:            team.Blocks,
		Turnovers:         team.Turnovers,
		Fouls:             team.Fouls,
		Leader: domain.GameLeader{
			Name:     namefix.Fix(leader.Name),
			Points:   leader.Points,
			Rebounds: leader.Rebounds,
			Assists:  leader.Assists,
		},
	}
}
