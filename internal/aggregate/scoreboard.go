package aggregate

import (
	"context"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/namefix"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/timeutil"
)

// Scoreboard returns today's games with scores, converted tip-off times,
// and each team's statistical leader.
func (s *Service) Scoreboard(ctx context.Context) (domain.ScoreboardResponse, error) {
	return cachedFetch(s, keyScoreboard, cache.TTLScoreboard, "scoreboard", func() (domain.ScoreboardResponse, error) {
		games, err := s.provider.LiveScoreboard(ctx)
		if err != nil {
			return domain.ScoreboardResponse{}, err
		}

		resp := domain.ScoreboardResponse{Games: make([]domain.GameSummary, 0, len(games))}
		for _, g := range games {
			resp.Games = append(resp.Games, domain.GameSummary{
				GameID:   g.GameID,
				Status:   timeutil.ConvertGameTime(g.Status, s.now()),
				HomeTeam: mapScoreboardTeam(g.Home),
				AwayTeam: mapScoreboardTeam(g.Away),
			})
		}
		return resp, nil
	})
}

func mapScoreboardTeam(t providers.ScoreboardTeam) domain.ScoreboardTeam {
	return domain.ScoreboardTeam{
		Name:  t.Name,
		Score: t.Score,
		Leader: domain.GameLeader{
			Name:     namefix.Fix(t.Leader.Name),
			Points:   t.Leader.Points,
			Rebounds: t.Leader.Rebounds,
			Assists:  t.Leader.Assists,
		},
	}
}
