package aggregate

import (
	"context"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
)

// SeasonAverages returns per-game averages computed from the player's most
// recent season of career totals. Percentages are scaled to 0-100.
func (s *Service) SeasonAverages(ctx context.Context, playerID int) (domain.SeasonAverages, error) {
	player, ok, err := s.roster.ByID(playerID)
	if err != nil {
		return domain.SeasonAverages{}, err
	}
	if !ok {
		return domain.SeasonAverages{}, ErrNotFound
	}

	key := keySeasonAverages(playerID)
	return cachedFetch(s, key, cache.TTLStandings, "season_avg", func() (domain.SeasonAverages, error) {
		rows, err := s.provider.CareerSeasonTotals(ctx, playerID)
		if err != nil {
			return domain.SeasonAverages{}, err
		}
		if len(rows) == 0 {
			return domain.SeasonAverages{}, ErrNotFound
		}

		latest := rows[len(rows)-1]
		gp := latest.GamesPlayed
		perGame := func(total float64) float64 {
			if gp == 0 {
				return 0
			}
			return round1(total / float64(gp))
		}

		return domain.SeasonAverages{
			PlayerID:     player.ID,
			PlayerName:   player.Name,
			Season:       latest.Season,
			GamesPlayed:  gp,
			Minutes:      perGame(latest.Minutes),
			Points:       perGame(latest.Points),
			Rebounds:     perGame(latest.Rebounds),
			Assists:      perGame(latest.Assists),
			Steals:       perGame(latest.Steals),
			Blocks:       perGame(latest.Blocks),
			Turnovers:    perGame(latest.Turnovers),
			FGMade:       perGame(latest.FGMade),
			FGAttempted:  perGame(latest.FGAttempted),
			FGPct:        round1(latest.FGPct * 100),
			Fg3Made:      perGame(latest.Fg3Made),
			Fg3Attempted: perGame(latest.Fg3Attempted),
			Fg3Pct:       round1(latest.Fg3Pct * 100),
			FTMade:       perGame(latest.FTMade),
			FTAttempted:  perGame(latest.FTAttempted),
			FTPct:        round1(latest.FTPct * 100),
		}, nil
	})
}
