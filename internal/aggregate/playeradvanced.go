package aggregate

import (
	"context"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/timeutil"
)

// PlayerAdvanced returns the requested players' lines from today's games,
// enriched with shooting splits, efficiency metrics, plus-minus, and
// double-double flags.
func (s *Service) PlayerAdvanced(ctx context.Context, ids []int) (domain.PlayerAdvancedResponse, error) {
	key := keyPlayerAdvanced(ids)

	return cachedFetch(s, key, cache.TTLPlayerStats, "player_stats", func() (domain.PlayerAdvancedResponse, error) {
		lines, err := s.playerLiveLines(ctx, ids, true)
		if err != nil {
			return domain.PlayerAdvancedResponse{}, err
		}

		resp := domain.PlayerAdvancedResponse{
			Date:    timeutil.DisplayDate(s.now(), 0),
			Players: []domain.PlayerAdvancedStats{},
		}
		for _, line := range lines {
			resp.Players = append(resp.Players, mapPlayerAdvancedStats(line))
		}
		return resp, nil
	})
}

func mapPlayerAdvancedStats(line playerLiveLine) domain.PlayerAdvancedStats {
	st := line.player.Statistics
	cats := doubleDigitCategories(st.Points, st.ReboundsTotal, st.Assists, st.Steals, st.Blocks)
	return domain.PlayerAdvancedStats{
		PlayerGameStats: mapPlayerGameStats(line),
		FieldGoals:      splits(st.FieldGoalsMade, st.FieldGoalsAttempted),
		FieldGoalPct:    shootingPct(st.FieldGoalsMade, st.FieldGoalsAttempted),
		FreeThrows:      splits(st.FreeThrowsMade, st.FreeThrowsAttempted),
		FreeThrowPct:    shootingPct(st.FreeThrowsMade, st.FreeThrowsAttempted),
		EffectiveFGPct:  effectiveFGPct(st.FieldGoalsMade, st.ThreePointersMade, st.FieldGoalsAttempted),
		TrueShootingPct: trueShootingPct(st.Points, st.FieldGoalsAttempted, st.FreeThrowsAttempted),
		PlusMinus:       line.plusMinus,
		IsDoubleDouble:  len(cats) >= 2,
		IsTripleDouble:  len(cats) >= 3,
	}
}
