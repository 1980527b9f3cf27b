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

// DoubleDoubles lists players who reached double digits in two or more
// categories on the requested day. Offset zero reads the live scoreboard so
// in-progress games count; past days use the historical schedule.
func (s *Service) DoubleDoubles(ctx context.Context, daysOffset int) (domain.DoubleDoublesResponse, error) {
	key := keyDoubleDoubles(daysOffset)
	ttl := cache.TTLForOffset(cache.TTLBoxScores, daysOffset)

	return cachedFetch(s, key, ttl, "doubledoubles", func() (domain.DoubleDoublesResponse, error) {
		resp := domain.DoubleDoublesResponse{
			Date:          timeutil.DisplayDate(s.now(), daysOffset),
			TripleDoubles: []domain.DoubleDoublePlayer{},
			DoubleDoubles: []domain.DoubleDoublePlayer{},
		}

		gameIDs, err := s.doubleDoubleGameIDs(ctx, daysOffset)
		if err != nil {
			return domain.DoubleDoublesResponse{}, err
		}

		results := fanOut(ctx, gameIDs, s.provider.PlayerBoxScore)
		for _, res := range results {
			if res.err != nil {
				s.logWarn(ctx, "double-doubles: game fetch failed",
					logging.FieldGameID, res.gameID, "err", res.err)
				continue
			}
			for _, row := range res.value {
				cats := doubleDigitCategories(row.Points, row.Rebounds, row.Assists, row.Steals, row.Blocks)
				if len(cats) < 2 {
					continue
				}
				player := mapDoubleDoublePlayer(row, cats)
				if len(cats) >= 3 {
					resp.TripleDoubles = append(resp.TripleDoubles, player)
				} else {
					resp.DoubleDoubles = append(resp.DoubleDoubles, player)
				}
			}
		}

		byPoints := func(rows []domain.DoubleDoublePlayer) func(i, j int) bool {
			return func(i, j int) bool { return rows[i].Points > rows[j].Points }
		}
		sort.SliceStable(resp.TripleDoubles, byPoints(resp.TripleDoubles))
		sort.SliceStable(resp.DoubleDoubles, byPoints(resp.DoubleDoubles))
		return resp, nil
	})
}

func (s *Service) doubleDoubleGameIDs(ctx context.Context, daysOffset int) ([]string, error) {
	if daysOffset == 0 {
		games, err := s.provider.LiveScoreboard(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(games))
		for _, g := range games {
			ids = append(ids, g.GameID)
		}
		return ids, nil
	}

	date := timeutil.QueryDate(s.now(), daysOffset)
	sched, err := s.provider.DaySchedule(ctx, date)
	if err != nil {
		return nil, err
	}
	return startedGameIDs(sched.Headers), nil
}

func mapDoubleDoublePlayer(row providers.PlayerBoxRow, cats []string) domain.DoubleDoublePlayer {
	return domain.DoubleDoublePlayer{
		ID:         row.PersonID,
		Name:       namefix.Fix(row.Name),
		Team:       row.TeamAbbrev,
		Points:     row.Points,
		Rebounds:   row.Rebounds,
		Assists:    row.Assists,
		Steals:     row.Steals,
		Blocks:     row.Blocks,
		Categories: cats,
	}
}
