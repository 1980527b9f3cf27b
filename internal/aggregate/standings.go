package aggregate

import (
	"context"
	"sort"
	"strings"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/providers"
)

// unrankedSentinel sorts teams with a missing rank to the bottom.
const unrankedSentinel = 99

// Standings returns current league standings split by conference, ordered
// by playoff rank.
func (s *Service) Standings(ctx context.Context) (domain.StandingsResponse, error) {
	return cachedFetch(s, keyStandings, cache.TTLStandings, "standings", func() (domain.StandingsResponse, error) {
		rows, err := s.provider.Standings(ctx)
		if err != nil {
			return domain.StandingsResponse{}, err
		}

		resp := domain.StandingsResponse{
			East: []domain.StandingsRow{},
			West: []domain.StandingsRow{},
		}
		for _, row := range rows {
			mapped := mapStandingsRow(row)
			switch strings.ToLower(row.Conference) {
			case "east":
				resp.East = append(resp.East, mapped)
			case "west":
				resp.West = append(resp.West, mapped)
			}
		}

		byRank := func(rows []domain.StandingsRow) func(i, j int) bool {
			return func(i, j int) bool { return rows[i].Rank < rows[j].Rank }
		}
		sort.SliceStable(resp.East, byRank(resp.East))
		sort.SliceStable(resp.West, byRank(resp.West))
		return resp, nil
	})
}

func mapStandingsRow(row providers.StandingRow) domain.StandingsRow {
	rank := row.Rank
	if rank == 0 {
		rank = unrankedSentinel
	}
	gamesBack := row.GamesBack
	if gamesBack == "" {
		gamesBack = "-"
	}
	return domain.StandingsRow{
		Rank:       rank,
		Team:       row.City + " " + row.Name,
		Wins:       row.Wins,
		Losses:     row.Losses,
		WinPct:     row.WinPct,
		GamesBack:  gamesBack,
		HomeRecord: row.HomeRecord,
		RoadRecord: row.RoadRecord,
		LastTen:    row.LastTen,
		Streak:     row.Streak,
	}
}
