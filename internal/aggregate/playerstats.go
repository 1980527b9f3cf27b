package aggregate

import (
	"context"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/logging"
	"github.com/nbastables/stats-api/internal/namefix"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/timeutil"
)

// playerLiveLine is one requested player's live line joined with the
// advanced-feed plus-minus where available.
type playerLiveLine struct {
	player    providers.LivePlayer
	team      string
	plusMinus float64
}

// PlayerStats returns the requested players' lines from today's games.
// Unknown or inactive ids are silently excluded, so a request where
// nothing resolves yields an empty list.
func (s *Service) PlayerStats(ctx context.Context, ids []int) (domain.PlayerStatsResponse, error) {
	key := keyPlayerStats(ids)

	return cachedFetch(s, key, cache.TTLPlayerStats, "player_stats", func() (domain.PlayerStatsResponse, error) {
		lines, err := s.playerLiveLines(ctx, ids, false)
		if err != nil {
			return domain.PlayerStatsResponse{}, err
		}

		resp := domain.PlayerStatsResponse{
			Date:    timeutil.DisplayDate(s.now(), 0),
			Players: []domain.PlayerGameStats{},
		}
		for _, line := range lines {
			resp.Players = append(resp.Players, mapPlayerGameStats(line))
		}
		return resp, nil
	})
}

// playerLiveLines resolves ids against the roster, scans today's live
// scoreboard for games involving the players' teams, and fans out the live
// boxscore fetches. withAdvanced additionally joins the advanced feed's
// plus-minus, falling back to the live value per player.
func (s *Service) playerLiveLines(ctx context.Context, ids []int, withAdvanced bool) ([]playerLiveLine, error) {
	wanted := make(map[int]bool, len(ids))
	teamIDs := make(map[int]bool)
	for _, id := range ids {
		p, ok, err := s.roster.ByID(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		wanted[p.ID] = true
		teamIDs[p.TeamID] = true
	}
	if len(wanted) == 0 {
		return nil, nil
	}

	games, err := s.provider.LiveScoreboard(ctx)
	if err != nil {
		return nil, err
	}

	var gameIDs []string
	for _, g := range games {
		if teamIDs[g.Home.TeamID] || teamIDs[g.Away.TeamID] {
			gameIDs = append(gameIDs, g.GameID)
		}
	}

	var lines []playerLiveLine
	results := fanOut(ctx, gameIDs, s.provider.LiveBoxScore)
	for _, res := range results {
		if res.err != nil {
			s.logWarn(ctx, "player stats: game fetch failed",
				logging.FieldGameID, res.gameID, "err", res.err)
			continue
		}

		plusMinus := map[int]float64{}
		if withAdvanced {
			advanced, err := s.provider.AdvancedBoxScore(ctx, res.gameID)
			if err != nil {
				s.logWarn(ctx, "player stats: advanced boxscore unavailable",
					logging.FieldGameID, res.gameID, "err", err)
			} else {
				for _, row := range advanced {
					plusMinus[row.PersonID] = row.PlusMinus
				}
			}
		}

		for _, team := range []providers.LiveBoxTeam{res.value.Home, res.value.Away} {
			for _, p := range team.Players {
				if !wanted[p.PersonID] || p.Status != playerStatusActive {
					continue
				}
				line := playerLiveLine{player: p, team: team.Tricode, plusMinus: p.Statistics.PlusMinusPoints}
				if pm, ok := plusMinus[p.PersonID]; ok {
					line.plusMinus = pm
				}
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}

func mapPlayerGameStats(line playerLiveLine) domain.PlayerGameStats {
	st := line.player.Statistics
	return domain.PlayerGameStats{
		ID:            line.player.PersonID,
		Name:          namefix.Fix(line.player.Name),
		Team:          line.team,
		Minutes:       timeutil.FormatISODuration(st.Minutes),
		Points:        st.Points,
		ThreePointers: st.ThreePointersMade,
		Rebounds:      st.ReboundsTotal,
		Assists:       st.Assists,
		Blocks:        st.Blocks,
		Steals:        st.Steals,
		Turnovers:     st.Turnovers,
	}
}
