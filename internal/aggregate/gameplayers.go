package aggregate

import (
	"context"
	"sort"

	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/logging"
	"github.com/nbastables/stats-api/internal/namefix"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/timeutil"
)

// GamePlayers returns every player's line for a live or finished game,
// merging plus-minus from the advanced boxscore. The live boxscore is
// required; the advanced feed is best-effort and falls back to the live
// feed's plus-minus. Responses are not cached: callers poll this during
// live games and the payload changes every possession.
func (s *Service) GamePlayers(ctx context.Context, gameID string) (domain.GamePlayersResponse, error) {
	live, err := s.provider.LiveBoxScore(ctx, gameID)
	if err != nil {
		return domain.GamePlayersResponse{}, err
	}

	plusMinus := map[int]float64{}
	advanced, err := s.provider.AdvancedBoxScore(ctx, gameID)
	if err != nil {
		s.logWarn(ctx, "game players: advanced boxscore unavailable",
			logging.FieldGameID, gameID, "err", err)
	} else {
		for _, row := range advanced {
			plusMinus[row.PersonID] = row.PlusMinus
		}
	}

	return domain.GamePlayersResponse{
		GameID: live.GameID,
		Status: live.Status,
		Teams: []domain.GamePlayersTeam{
			mapGamePlayersTeam(live.Home, plusMinus),
			mapGamePlayersTeam(live.Away, plusMinus),
		},
	}, nil
}

func mapGamePlayersTeam(team providers.LiveBoxTeam, plusMinus map[int]float64) domain.GamePlayersTeam {
	players := make([]domain.GamePlayerLine, 0, len(team.Players))
	seconds := make(map[int]int, len(team.Players))

	for _, p := range team.Players {
		if p.Status != playerStatusActive {
			continue
		}
		st := p.Statistics
		line := domain.GamePlayerLine{
			ID:                p.PersonID,
			Name:              namefix.Fix(p.Name),
			Minutes:           timeutil.FormatISODuration(st.Minutes),
			Points:            st.Points,
			FieldGoals:        splits(st.FieldGoalsMade, st.FieldGoalsAttempted),
			FieldGoalPct:      shootingPct(st.FieldGoalsMade, st.FieldGoalsAttempted),
			ThreePointers:     splits(st.ThreePointersMade, st.ThreePointersAttempt),
			FreeThrows:        splits(st.FreeThrowsMade, st.FreeThrowsAttempted),
			Rebounds:          st.ReboundsTotal,
			OffensiveRebounds: st.ReboundsOffensive,
			DefensiveRebounds: st.ReboundsDefensive,
			Assists:           st.Assists,
			Steals:            st.Steals,
			Blocks:            st.Blocks,
			Turnovers:         st.Turnovers,
			Fouls:             st.FoulsPersonal,
			PlusMinus:         st.PlusMinusPoints,
			EffectiveFGPct:    effectiveFGPct(st.FieldGoalsMade, st.ThreePointersMade, st.FieldGoalsAttempted),
			TrueShootingPct:   trueShootingPct(st.Points, st.FieldGoalsAttempted, st.FreeThrowsAttempted),
		}
		if pm, ok := plusMinus[p.PersonID]; ok {
			line.PlusMinus = pm
		}
		players = append(players, line)
		seconds[p.PersonID] = timeutil.ParseISODuration(st.Minutes)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return seconds[players[i].ID] > seconds[players[j].ID]
	})

	return domain.GamePlayersTeam{
		TeamID:  team.TeamID,
		Name:    team.Name,
		Score:   team.Score,
		Players: players,
	}
}
