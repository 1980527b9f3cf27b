package aggregate

import (
	"context"
	"strings"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/domain"
	"github.com/nbastables/stats-api/internal/logging"
)

// LastNGames returns a player's lines from their team's n most recent
// games. Games the team played without the player are marked DNP.
func (s *Service) LastNGames(ctx context.Context, playerID, n int) (domain.GameLogResponse, error) {
	player, ok, err := s.roster.ByID(playerID)
	if err != nil {
		return domain.GameLogResponse{}, err
	}
	if !ok {
		return domain.GameLogResponse{}, ErrNotFound
	}

	key := keyGameLog(playerID, n)
	return cachedFetch(s, key, cache.TTLHistorical, "gamelog", func() (domain.GameLogResponse, error) {
		games, err := s.provider.TeamGameLog(ctx, player.TeamID)
		if err != nil {
			return domain.GameLogResponse{}, err
		}
		if len(games) > n {
			games = games[:n]
		}

		resp := domain.GameLogResponse{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Games:      make([]domain.GameLogEntry, 0, len(games)),
		}

		gameIDs := make([]string, 0, len(games))
		for _, g := range games {
			gameIDs = append(gameIDs, g.GameID)
		}
		lines := make(map[string]domain.GameLogEntry, len(games))
		for _, res := range fanOut(ctx, gameIDs, s.provider.PlayerBoxScore) {
			if res.err != nil {
				s.logWarn(ctx, "game log: game fetch failed",
					logging.FieldGameID, res.gameID, "err", res.err)
				continue
			}
			for _, row := range res.value {
				if row.PersonID != player.ID {
					continue
				}
				minutes := row.Minutes
				entry := domain.GameLogEntry{
					GameID:   res.gameID,
					Minutes:  minutes,
					Points:   row.Points,
					Rebounds: row.Rebounds,
					Assists:  row.Assists,
				}
				if minutes == "" {
					entry.Minutes = "0:00"
					entry.DNP = true
				}
				lines[res.gameID] = entry
				break
			}
		}

		// Preserve the game log's newest-first order; a game without a row
		// for the player is a DNP.
		for _, g := range games {
			entry, ok := lines[g.GameID]
			if !ok {
				entry = domain.GameLogEntry{GameID: g.GameID, Minutes: "0:00", DNP: true}
			}
			entry.Date, entry.Matchup = splitMatchup(g.Matchup)
			resp.Games = append(resp.Games, entry)
		}
		return resp, nil
	})
}

// splitMatchup separates the leading date from a "MM/DD/YYYY AAA @ BBB"
// matchup string. Strings without a space pass through as the matchup.
func splitMatchup(matchup string) (date, rest string) {
	parts := strings.SplitN(strings.TrimSpace(matchup), " ", 2)
	if len(parts) < 2 {
		return "", parts[0]
	}
	return parts[0], parts[1]
}
