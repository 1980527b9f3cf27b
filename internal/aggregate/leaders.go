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

// leaderLine is one active player flattened out of a live boxscore.
type leaderLine struct {
	name  string
	team  string
	stats providers.LivePlayerStats
}

// leaderCategories define the surfaced statistics in display order.
var leaderCategories = []struct {
	label string
	value func(providers.LivePlayerStats) int
}{
	{"Points", func(s providers.LivePlayerStats) int { return s.Points }},
	{"Rebounds", func(s providers.LivePlayerStats) int { return s.ReboundsTotal }},
	{"Assists", func(s providers.LivePlayerStats) int { return s.Assists }},
	{"Blocks", func(s providers.LivePlayerStats) int { return s.Blocks }},
	{"Steals", func(s providers.LivePlayerStats) int { return s.Steals }},
	{"3-Pointers", func(s providers.LivePlayerStats) int { return s.ThreePointersMade }},
}

// Leaders returns the per-category statistical leaders across all of a
// day's started games. Ties share the category; categories are omitted only
// when no active players were collected at all. Failing to list the day's
// games is a hard error, while individual game fetches degrade to a partial
// result.
func (s *Service) Leaders(ctx context.Context, daysOffset int) (domain.LeadersResponse, error) {
	key := keyLeaders(daysOffset)
	ttl := cache.TTLForOffset(cache.TTLLeaders, daysOffset)

	return cachedFetch(s, key, ttl, "leaders", func() (domain.LeadersResponse, error) {
		resp := domain.LeadersResponse{
			Date:       timeutil.DisplayDate(s.now(), daysOffset),
			Categories: []domain.LeaderCategory{},
		}

		date := timeutil.QueryDate(s.now(), daysOffset)
		sched, err := s.provider.DaySchedule(ctx, date)
		if err != nil {
			return domain.LeadersResponse{}, err
		}

		var lines []leaderLine
		results := fanOut(ctx, startedGameIDs(sched.Headers), s.provider.LiveBoxScore)
		for _, res := range results {
			if res.err != nil {
				s.logWarn(ctx, "leaders: game fetch failed",
					logging.FieldGameID, res.gameID, "err", res.err)
				continue
			}
			lines = append(lines, activeLines(res.value.Home)...)
			lines = append(lines, activeLines(res.value.Away)...)
		}

		for _, category := range leaderCategories {
			if entry := buildCategory(category.label, category.value, lines); entry != nil {
				resp.Categories = append(resp.Categories, *entry)
			}
		}
		return resp, nil
	})
}

func activeLines(team providers.LiveBoxTeam) []leaderLine {
	lines := make([]leaderLine, 0, len(team.Players))
	for _, p := range team.Players {
		if p.Status != playerStatusActive {
			continue
		}
		lines = append(lines, leaderLine{name: p.Name, team: team.Tricode, stats: p.Statistics})
	}
	return lines
}

// buildCategory finds the top value and collects every player tied at it,
// including a zero maximum. Nil means no players at all.
func buildCategory(label string, value func(providers.LivePlayerStats) int, lines []leaderLine) *domain.LeaderCategory {
	if len(lines) == 0 {
		return nil
	}
	best := 0
	for _, line := range lines {
		if v := value(line.stats); v > best {
			best = v
		}
	}

	entry := domain.LeaderCategory{Category: label}
	for _, line := range lines {
		if value(line.stats) == best {
			entry.Players = append(entry.Players, domain.LeaderEntry{
				Name:  namefix.Fix(line.name),
				Team:  line.team,
				Value: float64(best),
			})
		}
	}
	return &entry
}
