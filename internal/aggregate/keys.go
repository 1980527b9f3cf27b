package aggregate

import (
	"fmt"
	"strconv"
	"strings"
)

// Cache keys follow <category>[_<discriminator>] so a key's TTL category is
// readable straight out of metrics and logs.
const (
	keyScoreboard = "scoreboard"
	keyStandings  = "standings"
	keyInjuries   = "injuries"
)

func keyBoxScores(daysOffset int) string {
	return fmt.Sprintf("boxscores_%d", daysOffset)
}

func keyLeaders(daysOffset int) string {
	return fmt.Sprintf("leaders_%d", daysOffset)
}

func keyDoubleDoubles(daysOffset int) string {
	return fmt.Sprintf("doubledoubles_%d", daysOffset)
}

func keyPlayerStats(ids []int) string {
	return "player_stats_" + joinIDs(ids)
}

func keyPlayerAdvanced(ids []int) string {
	return "player_advanced_" + joinIDs(ids)
}

func keyGameLog(playerID, n int) string {
	return fmt.Sprintf("gamelog_%d_%d", playerID, n)
}

func keySeasonAverages(playerID int) string {
	return fmt.Sprintf("season_avg_%d", playerID)
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "_")
}
