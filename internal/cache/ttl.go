package cache

import "time"

// Per-category TTLs, fixed at design time to match data volatility.
const (
	// Live scores change every few seconds; keep the window tight.
	TTLScoreboard  = 30 * time.Second
	TTLBoxScores   = time.Minute
	TTLLeaders     = 5 * time.Minute
	TTLPlayerStats = 30 * time.Second
	// Standings move at most once per game day.
	TTLStandings = time.Hour
	// Data for days_offset >= 2 is immutable.
	TTLHistorical = 24 * time.Hour
	// Injury reports refresh slowly; a long window also shields the
	// scraped source from repeated load.
	TTLInjuries = 2 * time.Hour
)

// historicalOffset is the day offset at or beyond which upstream data can no
// longer change.
const historicalOffset = 2

// TTLForOffset returns the historical TTL for immutable past days and the
// given live TTL otherwise.
func TTLForOffset(live time.Duration, daysOffset int) time.Duration {
	if daysOffset >= historicalOffset {
		return TTLHistorical
	}
	return live
}
