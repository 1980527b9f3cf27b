// Package injuries scrapes the CBS Sports injury report, persists it as a
// snapshot file, and refreshes it on a schedule. Serving reads the snapshot
// only, so a scrape outage degrades to stale data instead of errors.
package injuries

// PlayerInjury is one player's entry on a team's injury report.
type PlayerInjury struct {
	Name    string `json:"name"`
	Updated string `json:"updated"`
	Injury  string `json:"injury"`
	Status  string `json:"status"`
}

// TeamReport groups a team's injured players.
type TeamReport struct {
	Team    string         `json:"team"`
	Players []PlayerInjury `json:"players"`
}

// Report is the full snapshot served by the injuries endpoint.
type Report struct {
	Injuries    []TeamReport `json:"injuries"`
	Source      string       `json:"source"`
	LastUpdated string       `json:"lastUpdated"`
}
