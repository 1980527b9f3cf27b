package domain

// DoubleDoublePlayer is a player who reached double digits in at least two
// statistical categories on the requested day.
type DoubleDoublePlayer struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Team       string   `json:"team"`
	Points     int      `json:"points"`
	Rebounds   int      `json:"rebounds"`
	Assists    int      `json:"assists"`
	Steals     int      `json:"steals"`
	Blocks     int      `json:"blocks"`
	Categories []string `json:"categories"`
}

// DoubleDoublesResponse is the /api/doubledoubles payload. Triple-doubles
// are listed separately and excluded from the double-doubles list.
type DoubleDoublesResponse struct {
	Date          string               `json:"date"`
	TripleDoubles []DoubleDoublePlayer `json:"tripleDoubles"`
	DoubleDoubles []DoubleDoublePlayer `json:"doubleDoubles"`
}
