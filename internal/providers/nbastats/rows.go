package nbastats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nbastables/stats-api/internal/providers"
)

// Column indexes into stats API rowSets. The API ships rows as positional
// arrays; these offsets are part of its stable contract.
const (
	// GameHeader result set.
	headerGameID = 0
	headerStatus = 2

	// TeamLeaders result set.
	leaderGameID   = 0
	leaderTeamID   = 1
	leaderName     = 4
	leaderPoints   = 9
	leaderRebounds = 10
	leaderAssists  = 11

	// TeamStats result set (boxscoretraditionalv2).
	teamID            = 1
	teamCity          = 2
	teamNickname      = 3
	teamFGM           = 7
	teamFGA           = 8
	teamFGPct         = 9
	teamTPM           = 10
	teamTPA           = 11
	teamTPPct         = 12
	teamFTM           = 13
	teamFTA           = 14
	teamFTPct         = 15
	teamOffReb        = 16
	teamReb           = 18
	teamAst           = 19
	teamStl           = 20
	teamBlk           = 21
	teamTov           = 22
	teamFouls         = 23
	teamScoreFromEnd  = 2

	// PlayerStats result set (boxscoretraditionalv2).
	playerTeamID   = 1
	playerTeamAbbr = 2
	playerName     = 5
	playerPersonID = 6
	playerMinutes  = 14
	playerFGM      = 15
	playerFGA      = 16
	playerTPM      = 18
	playerTPA      = 19
	playerFTM      = 21
	playerFTA      = 22
	playerReb      = 26
	playerAst      = 27
	playerBlk      = 28
	playerStl      = 29
	playerTov      = 30
	playerFouls    = 31
	playerPts      = 32

	// PlayerStats result set (boxscoreadvancedv2).
	advPersonID  = 6
	advPlusMinus = 14

	// Standings result set (leaguestandingsv3).
	standCity       = 3
	standName       = 4
	standConference = 5
	standRank       = 7
	standWins       = 12
	standLosses     = 13
	standWinPct     = 14
	standHome       = 17
	standRoad       = 18
	standLastTen    = 19
	standStreak     = 36
	standGamesBack  = 37

	// CumeStatsTeamGames result set.
	teamGameMatchup = 0
	teamGameID      = 1

	// SeasonTotalsRegularSeason result set (playercareerstats).
	careerSeason = 1
	careerGP     = 6
	careerMin    = 8
	careerFGM    = 9
	careerFGA    = 10
	careerFGPct  = 11
	careerFG3M   = 12
	careerFG3A   = 13
	careerFG3Pct = 14
	careerFTM    = 15
	careerFTA    = 16
	careerFTPct  = 17
	careerReb    = 20
	careerAst    = 21
	careerStl    = 22
	careerBlk    = 23
	careerTov    = 24
	careerPts    = 26
)

// statsResponse is the envelope every stats API endpoint shares.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// findResultSet locates a result set by name.
func (r *statsResponse) findResultSet(name string) (*resultSet, error) {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: missing result set %q", providers.ErrMalformedResponse, name)
}

// rowString reads a string cell; nil reads as empty.
func rowString(row []any, idx int) (string, error) {
	v, err := cell(row, idx)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", cellTypeErr(idx, v)
	}
}

// rowInt reads a numeric cell as int; nil reads as zero. JSON numbers
// decode as float64, so that is the only numeric type accepted.
func rowInt(row []any, idx int) (int, error) {
	f, err := rowFloat(row, idx)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// rowFloat reads a numeric cell; nil reads as zero.
func rowFloat(row []any, idx int) (float64, error) {
	v, err := cell(row, idx)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return t, nil
	default:
		return 0, cellTypeErr(idx, v)
	}
}

// rowText reads a cell that upstream serves inconsistently as either a
// string or a number, such as games-back columns.
func rowText(row []any, idx int) (string, error) {
	v, err := cell(row, idx)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", cellTypeErr(idx, v)
	}
}

func cell(row []any, idx int) (any, error) {
	if idx < 0 || idx >= len(row) {
		return nil, fmt.Errorf("%w: row has %d columns, need index %d",
			providers.ErrMalformedResponse, len(row), idx)
	}
	return row[idx], nil
}

func cellTypeErr(idx int, v any) error {
	return fmt.Errorf("%w: unexpected type %T at column %d", providers.ErrMalformedResponse, v, idx)
}
