package nbastats

import (
	"context"
	"net/url"
	"strconv"

	"github.com/nbastables/stats-api/internal/providers"
)

// DaySchedule returns the game headers and team leaders for a date.
func (c *Client) DaySchedule(ctx context.Context, date string) (*providers.DaySchedule, error) {
	params := url.Values{}
	params.Set("GameDate", date)
	params.Set("LeagueID", leagueID)
	params.Set("DayOffset", "0")

	var payload statsResponse
	if err := c.getJSON(ctx, c.statsURL(endpointScoreboard, params), true, &payload); err != nil {
		return nil, err
	}

	headerSet, err := payload.findResultSet(resultSetGameHeader)
	if err != nil {
		return nil, err
	}
	leaderSet, err := payload.findResultSet(resultSetTeamLeaders)
	if err != nil {
		return nil, err
	}

	sched := &providers.DaySchedule{
		Headers: make([]providers.GameHeader, 0, len(headerSet.RowSet)),
		Leaders: make([]providers.LeaderRow, 0, len(leaderSet.RowSet)),
	}
	for _, row := range headerSet.RowSet {
		header, err := parseGameHeader(row)
		if err != nil {
			return nil, err
		}
		sched.Headers = append(sched.Headers, header)
	}
	for _, row := range leaderSet.RowSet {
		leader, err := parseLeaderRow(row)
		if err != nil {
			return nil, err
		}
		sched.Leaders = append(sched.Leaders, leader)
	}
	return sched, nil
}

// TeamBoxScore returns both teams' traditional lines for one game.
func (c *Client) TeamBoxScore(ctx context.Context, gameID string) ([]providers.TeamBoxRow, error) {
	payload, err := c.traditionalBoxScore(ctx, gameID)
	if err != nil {
		return nil, err
	}
	set, err := payload.findResultSet(resultSetTeamStats)
	if err != nil {
		return nil, err
	}

	rows := make([]providers.TeamBoxRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		parsed, err := parseTeamBoxRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed)
	}
	return rows, nil
}

// PlayerBoxScore returns every player's traditional line for one game.
func (c *Client) PlayerBoxScore(ctx context.Context, gameID string) ([]providers.PlayerBoxRow, error) {
	payload, err := c.traditionalBoxScore(ctx, gameID)
	if err != nil {
		return nil, err
	}
	set, err := payload.findResultSet(resultSetPlayerStats)
	if err != nil {
		return nil, err
	}

	rows := make([]providers.PlayerBoxRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		parsed, err := parsePlayerBoxRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed)
	}
	return rows, nil
}

// AdvancedBoxScore returns per-player advanced rows for one game.
func (c *Client) AdvancedBoxScore(ctx context.Context, gameID string) ([]providers.AdvancedPlayerRow, error) {
	params := boxScoreParams(gameID)

	var payload statsResponse
	if err := c.getJSON(ctx, c.statsURL(endpointAdvanced, params), true, &payload); err != nil {
		return nil, err
	}
	set, err := payload.findResultSet(resultSetPlayerStats)
	if err != nil {
		return nil, err
	}

	rows := make([]providers.AdvancedPlayerRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		personID, err := rowInt(row, advPersonID)
		if err != nil {
			return nil, err
		}
		plusMinus, err := rowFloat(row, advPlusMinus)
		if err != nil {
			return nil, err
		}
		rows = append(rows, providers.AdvancedPlayerRow{PersonID: personID, PlusMinus: plusMinus})
	}
	return rows, nil
}

// Standings returns the current league standings.
func (c *Client) Standings(ctx context.Context) ([]providers.StandingRow, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", c.currentSeason())
	params.Set("SeasonType", seasonTypeRegular)

	var payload statsResponse
	if err := c.getJSON(ctx, c.statsURL(endpointStandings, params), true, &payload); err != nil {
		return nil, err
	}
	set, err := payload.findResultSet(resultSetStandings)
	if err != nil {
		return nil, err
	}

	rows := make([]providers.StandingRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		parsed, err := parseStandingRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed)
	}
	return rows, nil
}

// TeamGameLog returns a team's completed games this season, newest first.
func (c *Client) TeamGameLog(ctx context.Context, teamIDValue int) ([]providers.TeamGameRow, error) {
	params := url.Values{}
	params.Set("TeamID", strconv.Itoa(teamIDValue))
	params.Set("LeagueID", leagueID)
	params.Set("Season", c.currentSeason())
	params.Set("SeasonType", seasonTypeRegular)

	var payload statsResponse
	if err := c.getJSON(ctx, c.statsURL(endpointTeamGames, params), true, &payload); err != nil {
		return nil, err
	}
	set, err := payload.findResultSet(resultSetTeamGames)
	if err != nil {
		return nil, err
	}

	rows := make([]providers.TeamGameRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		matchup, err := rowString(row, teamGameMatchup)
		if err != nil {
			return nil, err
		}
		gameID, err := rowString(row, teamGameID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, providers.TeamGameRow{Matchup: matchup, GameID: gameID})
	}
	return rows, nil
}

// CareerSeasonTotals returns a player's per-season career totals.
func (c *Client) CareerSeasonTotals(ctx context.Context, playerID int) ([]providers.SeasonTotalsRow, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", "Totals")

	var payload statsResponse
	if err := c.getJSON(ctx, c.statsURL(endpointCareerStats, params), true, &payload); err != nil {
		return nil, err
	}
	set, err := payload.findResultSet(resultSetSeasonTotals)
	if err != nil {
		return nil, err
	}

	rows := make([]providers.SeasonTotalsRow, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		parsed, err := parseSeasonTotalsRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed)
	}
	return rows, nil
}

func (c *Client) traditionalBoxScore(ctx context.Context, gameID string) (*statsResponse, error) {
	var payload statsResponse
	if err := c.getJSON(ctx, c.statsURL(endpointTraditional, boxScoreParams(gameID)), true, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func boxScoreParams(gameID string) url.Values {
	params := url.Values{}
	params.Set("GameID", gameID)
	params.Set("StartPeriod", "0")
	params.Set("EndPeriod", "10")
	params.Set("StartRange", "0")
	params.Set("EndRange", "0")
	params.Set("RangeType", "0")
	return params
}

func parseGameHeader(row []any) (providers.GameHeader, error) {
	gameID, err := rowString(row, headerGameID)
	if err != nil {
		return providers.GameHeader{}, err
	}
	status, err := rowInt(row, headerStatus)
	if err != nil {
		return providers.GameHeader{}, err
	}
	return providers.GameHeader{GameID: gameID, Status: status}, nil
}

func parseLeaderRow(row []any) (providers.LeaderRow, error) {
	var leader providers.LeaderRow
	var err error
	if leader.GameID, err = rowString(row, leaderGameID); err != nil {
		return leader, err
	}
	if leader.TeamID, err = rowInt(row, leaderTeamID); err != nil {
		return leader, err
	}
	if leader.Name, err = rowString(row, leaderName); err != nil {
		return leader, err
	}
	if leader.Points, err = rowFloat(row, leaderPoints); err != nil {
		return leader, err
	}
	if leader.Rebounds, err = rowFloat(row, leaderRebounds); err != nil {
		return leader, err
	}
	if leader.Assists, err = rowFloat(row, leaderAssists); err != nil {
		return leader, err
	}
	return leader, nil
}

func parseTeamBoxRow(row []any) (providers.TeamBoxRow, error) {
	var t providers.TeamBoxRow
	var err error
	if t.TeamID, err = rowInt(row, teamID); err != nil {
		return t, err
	}
	if t.City, err = rowString(row, teamCity); err != nil {
		return t, err
	}
	if t.Nickname, err = rowString(row, teamNickname); err != nil {
		return t, err
	}
	floats := []struct {
		dst *float64
		idx int
	}{
		{&t.FieldGoalsMade, teamFGM},
		{&t.FieldGoalsAtt, teamFGA},
		{&t.FieldGoalPct, teamFGPct},
		{&t.ThreePointersMade, teamTPM},
		{&t.ThreePointersAtt, teamTPA},
		{&t.ThreePointerPct, teamTPPct},
		{&t.FreeThrowsMade, teamFTM},
		{&t.FreeThrowsAtt, teamFTA},
		{&t.FreeThrowPct, teamFTPct},
		{&t.ReboundsOffensive, teamOffReb},
		{&t.Rebounds, teamReb},
		{&t.Assists, teamAst},
		{&t.Steals, teamStl},
		{&t.Blocks, teamBlk},
		{&t.Turnovers, teamTov},
		{&t.Fouls, teamFouls},
	}
	for _, f := range floats {
		if *f.dst, err = rowFloat(row, f.idx); err != nil {
			return t, err
		}
	}
	// Points sit at the end of the row, after optional trailing columns
	// vary by endpoint version; count back from the tail.
	if t.Score, err = rowInt(row, len(row)-teamScoreFromEnd); err != nil {
		return t, err
	}
	return t, nil
}

func parsePlayerBoxRow(row []any) (providers.PlayerBoxRow, error) {
	var p providers.PlayerBoxRow
	var err error
	if p.PersonID, err = rowInt(row, playerPersonID); err != nil {
		return p, err
	}
	if p.Name, err = rowString(row, playerName); err != nil {
		return p, err
	}
	if p.TeamID, err = rowInt(row, playerTeamID); err != nil {
		return p, err
	}
	if p.TeamAbbrev, err = rowString(row, playerTeamAbbr); err != nil {
		return p, err
	}
	if p.Minutes, err = rowText(row, playerMinutes); err != nil {
		return p, err
	}
	ints := []struct {
		dst *int
		idx int
	}{
		{&p.FieldGoalsMade, playerFGM},
		{&p.FieldGoalsAtt, playerFGA},
		{&p.ThreePointersMade, playerTPM},
		{&p.ThreePointersAtt, playerTPA},
		{&p.FreeThrowsMade, playerFTM},
		{&p.FreeThrowsAtt, playerFTA},
		{&p.Rebounds, playerReb},
		{&p.Assists, playerAst},
		{&p.Blocks, playerBlk},
		{&p.Steals, playerStl},
		{&p.Turnovers, playerTov},
		{&p.Fouls, playerFouls},
		{&p.Points, playerPts},
	}
	for _, f := range ints {
		if *f.dst, err = rowInt(row, f.idx); err != nil {
			return p, err
		}
	}
	return p, nil
}

func parseStandingRow(row []any) (providers.StandingRow, error) {
	var s providers.StandingRow
	var err error
	if s.City, err = rowString(row, standCity); err != nil {
		return s, err
	}
	if s.Name, err = rowString(row, standName); err != nil {
		return s, err
	}
	if s.Conference, err = rowString(row, standConference); err != nil {
		return s, err
	}
	if s.Rank, err = rowInt(row, standRank); err != nil {
		return s, err
	}
	if s.Wins, err = rowInt(row, standWins); err != nil {
		return s, err
	}
	if s.Losses, err = rowInt(row, standLosses); err != nil {
		return s, err
	}
	if s.WinPct, err = rowFloat(row, standWinPct); err != nil {
		return s, err
	}
	if s.HomeRecord, err = rowText(row, standHome); err != nil {
		return s, err
	}
	if s.RoadRecord, err = rowText(row, standRoad); err != nil {
		return s, err
	}
	if s.LastTen, err = rowText(row, standLastTen); err != nil {
		return s, err
	}
	if s.Streak, err = rowText(row, standStreak); err != nil {
		return s, err
	}
	if s.GamesBack, err = rowText(row, standGamesBack); err != nil {
		return s, err
	}
	return s, nil
}

func parseSeasonTotalsRow(row []any) (providers.SeasonTotalsRow, error) {
	var s providers.SeasonTotalsRow
	var err error
	if s.Season, err = rowString(row, careerSeason); err != nil {
		return s, err
	}
	if s.GamesPlayed, err = rowInt(row, careerGP); err != nil {
		return s, err
	}
	floats := []struct {
		dst *float64
		idx int
	}{
		{&s.Minutes, careerMin},
		{&s.FGMade, careerFGM},
		{&s.FGAttempted, careerFGA},
		{&s.FGPct, careerFGPct},
		{&s.Fg3Made, careerFG3M},
		{&s.Fg3Attempted, careerFG3A},
		{&s.Fg3Pct, careerFG3Pct},
		{&s.FTMade, careerFTM},
		{&s.FTAttempted, careerFTA},
		{&s.FTPct, careerFTPct},
		{&s.Rebounds, careerReb},
		{&s.Assists, careerAst},
		{&s.Steals, careerStl},
		{&s.Blocks, careerBlk},
		{&s.Turnovers, careerTov},
		{&s.Points, careerPts},
	}
	for _, f := range floats {
		if *f.dst, err = rowFloat(row, f.idx); err != nil {
			return s, err
		}
	}
	return s, nil
}
