package nbastats

import "time"

const (
	defaultLiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultHTTPTimeout  = 15 * time.Second
)

// Live CDN feed paths.
const (
	liveScoreboardPath = "/scoreboard/todaysScoreboard_00.json"
	liveBoxScorePath   = "/boxscore/boxscore_%s.json"
)

// Stats API endpoint names.
const (
	endpointScoreboard   = "scoreboardv2"
	endpointTraditional  = "boxscoretraditionalv2"
	endpointAdvanced     = "boxscoreadvancedv2"
	endpointStandings    = "leaguestandingsv3"
	endpointCareerStats  = "playercareerstats"
	endpointTeamGames    = "cumestatsteamgames"
	leagueID             = "00"
	seasonTypeRegular    = "Regular Season"
	seasonRolloverMonth  = time.October
)

// Result set names within stats API responses.
const (
	resultSetGameHeader   = "GameHeader"
	resultSetTeamLeaders  = "TeamLeaders"
	resultSetTeamStats    = "TeamStats"
	resultSetPlayerStats  = "PlayerStats"
	resultSetStandings    = "Standings"
	resultSetSeasonTotals = "SeasonTotalsRegularSeason"
	resultSetTeamGames    = "CumeStatsTeamGames"
)
