package config

import "time"

const (
	envPort           = "PORT"
	envRosterPath     = "ROSTER_FILE"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLiveBaseURL    = "NBA_LIVE_BASE_URL"
	envStatsBaseURL   = "NBA_STATS_BASE_URL"
	envStatsProxy     = "STATS_PROXY"
	envUpstreamTimout = "UPSTREAM_TIMEOUT"
	envRetryAttempts  = "UPSTREAM_RETRY_ATTEMPTS"
	envInjuriesFile   = "INJURIES_FILE"
	envInjuriesURL    = "INJURIES_URL"
	envInjuriesOn     = "INJURIES_SCRAPE_ENABLED"
	envInjuriesEvery  = "INJURIES_SCRAPE_INTERVAL"

	defaultPort        = "8000"
	defaultRosterPath  = "static/players_with_teamid.json"
	defaultMetricsPort = "9090"

	defaultInjuriesPath = "static/cbs_injuries.json"
	defaultInjuriesURL  = "https://www.cbssports.com/nba/injuries/"
	// Re-scrape cadence matches the injuries cache window so the snapshot
	// never goes stale behind the cache.
	defaultInjuriesInterval = 2 * Duration(time.Hour)

	// Conservative upstream timeout; stats.nba.com can be slow to first byte.
	defaultUpstreamTimeout = 15 * Duration(time.Second)
	defaultRetryAttempts   = 3
)
