package config

const (
	defaultLiveBaseURL  = "https://cdn.nba.com/static/json/liveData"
	defaultStatsBaseURL = "https://stats.nba.com/stats"
)

// UpstreamConfig controls how we talk to the NBA data endpoints.
type UpstreamConfig struct {
	LiveBaseURL   string
	StatsBaseURL  string
	Proxy         string
	Timeout       Duration
	RetryAttempts int
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		LiveBaseURL:   envOrDefault(envLiveBaseURL, defaultLiveBaseURL),
		StatsBaseURL:  envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Proxy:         envOrDefault(envStatsProxy, ""),
		Timeout:       durationEnvOrDefault(envUpstreamTimout, defaultUpstreamTimeout),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
	}
}
