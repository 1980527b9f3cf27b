package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	RosterPath string
	Upstream   UpstreamConfig
	Injuries   InjuriesConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		RosterPath: envOrDefault(envRosterPath, defaultRosterPath),
		Upstream:   loadUpstream(),
		Injuries:   loadInjuries(),
		Metrics:    loadMetrics(),
	}
}
