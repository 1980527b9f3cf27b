package config

// InjuriesConfig controls the injury-report scraper and snapshot location.
type InjuriesConfig struct {
	SnapshotPath   string
	SourceURL      string
	ScrapeEnabled  bool
	ScrapeInterval Duration
}

func loadInjuries() InjuriesConfig {
	return InjuriesConfig{
		SnapshotPath:   envOrDefault(envInjuriesFile, defaultInjuriesPath),
		SourceURL:      envOrDefault(envInjuriesURL, defaultInjuriesURL),
		ScrapeEnabled:  boolEnvOrDefault(envInjuriesOn, true),
		ScrapeInterval: durationEnvOrDefault(envInjuriesEvery, defaultInjuriesInterval),
	}
}
