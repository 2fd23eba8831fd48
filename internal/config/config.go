package config

// Config holds runtime configuration for the dashboard.
type Config struct {
	Season       int
	Week         int
	PPRWeight    float64
	PollInterval Duration
	Provider     string
	Backend      BackendConfig
	Cache        CacheConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Season:       intEnvOrDefault(envSeason, 0),
		Week:         intEnvOrDefault(envWeek, 0),
		PPRWeight:    floatEnvOrDefault(envPPRWeight, defaultPPRWeight),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Backend:      loadBackend(),
		Cache:        loadCache(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
	}
}
