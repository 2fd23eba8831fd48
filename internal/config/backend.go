package config

const (
	envBackendBaseURL = "STATS_BACKEND_BASE_URL"
	envBackendAPIKey  = "STATS_BACKEND_API_KEY"
	envBackendRPM     = "STATS_BACKEND_REQUESTS_PER_MINUTE"

	defaultBackendBaseURL = "http://localhost:8000/v1"
	defaultBackendRPM     = 60
)

// BackendConfig controls how we talk to the stats backend.
type BackendConfig struct {
	BaseURL           string
	APIKey            string
	RequestsPerMinute int
}

func loadBackend() BackendConfig {
	return BackendConfig{
		BaseURL:           envOrDefault(envBackendBaseURL, defaultBackendBaseURL),
		APIKey:            envOrDefault(envBackendAPIKey, ""),
		RequestsPerMinute: intEnvOrDefault(envBackendRPM, defaultBackendRPM),
	}
}
