package nflverse

import "time"

const (
	defaultBaseURL     = "http://localhost:8000/v1"
	defaultHTTPTimeout = 30 * time.Second
	defaultRPM         = 60
)

const providerName = "nflverse"
