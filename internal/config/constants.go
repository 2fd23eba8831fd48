package config

import "time"

const (
	envSeason            = "NFL_SEASON"
	envWeek              = "NFL_WEEK"
	envPPRWeight         = "PPR_WEIGHT"
	envPollInterval      = "POLL_INTERVAL"
	envProvider          = "PROVIDER"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotWeeks     = "SNAPSHOT_RETENTION_WEEKS"
	envSnapshotRate      = "SNAPSHOT_BACKFILL_INTERVAL"
	envCacheEnabled      = "CACHE_ENABLED"
	envCacheCurrentTTL   = "CACHE_CURRENT_TTL"
	envCacheHistoricTTL  = "CACHE_HISTORICAL_TTL"

	defaultPPRWeight = 1.0
	// Conservative default poll interval for watch mode; scores do not move
	// faster than the backend's own refresh cadence.
	defaultPollInterval = 60 * Duration(time.Second)
	defaultProvider     = "nflverse"
	defaultMetricsPort  = "9090"
	defaultSnapshotDir  = "data/snapshots"
	// Rolling retention window for week snapshots.
	defaultSnapshotWeeks = 6
	// Backfill fetch cadence; spaced to stay polite toward the backend.
	defaultBackfillInterval = 10 * Duration(time.Second)
	defaultCacheCurrentTTL  = 1 * Duration(time.Hour)
	defaultCacheHistoricTTL = 24 * Duration(time.Hour)
)
