package config

import "time"

// SnapshotConfig controls the on-disk week snapshot store and backfill.
type SnapshotConfig struct {
	Dir              string
	RetentionWeeks   int
	BackfillInterval time.Duration
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:              envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionWeeks:   intEnvOrDefault(envSnapshotWeeks, defaultSnapshotWeeks),
		BackfillInterval: durationEnvOrDefault(envSnapshotRate, defaultBackfillInterval),
	}
}

// CacheConfig controls the in-memory response cache.
type CacheConfig struct {
	Enabled       bool
	CurrentTTL    time.Duration
	HistoricalTTL time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Enabled:       boolEnvOrDefault(envCacheEnabled, true),
		CurrentTTL:    durationEnvOrDefault(envCacheCurrentTTL, defaultCacheCurrentTTL),
		HistoricalTTL: durationEnvOrDefault(envCacheHistoricTTL, defaultCacheHistoricTTL),
	}
}
