package testutil

import (
	"testing"

	"nfl-stats-dashboard/internal/snapshots"
	"nfl-stats-dashboard/internal/timeutil"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteWeekSnapshot writes a snapshot with a single game for the season and week.
func WriteWeekSnapshot(t *testing.T, w *snapshots.Writer, season, week int) string {
	t.Helper()
	key := timeutil.WeekKey(season, week)
	if err := w.WriteWeekSnapshot(key, SampleWeekSummary(season, week, key)); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", key, err)
	}
	return key
}

// SnapshotPath returns the expected file path for a week snapshot key.
func SnapshotPath(w *snapshots.Writer, key string) string {
	return snapshots.WeekSnapshotPath(w.BasePath(), key)
}
