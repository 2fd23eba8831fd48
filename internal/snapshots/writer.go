package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// Writer persists snapshots and the manifest with retention pruning.
type Writer struct {
	basePath       string
	retentionWeeks int
}

// NewWriter constructs a writer rooted at basePath with a rolling window
// retention measured in week snapshots.
func NewWriter(basePath string, retentionWeeks int) *Writer {
	if retentionWeeks <= 0 {
		retentionWeeks = 6
	}
	return &Writer{
		basePath:       basePath,
		retentionWeeks: retentionWeeks,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteWeekSnapshot writes the scoreboard snapshot for a week key and prunes
// snapshots beyond the retention window.
func (w *Writer) WriteWeekSnapshot(key string, snapshot domaingames.WeekSummary) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if key == "" {
		return fmt.Errorf("week key required")
	}

	sort.SliceStable(snapshot.Games, func(i, j int) bool {
		return snapshot.Games[i].ID < snapshot.Games[j].ID
	})
	snapshot.GameCount = len(snapshot.Games)

	if err := w.writeJSON(WeekSnapshotPath(w.basePath, key), snapshot); err != nil {
		return err
	}
	return w.updateManifestWeeks(key)
}

// WritePlayersSnapshot writes the player directory snapshot.
func (w *Writer) WritePlayersSnapshot(items []domainplayers.Player) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if err := w.writeJSON(PlayersSnapshotPath(w.basePath), items); err != nil {
		return err
	}

	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionWeeks)
	m.Players.LastRefreshed = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

func (w *Writer) writeJSON(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	// Skip the rewrite when nothing changed; the manifest still refreshes.
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (w *Writer) updateManifestWeeks(key string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionWeeks)

	keys, err := w.listWeekKeys()
	if err != nil {
		return err
	}
	if !containsKey(keys, key) {
		keys = append(keys, key)
		sort.Strings(keys)
	}
	pruned, err := w.pruneOldSnapshots(keys)
	if err != nil {
		return err
	}

	m.Weeks.Keys = pruned
	m.Weeks.LastRefreshed = time.Now().UTC()
	m.Retention.Weeks = w.retentionWeeks
	return writeManifest(w.basePath, m)
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func (w *Writer) listWeekKeys() ([]string, error) {
	dir := filepath.Join(w.basePath, string(kindWeeks))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		keys = append(keys, name[:len(name)-len(".json")])
	}
	sort.Strings(keys)
	return keys, nil
}

// pruneOldSnapshots keeps the newest retentionWeeks keys. Keys sort
// chronologically because weeks are zero-padded.
func (w *Writer) pruneOldSnapshots(keys []string) ([]string, error) {
	sort.Strings(keys)
	if len(keys) <= w.retentionWeeks {
		return keys, nil
	}
	drop := keys[:len(keys)-w.retentionWeeks]
	for _, key := range drop {
		_ = os.Remove(WeekSnapshotPath(w.basePath, key))
	}
	keep := make([]string, len(keys)-len(drop))
	copy(keep, keys[len(drop):])
	return keep, nil
}
