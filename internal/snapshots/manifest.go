package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Retention   Retention   `json:"retention"`
	Weeks       WeeksMeta   `json:"weeks"`
	Players     PlayersMeta `json:"players"`
}

type Retention struct {
	Weeks int `json:"weeks"`
}

type WeeksMeta struct {
	Keys          []string  `json:"keys"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

type PlayersMeta struct {
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(retentionWeeks int) Manifest {
	return Manifest{
		Version:   1,
		Retention: Retention{Weeks: retentionWeeks},
		Weeks:     WeeksMeta{Keys: []string{}},
	}
}

func readManifest(path string, retentionWeeks int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionWeeks), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionWeeks), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
