package snapshots

import (
	"fmt"
	"path/filepath"
)

type snapshotKind string

const (
	kindWeeks   snapshotKind = "weeks"
	kindPlayers snapshotKind = "players"
)

// WeekSnapshotPath builds the path to a scoreboard snapshot for a week key.
func WeekSnapshotPath(basePath, key string) string {
	return filepath.Join(basePath, string(kindWeeks), fmt.Sprintf("%s.json", key))
}

// PlayersSnapshotPath builds the path to the player directory snapshot.
func PlayersSnapshotPath(basePath string) string {
	return filepath.Join(basePath, string(kindPlayers), "directory.json")
}
