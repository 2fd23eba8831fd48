package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/timeutil"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadWeek(key string) (domaingames.WeekSummary, error)
	LoadPlayers() ([]domainplayers.Player, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadWeek reads a scoreboard snapshot for the given week key from disk.
// Files live at {basePath}/weeks/{key}.json with a WeekSummary payload.
func (s *FSStore) LoadWeek(key string) (domaingames.WeekSummary, error) {
	if s == nil {
		return domaingames.WeekSummary{}, errors.New("snapshot store not configured")
	}
	if key == "" {
		return domaingames.WeekSummary{}, errors.New("week key required")
	}

	var payload domaingames.WeekSummary
	if err := s.decodeFile(WeekSnapshotPath(s.basePath, key), &payload); err != nil {
		return domaingames.WeekSummary{}, err
	}
	if payload.Season == 0 {
		if season, week, err := timeutil.ParseWeekKey(key); err == nil {
			payload.Season = season
			payload.Week = week
		}
	}
	return payload, nil
}

// LoadPlayers reads the player directory snapshot from disk.
func (s *FSStore) LoadPlayers() ([]domainplayers.Player, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	var payload []domainplayers.Player
	if err := s.decodeFile(PlayersSnapshotPath(s.basePath), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// HasWeek reports whether a snapshot exists for the week key.
func (s *FSStore) HasWeek(key string) bool {
	if s == nil || key == "" {
		return false
	}
	_, err := os.Stat(WeekSnapshotPath(s.basePath, key))
	return err == nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
