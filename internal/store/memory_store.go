package store

import (
	"sync"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/timeutil"
)

// MemoryStore keeps thread-safe snapshots of fetched weeks, game details,
// and the player directory. Entries are replaced wholesale; nothing is
// updated in place.
type MemoryStore struct {
	mu      sync.RWMutex
	weeks   map[string]domaingames.WeekSummary
	games   map[string]domaingames.Detail
	players []domainplayers.Player
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		weeks: make(map[string]domaingames.WeekSummary),
		games: make(map[string]domaingames.Detail),
	}
}

// GetWeek retrieves a week summary by season/week.
func (s *MemoryStore) GetWeek(season, week int) (domaingames.WeekSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.weeks[timeutil.WeekKey(season, week)]
	return summary, ok
}

// SetWeek replaces the stored summary for a week.
func (s *MemoryStore) SetWeek(summary domaingames.WeekSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weeks[timeutil.WeekKey(summary.Season, summary.Week)] = summary
}

// GetGame retrieves a game detail by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.Detail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	detail, ok := s.games[id]
	return detail, ok
}

// SetGame replaces the stored detail for a game.
func (s *MemoryStore) SetGame(detail domaingames.Detail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games[detail.Game.ID] = detail
}

// ListPlayers returns a copy of the player directory.
func (s *MemoryStore) ListPlayers() []domainplayers.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domainplayers.Player, len(s.players))
	copy(result, s.players)
	return result
}

// SetPlayers replaces the player directory.
func (s *MemoryStore) SetPlayers(items []domainplayers.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make([]domainplayers.Player, len(items))
	copy(replaced, items)
	s.players = replaced
}
