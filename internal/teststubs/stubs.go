// Package teststubs provides shared provider and snapshot doubles for tests
// in other packages.
package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/providers"
)

// StubProvider is a configurable test double for providers.DataProvider.
type StubProvider struct {
	Week    domaingames.WeekSummary
	Detail  domaingames.Detail
	Players []domainplayers.Player
	Profile domainplayers.Profile
	Similar []domainplayers.StatLine
	Err     error

	Calls  atomic.Int32
	Notify chan struct{}

	// OnFetch runs before each fetch returns, letting tests interleave
	// concurrent requests deterministically.
	OnFetch func()
}

func (s *StubProvider) observe() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.OnFetch != nil {
		s.OnFetch()
	}
}

// FetchWeek returns the configured summary and error while tracking calls.
func (s *StubProvider) FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error) {
	_ = ctx
	_ = includeLeaders
	s.observe()
	if s.Err != nil {
		return domaingames.WeekSummary{}, s.Err
	}
	summary := s.Week
	if summary.Season == 0 {
		summary.Season = season
	}
	if summary.Week == 0 {
		summary.Week = week
	}
	return summary, nil
}

// FetchGame returns the configured detail and error while tracking calls.
func (s *StubProvider) FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error) {
	_ = ctx
	_ = includeStats
	s.observe()
	if s.Err != nil {
		return domaingames.Detail{}, s.Err
	}
	detail := s.Detail
	if detail.Game.ID == "" {
		detail.Game.ID = gameID
	}
	return detail, nil
}

// FetchPlayers returns the configured directory and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	_ = ctx
	s.observe()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Players, nil
}

// FetchProfile returns the configured profile and error while tracking calls.
func (s *StubProvider) FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	_ = ctx
	_ = playerID
	_ = seasons
	s.observe()
	if s.Err != nil {
		return domainplayers.Profile{}, s.Err
	}
	return s.Profile, nil
}

// FetchSimilar returns the configured candidates and error while tracking calls.
func (s *StubProvider) FetchSimilar(ctx context.Context, q providers.SimilarQuery) ([]domainplayers.StatLine, error) {
	_ = ctx
	_ = q
	s.observe()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Similar, nil
}

// UnavailableProvider always returns providers.ErrProviderUnavailable.
type UnavailableProvider struct{ StubProvider }

// NewUnavailableProvider returns a provider whose every fetch fails.
func NewUnavailableProvider() *UnavailableProvider {
	p := &UnavailableProvider{}
	p.Err = providers.ErrProviderUnavailable
	return p
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Weeks   map[string]domaingames.WeekSummary // keyed by week key
	Players []domainplayers.Player
	LoadErr error
}

// LoadWeek returns the summary for the given key if present.
func (s *StubSnapshotStore) LoadWeek(key string) (domaingames.WeekSummary, error) {
	if s.LoadErr != nil {
		return domaingames.WeekSummary{}, s.LoadErr
	}
	summary, ok := s.Weeks[key]
	if !ok {
		return domaingames.WeekSummary{}, errors.New("snapshot not found")
	}
	return summary, nil
}

// LoadPlayers returns the configured directory.
func (s *StubSnapshotStore) LoadPlayers() ([]domainplayers.Player, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Players, nil
}
