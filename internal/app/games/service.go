package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"nfl-stats-dashboard/internal/boxscore"
	"nfl-stats-dashboard/internal/cache"
	domaingames "nfl-stats-dashboard/internal/domain/games"
	"nfl-stats-dashboard/internal/logging"
	"nfl-stats-dashboard/internal/metrics"
	"nfl-stats-dashboard/internal/providers"
	"nfl-stats-dashboard/internal/snapshots"
	"nfl-stats-dashboard/internal/timeutil"
)

// ErrSuperseded reports that a newer request for the same view started while
// this one was in flight. The caller should drop the result.
var ErrSuperseded = errors.New("request superseded by a newer one")

// Store holds the scoreboard and game details currently in memory.
type Store interface {
	GetWeek(season, week int) (domaingames.WeekSummary, bool)
	SetWeek(summary domaingames.WeekSummary)
	GetGame(id string) (domaingames.Detail, bool)
	SetGame(detail domaingames.Detail)
}

// GameView is a game detail with its derived box score tables.
type GameView struct {
	Detail domaingames.Detail
	Box    boxscore.BoxScore
}

// Service produces the scoreboard and game-detail views. Only the latest
// request per view is honored; results of superseded fetches are discarded.
type Service struct {
	provider  providers.DataProvider
	store     Store
	snapshots snapshots.Store
	cache     *cache.Cache
	ttls      cache.TTLs
	metrics   *metrics.Recorder
	logger    *slog.Logger

	mu          sync.Mutex
	weekTicket  string
	gameTickets map[string]string
}

// NewService constructs a Service. The snapshot store and cache are optional.
func NewService(provider providers.DataProvider, store Store, snaps snapshots.Store, responseCache *cache.Cache, ttls cache.TTLs, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if ttls.Current <= 0 {
		ttls.Current = time.Hour
	}
	if ttls.Historical <= 0 {
		ttls.Historical = 24 * time.Hour
	}
	return &Service{
		provider:    provider,
		store:       store,
		snapshots:   snaps,
		cache:       responseCache,
		ttls:        ttls,
		metrics:     recorder,
		logger:      logger,
		gameTickets: make(map[string]string),
	}
}

// Scoreboard returns the week summary for the given season and week,
// preferring cached and in-memory data before hitting the provider.
func (s *Service) Scoreboard(ctx context.Context, season, week int) (domaingames.WeekSummary, error) {
	week = timeutil.ClampWeek(week)
	key := "week:" + timeutil.WeekKey(season, week)

	if summary, ok := s.cachedWeek(key); ok {
		return summary, nil
	}
	if s.store != nil {
		if summary, ok := s.store.GetWeek(season, week); ok {
			return summary, nil
		}
	}

	ticket := s.claimWeekTicket()
	start := time.Now()
	summary, err := s.provider.FetchWeek(ctx, season, week, true)
	if err != nil {
		if fallback, ok := s.snapshotWeek(season, week); ok {
			s.logWarn("scoreboard served from snapshot after fetch failure", err,
				logging.FieldSeason, season, logging.FieldWeek, week)
			return fallback, nil
		}
		return domaingames.WeekSummary{}, fmt.Errorf("fetch week %d/%d: %w", season, week, err)
	}
	if !s.weekTicketCurrent(ticket) {
		logging.Debug(s.logger, "scoreboard fetch discarded",
			logging.FieldFetchID, ticket,
			logging.FieldSeason, season, logging.FieldWeek, week)
		return domaingames.WeekSummary{}, ErrSuperseded
	}

	if s.store != nil {
		s.store.SetWeek(summary)
	}
	if s.cache != nil {
		s.cache.Set(key, summary, s.ttls.For(season, timeutil.SeasonFor(time.Now().UTC())))
	}
	if s.metrics != nil {
		s.metrics.RecordViewBuild("scoreboard", time.Since(start))
	}
	return summary, nil
}

// GameDetail returns a game with its player stats split into home and away
// box score tables.
func (s *Service) GameDetail(ctx context.Context, gameID string) (GameView, error) {
	key := "game:" + gameID

	if detail, ok := s.cachedGame(key); ok {
		return s.buildView(detail), nil
	}
	if s.store != nil {
		if detail, ok := s.store.GetGame(gameID); ok {
			return s.buildView(detail), nil
		}
	}

	ticket := s.claimGameTicket(gameID)
	detail, err := s.provider.FetchGame(ctx, gameID, true)
	if err != nil {
		return GameView{}, fmt.Errorf("fetch game %s: %w", gameID, err)
	}
	if !s.gameTicketCurrent(gameID, ticket) {
		logging.Debug(s.logger, "game fetch discarded",
			logging.FieldFetchID, ticket, logging.FieldGameID, gameID)
		return GameView{}, ErrSuperseded
	}

	if s.store != nil {
		s.store.SetGame(detail)
	}
	if s.cache != nil {
		s.cache.Set(key, detail, s.ttls.For(detail.Game.Season, timeutil.SeasonFor(time.Now().UTC())))
	}
	return s.buildView(detail), nil
}

// Refresh drops cached copies of a week so the next Scoreboard call refetches.
func (s *Service) Refresh(season, week int) {
	if s.cache != nil {
		s.cache.Invalidate("week:" + timeutil.WeekKey(season, timeutil.ClampWeek(week)))
	}
}

func (s *Service) buildView(detail domaingames.Detail) GameView {
	start := time.Now()
	view := GameView{Detail: detail, Box: boxscore.Build(detail)}
	if s.metrics != nil {
		s.metrics.RecordViewBuild("box_score", time.Since(start))
	}
	return view
}

func (s *Service) cachedWeek(key string) (domaingames.WeekSummary, bool) {
	if s.cache == nil {
		return domaingames.WeekSummary{}, false
	}
	value, _, ok := s.cache.Get(key)
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(ok)
	}
	if !ok {
		return domaingames.WeekSummary{}, false
	}
	summary, ok := value.(domaingames.WeekSummary)
	return summary, ok
}

func (s *Service) cachedGame(key string) (domaingames.Detail, bool) {
	if s.cache == nil {
		return domaingames.Detail{}, false
	}
	value, _, ok := s.cache.Get(key)
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(ok)
	}
	if !ok {
		return domaingames.Detail{}, false
	}
	detail, ok := value.(domaingames.Detail)
	return detail, ok
}

func (s *Service) snapshotWeek(season, week int) (domaingames.WeekSummary, bool) {
	if s.snapshots == nil {
		return domaingames.WeekSummary{}, false
	}
	summary, err := s.snapshots.LoadWeek(timeutil.WeekKey(season, week))
	if err != nil {
		return domaingames.WeekSummary{}, false
	}
	return summary, true
}

func (s *Service) claimWeekTicket() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekTicket = uuid.NewString()
	return s.weekTicket
}

func (s *Service) weekTicketCurrent(ticket string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekTicket == ticket
}

func (s *Service) claimGameTicket(gameID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket := uuid.NewString()
	s.gameTickets[gameID] = ticket
	return ticket
}

func (s *Service) gameTicketCurrent(gameID, ticket string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameTickets[gameID] == ticket
}

func (s *Service) logWarn(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	logging.Warn(s.logger, msg, args...)
}
