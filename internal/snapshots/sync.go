package snapshots

import (
	"context"
	"log/slog"
	"time"

	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/logging"
	"nfl-stats-dashboard/internal/providers"
	"nfl-stats-dashboard/internal/timeutil"
)

// DirectoryStore updates the in-memory player directory when the snapshot
// refreshes.
type DirectoryStore interface {
	SetPlayers([]domainplayers.Player)
}

// Syncer backfills week snapshots for a season and refreshes the player
// directory, spacing fetches to stay polite toward the backend.
type Syncer struct {
	weekProvider   providers.WeekProvider
	playerProvider providers.PlayerProvider
	writer         *Writer
	store          *FSStore
	cfg            SyncConfig
	logger         *slog.Logger
	directoryStore DirectoryStore
	sleep          func(ctx context.Context, d time.Duration)
}

// SyncConfig controls backfill behavior.
type SyncConfig struct {
	Season      int
	ThroughWeek int           // last week to backfill, clamped to the NFL range
	Interval    time.Duration // delay between week fetches
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.DataProvider, writer *Writer, store *FSStore, cfg SyncConfig, logger *slog.Logger, directoryStore DirectoryStore) *Syncer {
	cfg.ThroughWeek = timeutil.ClampWeek(cfg.ThroughWeek)
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	return &Syncer{
		weekProvider:   provider,
		playerProvider: provider,
		writer:         writer,
		store:          store,
		cfg:            cfg,
		logger:         logger,
		directoryStore: directoryStore,
		sleep:          sleepCtx,
	}
}

// Run performs a one-time backfill of the configured season, newest week
// first so the scoreboard the user is most likely looking at lands early.
// Existing snapshots are skipped except the through-week, which is always
// refreshed to capture late score corrections.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || s.writer == nil || s.weekProvider == nil {
		return
	}

	logging.Info(s.logger, "snapshot backfill starting",
		"season", s.cfg.Season,
		"through_week", s.cfg.ThroughWeek,
		"interval", s.cfg.Interval.String(),
	)

	s.syncPlayers(ctx)

	for week := s.cfg.ThroughWeek; week >= timeutil.MinWeek; week-- {
		select {
		case <-ctx.Done():
			return
		default:
		}

		key := timeutil.WeekKey(s.cfg.Season, week)
		if week != s.cfg.ThroughWeek && s.store != nil && s.store.HasWeek(key) {
			continue
		}
		s.fetchAndWrite(ctx, week, key)
		if week > timeutil.MinWeek {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) fetchAndWrite(ctx context.Context, week int, key string) {
	start := time.Now()
	summary, err := s.weekProvider.FetchWeek(ctx, s.cfg.Season, week, true)
	if err != nil {
		logging.Warn(s.logger, "snapshot backfill fetch failed", "week_key", key, "err", err)
		return
	}
	if len(summary.Games) == 0 {
		logging.Warn(s.logger, "snapshot backfill received no games", "week_key", key)
		return
	}
	if err := s.writer.WriteWeekSnapshot(key, summary); err != nil {
		logging.Warn(s.logger, "snapshot backfill write failed", "week_key", key, "err", err)
		return
	}
	logging.Info(s.logger, "week snapshot written",
		"week_key", key,
		"count", len(summary.Games),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) syncPlayers(ctx context.Context) {
	if s.playerProvider == nil {
		return
	}
	start := time.Now()
	items, err := s.playerProvider.FetchPlayers(ctx)
	if err != nil {
		logging.Warn(s.logger, "players snapshot fetch failed", "err", err)
		return
	}
	if err := s.writer.WritePlayersSnapshot(items); err != nil {
		logging.Warn(s.logger, "players snapshot write failed", "err", err)
		return
	}
	if s.directoryStore != nil {
		s.directoryStore.SetPlayers(items)
	}
	logging.Info(s.logger, "players snapshot written", "count", len(items), "duration_ms", time.Since(start).Milliseconds())
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
