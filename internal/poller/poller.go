package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	"nfl-stats-dashboard/internal/logging"
	"nfl-stats-dashboard/internal/metrics"
	"nfl-stats-dashboard/internal/providers"
	"nfl-stats-dashboard/internal/timeutil"
)

const defaultInterval = 60 * time.Second

// SnapshotWriter persists week snapshots to disk.
type SnapshotWriter interface {
	WriteWeekSnapshot(key string, summary domaingames.WeekSummary) error
}

// WeekStore receives refreshed week summaries.
type WeekStore interface {
	SetWeek(summary domaingames.WeekSummary)
}

// Poller refreshes one week's scoreboard on an interval, keeping live scores
// current while games are in progress.
type Poller struct {
	provider providers.WeekProvider
	writer   SnapshotWriter
	store    WeekStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	season   int
	week     int
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller for the given season and week.
func New(provider providers.WeekProvider, writer SnapshotWriter, store WeekStore, logger *slog.Logger, recorder *metrics.Recorder, season, week int, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		writer:   writer,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		season:   season,
		week:     timeutil.ClampWeek(week),
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "poller started",
			logging.FieldSeason, p.season,
			logging.FieldWeek, p.week,
			logging.FieldDurationMS, p.interval.Milliseconds(),
		)
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	summary, err := p.provider.FetchWeek(ctx, p.season, p.week, true)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(p.logger, "poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.store != nil {
		p.store.SetWeek(summary)
	}
	if p.writer != nil {
		key := timeutil.WeekKey(p.season, p.week)
		if writeErr := p.writer.WriteWeekSnapshot(key, summary); writeErr != nil {
			logging.Error(p.logger, "poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed week",
		logging.FieldSeason, p.season,
		logging.FieldWeek, p.week,
		logging.FieldCount, len(summary.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// stopTicker takes startMu because Stop may race a concurrent Start.
func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
