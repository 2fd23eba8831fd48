package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/logging"
	"nfl-stats-dashboard/internal/metrics"
)

// loggingProvider decorates a DataProvider with per-call logs and metrics.
type loggingProvider struct {
	inner    DataProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewLoggingProvider wraps a provider so every fetch is logged with its
// duration and recorded on the metrics recorder.
func NewLoggingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	return &loggingProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

func (p *loggingProvider) FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error) {
	start := time.Now()
	out, err := p.inner.FetchWeek(ctx, season, week, includeLeaders)
	p.observe(ctx, "week fetched", start, err,
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldWeek, week),
		slog.Int(logging.FieldCount, len(out.Games)),
	)
	return out, err
}

func (p *loggingProvider) FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error) {
	start := time.Now()
	out, err := p.inner.FetchGame(ctx, gameID, includeStats)
	p.observe(ctx, "game fetched", start, err,
		slog.String(logging.FieldGameID, gameID),
		slog.Int(logging.FieldCount, len(out.PlayerStats)),
	)
	return out, err
}

func (p *loggingProvider) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	start := time.Now()
	out, err := p.inner.FetchPlayers(ctx)
	p.observe(ctx, "players fetched", start, err, slog.Int(logging.FieldCount, len(out)))
	return out, err
}

func (p *loggingProvider) FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	start := time.Now()
	out, err := p.inner.FetchProfile(ctx, playerID, seasons)
	p.observe(ctx, "profile fetched", start, err, slog.String(logging.FieldPlayerID, playerID))
	return out, err
}

func (p *loggingProvider) FetchSimilar(ctx context.Context, q SimilarQuery) ([]domainplayers.StatLine, error) {
	start := time.Now()
	out, err := p.inner.FetchSimilar(ctx, q)
	p.observe(ctx, "similar players fetched", start, err,
		slog.String(logging.FieldPlayerID, q.PlayerID),
		slog.Int(logging.FieldCount, len(out)),
	)
	return out, err
}

func (p *loggingProvider) observe(ctx context.Context, msg string, start time.Time, err error, attrs ...any) {
	elapsed := time.Since(start)
	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, elapsed, err)
		if rlErr, ok := AsRateLimitError(err); ok {
			p.recorder.RecordRateLimit(p.name, rlErr.RetryAfter)
		}
	}

	logger := logging.FromContext(ctx, p.logger)
	if logger == nil {
		return
	}
	attrs = append(attrs,
		slog.String(logging.FieldProvider, p.name),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if err != nil {
		logger.Warn(msg+" with error", append(attrs, "error", err)...)
		return
	}
	logger.Debug(msg, attrs...)
}
