package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultInitialDelay  = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff retries.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	maxAttempts  int
	initialDelay time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts
// or initialDelay are <= 0, defaults are used. Not-found lookups are never
// retried.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, initialDelay time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialDelay <= 0 {
		initialDelay = defaultInitialDelay
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
	}
}

func (r *retryingProvider) FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error) {
	var out domaingames.WeekSummary
	err := r.retry(ctx, "fetch week", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchWeek(ctx, season, week, includeLeaders)
		return innerErr
	})
	return out, err
}

func (r *retryingProvider) FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error) {
	var out domaingames.Detail
	err := r.retry(ctx, "fetch game", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchGame(ctx, gameID, includeStats)
		return innerErr
	})
	return out, err
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	var out []domainplayers.Player
	err := r.retry(ctx, "fetch players", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchPlayers(ctx)
		return innerErr
	})
	return out, err
}

func (r *retryingProvider) FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	var out domainplayers.Profile
	err := r.retry(ctx, "fetch profile", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchProfile(ctx, playerID, seasons)
		return innerErr
	})
	return out, err
}

func (r *retryingProvider) FetchSimilar(ctx context.Context, q SimilarQuery) ([]domainplayers.StatLine, error) {
	var out []domainplayers.StatLine
	err := r.retry(ctx, "fetch similar", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchSimilar(ctx, q)
		return innerErr
	})
	return out, err
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	attempt := 0
	wrapped := func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialDelay

	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, op+" retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	err := backoff.RetryNotify(
		wrapped,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx),
		notify,
	)
	if err != nil {
		r.logWarn(ctx, op+" failed", "attempts", attempt, "err", err)
	}
	return err
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, r.logger), msg, args...)
}
