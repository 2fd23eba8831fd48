package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// flakyProvider fails a set number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
	err      error
}

func (p *flakyProvider) fetch() error {
	p.calls++
	if p.calls <= p.failures {
		if p.err != nil {
			return p.err
		}
		return fmt.Errorf("transient failure %d", p.calls)
	}
	return nil
}

func (p *flakyProvider) FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error) {
	if err := p.fetch(); err != nil {
		return domaingames.WeekSummary{}, err
	}
	return domaingames.NewWeekSummary(season, week, []domaingames.Game{{ID: "g"}}, nil), nil
}

func (p *flakyProvider) FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error) {
	if err := p.fetch(); err != nil {
		return domaingames.Detail{}, err
	}
	return domaingames.Detail{Game: domaingames.Game{ID: gameID}}, nil
}

func (p *flakyProvider) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	if err := p.fetch(); err != nil {
		return nil, err
	}
	return []domainplayers.Player{{ID: "1"}}, nil
}

func (p *flakyProvider) FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	if err := p.fetch(); err != nil {
		return domainplayers.Profile{}, err
	}
	return domainplayers.Profile{Info: domainplayers.Player{ID: playerID}}, nil
}

func (p *flakyProvider) FetchSimilar(ctx context.Context, q SimilarQuery) ([]domainplayers.StatLine, error) {
	if err := p.fetch(); err != nil {
		return nil, err
	}
	return []domainplayers.StatLine{{PlayerID: q.PlayerID}}, nil
}

func TestRetryEventuallySucceeds(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	summary, err := p.FetchWeek(context.Background(), 2024, 5, true)
	if err != nil {
		t.Fatalf("expected success after retries: %v", err)
	}
	if summary.Week != 5 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryStopsAtMaxAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 100}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	if _, err := p.FetchGame(context.Background(), "g", true); err == nil {
		t.Fatalf("expected failure")
	}
	if inner.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", inner.calls)
	}
}

func TestNotFoundIsNeverRetried(t *testing.T) {
	inner := &flakyProvider{failures: 100, err: fmt.Errorf("profile: %w", ErrNotFound)}
	p := NewRetryingProvider(inner, nil, 5, time.Millisecond)

	_, err := p.FetchProfile(context.Background(), "nobody", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("404 must not retry, got %d attempts", inner.calls)
	}
}

func TestCancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{failures: 100, err: context.Canceled}
	p := NewRetryingProvider(inner, nil, 5, time.Millisecond)

	if _, err := p.FetchPlayers(ctx); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
	if inner.calls > 1 {
		t.Fatalf("cancellation must stop retries, got %d attempts", inner.calls)
	}
}

func TestAsRateLimitError(t *testing.T) {
	rl := &RateLimitError{Provider: "nflverse", StatusCode: 429, RetryAfter: 2 * time.Second}
	wrapped := fmt.Errorf("fetch week: %w", rl)

	got, ok := AsRateLimitError(wrapped)
	if !ok || got.StatusCode != 429 {
		t.Fatalf("expected unwrapped rate limit error, got %v ok=%v", got, ok)
	}
	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatalf("plain error should not unwrap")
	}
}
