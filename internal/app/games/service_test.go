package games

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"nfl-stats-dashboard/internal/cache"
	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/snapshots"
	"nfl-stats-dashboard/internal/store"
	"nfl-stats-dashboard/internal/teststubs"
	"nfl-stats-dashboard/internal/testutil"
)

func TestScoreboardFetchesOnceThenServesFromCache(t *testing.T) {
	provider := &teststubs.StubProvider{Week: testutil.SampleWeekSummary(2024, 5, "2024_05_BUF_KC")}
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, store.NewMemoryStore(), nil, cache.New(true), cache.TTLs{}, nil, logger)

	first, err := svc.Scoreboard(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Scoreboard: %v", err)
	}
	if first.GameCount != 1 {
		t.Fatalf("unexpected game count: %d", first.GameCount)
	}

	second, err := svc.Scoreboard(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("second Scoreboard: %v", err)
	}
	if second.Games[0].ID != first.Games[0].ID {
		t.Fatalf("cached summary should match the fetched one")
	}
	if calls := provider.Calls.Load(); calls != 1 {
		t.Fatalf("expected one provider fetch, got %d", calls)
	}
}

func TestScoreboardFallsBackToSnapshotOnFetchFailure(t *testing.T) {
	provider := teststubs.NewUnavailableProvider()
	snaps := &teststubs.StubSnapshotStore{
		Weeks: map[string]domaingames.WeekSummary{
			"2024-05": testutil.SampleWeekSummary(2024, 5, "2024_05_BUF_KC"),
		},
	}
	mem := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, mem, snaps, cache.New(true), cache.TTLs{}, nil, logger)

	summary, err := svc.Scoreboard(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("expected snapshot fallback, got %v", err)
	}
	if summary.Season != 2024 || summary.Week != 5 {
		t.Fatalf("unexpected fallback summary: %+v", summary)
	}
}

func TestScoreboardFallsBackToOnDiskSnapshot(t *testing.T) {
	writer := testutil.NewTempWriter(t, 3)
	key := testutil.WriteWeekSnapshot(t, writer, 2024, 5)
	if _, err := os.Stat(testutil.SnapshotPath(writer, key)); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	provider := teststubs.NewUnavailableProvider()
	recorder, shutdown := testutil.NewRecorderWithShutdown()
	defer shutdown(context.Background())
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, store.NewMemoryStore(), snapshots.NewFSStore(writer.BasePath()),
		cache.New(true), cache.TTLs{}, recorder, logger)

	summary, err := svc.Scoreboard(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("expected on-disk fallback, got %v", err)
	}
	if summary.Season != 2024 || summary.Week != 5 || len(summary.Games) != 1 {
		t.Fatalf("unexpected fallback summary: %+v", summary)
	}
}

func TestScoreboardErrorWithoutSnapshot(t *testing.T) {
	provider := teststubs.NewUnavailableProvider()
	mem := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, mem, nil, cache.New(true), cache.TTLs{}, nil, logger)

	_, err := svc.Scoreboard(context.Background(), 2024, 5)
	if err == nil {
		t.Fatalf("expected an error when no snapshot exists")
	}
	if !strings.Contains(err.Error(), "fetch week") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScoreboardDiscardsSupersededFetch(t *testing.T) {
	provider := &teststubs.StubProvider{Week: testutil.SampleWeekSummary(2024, 5, "2024_05_BUF_KC")}
	mem := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, mem, nil, nil, cache.TTLs{}, nil, logger)

	var nested atomic.Bool
	var nestedErr error
	provider.OnFetch = func() {
		// A newer request arrives while the first fetch is still in flight.
		if nested.CompareAndSwap(false, true) {
			_, nestedErr = svc.Scoreboard(context.Background(), 2024, 5)
		}
	}

	_, err := svc.Scoreboard(context.Background(), 2024, 5)
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for the older request, got %v", err)
	}
	if nestedErr != nil {
		t.Fatalf("newest request should win: %v", nestedErr)
	}
	if _, ok := mem.GetWeek(2024, 5); !ok {
		t.Fatalf("winning fetch should have populated the store")
	}
}

func TestGameDetailBuildsBoxScore(t *testing.T) {
	detail := domaingames.Detail{
		Game: testutil.SampleGame("2024_05_BUF_KC", "KC", "BUF"),
		PlayerStats: []domainplayers.StatLine{
			testutil.SampleStatLine("Patrick Mahomes", "KC"),
			testutil.SampleStatLine("Josh Allen", "BUF"),
		},
	}
	provider := &teststubs.StubProvider{Detail: detail}
	mem := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	svc := NewService(provider, mem, nil, cache.New(true), cache.TTLs{}, nil, logger)

	view, err := svc.GameDetail(context.Background(), "2024_05_BUF_KC")
	if err != nil {
		t.Fatalf("GameDetail: %v", err)
	}
	if len(view.Box.Home.Buckets.Passing) != 1 || len(view.Box.Away.Buckets.Passing) != 1 {
		t.Fatalf("expected one passer per side")
	}

	if _, err := svc.GameDetail(context.Background(), "2024_05_BUF_KC"); err != nil {
		t.Fatalf("cached GameDetail: %v", err)
	}
	if calls := provider.Calls.Load(); calls != 1 {
		t.Fatalf("expected one provider fetch, got %d", calls)
	}
}

func TestRefreshInvalidatesCachedWeek(t *testing.T) {
	provider := &teststubs.StubProvider{Week: testutil.SampleWeekSummary(2024, 5, "2024_05_BUF_KC")}
	logger, _ := testutil.NewBufferLogger()
	// No memory store so the refetch is observable through provider calls.
	svc := NewService(provider, nil, nil, cache.New(true), cache.TTLs{}, nil, logger)

	if _, err := svc.Scoreboard(context.Background(), 2024, 5); err != nil {
		t.Fatalf("Scoreboard: %v", err)
	}
	svc.Refresh(2024, 5)
	if _, err := svc.Scoreboard(context.Background(), 2024, 5); err != nil {
		t.Fatalf("Scoreboard after refresh: %v", err)
	}
	if calls := provider.Calls.Load(); calls != 2 {
		t.Fatalf("expected a refetch after Refresh, got %d calls", calls)
	}
}
