package nflverse

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nfl-stats-dashboard/internal/providers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:           srv.URL,
		RequestsPerMinute: 6000,
	})
}

func TestFetchWeekDecodesGamesAndLeaders(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"season": 2024,
			"week": 5,
			"games": [
				{"game_id": "2024_05_BUF_KC", "home_team": "KC", "away_team": "BUF",
				 "home_score": 27, "away_score": 24,
				 "top_passer": {"name": "P. Mahomes", "team": "KC", "yards": 331, "tds": 3}},
				{"game_id": "2024_05_DAL_PHI", "home_team": "PHI", "away_team": "DAL"}
			],
			"week_leaders": {
				"passing": {"player_display_name": "P. Mahomes", "recent_team": "KC", "passing_yards": 331}
			}
		}`))
	})

	summary, err := client.FetchWeek(context.Background(), 2024, 5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/week/2024/5" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotQuery != "include_leaders=true" {
		t.Fatalf("unexpected query %s", gotQuery)
	}
	if summary.GameCount != 2 || len(summary.Games) != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	final := summary.Games[0]
	if !final.Complete() || *final.HomeScore != 27 {
		t.Fatalf("first game should be final: %+v", final)
	}
	if final.TopPasser == nil || final.TopPasser.Yards != 331 {
		t.Fatalf("top passer lost: %+v", final.TopPasser)
	}
	if summary.Games[1].Complete() {
		t.Fatalf("scheduled game must not be complete")
	}
	if summary.Leaders == nil || summary.Leaders.Passing == nil || summary.Leaders.Passing.Team != "KC" {
		t.Fatalf("leaders lost: %+v", summary.Leaders)
	}
}

func TestFetchGameDecodesPlayerStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/2024_05_BUF_KC" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("include_player_stats") != "true" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"game_id": "2024_05_BUF_KC",
			"season": 2024,
			"week": 5,
			"home_team": "KC",
			"away_team": "BUF",
			"home_score": 27,
			"away_score": 24,
			"player_stats": [
				{"player_display_name": "P. Mahomes", "recent_team": "KC", "attempts": 38, "passing_yards": 331},
				{"player": "J. Allen", "team": "BUF", "attempts": 30, "passing_yards": 280}
			]
		}`))
	})

	detail, err := client.FetchGame(context.Background(), "2024_05_BUF_KC", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Game.ID != "2024_05_BUF_KC" || !detail.Game.Complete() {
		t.Fatalf("unexpected game: %+v", detail.Game)
	}
	if len(detail.PlayerStats) != 2 {
		t.Fatalf("expected 2 stat rows, got %d", len(detail.PlayerStats))
	}
	if detail.PlayerStats[1].DisplayName != "J. Allen" || detail.PlayerStats[1].Team != "BUF" {
		t.Fatalf("alias resolution broke: %+v", detail.PlayerStats[1])
	}
	if w := detail.PlayerStats[0].Week; w == nil || *w != 5 {
		t.Fatalf("stat rows should inherit the game week, got %v", w)
	}
}

func TestFetchGameNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Game not found"}`, http.StatusNotFound)
	})

	_, err := client.FetchGame(context.Background(), "missing", true)
	if !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRateLimitResponseCarriesRetryAfter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FetchPlayers(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second || rl.Remaining != "0" {
		t.Fatalf("unexpected rate limit details: %+v", rl)
	}
}

func TestServerErrorIncludesBodySnippet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchPlayers(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "500") || !strings.Contains(got, "boom") {
		t.Fatalf("error should carry status and snippet: %s", got)
	}
}

func TestFetchSimilarQueryParameters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("position") != "QB" || q.Get("type") != "career" || q.Get("limit") != "5" || q.Get("season") != "2024" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status": "success", "data": [
			{"player_display_name": "J. Allen", "recent_team": "BUF", "similarity": 92.4}
		]}`))
	})

	out, err := client.FetchSimilar(context.Background(), providers.SimilarQuery{
		PlayerID: "00-0033873",
		Position: "QB",
		Scope:    "career",
		Limit:    5,
		Season:   2024,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Similarity == nil || *out[0].Similarity != 92.4 {
		t.Fatalf("unexpected candidates: %+v", out)
	}
}

func TestAuthorizationHeaderWhenKeyConfigured(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"count": 0, "data": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret", RequestsPerMinute: 6000})
	if _, err := client.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestParseRetryAfterForms(t *testing.T) {
	if got := parseRetryAfter("12"); got != 12*time.Second {
		t.Fatalf("seconds form: got %v", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("empty header: got %v", got)
	}
	future := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > 31*time.Second {
		t.Fatalf("http-date form: got %v", got)
	}
}
