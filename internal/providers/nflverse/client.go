// Package nflverse talks to the /v1 stats backend that fronts the nflverse
// datasets and maps its payloads to domain models.
//
// The backend is a plain JSON REST API; auth is an optional bearer token and
// quota is respected with a client-side token bucket.
package nflverse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/providers"
)

// Config controls how the client reaches the stats backend.
type Config struct {
	BaseURL           string
	APIKey            string
	HTTPClient        *http.Client
	RequestsPerMinute int
	Logger            *slog.Logger
}

// Client fetches weeks, games, and players from the stats backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient constructs a stats backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	rpm := resolveRPM(cfg.RequestsPerMinute)
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		logger:     cfg.Logger,
	}
}

// FetchWeek retrieves the scoreboard for one week.
func (c *Client) FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error) {
	params := url.Values{}
	params.Set("include_leaders", strconv.FormatBool(includeLeaders))

	var payload weekResponse
	path := fmt.Sprintf("/week/%d/%d", season, week)
	if err := c.get(ctx, path, params, &payload); err != nil {
		return domaingames.WeekSummary{}, err
	}

	items := make([]domaingames.Game, 0, len(payload.Games))
	for _, row := range payload.Games {
		items = append(items, mapGameRow(row, season, week))
	}
	return domaingames.NewWeekSummary(season, week, items, mapLeaders(payload.Leaders, season, week)), nil
}

// FetchGame retrieves one game and, optionally, its per-player stat rows.
func (c *Client) FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error) {
	params := url.Values{}
	params.Set("include_player_stats", strconv.FormatBool(includeStats))

	var payload gameDetailResponse
	if err := c.get(ctx, "/game/"+url.PathEscape(gameID), params, &payload); err != nil {
		return domaingames.Detail{}, err
	}

	game := domaingames.Game{
		ID:        payload.GameID,
		Season:    payload.Season,
		Week:      payload.Week,
		HomeTeam:  payload.HomeTeam,
		AwayTeam:  payload.AwayTeam,
		HomeScore: toScore(payload.HomeScore),
		AwayScore: toScore(payload.AwayScore),
	}
	if payload.GameInfo != nil {
		info := mapGameRow(*payload.GameInfo, payload.Season, payload.Week)
		game.Gameday = info.Gameday
		game.Gametime = info.Gametime
		game.Overtime = info.Overtime
		game.Stadium = info.Stadium
		game.Roof = info.Roof
	}
	if game.ID == "" {
		game.ID = gameID
	}

	detail := domaingames.Detail{Game: game}
	for _, row := range payload.PlayerStats {
		detail.PlayerStats = append(detail.PlayerStats, mapStatRow(row, payload.Season, payload.Week))
	}
	return detail, nil
}

// FetchPlayers retrieves the league-wide player directory.
func (c *Client) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	var payload playersResponse
	if err := c.get(ctx, "/players", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]domainplayers.Player, 0, len(payload.Data))
	for _, row := range payload.Data {
		out = append(out, mapPlayerRow(row))
	}
	return out, nil
}

// FetchProfile retrieves a single player's profile with optional season stats.
func (c *Client) FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	params := url.Values{}
	for _, season := range seasons {
		params.Add("seasons", strconv.Itoa(season))
	}

	var payload profileResponse
	if err := c.get(ctx, "/player/"+url.PathEscape(playerID)+"/profile", params, &payload); err != nil {
		return domainplayers.Profile{}, err
	}
	return mapProfile(payload, seasons), nil
}

// FetchSimilar retrieves the ranked similar-players list for a reference player.
func (c *Client) FetchSimilar(ctx context.Context, q providers.SimilarQuery) ([]domainplayers.StatLine, error) {
	params := url.Values{}
	params.Set("position", q.Position)
	if q.Scope != "" {
		params.Set("type", q.Scope)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Season > 0 {
		params.Set("season", strconv.Itoa(q.Season))
	}

	var payload similarResponse
	if err := c.get(ctx, "/player/"+url.PathEscape(q.PlayerID)+"/similar", params, &payload); err != nil {
		return nil, err
	}

	out := make([]domainplayers.StatLine, 0, len(payload.Data))
	for _, row := range payload.Data {
		out = append(out, mapStatRow(row, q.Season, 0))
	}
	return out, nil
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, providers.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
