package providers

import (
	"context"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// WeekProvider fetches the normalized scoreboard for one week.
// includeLeaders asks the backend for week-wide statistical leaders as well.
type WeekProvider interface {
	FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error)
}

// GameProvider fetches a single game with its flat per-player stat rows.
type GameProvider interface {
	FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error)
}

// PlayerProvider fetches the player directory and individual profiles.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]domainplayers.Player, error)
	FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error)
}

// SimilarQuery keys a similar-players lookup.
type SimilarQuery struct {
	PlayerID string
	Position string
	Scope    string // "career" or "season"
	Limit    int
	Season   int
}

// SimilarityProvider fetches players ranked by similarity to a reference
// player. Returned records carry a populated Similarity field.
type SimilarityProvider interface {
	FetchSimilar(ctx context.Context, q SimilarQuery) ([]domainplayers.StatLine, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	WeekProvider
	GameProvider
	PlayerProvider
	SimilarityProvider
}
