// Package fixture serves a deterministic slice of NFL data useful for local
// runs, offline demos, and bootstrapping without a backend.
package fixture

import (
	"context"
	"fmt"
	"strings"

	"nfl-stats-dashboard/internal/boxscore"
	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/providers"
)

// Provider returns static weeks, games, and players.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func statLines(season, week int) []domainplayers.StatLine {
	w := week
	return []domainplayers.StatLine{
		{
			PlayerID: "00-0033873", DisplayName: "Patrick Mahomes", Team: "KC", Position: "QB",
			Season: season, Week: &w,
			Attempts: ptr(38), Completions: ptr(27), PassingYards: ptr(305), PassingTDs: ptr(3), Interceptions: ptr(1),
			Carries: ptr(4), RushingYards: ptr(21),
			FantasyPointsPPR: ptr(26.7),
		},
		{
			PlayerID: "00-0036355", DisplayName: "Josh Allen", Team: "BUF", Position: "QB",
			Season: season, Week: &w,
			Attempts: ptr(33), Completions: ptr(24), PassingYards: ptr(262), PassingTDs: ptr(2),
			Carries: ptr(8), RushingYards: ptr(56), RushingTDs: ptr(1),
			FantasyPointsPPR: ptr(29.1),
		},
		{
			PlayerID: "00-0034796", DisplayName: "Isiah Pacheco", Team: "KC", Position: "RB",
			Season: season, Week: &w,
			Carries: ptr(18), RushingYards: ptr(89), RushingTDs: ptr(1),
			Targets: ptr(4), Receptions: ptr(3), ReceivingYards: ptr(22),
			FantasyPointsPPR: ptr(19.3),
		},
		{
			PlayerID: "00-0037248", DisplayName: "James Cook", Team: "BUF", Position: "RB",
			Season: season, Week: &w,
			Carries: ptr(15), RushingYards: ptr(67),
			Targets: ptr(5), Receptions: ptr(5), ReceivingYards: ptr(41),
			FantasyPointsPPR: ptr(15.8),
		},
		{
			PlayerID: "00-0033908", DisplayName: "Travis Kelce", Team: "KC", Position: "TE",
			Season: season, Week: &w,
			Targets: ptr(11), Receptions: ptr(9), ReceivingYards: ptr(102), ReceivingTDs: ptr(1),
			FantasyPointsPPR: ptr(25.2),
		},
		{
			PlayerID: "00-0036963", DisplayName: "Stefon Diggs", Team: "BUF", Position: "WR",
			Season: season, Week: &w,
			Targets: ptr(12), Receptions: ptr(8), ReceivingYards: ptr(111),
			FantasyPointsPPR: ptr(19.1),
		},
	}
}

func fixtureGames(season, week int) []domaingames.Game {
	return []domaingames.Game{
		{
			ID:       fmt.Sprintf("%d_%02d_BUF_KC", season, week),
			Season:   season,
			Week:     week,
			Gameday:  "2025-10-12",
			Gametime: "16:25",
			HomeTeam: "KC", AwayTeam: "BUF",
			HomeScore: intPtr(27), AwayScore: intPtr(24),
			Stadium: "GEHA Field at Arrowhead Stadium", Roof: "outdoors",
		},
		{
			ID:       fmt.Sprintf("%d_%02d_DAL_PHI", season, week),
			Season:   season,
			Week:     week,
			Gameday:  "2025-10-13",
			Gametime: "20:15",
			HomeTeam: "PHI", AwayTeam: "DAL",
			Stadium: "Lincoln Financial Field", Roof: "outdoors",
		},
	}
}

// FetchWeek returns a deterministic two-game scoreboard with derived leaders.
func (p *Provider) FetchWeek(ctx context.Context, season, week int, includeLeaders bool) (domaingames.WeekSummary, error) {
	_ = ctx

	items := fixtureGames(season, week)
	lines := statLines(season, week)
	for i := range items {
		items[i].TopPasser, items[i].TopRusher, items[i].TopReceiver = boxscore.TopPerformers(lines, items[i])
	}

	var leaders *domaingames.WeekLeaders
	if includeLeaders {
		leaders = boxscore.WeekLeaders(lines)
	}
	return domaingames.NewWeekSummary(season, week, items, leaders), nil
}

// FetchGame returns the fixture game matching the ID, with its stat rows.
func (p *Provider) FetchGame(ctx context.Context, gameID string, includeStats bool) (domaingames.Detail, error) {
	_ = ctx

	season, week := 2025, 6
	for _, game := range fixtureGames(season, week) {
		if game.ID == gameID {
			detail := domaingames.Detail{Game: game}
			if includeStats {
				detail.PlayerStats = statLines(season, week)
			}
			return detail, nil
		}
	}
	return domaingames.Detail{}, fmt.Errorf("fixture game %s: %w", gameID, providers.ErrNotFound)
}

// FetchPlayers returns the fixture player directory.
func (p *Provider) FetchPlayers(ctx context.Context) ([]domainplayers.Player, error) {
	_ = ctx
	out := make([]domainplayers.Player, 0, 6)
	for _, line := range statLines(2025, 6) {
		out = append(out, domainplayers.Player{
			ID:          line.PlayerID,
			DisplayName: line.DisplayName,
			Position:    line.Position,
			Team:        line.Team,
		})
	}
	return out, nil
}

// FetchProfile returns a minimal profile for a fixture player.
func (p *Provider) FetchProfile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	_ = ctx

	for _, line := range statLines(2025, 6) {
		if line.PlayerID == playerID {
			return domainplayers.Profile{
				Info: domainplayers.Player{
					ID:          line.PlayerID,
					DisplayName: line.DisplayName,
					Position:    line.Position,
					Team:        line.Team,
				},
				Roster: domainplayers.RosterEntry{Season: 2025, Team: line.Team},
				Stats:  []domainplayers.StatLine{line},
			}, nil
		}
	}
	return domainplayers.Profile{}, fmt.Errorf("fixture player %s: %w", playerID, providers.ErrNotFound)
}

// FetchSimilar returns same-position fixture players with synthetic
// similarity scores, excluding the reference player.
func (p *Provider) FetchSimilar(ctx context.Context, q providers.SimilarQuery) ([]domainplayers.StatLine, error) {
	_ = ctx

	var out []domainplayers.StatLine
	score := 90.0
	for _, line := range statLines(2025, 6) {
		if line.PlayerID == q.PlayerID {
			continue
		}
		if q.Position != "" && !strings.EqualFold(line.Position, q.Position) {
			continue
		}
		line.Similarity = ptr(score)
		score -= 7
		out = append(out, line)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}
