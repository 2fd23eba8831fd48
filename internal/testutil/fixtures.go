package testutil

import (
	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// F returns a pointer to the given float, for optional stat fields.
func F(v float64) *float64 { return &v }

// I returns a pointer to the given int, for optional score fields.
func I(v int) *int { return &v }

// SampleStatLine returns a stat line with passing volume for the given player.
func SampleStatLine(name, team string) domainplayers.StatLine {
	return domainplayers.StatLine{
		PlayerID:     name,
		DisplayName:  name,
		Team:         team,
		Position:     "QB",
		Season:       2024,
		Attempts:     F(30),
		Completions:  F(20),
		PassingYards: F(250),
		PassingTDs:   F(2),
	}
}

// SampleGame returns a minimal final game fixture with the provided id.
func SampleGame(id, home, away string) domaingames.Game {
	return domaingames.Game{
		ID:        id,
		Season:    2024,
		Week:      1,
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: I(27),
		AwayScore: I(24),
	}
}

// SampleWeekSummary builds a summary with a single sample game.
func SampleWeekSummary(season, week int, gameID string) domaingames.WeekSummary {
	game := SampleGame(gameID, "KC", "BUF")
	game.Season = season
	game.Week = week
	return domaingames.NewWeekSummary(season, week, []domaingames.Game{game}, nil)
}
