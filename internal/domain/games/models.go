package games

import (
	"nfl-stats-dashboard/internal/domain/players"
)

// GameStatus mirrors the states the scoreboard distinguishes.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusFinal     GameStatus = "FINAL"
)

// Game is a single scheduled or completed game on a weekly scoreboard.
// Scores stay pointers: a game without both scores has not gone final.
type Game struct {
	ID        string `json:"id"`
	Season    int    `json:"season"`
	Week      int    `json:"week"`
	Gameday   string `json:"gameday,omitempty"`
	Gametime  string `json:"gametime,omitempty"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore,omitempty"`
	AwayScore *int   `json:"awayScore,omitempty"`
	Overtime  bool   `json:"overtime,omitempty"`
	Stadium   string `json:"stadium,omitempty"`
	Roof      string `json:"roof,omitempty"`

	TopPasser   *TopPerformer `json:"topPasser,omitempty"`
	TopRusher   *TopPerformer `json:"topRusher,omitempty"`
	TopReceiver *TopPerformer `json:"topReceiver,omitempty"`
}

// Complete reports whether the game has both scores recorded.
func (g Game) Complete() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Status derives the display status. Only a complete game is FINAL.
func (g Game) Status() GameStatus {
	if g.Complete() {
		return StatusFinal
	}
	return StatusScheduled
}

// TopPerformer is the per-game leader blurb shown on scoreboard cards.
type TopPerformer struct {
	Name  string `json:"name"`
	Team  string `json:"team"`
	Yards int    `json:"yards"`
	TDs   int    `json:"tds"`
}

// WeekLeaders holds the week-wide statistical leaders.
type WeekLeaders struct {
	Passing   *players.StatLine `json:"passing,omitempty"`
	Rushing   *players.StatLine `json:"rushing,omitempty"`
	Receiving *players.StatLine `json:"receiving,omitempty"`
}

// WeekSummary is the payload backing one scoreboard page.
type WeekSummary struct {
	Season    int          `json:"season"`
	Week      int          `json:"week"`
	GameCount int          `json:"gameCount"`
	Games     []Game       `json:"games"`
	Leaders   *WeekLeaders `json:"weekLeaders,omitempty"`
}

// NewWeekSummary builds a summary with the count kept consistent.
func NewWeekSummary(season, week int, items []Game, leaders *WeekLeaders) WeekSummary {
	return WeekSummary{
		Season:    season,
		Week:      week,
		GameCount: len(items),
		Games:     items,
		Leaders:   leaders,
	}
}

// Detail is the payload backing one game-detail page: the game row plus the
// flat per-player stat rows for both teams that week.
type Detail struct {
	Game        Game               `json:"game"`
	PlayerStats []players.StatLine `json:"playerStats"`
}
