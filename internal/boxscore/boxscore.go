// Package boxscore derives the grouped, ranked tables the game-detail and
// scoreboard views render from flat per-player stat rows. Everything here is
// pure: inputs are never mutated and derived structures are rebuilt from
// scratch on every call.
package boxscore

import (
	"sort"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// Side identifies which team's table a stat row belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// SideFor assigns a stat row to home or away by exact team-code match against
// the game's home team. Anything that does not match, including an unknown or
// empty team code, lands on the away side. Pinned by test; changing it is a
// product decision.
func SideFor(line domainplayers.StatLine, game domaingames.Game) Side {
	if line.Team == game.HomeTeam {
		return SideHome
	}
	return SideAway
}

// Category is a stat bucket on a team's box-score table.
type Category string

const (
	CategoryPassing   Category = "passing"
	CategoryRushing   Category = "rushing"
	CategoryReceiving Category = "receiving"
)

// DefiningStat returns the yardage stat a category ranks by, absent as 0.
func (c Category) DefiningStat(line domainplayers.StatLine) float64 {
	switch c {
	case CategoryPassing:
		return domainplayers.Num(line.PassingYards)
	case CategoryRushing:
		return domainplayers.Num(line.RushingYards)
	default:
		return domainplayers.Num(line.ReceivingYards)
	}
}

// Buckets holds a team's stat rows partitioned by category. The buckets are
// overlapping views, not a partition: a back who catches passes shows up
// under both rushing and receiving.
type Buckets struct {
	Passing   []domainplayers.StatLine `json:"passing"`
	Rushing   []domainplayers.StatLine `json:"rushing"`
	Receiving []domainplayers.StatLine `json:"receiving"`
}

// Split buckets stat rows by category membership, preserving input order.
// Membership: passing iff attempts > 0; rushing iff carries > 0; receiving
// iff targets > 0 or receptions > 0.
func Split(lines []domainplayers.StatLine) Buckets {
	var out Buckets
	for _, line := range lines {
		if domainplayers.Num(line.Attempts) > 0 {
			out.Passing = append(out.Passing, line)
		}
		if domainplayers.Num(line.Carries) > 0 {
			out.Rushing = append(out.Rushing, line)
		}
		if domainplayers.Num(line.Targets) > 0 || domainplayers.Num(line.Receptions) > 0 {
			out.Receiving = append(out.Receiving, line)
		}
	}
	return out
}

// Rank orders a bucket by its category's defining yardage, descending.
// The sort is stable with no secondary key: rows with equal yardage keep
// their pre-sort relative order. Returns a new slice.
func Rank(bucket []domainplayers.StatLine, cat Category) []domainplayers.StatLine {
	ranked := make([]domainplayers.StatLine, len(bucket))
	copy(ranked, bucket)
	sort.SliceStable(ranked, func(i, j int) bool {
		return cat.DefiningStat(ranked[i]) > cat.DefiningStat(ranked[j])
	})
	return ranked
}

// TeamTable is one team's ranked box-score tables.
type TeamTable struct {
	Team    string  `json:"team"`
	Buckets Buckets `json:"buckets"`
}

// BoxScore is the full derived game-detail view.
type BoxScore struct {
	Home TeamTable `json:"home"`
	Away TeamTable `json:"away"`
}

// Build derives both teams' ranked tables from a game's flat stat rows.
func Build(detail domaingames.Detail) BoxScore {
	var home, away []domainplayers.StatLine
	for _, line := range detail.PlayerStats {
		if SideFor(line, detail.Game) == SideHome {
			home = append(home, line)
		} else {
			away = append(away, line)
		}
	}
	return BoxScore{
		Home: buildTable(detail.Game.HomeTeam, home),
		Away: buildTable(detail.Game.AwayTeam, away),
	}
}

func buildTable(team string, lines []domainplayers.StatLine) TeamTable {
	buckets := Split(lines)
	return TeamTable{
		Team: team,
		Buckets: Buckets{
			Passing:   Rank(buckets.Passing, CategoryPassing),
			Rushing:   Rank(buckets.Rushing, CategoryRushing),
			Receiving: Rank(buckets.Receiving, CategoryReceiving),
		},
	}
}
