package boxscore

import (
	"testing"

	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

func TestLeaderForFirstMaxWins(t *testing.T) {
	a := line("a", "KC")
	a.PassingYards = f(300)
	b := line("b", "BUF")
	b.PassingYards = f(300)

	leader := leaderFor([]domainplayers.StatLine{a, b}, CategoryPassing)
	if leader == nil || leader.DisplayName != "a" {
		t.Fatalf("first row should win ties, got %+v", leader)
	}
}

func TestLeaderForRequiresPositiveYards(t *testing.T) {
	zero := line("zero", "KC")
	zero.RushingYards = f(0)
	negative := line("negative", "BUF")
	negative.RushingYards = f(-4)

	if leader := leaderFor([]domainplayers.StatLine{zero, negative}, CategoryRushing); leader != nil {
		t.Fatalf("no positive yardage should yield no leader, got %+v", leader)
	}
	if leader := leaderFor(nil, CategoryRushing); leader != nil {
		t.Fatalf("empty input should yield no leader")
	}
}

func TestWeekLeadersPerCategory(t *testing.T) {
	passer := line("passer", "KC")
	passer.PassingYards = f(340)
	rusher := line("rusher", "BUF")
	rusher.RushingYards = f(120)

	leaders := WeekLeaders([]domainplayers.StatLine{passer, rusher})
	if leaders == nil {
		t.Fatalf("expected leaders")
	}
	if leaders.Passing == nil || leaders.Passing.DisplayName != "passer" {
		t.Fatalf("unexpected passing leader: %+v", leaders.Passing)
	}
	if leaders.Rushing == nil || leaders.Rushing.DisplayName != "rusher" {
		t.Fatalf("unexpected rushing leader: %+v", leaders.Rushing)
	}
	if leaders.Receiving != nil {
		t.Fatalf("no receiving yards means no receiving leader")
	}
}

func TestWeekLeadersNilWhenNothingQualifies(t *testing.T) {
	idle := line("idle", "KC")
	if leaders := WeekLeaders([]domainplayers.StatLine{idle}); leaders != nil {
		t.Fatalf("expected nil leaders, got %+v", leaders)
	}
}

func TestTopPerformersScopedToGameTeams(t *testing.T) {
	game := domaingames.Game{ID: "2024_01_BUF_KC", HomeTeam: "KC", AwayTeam: "BUF"}

	inGame := line("in-game", "KC")
	inGame.PassingYards = f(250)
	inGame.PassingTDs = f(2)

	elsewhere := line("elsewhere", "DAL")
	elsewhere.PassingYards = f(400)

	rusher := line("rusher", "BUF")
	rusher.RushingYards = f(88)
	rusher.RushingTDs = f(1)

	passer, topRusher, receiver := TopPerformers([]domainplayers.StatLine{inGame, elsewhere, rusher}, game)

	if passer == nil || passer.Name != "in-game" {
		t.Fatalf("the big day on another field must not leak in: %+v", passer)
	}
	if passer.Yards != 250 || passer.TDs != 2 {
		t.Fatalf("unexpected passer numbers: %+v", passer)
	}
	if topRusher == nil || topRusher.Name != "rusher" || topRusher.Yards != 88 {
		t.Fatalf("unexpected rusher: %+v", topRusher)
	}
	if receiver != nil {
		t.Fatalf("no receiving yards means no top receiver, got %+v", receiver)
	}
}
