package boxscore

import (
	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// leaderFor picks the first row with the maximum defining stat for a
// category, or nil when no row has a positive value. First-wins on ties
// matches the backend's own nlargest(1) behavior.
func leaderFor(lines []domainplayers.StatLine, cat Category) *domainplayers.StatLine {
	best := -1
	for i, line := range lines {
		if best < 0 || cat.DefiningStat(line) > cat.DefiningStat(lines[best]) {
			best = i
		}
	}
	if best < 0 || cat.DefiningStat(lines[best]) <= 0 {
		return nil
	}
	leader := lines[best]
	return &leader
}

// WeekLeaders derives the week-wide passing/rushing/receiving leaders from a
// week's stat rows. Used when the backend response omits them.
func WeekLeaders(lines []domainplayers.StatLine) *domaingames.WeekLeaders {
	leaders := &domaingames.WeekLeaders{
		Passing:   leaderFor(lines, CategoryPassing),
		Rushing:   leaderFor(lines, CategoryRushing),
		Receiving: leaderFor(lines, CategoryReceiving),
	}
	if leaders.Passing == nil && leaders.Rushing == nil && leaders.Receiving == nil {
		return nil
	}
	return leaders
}

// TopPerformers derives a game's scoreboard-card leaders from the week's
// stat rows, considering only rows belonging to the game's two teams. A
// category with no positive yardage yields no performer.
func TopPerformers(lines []domainplayers.StatLine, game domaingames.Game) (passer, rusher, receiver *domaingames.TopPerformer) {
	var inGame []domainplayers.StatLine
	for _, line := range lines {
		if line.Team == game.HomeTeam || line.Team == game.AwayTeam {
			inGame = append(inGame, line)
		}
	}

	toPerformer := func(line *domainplayers.StatLine, yards, tds *float64) *domaingames.TopPerformer {
		if line == nil {
			return nil
		}
		return &domaingames.TopPerformer{
			Name:  line.DisplayName,
			Team:  line.Team,
			Yards: int(domainplayers.Num(yards)),
			TDs:   int(domainplayers.Num(tds)),
		}
	}

	if leader := leaderFor(inGame, CategoryPassing); leader != nil {
		passer = toPerformer(leader, leader.PassingYards, leader.PassingTDs)
	}
	if leader := leaderFor(inGame, CategoryRushing); leader != nil {
		rusher = toPerformer(leader, leader.RushingYards, leader.RushingTDs)
	}
	if leader := leaderFor(inGame, CategoryReceiving); leader != nil {
		receiver = toPerformer(leader, leader.ReceivingYards, leader.ReceivingTDs)
	}
	return passer, rusher, receiver
}
