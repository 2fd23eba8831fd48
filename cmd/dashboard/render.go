package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	appgames "nfl-stats-dashboard/internal/app/games"
	"nfl-stats-dashboard/internal/boxscore"
	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

func renderScoreboard(w io.Writer, summary domaingames.WeekSummary) {
	fmt.Fprintf(w, "Week %d, %d (%d games)\n\n", summary.Week, summary.Season, summary.GameCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GAME\tAWAY\tHOME\tSCORE\tSTATUS")
	for _, game := range summary.Games {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			game.ID, game.AwayTeam, game.HomeTeam, scoreline(game), game.Status())
	}
	tw.Flush()

	if summary.Leaders == nil {
		return
	}
	fmt.Fprintln(w, "\nWeek leaders")
	printLeader(w, "Passing", summary.Leaders.Passing, func(l domainplayers.StatLine) *float64 { return l.PassingYards })
	printLeader(w, "Rushing", summary.Leaders.Rushing, func(l domainplayers.StatLine) *float64 { return l.RushingYards })
	printLeader(w, "Receiving", summary.Leaders.Receiving, func(l domainplayers.StatLine) *float64 { return l.ReceivingYards })
}

func printLeader(w io.Writer, label string, leader *domainplayers.StatLine, yards func(domainplayers.StatLine) *float64) {
	if leader == nil {
		return
	}
	fmt.Fprintf(w, "  %-10s %s (%s), %.0f yds\n", label, leader.DisplayName, leader.Team, domainplayers.Num(yards(*leader)))
}

func scoreline(game domaingames.Game) string {
	if !game.Complete() {
		return "-"
	}
	return fmt.Sprintf("%d-%d", *game.AwayScore, *game.HomeScore)
}

func renderGame(w io.Writer, view appgames.GameView) {
	game := view.Detail.Game
	fmt.Fprintf(w, "%s at %s (%s)  %s\n", game.AwayTeam, game.HomeTeam, game.ID, scoreline(game))

	renderTable(w, game.AwayTeam, view.Box.Away)
	renderTable(w, game.HomeTeam, view.Box.Home)
}

func renderTable(w io.Writer, team string, table boxscore.TeamTable) {
	fmt.Fprintf(w, "\n%s\n", team)
	renderBucket(w, "Passing", table.Buckets.Passing, passingRow)
	renderBucket(w, "Rushing", table.Buckets.Rushing, rushingRow)
	renderBucket(w, "Receiving", table.Buckets.Receiving, receivingRow)
}

func renderBucket(w io.Writer, label string, lines []domainplayers.StatLine, row func(domainplayers.StatLine) string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", label)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, line := range lines {
		fmt.Fprintf(tw, "    %s\t%s\n", line.DisplayName, row(line))
	}
	tw.Flush()
}

func passingRow(line domainplayers.StatLine) string {
	out := fmt.Sprintf("%.0f/%.0f, %.0f yds, %.0f TD",
		domainplayers.Num(line.Completions), domainplayers.Num(line.Attempts),
		domainplayers.Num(line.PassingYards), domainplayers.Num(line.PassingTDs))
	if ypa, ok := line.YardsPerAttempt(); ok {
		out += fmt.Sprintf(", %.1f y/a", ypa)
	}
	return out
}

func rushingRow(line domainplayers.StatLine) string {
	out := fmt.Sprintf("%.0f car, %.0f yds, %.0f TD",
		domainplayers.Num(line.Carries), domainplayers.Num(line.RushingYards), domainplayers.Num(line.RushingTDs))
	if ypc, ok := line.YardsPerCarry(); ok {
		out += fmt.Sprintf(", %.1f y/c", ypc)
	}
	return out
}

func receivingRow(line domainplayers.StatLine) string {
	out := fmt.Sprintf("%.0f/%.0f, %.0f yds, %.0f TD",
		domainplayers.Num(line.Receptions), domainplayers.Num(line.Targets),
		domainplayers.Num(line.ReceivingYards), domainplayers.Num(line.ReceivingTDs))
	if ypr, ok := line.YardsPerReception(); ok {
		out += fmt.Sprintf(", %.1f y/r", ypr)
	}
	return out
}

func renderPlayers(w io.Writer, items []domainplayers.Player) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOS\tTEAM")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.DisplayName, p.Position, p.Team)
	}
	tw.Flush()
}

func renderCandidates(w io.Writer, candidates []domainplayers.StatLine, ppr float64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTEAM\tPOS\tSIMILARITY\tFANTASY")
	for _, line := range candidates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%.1f\n",
			line.DisplayName, line.Team, line.Position,
			domainplayers.Num(line.Similarity), line.FantasyPoints(ppr))
	}
	tw.Flush()
}
