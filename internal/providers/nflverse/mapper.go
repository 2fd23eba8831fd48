package nflverse

import (
	domaingames "nfl-stats-dashboard/internal/domain/games"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// Alias resolution order, fixed per logical field:
//
//	name: player_display_name, player, player_name, else ""
//	id:   player_id, gsis_id, else ""
//	team: recent_team, team, team_abbr, else "?"
//
// Directory rows resolve name as display_name, name, full_name.
// Absent numeric fields stay nil on the domain record; they are never turned
// into zeros here so ratio code downstream can still tell "0" from "unknown".

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func mapStatRow(row statRow, fallbackSeason, fallbackWeek int) domainplayers.StatLine {
	team := firstNonEmpty(row.RecentTeam, row.Team, row.TeamAbbr)
	if team == "" {
		team = "?"
	}

	line := domainplayers.StatLine{
		PlayerID:    firstNonEmpty(row.PlayerID, row.GsisID),
		DisplayName: firstNonEmpty(row.PlayerDisplayName, row.Player, row.PlayerName),
		Team:        team,
		Position:    row.Position,
		Season:      fallbackSeason,

		Attempts:      row.Attempts,
		Completions:   row.Completions,
		PassingYards:  row.PassingYards,
		PassingTDs:    row.PassingTDs,
		Interceptions: row.Interceptions,

		Carries:      row.Carries,
		RushingYards: row.RushingYards,
		RushingTDs:   row.RushingTDs,

		Targets:        row.Targets,
		Receptions:     row.Receptions,
		ReceivingYards: row.ReceivingYards,
		ReceivingTDs:   row.ReceivingTDs,

		FumblesLost:      row.FumblesLost,
		TwoPtConversions: row.TwoPtConversions,

		FantasyPointsPPR: row.FantasyPointsPPR,
		Similarity:       row.Similarity,
	}

	if row.Season != nil {
		line.Season = int(*row.Season)
	}
	if row.Week != nil {
		week := int(*row.Week)
		line.Week = &week
	} else if fallbackWeek > 0 {
		week := fallbackWeek
		line.Week = &week
	}
	return line
}

func mapGameRow(row gameRow, season, week int) domaingames.Game {
	return domaingames.Game{
		ID:          firstNonEmpty(row.GameID, row.NflverseGameID),
		Season:      season,
		Week:        week,
		Gameday:     row.Gameday,
		Gametime:    row.Gametime,
		HomeTeam:    row.HomeTeam,
		AwayTeam:    row.AwayTeam,
		HomeScore:   toScore(row.HomeScore),
		AwayScore:   toScore(row.AwayScore),
		Overtime:    row.Overtime != nil && *row.Overtime != 0,
		Stadium:     row.Stadium,
		Roof:        row.Roof,
		TopPasser:   mapPerformer(row.TopPasser),
		TopRusher:   mapPerformer(row.TopRusher),
		TopReceiver: mapPerformer(row.TopReceiver),
	}
}

func mapPerformer(row *performerRow) *domaingames.TopPerformer {
	if row == nil {
		return nil
	}
	return &domaingames.TopPerformer{
		Name:  row.Name,
		Team:  row.Team,
		Yards: int(domainplayers.Num(row.Yards)),
		TDs:   int(domainplayers.Num(row.TDs)),
	}
}

func mapLeaders(resp *weekLeadersResp, season, week int) *domaingames.WeekLeaders {
	if resp == nil {
		return nil
	}
	leaders := &domaingames.WeekLeaders{}
	if resp.Passing != nil {
		line := mapStatRow(*resp.Passing, season, week)
		leaders.Passing = &line
	}
	if resp.Rushing != nil {
		line := mapStatRow(*resp.Rushing, season, week)
		leaders.Rushing = &line
	}
	if resp.Receiving != nil {
		line := mapStatRow(*resp.Receiving, season, week)
		leaders.Receiving = &line
	}
	if leaders.Passing == nil && leaders.Rushing == nil && leaders.Receiving == nil {
		return nil
	}
	return leaders
}

func mapPlayerRow(row playerRow) domainplayers.Player {
	return domainplayers.Player{
		ID:          firstNonEmpty(row.PlayerID, row.GsisID),
		DisplayName: firstNonEmpty(row.DisplayName, row.Name, row.FullName),
		Position:    row.Position,
		Team:        row.Team,
		Headshot:    row.Headshot,
	}
}

func mapProfile(resp profileResponse, seasons []int) domainplayers.Profile {
	profile := domainplayers.Profile{
		Info: mapPlayerRow(resp.Info),
	}
	if resp.Roster != nil {
		profile.Roster = domainplayers.RosterEntry{
			Season:       int(domainplayers.Num(resp.Roster.Season)),
			Team:         resp.Roster.Team,
			JerseyNumber: resp.Roster.JerseyNumber,
			Status:       resp.Roster.Status,
			College:      resp.Roster.College,
			YearsExp:     int(domainplayers.Num(resp.Roster.YearsExp)),
		}
	}
	fallbackSeason := 0
	if len(seasons) > 0 {
		fallbackSeason = seasons[len(seasons)-1]
	}
	for _, row := range resp.Stats {
		profile.Stats = append(profile.Stats, mapStatRow(row, fallbackSeason, 0))
	}
	return profile
}

func toScore(v *float64) *int {
	if v == nil {
		return nil
	}
	score := int(*v)
	return &score
}
