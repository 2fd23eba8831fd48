package nflverse

// Wire shapes for the /v1 stats backend. The backend serializes dataframes
// straight to JSON, so the same logical field can arrive under several key
// names depending on which upstream dataset produced the row. Every known
// alias gets its own struct field; the mapper owns the resolution order.

type weekResponse struct {
	Status    string           `json:"status"`
	Season    int              `json:"season"`
	Week      int              `json:"week"`
	GameCount int              `json:"game_count"`
	Games     []gameRow        `json:"games"`
	Leaders   *weekLeadersResp `json:"week_leaders"`
}

type gameRow struct {
	GameID         string   `json:"game_id"`
	NflverseGameID string   `json:"nflverse_game_id"`
	Gameday        string   `json:"gameday"`
	Gametime       string   `json:"gametime"`
	HomeTeam       string   `json:"home_team"`
	AwayTeam       string   `json:"away_team"`
	HomeScore      *float64 `json:"home_score"`
	AwayScore      *float64 `json:"away_score"`
	Overtime       *float64 `json:"overtime"`
	Stadium        string   `json:"stadium"`
	Roof           string   `json:"roof"`

	TopPasser   *performerRow `json:"top_passer"`
	TopRusher   *performerRow `json:"top_rusher"`
	TopReceiver *performerRow `json:"top_receiver"`
}

type performerRow struct {
	Name  string   `json:"name"`
	Team  string   `json:"team"`
	Yards *float64 `json:"yards"`
	TDs   *float64 `json:"tds"`
}

type weekLeadersResp struct {
	Passing   *statRow `json:"passing"`
	Rushing   *statRow `json:"rushing"`
	Receiving *statRow `json:"receiving"`
}

type gameDetailResponse struct {
	GameID      string    `json:"game_id"`
	Season      int       `json:"season"`
	Week        int       `json:"week"`
	GameInfo    *gameRow  `json:"game_info"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	HomeScore   *float64  `json:"home_score"`
	AwayScore   *float64  `json:"away_score"`
	PlayerStats []statRow `json:"player_stats"`
}

// statRow is a flat per-player stat record as the backend emits it.
type statRow struct {
	// Name aliases, most specific first.
	PlayerDisplayName string `json:"player_display_name"`
	Player            string `json:"player"`
	PlayerName        string `json:"player_name"`

	// Identity aliases.
	PlayerID string `json:"player_id"`
	GsisID   string `json:"gsis_id"`

	// Team aliases.
	RecentTeam string `json:"recent_team"`
	Team       string `json:"team"`
	TeamAbbr   string `json:"team_abbr"`

	Position string   `json:"position"`
	Season   *float64 `json:"season"`
	Week     *float64 `json:"week"`

	Attempts      *float64 `json:"attempts"`
	Completions   *float64 `json:"completions"`
	PassingYards  *float64 `json:"passing_yards"`
	PassingTDs    *float64 `json:"passing_tds"`
	Interceptions *float64 `json:"interceptions"`

	Carries      *float64 `json:"carries"`
	RushingYards *float64 `json:"rushing_yards"`
	RushingTDs   *float64 `json:"rushing_tds"`

	Targets        *float64 `json:"targets"`
	Receptions     *float64 `json:"receptions"`
	ReceivingYards *float64 `json:"receiving_yards"`
	ReceivingTDs   *float64 `json:"receiving_tds"`

	FumblesLost      *float64 `json:"fumbles_lost"`
	TwoPtConversions *float64 `json:"two_pt_conversions"`

	FantasyPointsPPR *float64 `json:"fantasy_points_ppr"`
	Similarity       *float64 `json:"similarity"`
}

type playersResponse struct {
	Count int         `json:"count"`
	Data  []playerRow `json:"data"`
}

type playerRow struct {
	// Name aliases.
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`

	// Identity aliases.
	PlayerID string `json:"player_id"`
	GsisID   string `json:"gsis_id"`

	Position string `json:"position"`
	Team     string `json:"team"`
	Headshot string `json:"headshot"`
}

type profileResponse struct {
	Info   playerRow  `json:"info"`
	Roster *rosterRow `json:"roster"`
	Stats  []statRow  `json:"stats"`
}

type rosterRow struct {
	Season       *float64 `json:"season"`
	Team         string   `json:"team"`
	JerseyNumber string   `json:"jersey_number"`
	Status       string   `json:"status"`
	College      string   `json:"college"`
	YearsExp     *float64 `json:"years_exp"`
}

type similarResponse struct {
	Status string    `json:"status"`
	Data   []statRow `json:"data"`
}
