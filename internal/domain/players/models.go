package players

// StatLine is the canonical per-player, per-game (or per-season when Week is
// nil) stat shape the dashboard works with. Counting stats stay pointers:
// nil means the backend did not report the stat, which is distinct from a
// reported zero. Display code reads through Num; ratio helpers divide only
// when the denominator was actually reported.
type StatLine struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	Team        string `json:"team"`
	Position    string `json:"position"`
	Season      int    `json:"season"`
	Week        *int   `json:"week,omitempty"`

	Attempts      *float64 `json:"attempts,omitempty"`
	Completions   *float64 `json:"completions,omitempty"`
	PassingYards  *float64 `json:"passingYards,omitempty"`
	PassingTDs    *float64 `json:"passingTds,omitempty"`
	Interceptions *float64 `json:"interceptions,omitempty"`

	Carries      *float64 `json:"carries,omitempty"`
	RushingYards *float64 `json:"rushingYards,omitempty"`
	RushingTDs   *float64 `json:"rushingTds,omitempty"`

	Targets        *float64 `json:"targets,omitempty"`
	Receptions     *float64 `json:"receptions,omitempty"`
	ReceivingYards *float64 `json:"receivingYards,omitempty"`
	ReceivingTDs   *float64 `json:"receivingTds,omitempty"`

	FumblesLost      *float64 `json:"fumblesLost,omitempty"`
	TwoPtConversions *float64 `json:"twoPtConversions,omitempty"`

	FantasyPointsPPR *float64 `json:"fantasyPointsPpr,omitempty"`

	// Similarity is only populated on records returned by the
	// similar-players endpoint (0-100, higher is closer).
	Similarity *float64 `json:"similarity,omitempty"`
}

// Num returns a stat's display value, treating an unreported stat as 0.
func Num(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Has reports whether the stat was present in the upstream payload.
func Has(v *float64) bool {
	return v != nil
}

// PerUnit divides num by den. It reports false when the denominator is
// unreported or zero, so "0 carries" never turns into a yards-per-carry.
func PerUnit(num, den *float64) (float64, bool) {
	if den == nil || *den == 0 {
		return 0, false
	}
	return Num(num) / *den, true
}

// CompletionPct returns completion percentage when attempts were reported.
func (s StatLine) CompletionPct() (float64, bool) {
	v, ok := PerUnit(s.Completions, s.Attempts)
	return v * 100, ok
}

// YardsPerAttempt returns passing yards per attempt.
func (s StatLine) YardsPerAttempt() (float64, bool) {
	return PerUnit(s.PassingYards, s.Attempts)
}

// YardsPerCarry returns rushing yards per carry.
func (s StatLine) YardsPerCarry() (float64, bool) {
	return PerUnit(s.RushingYards, s.Carries)
}

// CatchPct returns receptions per target as a percentage.
func (s StatLine) CatchPct() (float64, bool) {
	v, ok := PerUnit(s.Receptions, s.Targets)
	return v * 100, ok
}

// YardsPerTarget returns receiving yards per target.
func (s StatLine) YardsPerTarget() (float64, bool) {
	return PerUnit(s.ReceivingYards, s.Targets)
}

// YardsPerReception returns receiving yards per catch.
func (s StatLine) YardsPerReception() (float64, bool) {
	return PerUnit(s.ReceivingYards, s.Receptions)
}

// FantasyPoints returns the upstream PPR total when present, otherwise the
// standard scoring baseline derived from counting stats with the given
// reception weight (1.0 full PPR, 0.5 half, 0 standard).
func (s StatLine) FantasyPoints(ppr float64) float64 {
	if s.FantasyPointsPPR != nil {
		return *s.FantasyPointsPPR
	}
	return Num(s.PassingYards)*0.04 +
		Num(s.PassingTDs)*4 -
		Num(s.Interceptions)*2 +
		Num(s.RushingYards)*0.1 +
		Num(s.RushingTDs)*6 +
		Num(s.ReceivingYards)*0.1 +
		Num(s.ReceivingTDs)*6 +
		Num(s.Receptions)*ppr -
		Num(s.FumblesLost)*2 +
		Num(s.TwoPtConversions)*2
}

// Directory entry for the league-wide player list served by /v1/players.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Position    string `json:"position"`
	Team        string `json:"team"`
	Headshot    string `json:"headshot,omitempty"`
}

// Profile combines biographical info with the player's current roster entry.
type Profile struct {
	Info   Player      `json:"info"`
	Roster RosterEntry `json:"roster"`
	Stats  []StatLine  `json:"stats,omitempty"`
}

// RosterEntry holds the most recent roster row for a player.
type RosterEntry struct {
	Season       int    `json:"season"`
	Team         string `json:"team"`
	JerseyNumber string `json:"jerseyNumber,omitempty"`
	Status       string `json:"status,omitempty"`
	College      string `json:"college,omitempty"`
	YearsExp     int    `json:"yearsExp"`
}
