// Package compare implements the player-comparison view: candidate ranking
// modes and the bounded selection set the view edits.
package compare

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// Mode selects how a candidate list is ordered.
type Mode string

const (
	ModeSimilarity   Mode = "similarity"
	ModeFantasy      Mode = "fantasy"
	ModeAlphabetical Mode = "alphabetical"
)

// Ranker orders candidate lists. Construct one per view; the collator is not
// safe for concurrent use.
type Ranker struct {
	collator *collate.Collator
	ppr      float64
}

// NewRanker builds a ranker using the given locale for alphabetical ordering
// and the given reception weight for the fantasy mode.
func NewRanker(tag language.Tag, ppr float64) *Ranker {
	return &Ranker{
		collator: collate.New(tag),
		ppr:      ppr,
	}
}

// Rank returns a new ordering of candidates for the mode. The input is never
// mutated; switching modes only produces a different view of the same list.
// Similarity and fantasy sort descending with missing values as 0;
// alphabetical sorts ascending with locale-aware collation. All modes are
// stable.
func (r *Ranker) Rank(candidates []domainplayers.StatLine, mode Mode) []domainplayers.StatLine {
	ranked := make([]domainplayers.StatLine, len(candidates))
	copy(ranked, candidates)

	switch mode {
	case ModeAlphabetical:
		sort.SliceStable(ranked, func(i, j int) bool {
			return r.collator.CompareString(ranked[i].DisplayName, ranked[j].DisplayName) < 0
		})
	case ModeFantasy:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].FantasyPoints(r.ppr) > ranked[j].FantasyPoints(r.ppr)
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return domainplayers.Num(ranked[i].Similarity) > domainplayers.Num(ranked[j].Similarity)
		})
	}
	return ranked
}
