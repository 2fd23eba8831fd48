package compare

import (
	"testing"

	"golang.org/x/text/language"

	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

func f(v float64) *float64 { return &v }

func candidate(name string, similarity float64) domainplayers.StatLine {
	return domainplayers.StatLine{
		PlayerID:    name,
		DisplayName: name,
		Similarity:  f(similarity),
	}
}

func rankNames(lines []domainplayers.StatLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.DisplayName
	}
	return out
}

func TestRankSimilarityDescending(t *testing.T) {
	r := NewRanker(language.AmericanEnglish, 1.0)
	ranked := r.Rank([]domainplayers.StatLine{
		candidate("mid", 50),
		candidate("top", 92),
		candidate("low", 11),
	}, ModeSimilarity)

	want := []string{"top", "mid", "low"}
	for i, name := range want {
		if ranked[i].DisplayName != name {
			t.Fatalf("position %d: expected %s, got %v", i, name, rankNames(ranked))
		}
	}
}

func TestRankSimilarityMissingScoreSortsLast(t *testing.T) {
	r := NewRanker(language.AmericanEnglish, 1.0)
	unscored := domainplayers.StatLine{DisplayName: "unscored"}
	ranked := r.Rank([]domainplayers.StatLine{unscored, candidate("scored", 5)}, ModeSimilarity)
	if ranked[0].DisplayName != "scored" {
		t.Fatalf("missing similarity should rank as 0: %v", rankNames(ranked))
	}
}

func TestRankFantasyUsesConfiguredReceptionWeight(t *testing.T) {
	// Same yardage; the second player's extra receptions only matter at full PPR.
	a := domainplayers.StatLine{DisplayName: "a", RushingYards: f(100)}
	b := domainplayers.StatLine{DisplayName: "b", RushingYards: f(95), Receptions: f(6)}

	full := NewRanker(language.AmericanEnglish, 1.0)
	if ranked := full.Rank([]domainplayers.StatLine{a, b}, ModeFantasy); ranked[0].DisplayName != "b" {
		t.Fatalf("full PPR should favor the pass catcher: %v", rankNames(ranked))
	}

	standard := NewRanker(language.AmericanEnglish, 0)
	if ranked := standard.Rank([]domainplayers.StatLine{a, b}, ModeFantasy); ranked[0].DisplayName != "a" {
		t.Fatalf("standard scoring should favor raw yardage: %v", rankNames(ranked))
	}
}

func TestRankAlphabeticalAscending(t *testing.T) {
	r := NewRanker(language.AmericanEnglish, 1.0)
	ranked := r.Rank([]domainplayers.StatLine{
		candidate("Zeke", 1),
		candidate("Aaron", 2),
		candidate("Marcus", 3),
	}, ModeAlphabetical)

	want := []string{"Aaron", "Marcus", "Zeke"}
	for i, name := range want {
		if ranked[i].DisplayName != name {
			t.Fatalf("position %d: expected %s, got %v", i, name, rankNames(ranked))
		}
	}
}

func TestRankIsStableOnEqualKeys(t *testing.T) {
	r := NewRanker(language.AmericanEnglish, 1.0)
	ranked := r.Rank([]domainplayers.StatLine{
		candidate("first", 40),
		candidate("second", 40),
	}, ModeSimilarity)
	if ranked[0].DisplayName != "first" {
		t.Fatalf("ties must keep input order: %v", rankNames(ranked))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	r := NewRanker(language.AmericanEnglish, 1.0)
	input := []domainplayers.StatLine{candidate("b", 1), candidate("a", 2)}
	_ = r.Rank(input, ModeSimilarity)
	if input[0].DisplayName != "b" {
		t.Fatalf("rank must not reorder the caller's slice")
	}
}
