package simulation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

type roundMatches struct {
	round   tournament.Round
	matches []tournament.KnockoutMatch
}

func knockoutRounds(b tournament.Bracket) []roundMatches {
	return []roundMatches{
		{tournament.RoundR32, b.R32[:]},
		{tournament.RoundR16, b.R16[:]},
		{tournament.RoundQF, b.QF[:]},
		{tournament.RoundSF, b.SF[:]},
		{tournament.RoundFinal, []tournament.KnockoutMatch{b.Final}},
	}
}

func findMatch(matches []tournament.KnockoutMatch, id team.ID) (tournament.KnockoutMatch, int, bool) {
	for i, m := range matches {
		if m.TeamA == id || m.TeamB == id {
			return m, i, true
		}
	}
	return tournament.KnockoutMatch{}, -1, false
}

// buildPath returns the team's canonical path string
// "R32:<opp>,R16:<opp>,QF:<opp>,SF:<opp>,F:<opp>", truncated at the round
// the team was eliminated in (or empty if it never reached R32).
func buildPath(b tournament.Bracket, id team.ID) string {
	var parts []string
	for _, rm := range knockoutRounds(b) {
		m, _, ok := findMatch(rm.matches, id)
		if !ok {
			break
		}
		opp := m.TeamA
		if opp == id {
			opp = m.TeamB
		}
		parts = append(parts, fmt.Sprintf("%s:%d", rm.round, opp))
		if winner, _ := m.Result.Winner(); winner != id {
			break
		}
	}
	return strings.Join(parts, ",")
}

// bracketSignature canonicalizes every knockout match's winner (R32 through
// Final, plus the third-place playoff) in fixed bracket order, hyphen
// joined.
func bracketSignature(b tournament.Bracket) string {
	var ids []string
	collect := func(m tournament.KnockoutMatch) {
		w, _ := m.Result.Winner()
		ids = append(ids, strconv.Itoa(int(w)))
	}
	for _, m := range b.R32 {
		collect(m)
	}
	for _, m := range b.R16 {
		collect(m)
	}
	for _, m := range b.QF {
		collect(m)
	}
	for _, m := range b.SF {
		collect(m)
	}
	collect(b.ThirdPlace)
	collect(b.Final)
	return strings.Join(ids, "-")
}

// finalistPairKey canonicalizes an unordered pair of finalists so (a,b) and
// (b,a) hash identically.
func finalistPairKey(a, b team.ID) [2]team.ID {
	if a <= b {
		return [2]team.ID{a, b}
	}
	return [2]team.ID{b, a}
}
