package tournament

import "github.com/sazarkin/wcsim/internal/team"

// GroupSampler simulates one group-stage (non-knockout) match.
type GroupSampler func(home, away team.ID) MatchResult

// RunGroupStage simulates all twelve groups' six fixtures each, in fixture
// order, and ranks each group's standings via the FIFA cascade.
func RunGroupStage(groups []team.Group, sample GroupSampler) [12]GroupResult {
	var out [12]GroupResult
	for gi, g := range groups {
		fixtures := g.Fixtures()
		var matches [6]MatchResult
		for i, f := range fixtures {
			matches[i] = sample(f[0], f[1])
			matches[i].HomeID, matches[i].AwayID = f[0], f[1]
		}
		out[gi] = BuildGroupResult(g, matches)
	}
	return out
}
