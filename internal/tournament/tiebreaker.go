package tournament

import (
	"sort"

	"github.com/sazarkin/wcsim/internal/team"
)

// baselineLess orders by points desc, goal difference desc, goals-for desc,
// then team id asc (the deterministic final tiebreak, standing in for FIFA's
// "drawing of lots").
func baselineLess(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference() != b.GoalDifference() {
		return a.GoalDifference() > b.GoalDifference()
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.TeamID < b.TeamID
}

func tiedOn(a, b Standing) bool {
	return a.Points == b.Points && a.GoalDifference() == b.GoalDifference() && a.GoalsFor == b.GoalsFor
}

// RankStandings orders a single group's four standings by the FIFA cascade:
// points, goal difference, goals scored, then (for exactly two-way ties)
// head-to-head points/goal-difference/goals-scored from matches, and finally
// team id. Three-way-or-more ties fall back to the id tiebreak directly, per
// spec.md §9's acknowledged simplification.
func RankStandings(standings []Standing, matches []MatchResult) []Standing {
	out := append([]Standing(nil), standings...)
	sort.SliceStable(out, func(i, j int) bool { return baselineLess(out[i], out[j]) })

	for i := 0; i < len(out); {
		j := i + 1
		for j < len(out) && tiedOn(out[i], out[j]) {
			j++
		}
		if j-i == 2 {
			resolveHeadToHead(out[i:j], matches)
		}
		i = j
	}
	return out
}

// resolveHeadToHead reorders an exactly-two-team tied slice using their
// mutual match's points, goal difference, and goals scored, in that order.
func resolveHeadToHead(pair []Standing, matches []MatchResult) {
	a, b := pair[0], pair[1]
	var m *MatchResult
	for i := range matches {
		mm := matches[i]
		if (mm.HomeID == a.TeamID && mm.AwayID == b.TeamID) || (mm.HomeID == b.TeamID && mm.AwayID == a.TeamID) {
			m = &matches[i]
			break
		}
	}
	if m == nil {
		return // no mutual match recorded (cross-group thirds); id tiebreak already applied
	}

	ptsA, ptsB := m.PointsFor(a.TeamID), m.PointsFor(b.TeamID)
	if ptsA != ptsB {
		if ptsA < ptsB {
			pair[0], pair[1] = b, a
		}
		return
	}

	gdA, gfA := h2hGoals(*m, a.TeamID)
	gdB, gfB := h2hGoals(*m, b.TeamID)
	if gdA != gdB {
		if gdA < gdB {
			pair[0], pair[1] = b, a
		}
		return
	}
	if gfA != gfB {
		if gfA < gfB {
			pair[0], pair[1] = b, a
		}
		return
	}
	// already ordered by team id from the baseline sort
}

func h2hGoals(m MatchResult, id team.ID) (goalDiff, goalsFor int) {
	if id == m.HomeID {
		return m.HomeGoals - m.AwayGoals, m.HomeGoals
	}
	return m.AwayGoals - m.HomeGoals, m.AwayGoals
}

// RankThirds ranks the twelve groups' third-placed standings using the same
// cascade (points, GD, GF, team id); no head-to-head is possible since the
// teams never played each other. The first eight (index 0..7) qualify.
func RankThirds(thirds []Standing) []Standing {
	out := append([]Standing(nil), thirds...)
	sort.SliceStable(out, func(i, j int) bool { return baselineLess(out[i], out[j]) })
	return out
}
