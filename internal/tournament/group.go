package tournament

import "github.com/sazarkin/wcsim/internal/team"

// Standing is one team's accumulated group-stage record.
type Standing struct {
	TeamID      team.ID
	GroupID     team.GroupID
	Played      int
	Won         int
	Drawn       int
	Lost        int
	GoalsFor    int
	GoalsAgainst int
	Points      int
}

// GoalDifference is goals_for - goals_against.
func (s Standing) GoalDifference() int { return s.GoalsFor - s.GoalsAgainst }

func (s *Standing) apply(m MatchResult, id team.ID) {
	var gf, ga int
	if id == m.HomeID {
		gf, ga = m.HomeGoals, m.AwayGoals
	} else {
		gf, ga = m.AwayGoals, m.HomeGoals
	}
	s.Played++
	s.GoalsFor += gf
	s.GoalsAgainst += ga
	switch m.Outcome() {
	case Draw:
		s.Drawn++
		s.Points++
	case Home:
		if id == m.HomeID {
			s.Won++
			s.Points += 3
		} else {
			s.Lost++
		}
	case Away:
		if id == m.AwayID {
			s.Won++
			s.Points += 3
		} else {
			s.Lost++
		}
	}
}

// GroupResult is one group's six fixtures plus final standings, sorted by
// placement (index 0 = group winner, index 3 = group last).
type GroupResult struct {
	GroupID   team.GroupID
	Matches   [6]MatchResult
	Standings [4]Standing
}

// BuildGroupResult accumulates match results into standings and ranks them
// via the FIFA cascade (see tiebreaker.go). matches must be in the group's
// canonical fixture order.
func BuildGroupResult(g team.Group, matches [6]MatchResult) GroupResult {
	standings := map[team.ID]*Standing{}
	for _, id := range g.Teams {
		standings[id] = &Standing{TeamID: id, GroupID: team.GroupID(g.ID)}
	}
	for _, m := range matches {
		standings[m.HomeID].apply(m, m.HomeID)
		standings[m.AwayID].apply(m, m.AwayID)
	}

	ordered := make([]Standing, 0, 4)
	for _, id := range g.Teams {
		ordered = append(ordered, *standings[id])
	}
	ranked := RankStandings(ordered, matches[:])

	var out [4]Standing
	copy(out[:], ranked)
	return GroupResult{GroupID: team.GroupID(g.ID), Matches: matches, Standings: out}
}
