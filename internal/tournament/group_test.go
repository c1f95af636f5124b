package tournament

import (
	"testing"

	"github.com/sazarkin/wcsim/internal/team"
)

func TestBuildGroupResultIsABijectionOfTheFourTeams(t *testing.T) {
	g := team.Group{ID: 'A', Teams: [4]team.ID{1, 2, 3, 4}}
	matches := [6]MatchResult{
		{HomeID: 1, AwayID: 2, HomeGoals: 2, AwayGoals: 0},
		{HomeID: 3, AwayID: 4, HomeGoals: 1, AwayGoals: 1},
		{HomeID: 1, AwayID: 3, HomeGoals: 0, AwayGoals: 0},
		{HomeID: 2, AwayID: 4, HomeGoals: 1, AwayGoals: 2},
		{HomeID: 1, AwayID: 4, HomeGoals: 3, AwayGoals: 1},
		{HomeID: 2, AwayID: 3, HomeGoals: 2, AwayGoals: 2},
	}

	gr := BuildGroupResult(g, matches)

	seen := map[team.ID]bool{}
	for _, s := range gr.Standings {
		if seen[s.TeamID] {
			t.Fatalf("team %d appears twice in standings", s.TeamID)
		}
		seen[s.TeamID] = true
	}
	for _, id := range g.Teams {
		if !seen[id] {
			t.Errorf("team %d from the group is missing from standings", id)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct standings, got %d", len(seen))
	}

	totalPlayed := 0
	for _, s := range gr.Standings {
		totalPlayed += s.Played
	}
	if totalPlayed != 12 {
		t.Errorf("total matches played across standings = %d, want 12 (3 each)", totalPlayed)
	}
}

func TestStandingGoalDifference(t *testing.T) {
	s := Standing{GoalsFor: 5, GoalsAgainst: 2}
	if got := s.GoalDifference(); got != 3 {
		t.Errorf("GoalDifference() = %d, want 3", got)
	}
}
