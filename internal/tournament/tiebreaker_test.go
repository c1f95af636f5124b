package tournament

import (
	"testing"

	"github.com/sazarkin/wcsim/internal/team"
)

func standing(id team.ID, pts, gf, ga int) Standing {
	return Standing{TeamID: id, Points: pts, GoalsFor: gf, GoalsAgainst: ga}
}

func TestRankStandingsBaselineCascade(t *testing.T) {
	in := []Standing{
		standing(1, 3, 2, 1),
		standing(2, 6, 4, 0),
		standing(3, 1, 1, 3),
		standing(4, 4, 3, 2),
	}
	out := RankStandings(in, nil)
	want := []team.ID{2, 4, 1, 3}
	for i, id := range want {
		if out[i].TeamID != id {
			t.Fatalf("position %d = team %d, want %d", i, out[i].TeamID, id)
		}
	}
}

func TestRankStandingsTwoWayHeadToHead(t *testing.T) {
	// Teams 1 and 2 tied on points/GD/GF; team 1 beat team 2 head-to-head.
	in := []Standing{
		standing(1, 4, 3, 2),
		standing(2, 4, 3, 2),
	}
	matches := []MatchResult{
		{HomeID: 1, AwayID: 2, HomeGoals: 2, AwayGoals: 1},
	}
	out := RankStandings(in, matches)
	if out[0].TeamID != 1 {
		t.Errorf("head-to-head winner should rank first, got team %d", out[0].TeamID)
	}
}

func TestRankStandingsThreeWayTieFallsBackToID(t *testing.T) {
	in := []Standing{
		standing(3, 3, 2, 2),
		standing(1, 3, 2, 2),
		standing(2, 3, 2, 2),
	}
	out := RankStandings(in, nil)
	for i, id := range []team.ID{1, 2, 3} {
		if out[i].TeamID != id {
			t.Fatalf("3-way tie position %d = team %d, want %d (id tiebreak)", i, out[i].TeamID, id)
		}
	}
}

func TestRankThirdsIsAPermutation(t *testing.T) {
	var thirds []Standing
	for g := byte('A'); g <= 'L'; g++ {
		thirds = append(thirds, Standing{TeamID: team.ID(g), GroupID: team.GroupID(g), Points: int(g) % 7, GoalsFor: int(g)})
	}
	ranked := RankThirds(thirds)
	if len(ranked) != 12 {
		t.Fatalf("expected 12 ranked thirds, got %d", len(ranked))
	}
	seen := map[team.ID]bool{}
	for _, s := range ranked {
		if seen[s.TeamID] {
			t.Fatalf("team %d appears twice in ranked thirds", s.TeamID)
		}
		seen[s.TeamID] = true
	}
}
