package bracketsynth

import "testing"

func TestGreedyCrownsTheMostFrequentChampion(t *testing.T) {
	tt := buildTestTournament()
	agg := buildAggregate(tt, 10)

	b := Greedy(agg)
	if !b.F.Assigned {
		t.Fatal("greedy final should be assigned")
	}
	if b.F.TeamID != 0 {
		t.Errorf("greedy champion = %d, want 0 (always wins under the fixture)", b.F.TeamID)
	}
}

func TestGreedyNeverAssignsATeamToTwoR32Slots(t *testing.T) {
	tt := buildTestTournament()
	agg := buildAggregate(tt, 5)

	b := Greedy(agg)
	seen := map[int]bool{}
	for _, s := range b.R32 {
		if !s.Assigned {
			continue
		}
		if seen[int(s.TeamID)] {
			t.Fatalf("team %d assigned to more than one r32 slot", s.TeamID)
		}
		seen[int(s.TeamID)] = true
	}
}
