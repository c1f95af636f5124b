package tournament

import "testing"

func TestOutcomeGoalsDecide(t *testing.T) {
	m := MatchResult{HomeID: 1, AwayID: 2, HomeGoals: 2, AwayGoals: 1}
	if got := m.Outcome(); got != Home {
		t.Errorf("Outcome() = %v, want Home", got)
	}
	if w, ok := m.Winner(); !ok || w != 1 {
		t.Errorf("Winner() = (%v, %v), want (1, true)", w, ok)
	}
}

func TestOutcomeDrawWithoutPenalties(t *testing.T) {
	m := MatchResult{HomeID: 1, AwayID: 2, HomeGoals: 1, AwayGoals: 1}
	if got := m.Outcome(); got != Draw {
		t.Errorf("Outcome() = %v, want Draw", got)
	}
	if _, ok := m.Winner(); ok {
		t.Error("Winner() should be absent on an unresolved draw")
	}
}

func TestOutcomePenaltiesBreakTie(t *testing.T) {
	m := MatchResult{
		HomeID: 1, AwayID: 2, HomeGoals: 1, AwayGoals: 1,
		Penalties: &Penalties{Home: 3, Away: 5},
	}
	if got := m.Outcome(); got != Away {
		t.Errorf("Outcome() = %v, want Away", got)
	}
	w, ok := m.Winner()
	if !ok || w != 2 {
		t.Errorf("Winner() = (%v, %v), want (2, true)", w, ok)
	}
	l, ok := m.Loser()
	if !ok || l != 1 {
		t.Errorf("Loser() = (%v, %v), want (1, true)", l, ok)
	}
}

func TestPointsFor(t *testing.T) {
	m := MatchResult{HomeID: 1, AwayID: 2, HomeGoals: 2, AwayGoals: 2}
	if m.PointsFor(1) != 1 || m.PointsFor(2) != 1 {
		t.Error("draw should award 1 point to both teams")
	}
	m = MatchResult{HomeID: 1, AwayID: 2, HomeGoals: 3, AwayGoals: 0}
	if m.PointsFor(1) != 3 || m.PointsFor(2) != 0 {
		t.Error("home win should award 3-0")
	}
}

func TestClampGoals(t *testing.T) {
	if ClampGoals(20) != MaxGoals {
		t.Errorf("ClampGoals(20) = %d, want %d", ClampGoals(20), MaxGoals)
	}
	if ClampGoals(-1) != 0 {
		t.Errorf("ClampGoals(-1) = %d, want 0", ClampGoals(-1))
	}
	if ClampGoals(3) != 3 {
		t.Errorf("ClampGoals(3) = %d, want 3", ClampGoals(3))
	}
}
