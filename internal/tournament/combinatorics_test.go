package tournament

import "testing"

func TestGroupCombinationsProducesEveryEightOfTwelveSubset(t *testing.T) {
	combos := groupCombinations(allGroupLetters, 8)
	if len(combos) != 495 { // C(12,8)
		t.Fatalf("got %d combinations, want 495", len(combos))
	}
	seen := map[string]bool{}
	for _, c := range combos {
		if len(c) != 8 {
			t.Fatalf("combination has %d letters, want 8", len(c))
		}
		seen[sortedKey(c)] = true
	}
	if len(seen) != 495 {
		t.Errorf("only %d distinct combinations, want 495", len(seen))
	}
}

// TestAssignThirdPlacePoolSucceedsForEveryQualifyingSubset exhaustively
// checks the official pool table's defining guarantee (spec.md §4.4/§9):
// whichever 8 of the 12 groups send a third-place qualifier, every pool
// index can still be filled by a distinct one of them.
func TestAssignThirdPlacePoolSucceedsForEveryQualifyingSubset(t *testing.T) {
	for _, qualifying := range groupCombinations(allGroupLetters, 8) {
		assignment, err := AssignThirdPlacePool(qualifying)
		if err != nil {
			t.Fatalf("qualifying=%v: %v", qualifying, err)
		}
		if !validAssignment(assignment, qualifying) {
			t.Fatalf("qualifying=%v: assignment %v failed validation", qualifying, assignment)
		}
	}
}
