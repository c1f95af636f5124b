package bracketsynth

import "fmt"

// Verify checks a synthesized bracket's invariants: every one of the 16 R32
// slots carries an assigned winner, no team wins two R32 slots, and every
// later-round winner is one of its two feeder slots' winners. A Bracket
// records only the winner of each R32 match, so Verify does not check the
// 32 R32 participants themselves.
func Verify(b Bracket) error {
	seen := make(map[int]struct{}, 16)
	for _, s := range b.R32 {
		if !s.Assigned {
			return fmt.Errorf("bracketsynth: r32 slot unassigned")
		}
		if _, dup := seen[int(s.TeamID)]; dup {
			return fmt.Errorf("bracketsynth: team %d assigned to more than one r32 position", s.TeamID)
		}
		seen[int(s.TeamID)] = struct{}{}
	}
	if len(seen) != 16 {
		return fmt.Errorf("bracketsynth: expected 16 distinct r32 matches, got %d", len(seen))
	}

	if err := verifyFeeders(b.R32[:], b.R16[:]); err != nil {
		return err
	}
	if err := verifyFeeders(b.R16[:], b.QF[:]); err != nil {
		return err
	}
	if err := verifyFeeders(b.QF[:], b.SF[:]); err != nil {
		return err
	}
	if err := verifyFeeders(b.SF[:], []SlotResult{b.F}); err != nil {
		return err
	}
	return nil
}

func verifyFeeders(prev, next []SlotResult) error {
	for slot, n := range next {
		if !n.Assigned {
			continue
		}
		a, b := prev[2*slot], prev[2*slot+1]
		if n.TeamID != a.TeamID && n.TeamID != b.TeamID {
			return fmt.Errorf("bracketsynth: slot winner %d is not one of its feeders (%d, %d)", n.TeamID, a.TeamID, b.TeamID)
		}
	}
	return nil
}
