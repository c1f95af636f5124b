// Package bracketsynth reconstructs a single canonical knockout bracket
// from an Aggregator's counts, two ways: a fast greedy heuristic (spec.md
// §4.8) and a maximum-weight bipartite matching that guarantees 32 distinct
// Round-of-32 participants (spec.md §4.9).
package bracketsynth

import (
	"math"
	"sort"

	"github.com/sazarkin/wcsim/internal/simulation"
	"github.com/sazarkin/wcsim/internal/team"
)

// SlotResult is one synthesized bracket position: the team assigned to it,
// its observed count at that position, and the derived probability.
type SlotResult struct {
	TeamID      team.ID
	Assigned    bool
	Count       int
	Probability float64
}

// Bracket is a synthesized knockout draw: one SlotResult per round/slot,
// mirroring tournament.Bracket's shape minus the third-place playoff (the
// aggregator does not track third-place participation/win counts, since
// path strings and slot maps only name R32 through the Final).
type Bracket struct {
	R32 [16]SlotResult
	R16 [8]SlotResult
	QF  [4]SlotResult
	SF  [2]SlotResult
	F   SlotResult
}

// slotValue is the value function shared by both synthesis algorithms: a
// team's win count at (round, slot) if positive, else its participation
// count (spec.md §4.8's "critical" fallback — a team that always reached a
// slot but always lost there is still representable).
func slotValue(ts *simulation.TeamStats, round simulation.Round, slot int) int {
	if ts == nil {
		return 0
	}
	if w := ts.Wins[round][slot]; w > 0 {
		return w
	}
	return ts.Participation[round][slot]
}

func winCount(ts *simulation.TeamStats, round simulation.Round, slot int) int {
	if ts == nil {
		return 0
	}
	return ts.Wins[round][slot]
}

func probability(count, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(count) / float64(n)
}

// sortedTeamIDs returns every team id known to the aggregator, ascending —
// used wherever iteration order must be deterministic.
func sortedTeamIDs(agg *simulation.Aggregator) []team.ID {
	ids := make([]team.ID, 0, len(agg.Teams))
	for id := range agg.Teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// propagate derives the next round's SlotResult from the previous round's,
// by comparing the two feeder slots' win counts at the new round/slot and
// keeping whichever is higher (ties broken by lower team id). A round with
// only one assigned feeder propagates it unconditionally; a round with
// neither feeder assigned leaves the new slot unassigned.
func propagate(agg *simulation.Aggregator, prev []SlotResult, round simulation.Round, numSlots int) []SlotResult {
	out := make([]SlotResult, numSlots)
	for slot := 0; slot < numSlots; slot++ {
		a, b := prev[2*slot], prev[2*slot+1]
		switch {
		case a.Assigned && b.Assigned:
			wa := winCount(agg.Teams[a.TeamID], round, slot)
			wb := winCount(agg.Teams[b.TeamID], round, slot)
			winner := a
			count := wa
			if wb > wa || (wb == wa && b.TeamID < a.TeamID) {
				winner = b
				count = wb
			}
			out[slot] = SlotResult{TeamID: winner.TeamID, Assigned: true, Count: count, Probability: probability(count, agg.Iterations)}
		case a.Assigned:
			out[slot] = finalizeCarry(agg, a, round, slot)
		case b.Assigned:
			out[slot] = finalizeCarry(agg, b, round, slot)
		default:
			out[slot] = SlotResult{}
		}
	}
	return out
}

// finalizeCarry re-derives a slot's count/probability at the new round for
// a team that advanced unopposed (its sibling feeder slot was empty).
func finalizeCarry(agg *simulation.Aggregator, feeder SlotResult, round simulation.Round, slot int) SlotResult {
	count := winCount(agg.Teams[feeder.TeamID], round, slot)
	return SlotResult{TeamID: feeder.TeamID, Assigned: true, Count: count, Probability: probability(count, agg.Iterations)}
}

// propagateAll runs R32 -> R16 -> QF -> SF -> Final on an already-built R32
// row, shared by both the greedy and optimal synthesizers.
func propagateAll(agg *simulation.Aggregator, r32 [16]SlotResult) Bracket {
	var b Bracket
	b.R32 = r32
	r16 := propagate(agg, r32[:], simulation.RoundR16, 8)
	copy(b.R16[:], r16)
	qf := propagate(agg, r16, simulation.RoundQF, 4)
	copy(b.QF[:], qf)
	sf := propagate(agg, qf, simulation.RoundSF, 2)
	copy(b.SF[:], sf)
	final := propagate(agg, sf, simulation.RoundFinal, 1)
	b.F = final[0]
	return b
}

func floorLog(p float64) float64 {
	const minP = 1e-10
	if p < minP {
		p = minP
	}
	return math.Log(p)
}
