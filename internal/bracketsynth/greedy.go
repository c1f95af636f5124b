package bracketsynth

import (
	"sort"

	"github.com/sazarkin/wcsim/internal/simulation"
)

// Greedy builds the "most likely" bracket of spec.md §4.8. It is fast and
// monotone with team strength. Teams claim slots in champion-count order,
// each taking at most one R32 slot (its highest-valued open one); a slot
// for which no remaining team has a positive value is left empty, so fewer
// than 16 slots may be filled. Use Optimal when 32 distinct Round-of-32
// participants is a hard requirement.
func Greedy(agg *simulation.Aggregator) Bracket {
	ids := sortedTeamIDs(agg)
	sort.SliceStable(ids, func(i, j int) bool {
		ci := agg.Teams[ids[i]].Champion
		cj := agg.Teams[ids[j]].Champion
		if ci != cj {
			return ci > cj
		}
		return ids[i] < ids[j]
	})

	var r32 [16]SlotResult
	open := [16]bool{}
	for i := range open {
		open[i] = true
	}

	for _, id := range ids {
		ts := agg.Teams[id]
		bestSlot := -1
		bestVal := 0
		for slot := 0; slot < 16; slot++ {
			if !open[slot] {
				continue
			}
			if v := slotValue(ts, simulation.RoundR32, slot); v > bestVal {
				bestVal = v
				bestSlot = slot
			}
		}
		if bestSlot < 0 {
			continue
		}
		open[bestSlot] = false
		count := winCount(ts, simulation.RoundR32, bestSlot)
		if count == 0 {
			count = ts.Participation[simulation.RoundR32][bestSlot]
		}
		r32[bestSlot] = SlotResult{TeamID: id, Assigned: true, Count: count, Probability: probability(count, agg.Iterations)}
	}

	return propagateAll(agg, r32)
}
