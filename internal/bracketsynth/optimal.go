package bracketsynth

import (
	"math"

	"github.com/sazarkin/wcsim/internal/simulation"
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

// OptimalResult is the assignment-based bracket plus its joint-probability
// report (spec.md §4.9).
type OptimalResult struct {
	Bracket       Bracket
	LogProbability float64
	Probability    float64
}

const numR32Positions = 16 * 2

// Optimal builds the assignment-based bracket: a maximum-weight bipartite
// matching of 48 teams against the 32 Round-of-32 positions (two sides per
// of 16 matches), solved with the Hungarian algorithm. Unlike Greedy, this
// always fills all 32 positions with 32 distinct teams.
func Optimal(t *tournament.Tournament, agg *simulation.Aggregator) OptimalResult {
	ids := sortedTeamIDs(agg)
	n := len(ids)
	size := n
	if numR32Positions > size {
		size = numR32Positions
	}

	cost := make([][]float64, size)
	for i := range cost {
		cost[i] = make([]float64, size)
	}

	template := tournament.R32Template()
	for i, id := range ids {
		ts := agg.Teams[id]
		group, hasGroup := t.GroupOf(id)
		for slot := 0; slot < 16; slot++ {
			tmpl := template[slot]
			for side := 0; side < 2; side++ {
				src := tmpl.A
				if side == 1 {
					src = tmpl.B
				}
				j := slot*2 + side
				weight := 0.0
				if hasGroup && tournament.SourceEligible(src, group.ID) {
					weight = float64(slotValue(ts, simulation.RoundR32, slot))
				}
				cost[i][j] = -weight // maximize weight == minimize its negation
			}
		}
		// columns >= numR32Positions are dummy (weight 0, cost 0) and stay
		// zero-initialized; they absorb the 16 teams the matching drops.
	}

	assignment := hungarianMinCost(cost)

	var posTeam [numR32Positions]team.ID
	var posAssigned [numR32Positions]bool
	for i, col := range assignment {
		if i < n && col < numR32Positions {
			posTeam[col] = ids[i]
			posAssigned[col] = true
		}
	}

	var r32 [16]SlotResult
	var logSum float64
	for slot := 0; slot < 16; slot++ {
		posA, posB := slot*2, slot*2+1
		if posAssigned[posA] {
			v := slotValue(agg.Teams[posTeam[posA]], simulation.RoundR32, slot)
			logSum += floorLog(probability(v, agg.Iterations))
		}
		if posAssigned[posB] {
			v := slotValue(agg.Teams[posTeam[posB]], simulation.RoundR32, slot)
			logSum += floorLog(probability(v, agg.Iterations))
		}

		switch {
		case posAssigned[posA] && posAssigned[posB]:
			teamA, teamB := posTeam[posA], posTeam[posB]
			wa := winCount(agg.Teams[teamA], simulation.RoundR32, slot)
			wb := winCount(agg.Teams[teamB], simulation.RoundR32, slot)
			winner, count := teamA, wa
			if wb > wa || (wb == wa && teamB < teamA) {
				winner, count = teamB, wb
			}
			r32[slot] = SlotResult{TeamID: winner, Assigned: true, Count: count, Probability: probability(count, agg.Iterations)}
		case posAssigned[posA]:
			r32[slot] = finalizeCarry(agg, SlotResult{TeamID: posTeam[posA], Assigned: true}, simulation.RoundR32, slot)
		case posAssigned[posB]:
			r32[slot] = finalizeCarry(agg, SlotResult{TeamID: posTeam[posB], Assigned: true}, simulation.RoundR32, slot)
		default:
			r32[slot] = SlotResult{}
		}
	}

	return OptimalResult{
		Bracket:        propagateAll(agg, r32),
		LogProbability: logSum,
		Probability:    math.Exp(logSum),
	}
}
