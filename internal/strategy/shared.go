package strategy

import "math"

// logisticOutcome turns a single elo-equivalent rating difference into
// match probabilities using the same shape as the reference Elo formula
// (spec.md §4.1): a logistic win probability, a symmetric draw term that
// vanishes in knockout play, and the remaining mass split home/away.
func logisticOutcome(delta float64, isKnockout bool) Probabilities {
	homeWe := 1.0 / (1.0 + math.Pow(10, -delta/400.0))

	var drawProb float64
	if !isKnockout {
		drawProb = 0.28 * (1 - math.Min(math.Abs(delta)/400.0, 1.0))
	}

	homeWin := (1 - drawProb) * homeWe
	awayWin := (1 - drawProb) * (1 - homeWe)
	return Probabilities{HomeWin: homeWin, Draw: drawProb, AwayWin: awayWin}
}

func goalExpectation(p Probabilities) GoalExpectation {
	return eloGoalExpectation(p.HomeWin, p.AwayWin)
}

func homeAdvantageDelta(neutral bool) float64 {
	if neutral {
		return 0
	}
	return homeAdvantage
}
