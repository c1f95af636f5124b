// Package sampler samples a concrete match result from a strategy's goal
// expectation (spec.md §4.2).
package sampler

import (
	"math"
	"math/rand/v2"

	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

const (
	extraTimeLambdaFactor = 0.3
	penaltyRounds         = 5
	penaltyConversion     = 0.75
)

// Sample draws a concrete MatchResult from goals, using Poisson-distributed
// goal counts (Knuth's algorithm), extra time, and penalties as needed.
// rng must not be shared across concurrent callers.
func Sample(rng *rand.Rand, home, away team.ID, goals strategy.GoalExpectation, isKnockout bool) tournament.MatchResult {
	homeLambda := floorLambda(goals.HomeLambda)
	awayLambda := floorLambda(goals.AwayLambda)

	homeGoals := poisson(rng, homeLambda)
	awayGoals := poisson(rng, awayLambda)

	result := tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: homeGoals, AwayGoals: awayGoals}
	if !isKnockout || homeGoals != awayGoals {
		return result
	}

	result.ExtraTime = true
	result.HomeGoals += poisson(rng, extraTimeLambdaFactor*homeLambda)
	result.AwayGoals += poisson(rng, extraTimeLambdaFactor*awayLambda)
	if result.HomeGoals != result.AwayGoals {
		return result
	}

	hp, ap := simulatePenalties(rng)
	result.Penalties = &tournament.Penalties{Home: hp, Away: ap}
	return result
}

func floorLambda(x float64) float64 {
	if x < 0.1 {
		return 0.1
	}
	return x
}

// poisson samples a Poisson-distributed count via Knuth's algorithm,
// capped at 15 goals (spec.md §3).
func poisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= rng.Float64()
		if p <= l {
			break
		}
	}
	return tournament.ClampGoals(k - 1)
}

// simulatePenalties runs a five-round shootout at a 0.75 conversion rate,
// terminating early once the remaining kicks cannot change the outcome,
// then sudden death (paired kicks until exactly one side converts).
func simulatePenalties(rng *rand.Rand) (homePens, awayPens int) {
	homeLeft, awayLeft := penaltyRounds, penaltyRounds
	for round := 0; round < penaltyRounds; round++ {
		if rng.Float64() < penaltyConversion {
			homePens++
		}
		homeLeft--
		if decided(homePens, awayPens, homeLeft, awayLeft) {
			return
		}
		if rng.Float64() < penaltyConversion {
			awayPens++
		}
		awayLeft--
		if decided(homePens, awayPens, homeLeft, awayLeft) {
			return
		}
	}

	for {
		homeScored := rng.Float64() < penaltyConversion
		awayScored := rng.Float64() < penaltyConversion
		if homeScored {
			homePens++
		}
		if awayScored {
			awayPens++
		}
		if homeScored != awayScored {
			return
		}
	}
}

func decided(homePens, awayPens, homeLeft, awayLeft int) bool {
	return homePens > awayPens+awayLeft || awayPens > homePens+homeLeft
}
