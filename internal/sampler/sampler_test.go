package sampler

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/team"
)

func TestSamplePoissonMeanConvergesToLambda(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 20000
	const lambda = 1.5
	var sum int
	for i := 0; i < n; i++ {
		sum += poisson(rng, lambda)
	}
	mean := float64(sum) / n
	if math.Abs(mean-lambda) > 0.05 {
		t.Errorf("sample mean over %d draws = %v, want close to %v", n, mean, lambda)
	}
}

func TestSampleNonKnockoutAllowsDraws(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	goals := strategy.GoalExpectation{HomeLambda: 1.0, AwayLambda: 1.0}
	sawDraw := false
	for i := 0; i < 500; i++ {
		res := Sample(rng, team.ID(1), team.ID(2), goals, false)
		if res.ExtraTime || res.Penalties != nil {
			t.Fatalf("non-knockout match should never carry extra time or penalties, got %+v", res)
		}
		if res.HomeGoals == res.AwayGoals {
			sawDraw = true
		}
	}
	if !sawDraw {
		t.Error("expected at least one draw across 500 non-knockout samples at equal lambdas")
	}
}

func TestSampleKnockoutAlwaysDecides(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	goals := strategy.GoalExpectation{HomeLambda: 1.0, AwayLambda: 1.0}
	for i := 0; i < 500; i++ {
		res := Sample(rng, team.ID(1), team.ID(2), goals, true)
		if res.HomeGoals == res.AwayGoals && res.Penalties == nil {
			t.Fatalf("knockout match left undecided without penalties: %+v", res)
		}
		if res.Penalties != nil && res.Penalties.Home == res.Penalties.Away {
			t.Fatalf("penalty shootout ended level: %+v", res.Penalties)
		}
	}
}

func TestSampleGoalsNeverExceedCap(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	goals := strategy.GoalExpectation{HomeLambda: 5.0, AwayLambda: 5.0}
	for i := 0; i < 2000; i++ {
		res := Sample(rng, team.ID(1), team.ID(2), goals, false)
		if res.HomeGoals > 15 || res.AwayGoals > 15 {
			t.Fatalf("goals exceeded the 15-goal cap: %+v", res)
		}
	}
}

func TestFloorLambdaEnforcesMinimum(t *testing.T) {
	if got := floorLambda(0.0); got != 0.1 {
		t.Errorf("floorLambda(0) = %v, want 0.1", got)
	}
	if got := floorLambda(2.5); got != 2.5 {
		t.Errorf("floorLambda(2.5) = %v, want 2.5", got)
	}
}
