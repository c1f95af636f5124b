// Package simulation implements the parallel Monte Carlo driver and the
// per-run aggregator of spec.md §4.6-§4.7. The bracket-synthesis consumers
// (§4.8-§4.9) live in package bracketsynth.
package simulation

import (
	"math/rand/v2"

	"github.com/sazarkin/wcsim/internal/sampler"
	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

// RunOnce simulates one complete tournament: group stage, R32 resolution,
// and knockout progression, using rng as the sole source of randomness.
// rng must not be shared across concurrent callers.
func RunOnce(t *tournament.Tournament, strat strategy.Strategy, rng *rand.Rand) (tournament.Result, error) {
	groupSample := func(home, away team.ID) tournament.MatchResult {
		ctx := matchContext(t, home, away, false, 1.0)
		_, goals := strat.Predict(ctx)
		return sampler.Sample(rng, home, away, goals, false)
	}
	groups := tournament.RunGroupStage(t.Groups, groupSample)

	bracket, err := tournament.ResolveR32(groups)
	if err != nil {
		return tournament.Result{}, err
	}

	koSample := func(home, away team.ID, round tournament.Round) tournament.MatchResult {
		ctx := matchContext(t, home, away, true, round.Importance())
		_, goals := strat.Predict(ctx)
		return sampler.Sample(rng, home, away, goals, true)
	}
	bracket = tournament.RunKnockout(bracket, koSample)

	champion, runnerUp, third, fourth := tournament.Podium(bracket)

	return tournament.Result{
		Groups:   groups,
		Bracket:  bracket,
		Champion: champion,
		RunnerUp: runnerUp,
		Third:    third,
		Fourth:   fourth,
	}, nil
}

func matchContext(t *tournament.Tournament, home, away team.ID, isKnockout bool, importance float64) strategy.MatchContext {
	return strategy.MatchContext{
		Home:            t.TeamByID(home),
		Away:            t.TeamByID(away),
		IsKnockout:      isKnockout,
		RoundImportance: importance,
		NeutralVenue:    false,
	}
}
