// Package strategy implements the prediction-strategy interface of
// spec.md §4.1: turning two teams plus a match context into outcome
// probabilities and goal-expectation parameters for the sampler.
package strategy

import "github.com/sazarkin/wcsim/internal/team"

// MatchContext describes the situational inputs a strategy may use.
type MatchContext struct {
	Home             *team.Team
	Away             *team.Team
	IsKnockout       bool
	RoundImportance  float64
	NeutralVenue     bool
}

// Probabilities sum to exactly 1.0 (within floating point tolerance).
type Probabilities struct {
	HomeWin float64
	Draw    float64
	AwayWin float64
}

// GoalExpectation holds the Poisson rate parameters fed to the sampler.
// Each λ is floored at 0.1 (spec.md §4.1/§4.2).
type GoalExpectation struct {
	HomeLambda float64
	AwayLambda float64
}

// Strategy is the polymorphic prediction interface. Every implementation
// must return probabilities summing to 1.0 and lambdas >= 0.1.
type Strategy interface {
	Predict(ctx MatchContext) (Probabilities, GoalExpectation)
	Name() string
}

// Kind enumerates the five variants selectable from the CLI (spec.md §6).
type Kind string

const (
	KindElo        Kind = "elo"
	KindFIFA       Kind = "fifa"
	KindMarket     Kind = "market"
	KindForm       Kind = "form"
	KindComposite  Kind = "composite"
)

// New constructs the named reference strategy.
func New(kind Kind) (Strategy, error) {
	switch kind {
	case KindElo:
		return NewElo(), nil
	case KindFIFA:
		return NewFIFARanking(), nil
	case KindMarket:
		return NewMarketValue(), nil
	case KindForm:
		return NewForm(), nil
	case KindComposite:
		return NewComposite(
			weighted{NewElo(), 0.4},
			weighted{NewFIFARanking(), 0.25},
			weighted{NewMarketValue(), 0.2},
			weighted{NewForm(), 0.15},
		), nil
	default:
		return nil, &UnknownStrategyError{Kind: string(kind)}
	}
}

// UnknownStrategyError is returned by New for an unrecognized strategy kind.
type UnknownStrategyError struct{ Kind string }

func (e *UnknownStrategyError) Error() string { return "unknown strategy: " + e.Kind }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func floorLambda(x float64) float64 {
	if x < 0.1 {
		return 0.1
	}
	return x
}
