package strategy

// weighted pairs a component strategy with its composite weight.
type weighted struct {
	Strategy Strategy
	Weight   float64
}

// Composite is a weighted average of component strategies' probabilities
// and lambdas, weights renormalized to sum to 1 (spec.md §4.1). An empty
// composite returns neutral values rather than erroring (spec.md §7).
type Composite struct {
	components []weighted
}

func NewComposite(components ...weighted) *Composite {
	return &Composite{components: components}
}

func (Composite) Name() string { return "composite" }

func (c *Composite) Predict(ctx MatchContext) (Probabilities, GoalExpectation) {
	if len(c.components) == 0 {
		return Probabilities{HomeWin: 0.33, Draw: 0.34, AwayWin: 0.33}, GoalExpectation{HomeLambda: 1.3, AwayLambda: 1.3}
	}

	var totalWeight float64
	for _, w := range c.components {
		totalWeight += w.Weight
	}
	if totalWeight <= 0 {
		return Probabilities{HomeWin: 0.33, Draw: 0.34, AwayWin: 0.33}, GoalExpectation{HomeLambda: 1.3, AwayLambda: 1.3}
	}

	var probs Probabilities
	var goals GoalExpectation
	for _, w := range c.components {
		norm := w.Weight / totalWeight
		p, g := w.Strategy.Predict(ctx)
		probs.HomeWin += norm * p.HomeWin
		probs.Draw += norm * p.Draw
		probs.AwayWin += norm * p.AwayWin
		goals.HomeLambda += norm * g.HomeLambda
		goals.AwayLambda += norm * g.AwayLambda
	}
	return probs, goals
}
