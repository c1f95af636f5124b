package strategy

const (
	homeAdvantage = 100.0
	baseGoals     = 1.3
)

// Elo implements the reference Elo-rating strategy of spec.md §4.1.
type Elo struct{}

func NewElo() *Elo { return &Elo{} }

func (Elo) Name() string { return "elo" }

func (Elo) Predict(ctx MatchContext) (Probabilities, GoalExpectation) {
	delta := eloDelta(ctx)
	probs := logisticOutcome(delta, ctx.IsKnockout)
	return probs, goalExpectation(probs)
}

func eloDelta(ctx MatchContext) float64 {
	return ctx.Home.EloRating - ctx.Away.EloRating + homeAdvantageDelta(ctx.NeutralVenue)
}

func eloGoalExpectation(homeWin, awayWin float64) GoalExpectation {
	homeLambda := baseGoals * (1 + clamp(homeWin-0.33, -0.3, 0.5))
	awayLambda := baseGoals * (1 + clamp(awayWin-0.33, -0.3, 0.5))
	return GoalExpectation{HomeLambda: floorLambda(homeLambda), AwayLambda: floorLambda(awayLambda)}
}
