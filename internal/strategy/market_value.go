package strategy

import "math"

// marketEloFactor scales a log-market-value difference into an
// elo-equivalent points difference.
const marketEloFactor = 250.0

// MarketValue predicts from squad market value — a straightforward analog
// of Elo (spec.md §4.1). Zero market values are handled via the log(x+1)
// form (spec.md §7), so a squad with no listed value never produces NaN or
// -Inf.
type MarketValue struct{}

func NewMarketValue() *MarketValue { return &MarketValue{} }

func (MarketValue) Name() string { return "market" }

func (MarketValue) Predict(ctx MatchContext) (Probabilities, GoalExpectation) {
	home := math.Log(ctx.Home.MarketValueMillions + 1)
	away := math.Log(ctx.Away.MarketValueMillions + 1)
	delta := (home-away)*marketEloFactor + homeAdvantageDelta(ctx.NeutralVenue)
	probs := logisticOutcome(delta, ctx.IsKnockout)
	return probs, goalExpectation(probs)
}
