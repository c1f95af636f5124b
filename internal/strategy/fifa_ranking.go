package strategy

// maxRanking clamps absurd ranking inputs (spec.md §7 "ranking clamps at
// max_ranking").
const maxRanking = 210

// rankingEloFactor converts a one-place FIFA-ranking difference into an
// elo-equivalent points difference, so the same logistic shape as Elo
// applies uniformly across strategies.
const rankingEloFactor = 8.0

// FIFARanking predicts from official FIFA world ranking position (lower is
// better) — a straightforward analog of Elo (spec.md §4.1).
type FIFARanking struct{}

func NewFIFARanking() *FIFARanking { return &FIFARanking{} }

func (FIFARanking) Name() string { return "fifa" }

func (FIFARanking) Predict(ctx MatchContext) (Probabilities, GoalExpectation) {
	home := clampRanking(ctx.Home.FIFARanking)
	away := clampRanking(ctx.Away.FIFARanking)
	delta := float64(away-home)*rankingEloFactor + homeAdvantageDelta(ctx.NeutralVenue)
	probs := logisticOutcome(delta, ctx.IsKnockout)
	return probs, goalExpectation(probs)
}

func clampRanking(r int) int {
	if r < 1 {
		return 1
	}
	if r > maxRanking {
		return maxRanking
	}
	return r
}
