package strategy

// formEloFactor scales a recent-form difference (each side in [0,3]) into
// an elo-equivalent points difference.
const formEloFactor = 120.0

// Form predicts from recent-form score — a straightforward analog of Elo
// (spec.md §4.1). Team.Form() already clamps to [0,3] and substitutes a
// neutral 1.5 when a team has no recorded form (spec.md §7).
type Form struct{}

func NewForm() *Form { return &Form{} }

func (Form) Name() string { return "form" }

func (Form) Predict(ctx MatchContext) (Probabilities, GoalExpectation) {
	delta := (ctx.Home.Form()-ctx.Away.Form())*formEloFactor + homeAdvantageDelta(ctx.NeutralVenue)
	probs := logisticOutcome(delta, ctx.IsKnockout)
	return probs, goalExpectation(probs)
}
