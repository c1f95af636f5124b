package tournament

import "github.com/sazarkin/wcsim/internal/team"

// Round identifies a knockout stage.
type Round int

const (
	RoundR32 Round = iota
	RoundR16
	RoundQF
	RoundSF
	RoundThirdPlace
	RoundFinal
)

func (r Round) String() string {
	switch r {
	case RoundR32:
		return "R32"
	case RoundR16:
		return "R16"
	case RoundQF:
		return "QF"
	case RoundSF:
		return "SF"
	case RoundThirdPlace:
		return "3rd"
	case RoundFinal:
		return "F"
	default:
		return "?"
	}
}

// NumSlots is the number of matches (slots) in a round.
func (r Round) NumSlots() int {
	switch r {
	case RoundR32:
		return 16
	case RoundR16:
		return 8
	case RoundQF:
		return 4
	case RoundSF:
		return 2
	default:
		return 1
	}
}

// Importance gives the round_importance value passed to strategies that
// wish to use it (spec.md §4.5); reference strategies ignore it.
func (r Round) Importance() float64 {
	switch r {
	case RoundR32:
		return 1.5
	case RoundR16:
		return 2.0
	case RoundQF:
		return 2.5
	case RoundSF:
		return 3.0
	case RoundThirdPlace:
		return 2.0
	case RoundFinal:
		return 4.0
	default:
		return 1.0
	}
}

// KnockoutSampler simulates one knockout match between two teams and returns
// its result. Implementations live above this package (they combine a
// prediction strategy with the match sampler of spec.md §4.2); this package
// only needs the function shape so it stays free of that dependency.
type KnockoutSampler func(home, away team.ID, round Round) MatchResult

// RunKnockout simulates the 16 R32 pairings through to the final, mutating
// and returning a copy of the bracket with every match played.
func RunKnockout(b Bracket, sample KnockoutSampler) Bracket {
	for i := range b.R32 {
		b.R32[i].Result = sample(b.R32[i].TeamA, b.R32[i].TeamB, RoundR32)
		b.R32[i].Played = true
	}
	for k := 0; k < 8; k++ {
		a, _ := b.R32[2*k].Result.Winner()
		c, _ := b.R32[2*k+1].Result.Winner()
		b.R16[k].TeamA, b.R16[k].TeamB = a, c
		b.R16[k].Result = sample(a, c, RoundR16)
		b.R16[k].Played = true
	}
	for q := 0; q < 4; q++ {
		a, _ := b.R16[2*q].Result.Winner()
		c, _ := b.R16[2*q+1].Result.Winner()
		b.QF[q].TeamA, b.QF[q].TeamB = a, c
		b.QF[q].Result = sample(a, c, RoundQF)
		b.QF[q].Played = true
	}
	for s := 0; s < 2; s++ {
		a, _ := b.QF[2*s].Result.Winner()
		c, _ := b.QF[2*s+1].Result.Winner()
		b.SF[s].TeamA, b.SF[s].TeamB = a, c
		b.SF[s].Result = sample(a, c, RoundSF)
		b.SF[s].Played = true
	}

	sf0Winner, _ := b.SF[0].Result.Winner()
	sf0Loser, _ := b.SF[0].Result.Loser()
	sf1Winner, _ := b.SF[1].Result.Winner()
	sf1Loser, _ := b.SF[1].Result.Loser()

	b.ThirdPlace.TeamA, b.ThirdPlace.TeamB = sf0Loser, sf1Loser
	b.ThirdPlace.Result = sample(sf0Loser, sf1Loser, RoundThirdPlace)
	b.ThirdPlace.Played = true

	b.Final.TeamA, b.Final.TeamB = sf0Winner, sf1Winner
	b.Final.Result = sample(sf0Winner, sf1Winner, RoundFinal)
	b.Final.Played = true

	return b
}

// Podium derives champion/runner-up/third/fourth from a played bracket.
func Podium(b Bracket) (champion, runnerUp, third, fourth team.ID) {
	champion, _ = b.Final.Result.Winner()
	runnerUp, _ = b.Final.Result.Loser()
	third, _ = b.ThirdPlace.Result.Winner()
	fourth, _ = b.ThirdPlace.Result.Loser()
	return
}
