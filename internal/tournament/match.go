package tournament

import "github.com/sazarkin/wcsim/internal/team"

// Outcome is the derived result of a match.
type Outcome int

const (
	Home Outcome = iota
	Draw
	Away
)

// Penalties records a converted shootout result.
type Penalties struct {
	Home int
	Away int
}

// MatchResult is the outcome of one simulated match.
type MatchResult struct {
	HomeID     team.ID
	AwayID     team.ID
	HomeGoals  int
	AwayGoals  int
	ExtraTime  bool
	Penalties  *Penalties // nil unless the match went to a shootout
}

// MaxGoals is the §3 ceiling on a single team's goal count in one match.
const MaxGoals = 15

// ClampGoals caps a sampled goal count to [0, MaxGoals].
func ClampGoals(g int) int {
	if g > MaxGoals {
		return MaxGoals
	}
	if g < 0 {
		return 0
	}
	return g
}

// Outcome derives Home/Draw/Away from goals, falling back to the penalty
// shootout winner when regulation+extra-time goals are level.
func (m MatchResult) Outcome() Outcome {
	if m.HomeGoals > m.AwayGoals {
		return Home
	}
	if m.AwayGoals > m.HomeGoals {
		return Away
	}
	if m.Penalties != nil {
		if m.Penalties.Home > m.Penalties.Away {
			return Home
		}
		return Away
	}
	return Draw
}

// Winner returns the winning team id and true, or (0, false) on an
// unresolved draw (only possible in group-stage matches).
func (m MatchResult) Winner() (team.ID, bool) {
	switch m.Outcome() {
	case Home:
		return m.HomeID, true
	case Away:
		return m.AwayID, true
	default:
		return 0, false
	}
}

// Loser is the complement of Winner; valid only when Winner is valid.
func (m MatchResult) Loser() (team.ID, bool) {
	w, ok := m.Winner()
	if !ok {
		return 0, false
	}
	if w == m.HomeID {
		return m.AwayID, true
	}
	return m.HomeID, true
}

// PointsFor returns the FIFA points (0, 1, or 3) a team earned.
func (m MatchResult) PointsFor(id team.ID) int {
	switch m.Outcome() {
	case Draw:
		return 1
	case Home:
		if id == m.HomeID {
			return 3
		}
		return 0
	case Away:
		if id == m.AwayID {
			return 3
		}
		return 0
	}
	return 0
}
