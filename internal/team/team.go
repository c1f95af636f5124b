// Package team holds the immutable per-run team and group data model.
package team

import "fmt"

// Confederation is one of the six FIFA confederations.
type Confederation int

const (
	UEFA Confederation = iota
	CONMEBOL
	CONCACAF
	CAF
	AFC
	OFC
)

func (c Confederation) String() string {
	switch c {
	case UEFA:
		return "UEFA"
	case CONMEBOL:
		return "CONMEBOL"
	case CONCACAF:
		return "CONCACAF"
	case CAF:
		return "CAF"
	case AFC:
		return "AFC"
	case OFC:
		return "OFC"
	default:
		return "UNKNOWN"
	}
}

// ParseConfederation accepts the §6 JSON confederation codes.
func ParseConfederation(s string) (Confederation, error) {
	switch s {
	case "UEFA":
		return UEFA, nil
	case "CONMEBOL":
		return CONMEBOL, nil
	case "CONCACAF":
		return CONCACAF, nil
	case "CAF":
		return CAF, nil
	case "AFC":
		return AFC, nil
	case "OFC":
		return OFC, nil
	default:
		return 0, fmt.Errorf("unknown confederation %q", s)
	}
}

// ID is the stable 8-bit team identifier, 0..48.
type ID uint8

// Team is immutable for the lifetime of a run.
type Team struct {
	ID                   ID
	Name                 string
	Code                 string
	Confederation        Confederation
	EloRating            float64
	FIFARanking          int
	MarketValueMillions  float64
	WorldCupWins         int
	SofascoreForm        *float64 // optional, in [0,3]
}

func (t *Team) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Code)
}

// Form returns the recent-form score clamped to [0,3], defaulting to a
// neutral 1.5 when absent.
func (t *Team) Form() float64 {
	if t.SofascoreForm == nil {
		return 1.5
	}
	f := *t.SofascoreForm
	if f < 0 {
		return 0
	}
	if f > 3 {
		return 3
	}
	return f
}

// GroupID is a single uppercase letter A..L.
type GroupID byte

func (g GroupID) String() string { return string(rune(g)) }

// Group is a group identifier plus its ordered 4-tuple of team ids.
type Group struct {
	ID    GroupID
	Teams [4]ID
}

// Fixtures returns the canonical six round-robin pairings, indexed into Teams.
// Order is fixed: (0,1),(2,3),(0,2),(1,3),(0,3),(1,2).
func (g Group) Fixtures() [6][2]ID {
	return [6][2]ID{
		{g.Teams[0], g.Teams[1]},
		{g.Teams[2], g.Teams[3]},
		{g.Teams[0], g.Teams[2]},
		{g.Teams[1], g.Teams[3]},
		{g.Teams[0], g.Teams[3]},
		{g.Teams[1], g.Teams[2]},
	}
}
