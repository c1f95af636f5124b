package tournament

import "github.com/sazarkin/wcsim/internal/team"

// Tournament is the read-only definition shared across all simulation
// workers: 48 teams partitioned into 12 groups of 4.
type Tournament struct {
	Teams  []team.Team
	Groups []team.Group
}

// TeamByID returns the team with the given id, or nil if absent.
func (t *Tournament) TeamByID(id team.ID) *team.Team {
	for i := range t.Teams {
		if t.Teams[i].ID == id {
			return &t.Teams[i]
		}
	}
	return nil
}

// GroupOf returns the group containing the given team id, or (Group{}, false).
func (t *Tournament) GroupOf(id team.ID) (team.Group, bool) {
	for _, g := range t.Groups {
		for _, tid := range g.Teams {
			if tid == id {
				return g, true
			}
		}
	}
	return team.Group{}, false
}

// Result bundles every group result, the knockout bracket, and the podium.
type Result struct {
	Groups   [12]GroupResult
	Bracket  Bracket
	Champion team.ID
	RunnerUp team.ID
	Third    team.ID
	Fourth   team.ID
}
