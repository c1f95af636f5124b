package bracketsynth

import (
	"github.com/sazarkin/wcsim/internal/simulation"
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

func buildTestTournament() *tournament.Tournament {
	teams := make([]team.Team, 48)
	groups := make([]team.Group, 12)
	for gi := 0; gi < 12; gi++ {
		var g team.Group
		g.ID = team.GroupID('A' + byte(gi))
		for pos := 0; pos < 4; pos++ {
			id := team.ID(gi*4 + pos)
			teams[id] = team.Team{
				ID:                  id,
				Name:                "Team",
				Code:                "T",
				Confederation:       team.UEFA,
				EloRating:           2100 - float64(id)*15,
				FIFARanking:         int(id) + 1,
				MarketValueMillions: 1000 - float64(id)*15,
			}
			g.Teams[pos] = id
		}
		groups[gi] = g
	}
	return &tournament.Tournament{Teams: teams, Groups: groups}
}

func lowerIDWinsGroupSampler(home, away team.ID) tournament.MatchResult {
	if home < away {
		return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 1, AwayGoals: 0}
	}
	return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 0, AwayGoals: 1}
}

func lowerIDWinsKnockoutSampler(home, away team.ID, _ tournament.Round) tournament.MatchResult {
	if home < away {
		return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 2, AwayGoals: 0}
	}
	return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 0, AwayGoals: 2}
}

// buildAggregate plays the same deterministic (lower-id-always-wins)
// tournament n times, giving the synthesizers a stable, fully-predictable
// set of counts to reconstruct a bracket from.
func buildAggregate(tt *tournament.Tournament, n int) *simulation.Aggregator {
	agg := simulation.NewAggregator(tt)
	groups := tournament.RunGroupStage(tt.Groups, lowerIDWinsGroupSampler)
	bracket, err := tournament.ResolveR32(groups)
	if err != nil {
		panic(err)
	}
	bracket = tournament.RunKnockout(bracket, lowerIDWinsKnockoutSampler)
	champion, runnerUp, third, fourth := tournament.Podium(bracket)
	res := tournament.Result{
		Groups:   groups,
		Bracket:  bracket,
		Champion: champion,
		RunnerUp: runnerUp,
		Third:    third,
		Fourth:   fourth,
	}
	for i := 0; i < n; i++ {
		agg.Add(res)
	}
	agg.Finalize()
	return agg
}
