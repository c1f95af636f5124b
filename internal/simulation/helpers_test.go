package simulation

import (
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

// buildTestTournament returns a 48-team, 12-group tournament with varied
// ratings, suitable for exercising RunOnce and the strategy stack end to end.
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
				WorldCupWins:        0,
			}
			g.Teams[pos] = id
		}
		groups[gi] = g
	}
	return &tournament.Tournament{Teams: teams, Groups: groups}
}

// lowerIDWinsGroupSampler always has the lower team id win 1-0, producing a
// fully-decided, tie-free group stage for deterministic fixtures.
func lowerIDWinsGroupSampler(home, away team.ID) tournament.MatchResult {
	if home < away {
		return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 1, AwayGoals: 0}
	}
	return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 0, AwayGoals: 1}
}

// lowerIDWinsKnockoutSampler mirrors lowerIDWinsGroupSampler for knockout play.
func lowerIDWinsKnockoutSampler(home, away team.ID, _ tournament.Round) tournament.MatchResult {
	if home < away {
		return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 2, AwayGoals: 0}
	}
	return tournament.MatchResult{HomeID: home, AwayID: away, HomeGoals: 0, AwayGoals: 2}
}

// buildDeterministicResult plays a full tournament where the lower team id
// always wins, giving tests a fully traceable, reproducible Result to feed
// into the Aggregator without depending on RunOnce's randomness.
func buildDeterministicResult(tt *tournament.Tournament) tournament.Result {
	groups := tournament.RunGroupStage(tt.Groups, lowerIDWinsGroupSampler)
	bracket, err := tournament.ResolveR32(groups)
	if err != nil {
		panic(err)
	}
	bracket = tournament.RunKnockout(bracket, lowerIDWinsKnockoutSampler)
	champion, runnerUp, third, fourth := tournament.Podium(bracket)
	return tournament.Result{
		Groups:   groups,
		Bracket:  bracket,
		Champion: champion,
		RunnerUp: runnerUp,
		Third:    third,
		Fourth:   fourth,
	}
}
