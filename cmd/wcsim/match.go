package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sazarkin/wcsim/internal/config"
	"github.com/sazarkin/wcsim/internal/data"
	"github.com/sazarkin/wcsim/internal/sampler"
	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

// runMatch predicts (and, if --sample is set, samples) a single match
// between two teams named or coded on the command line.
func runMatch(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("match", flag.ExitOnError)
	var strategyKind, dataPath, format string
	var knockout, sample bool
	fs.StringVar(&strategyKind, "s", cfg.Strategy, "prediction strategy")
	fs.StringVar(&strategyKind, "strategy", cfg.Strategy, "prediction strategy")
	fs.StringVar(&dataPath, "data", cfg.DataPath, "tournament definition (.json or .yaml)")
	fs.StringVar(&format, "format", "", "output rendering: table or json")
	fs.BoolVar(&knockout, "knockout", false, "treat as a knockout match (no draw, extra time/penalties on tie)")
	fs.BoolVar(&sample, "sample", false, "also draw one concrete scoreline")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: wcsim match [flags] <home> <away>")
	}

	t, err := data.Load(dataPath)
	if err != nil {
		return err
	}

	home, err := findTeam(t, fs.Arg(0))
	if err != nil {
		return err
	}
	away, err := findTeam(t, fs.Arg(1))
	if err != nil {
		return err
	}

	strat, err := strategy.New(strategy.Kind(strategyKind))
	if err != nil {
		return err
	}

	ctx := strategy.MatchContext{Home: home, Away: away, IsKnockout: knockout, RoundImportance: 1.0}
	probs, goals := strat.Predict(ctx)

	type matchView struct {
		Home        string  `json:"home"`
		Away        string  `json:"away"`
		HomeWin     float64 `json:"home_win"`
		Draw        float64 `json:"draw"`
		AwayWin     float64 `json:"away_win"`
		HomeLambda  float64 `json:"home_lambda"`
		AwayLambda  float64 `json:"away_lambda"`
		SampleScore string  `json:"sample_score,omitempty"`
	}
	view := matchView{
		Home: home.Name, Away: away.Name,
		HomeWin: probs.HomeWin, Draw: probs.Draw, AwayWin: probs.AwayWin,
		HomeLambda: goals.HomeLambda, AwayLambda: goals.AwayLambda,
	}
	if sample {
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		result := sampler.Sample(rng, home.ID, away.ID, goals, knockout)
		view.SampleScore = fmt.Sprintf("%d-%d", result.HomeGoals, result.AwayGoals)
	}

	if useTable(format) {
		fmt.Printf("%s vs %s (%s)\n", home.Name, away.Name, strat.Name())
		fmt.Printf("  home win: %s   draw: %s   away win: %s\n", fmtPercent(probs.HomeWin), fmtPercent(probs.Draw), fmtPercent(probs.AwayWin))
		fmt.Printf("  expected goals: %.2f - %.2f\n", goals.HomeLambda, goals.AwayLambda)
		if sample {
			fmt.Printf("  sampled score: %s\n", view.SampleScore)
		}
		return nil
	}
	return writeJSON(os.Stdout, view)
}

func findTeam(t *tournament.Tournament, query string) (*team.Team, error) {
	for i := range t.Teams {
		if t.Teams[i].Name == query || t.Teams[i].Code == query {
			return &t.Teams[i], nil
		}
	}
	return nil, fmt.Errorf("no team found matching %q", query)
}
