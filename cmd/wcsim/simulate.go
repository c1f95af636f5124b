package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/sazarkin/wcsim/internal/bracketsynth"
	"github.com/sazarkin/wcsim/internal/config"
	"github.com/sazarkin/wcsim/internal/data"
	"github.com/sazarkin/wcsim/internal/simulation"
	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/telemetry"
	"github.com/sazarkin/wcsim/internal/tournament"
)

func runSimulate(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	var iterations int
	var strategyKind string
	var seed int64
	var hasSeed bool
	var threads int
	var top int
	var dataPath, format string

	fs.IntVar(&iterations, "n", cfg.Iterations, "number of tournaments to simulate")
	fs.IntVar(&iterations, "iterations", cfg.Iterations, "number of tournaments to simulate")
	fs.StringVar(&strategyKind, "s", cfg.Strategy, "prediction strategy: elo, fifa, market, form, composite")
	fs.StringVar(&strategyKind, "strategy", cfg.Strategy, "prediction strategy: elo, fifa, market, form, composite")
	fs.Func("seed", "fixed random seed (omit for a wall-clock-derived seed)", func(s string) error {
		var n int64
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return err
		}
		seed, hasSeed = n, true
		return nil
	})
	fs.IntVar(&threads, "threads", cfg.Parallelism, "worker count (0 = host core count)")
	fs.IntVar(&top, "top", cfg.Top, "how many teams to print in the championship ranking")
	fs.StringVar(&dataPath, "data", cfg.DataPath, "tournament definition (.json or .yaml)")
	fs.StringVar(&format, "format", "", "output rendering: table or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	telemetry.Init(telemetry.ParseLevel(cfg.LogLevel))

	t, err := data.Load(dataPath)
	if err != nil {
		return err
	}

	strat, err := strategy.New(strategy.Kind(strategyKind))
	if err != nil {
		return err
	}

	opts := simulation.Options{
		Iterations:  iterations,
		Parallelism: threads,
		Progress: func(completed, total int) {
			telemetry.L().Debug("simulation progress", slog.Int("completed", completed), slog.Int("total", total))
		},
	}
	if hasSeed {
		opts.Seed = &seed
	}

	start := time.Now()
	report, err := simulation.Run(context.Background(), t, strat, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	telemetry.Infof("ran %s iterations in %s using %s", humanize.Comma(int64(iterations)), elapsed.Round(time.Millisecond), strat.Name())

	greedy := bracketsynth.Greedy(report.Aggregator)
	optimal := bracketsynth.Optimal(t, report.Aggregator)

	view := buildSimulateView(t, report, greedy, optimal, top)

	if useTable(format) {
		return renderSimulateTable(os.Stdout, view)
	}
	return writeJSON(os.Stdout, view)
}

type teamProbability struct {
	TeamID      team.ID `json:"team_id"`
	Name        string  `json:"name"`
	Champion    int     `json:"champion_count"`
	Probability float64 `json:"champion_probability"`
}

type simulateView struct {
	RunID          string            `json:"run_id"`
	Seed           int64             `json:"seed"`
	Strategy       string            `json:"strategy"`
	Iterations     int               `json:"iterations"`
	Rankings       []teamProbability `json:"rankings"`
	MostLikely     *teamProbability  `json:"most_likely_winner"`
	MostLikelyF    [2]string         `json:"most_likely_final"`
	MostFrequentBr *string           `json:"most_frequent_bracket"`
	GreedyFinal    string            `json:"most_likely_bracket_champion"`
	OptimalFinal   string            `json:"optimal_bracket_champion"`
	OptimalLogP    float64           `json:"optimal_bracket_log_probability"`
}

func teamName(t *tournament.Tournament, id team.ID) string {
	if tm := t.TeamByID(id); tm != nil {
		return tm.Name
	}
	return fmt.Sprintf("team#%d", id)
}

func buildSimulateView(t *tournament.Tournament, report simulation.Report, greedy bracketsynth.Bracket, optimal bracketsynth.OptimalResult, top int) simulateView {
	agg := report.Aggregator

	ids := make([]team.ID, 0, len(agg.Teams))
	for id := range agg.Teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := agg.Teams[ids[i]].Champion, agg.Teams[ids[j]].Champion
		if ci != cj {
			return ci > cj
		}
		return ids[i] < ids[j]
	})
	if top > 0 && top < len(ids) {
		ids = ids[:top]
	}

	rankings := make([]teamProbability, 0, len(ids))
	for _, id := range ids {
		rankings = append(rankings, teamProbability{
			TeamID:      id,
			Name:        teamName(t, id),
			Champion:    agg.Teams[id].Champion,
			Probability: agg.ChampionshipProbability(id),
		})
	}

	view := simulateView{
		RunID:      report.RunID.String(),
		Seed:       report.Seed,
		Strategy:   report.Strategy,
		Iterations: agg.Iterations,
		Rankings:   rankings,
	}

	if bestID, ok := agg.MostLikelyChampion(); ok {
		view.MostLikely = &teamProbability{
			TeamID:      bestID,
			Name:        teamName(t, bestID),
			Champion:    agg.Teams[bestID].Champion,
			Probability: agg.ChampionshipProbability(bestID),
		}
	}

	if pair, count := agg.MostLikelyFinal(); count > 0 {
		view.MostLikelyF = [2]string{teamName(t, pair[0]), teamName(t, pair[1])}
	}

	if sig, count := agg.MostLikelyBracketSignature(); count > 0 {
		view.MostFrequentBr = &sig
	}

	if greedy.F.Assigned {
		view.GreedyFinal = teamName(t, greedy.F.TeamID)
	}
	if optimal.Bracket.F.Assigned {
		view.OptimalFinal = teamName(t, optimal.Bracket.F.TeamID)
	}
	view.OptimalLogP = optimal.LogProbability

	return view
}

func renderSimulateTable(w *os.File, view simulateView) error {
	fmt.Fprintf(w, "run %s  seed=%d  strategy=%s  iterations=%s\n\n",
		view.RunID, view.Seed, view.Strategy, humanize.Comma(int64(view.Iterations)))

	tw := newTabwriter(w)
	fmt.Fprintln(tw, "RANK\tTEAM\tCHAMPION COUNT\tPROBABILITY")
	for i, r := range view.Rankings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Name, humanCount(r.Champion), fmtPercent(r.Probability))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if view.MostLikely != nil {
		fmt.Fprintf(w, "most likely champion: %s (%s)\n", view.MostLikely.Name, fmtPercent(view.MostLikely.Probability))
	}
	if view.MostLikelyF[0] != "" || view.MostLikelyF[1] != "" {
		fmt.Fprintf(w, "most likely final: %s vs %s\n", view.MostLikelyF[0], view.MostLikelyF[1])
	}
	if view.MostFrequentBr != nil {
		fmt.Fprintf(w, "most frequent bracket among %s's wins: %s\n", view.MostLikely.Name, *view.MostFrequentBr)
	}
	if view.GreedyFinal != "" {
		fmt.Fprintf(w, "greedy bracket champion: %s\n", view.GreedyFinal)
	}
	if view.OptimalFinal != "" {
		fmt.Fprintf(w, "optimal bracket champion: %s (log p = %.4f)\n", view.OptimalFinal, view.OptimalLogP)
	}
	return nil
}
