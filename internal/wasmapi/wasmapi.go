//go:build js && wasm

// Package wasmapi is a thin WASM-exportable façade over the simulation and
// aggregation API, mirroring the original wc-wasm crate's api.rs surface:
// construct a simulator from tournament JSON, run a named strategy for N
// iterations, and read back teams/groups/version. Every function crosses
// the JS boundary as a JSON string, since syscall/js has no structured
// marshaling of Go values into JS objects.
package wasmapi

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/sazarkin/wcsim/internal/bracketsynth"
	"github.com/sazarkin/wcsim/internal/data"
	"github.com/sazarkin/wcsim/internal/simulation"
	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/team"
)

// Version is reported to JS via GetVersion; bump alongside cmd/wcsim releases.
const Version = "0.1.0"

// Register installs every exported function on the JS global object under
// the "wcsim" namespace. Call once from the wasm program's main before
// blocking forever (select{}).
func Register() {
	ns := js.Global().Get("Object").New()
	ns.Set("runSimulation", js.FuncOf(runSimulation))
	ns.Set("simulateSingleTournament", js.FuncOf(simulateSingleTournament))
	ns.Set("getTeams", js.FuncOf(getTeams))
	ns.Set("getGroups", js.FuncOf(getGroups))
	ns.Set("calculateMatchProbability", js.FuncOf(calculateMatchProbability))
	ns.Set("getVersion", js.FuncOf(getVersion))
	js.Global().Set("wcsim", ns)
}

// errorValue mirrors the {error: "..."} shape the original crate's
// JsError-returning functions produced, so JS call sites can check a single
// `.error` field regardless of which binding failed.
func errorValue(err error) js.Value {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return js.ValueOf(string(b))
}

type simulationRequest struct {
	TournamentJSON string `json:"tournamentJson"`
	Strategy       string `json:"strategy"`
	Iterations     int    `json:"iterations"`
	Seed           *int64 `json:"seed,omitempty"`
}

type teamProbability struct {
	TeamID      team.ID `json:"teamId"`
	Name        string  `json:"name"`
	Champion    int     `json:"champion"`
	Probability float64 `json:"probability"`
}

type simulationResponse struct {
	Seed                int64             `json:"seed"`
	Strategy            string            `json:"strategy"`
	Iterations          int               `json:"iterations"`
	Rankings            []teamProbability `json:"rankings"`
	MostFrequentBracket *string           `json:"mostFrequentBracket"`
	GreedyFinal         team.ID           `json:"greedyFinal"`
	OptimalFinal        team.ID           `json:"optimalFinal"`
	OptimalLogP         float64           `json:"optimalLogProbability"`
}

// runSimulation(requestJSON string) -> JSON string (simulationResponse, or
// {error: "..."} on failure). requestJSON decodes into simulationRequest.
func runSimulation(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorValue(errArgCount("runSimulation", 1, len(args)))
	}

	var req simulationRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errorValue(err)
	}

	t, err := data.ParseJSON([]byte(req.TournamentJSON))
	if err != nil {
		return errorValue(err)
	}
	strat, err := strategy.New(strategy.Kind(req.Strategy))
	if err != nil {
		return errorValue(err)
	}

	report, err := simulation.Run(context.Background(), t, strat, simulation.Options{
		Iterations:  req.Iterations,
		Seed:        req.Seed,
		Parallelism: 1, // single-threaded in WASM, matching the original crate
	})
	if err != nil {
		return errorValue(err)
	}

	greedy := bracketsynth.Greedy(report.Aggregator)
	optimal := bracketsynth.Optimal(t, report.Aggregator)

	resp := simulationResponse{
		Seed:       report.Seed,
		Strategy:   report.Strategy,
		Iterations: report.Aggregator.Iterations,
	}
	if greedy.F.Assigned {
		resp.GreedyFinal = greedy.F.TeamID
	}
	if optimal.Bracket.F.Assigned {
		resp.OptimalFinal = optimal.Bracket.F.TeamID
	}
	resp.OptimalLogP = optimal.LogProbability
	if sig, count := report.Aggregator.MostLikelyBracketSignature(); count > 0 {
		resp.MostFrequentBracket = &sig
	}

	for _, tm := range t.Teams {
		ts := report.Aggregator.Teams[tm.ID]
		if ts == nil {
			continue
		}
		resp.Rankings = append(resp.Rankings, teamProbability{
			TeamID:      tm.ID,
			Name:        tm.Name,
			Champion:    ts.Champion,
			Probability: report.Aggregator.ChampionshipProbability(tm.ID),
		})
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return errorValue(err)
	}
	return js.ValueOf(string(b))
}

// simulateSingleTournament(tournamentJSON, strategyName, seed) -> JSON
// string describing one played tournament's podium, for step-by-step
// visualization.
func simulateSingleTournament(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return errorValue(errArgCount("simulateSingleTournament", 3, len(args)))
	}

	t, err := data.ParseJSON([]byte(args[0].String()))
	if err != nil {
		return errorValue(err)
	}
	strat, err := strategy.New(strategy.Kind(args[1].String()))
	if err != nil {
		return errorValue(err)
	}
	seed := uint64(args[2].Int())

	rng := simulation.NewSeededRNG(seed)
	res, err := simulation.RunOnce(t, strat, rng)
	if err != nil {
		return errorValue(err)
	}

	b, err := json.Marshal(map[string]any{
		"champion": res.Champion,
		"runnerUp": res.RunnerUp,
		"third":    res.Third,
		"fourth":   res.Fourth,
	})
	if err != nil {
		return errorValue(err)
	}
	return js.ValueOf(string(b))
}

// getTeams(tournamentJSON) -> JSON array of teams.
func getTeams(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorValue(errArgCount("getTeams", 1, len(args)))
	}
	t, err := data.ParseJSON([]byte(args[0].String()))
	if err != nil {
		return errorValue(err)
	}
	b, err := json.Marshal(t.Teams)
	if err != nil {
		return errorValue(err)
	}
	return js.ValueOf(string(b))
}

// getGroups(tournamentJSON) -> JSON array of groups.
func getGroups(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorValue(errArgCount("getGroups", 1, len(args)))
	}
	t, err := data.ParseJSON([]byte(args[0].String()))
	if err != nil {
		return errorValue(err)
	}
	b, err := json.Marshal(t.Groups)
	if err != nil {
		return errorValue(err)
	}
	return js.ValueOf(string(b))
}

// calculateMatchProbability(homeElo, awayElo, isKnockout) -> JSON
// {homeWin, draw, awayWin}.
func calculateMatchProbability(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return errorValue(errArgCount("calculateMatchProbability", 3, len(args)))
	}
	home := team.Team{ID: 0, Name: "Team A", Code: "TA", EloRating: args[0].Float()}
	away := team.Team{ID: 1, Name: "Team B", Code: "TB", EloRating: args[1].Float()}
	ctx := strategy.MatchContext{Home: &home, Away: &away, IsKnockout: args[2].Bool()}

	probs, _ := strategy.NewElo().Predict(ctx)
	b, err := json.Marshal(map[string]float64{
		"homeWin": probs.HomeWin,
		"draw":    probs.Draw,
		"awayWin": probs.AwayWin,
	})
	if err != nil {
		return errorValue(err)
	}
	return js.ValueOf(string(b))
}

// getVersion() -> version string.
func getVersion(this js.Value, args []js.Value) any {
	return js.ValueOf(Version)
}

func errArgCount(fn string, want, got int) error {
	return fmt.Errorf("%s: expected %d arguments, got %d", fn, want, got)
}
