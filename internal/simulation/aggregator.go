package simulation

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/sazarkin/wcsim/internal/team"
	"github.com/sazarkin/wcsim/internal/tournament"
)

const (
	maxPathsPerTeam = 100
	maxBracketSigs  = 1000
)

// roundSlots enumerates the (round, slot-count) pairs that the per-team
// participation/win/opponent maps track (spec.md §4.7). The third-place
// playoff is deliberately excluded, matching the path-string format, which
// only names R32/R16/QF/SF/F.
var roundSlots = []struct {
	round Round
	slots int
}{
	{RoundR32, 16},
	{RoundR16, 8},
	{RoundQF, 4},
	{RoundSF, 2},
	{RoundFinal, 1},
}

// Round is a re-export of tournament.Round for callers that only import
// this package.
type Round = tournament.Round

const (
	RoundR32   = tournament.RoundR32
	RoundR16   = tournament.RoundR16
	RoundQF    = tournament.RoundQF
	RoundSF    = tournament.RoundSF
	RoundFinal = tournament.RoundFinal
)

// TeamStats accumulates one team's outcomes across every simulated
// tournament.
type TeamStats struct {
	GroupWins           int
	GroupRunnerUp       int
	GroupThirdQualified int
	GroupEliminated     int

	ReachedR32   int
	ReachedR16   int
	ReachedQF    int
	ReachedSF    int
	ReachedFinal int

	Champion int
	RunnerUp int
	Third    int
	Fourth   int

	// Participation[round][slot] counts how often this team occupied that
	// bracket slot across all simulations.
	Participation map[Round]map[int]int
	// Wins[round][slot] counts how often this team won from that slot.
	Wins map[Round]map[int]int
	// Opponents[round][slot][opponent] counts opponents faced from that slot.
	Opponents map[Round]map[int]map[team.ID]int

	// PathCounts counts every distinct canonical path string this team
	// produced; pruned to the top maxPathsPerTeam entries on Finalize.
	PathCounts map[string]int
}

func newTeamStats() *TeamStats {
	ts := &TeamStats{
		Participation: make(map[Round]map[int]int),
		Wins:          make(map[Round]map[int]int),
		Opponents:     make(map[Round]map[int]map[team.ID]int),
		PathCounts:    make(map[string]int),
	}
	for _, rs := range roundSlots {
		ts.Participation[rs.round] = make(map[int]int)
		ts.Wins[rs.round] = make(map[int]int)
		ts.Opponents[rs.round] = make(map[int]map[team.ID]int)
		for slot := 0; slot < rs.slots; slot++ {
			ts.Opponents[rs.round][slot] = make(map[team.ID]int)
		}
	}
	return ts
}

// Aggregator accumulates results from many simulated tournaments into
// per-team and per-bracket statistics (spec.md §4.7). Safe for concurrent
// use via Add.
type Aggregator struct {
	mu sync.Mutex

	Iterations int

	Teams map[team.ID]*TeamStats

	// FinalistPairs counts unordered finalist pairings.
	FinalistPairs map[[2]team.ID]int
	// BracketSignatures counts full-bracket outcome signatures, capped at
	// maxBracketSigs distinct keys; simulations beyond the cap that would
	// introduce a new signature are counted in Overflow instead.
	BracketSignatures map[string]int
	Overflow          int
}

// NewAggregator allocates an Aggregator pre-populated with every team in t.
func NewAggregator(t *tournament.Tournament) *Aggregator {
	a := &Aggregator{
		Teams:             make(map[team.ID]*TeamStats, len(t.Teams)),
		FinalistPairs:     make(map[[2]team.ID]int),
		BracketSignatures: make(map[string]int),
	}
	for _, tm := range t.Teams {
		a.Teams[tm.ID] = newTeamStats()
	}
	return a
}

// Add folds one completed tournament's Result into the aggregate. Safe to
// call concurrently from multiple simulation workers.
func (a *Aggregator) Add(res tournament.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Iterations++

	for _, gr := range res.Groups {
		a.creditGroupStage(gr)
	}

	thirds := make([]tournament.Standing, 0, 12)
	for _, gr := range res.Groups {
		thirds = append(thirds, gr.Standings[2])
	}
	ranked := tournament.RankThirds(thirds)
	for i, st := range ranked {
		ts := a.Teams[st.TeamID]
		if ts == nil {
			continue
		}
		if i < 8 {
			ts.GroupThirdQualified++
		} else {
			ts.GroupEliminated++
		}
	}

	a.creditBracket(res.Bracket)

	ts := a.Teams[res.Champion]
	if ts != nil {
		ts.Champion++
	}
	if ts = a.Teams[res.RunnerUp]; ts != nil {
		ts.RunnerUp++
	}
	if ts = a.Teams[res.Third]; ts != nil {
		ts.Third++
	}
	if ts = a.Teams[res.Fourth]; ts != nil {
		ts.Fourth++
	}

	key := finalistPairKey(res.Champion, res.RunnerUp)
	a.FinalistPairs[key]++

	sig := bracketSignature(res.Bracket)
	if _, exists := a.BracketSignatures[sig]; !exists && len(a.BracketSignatures) >= maxBracketSigs {
		a.Overflow++
	} else {
		a.BracketSignatures[sig]++
	}

	for _, tm := range res.Groups {
		for _, st := range tm.Standings {
			path := buildPath(res.Bracket, st.TeamID)
			if path == "" {
				continue
			}
			ts := a.Teams[st.TeamID]
			if ts == nil {
				continue
			}
			ts.PathCounts[path]++
		}
	}
}

func (a *Aggregator) creditGroupStage(gr tournament.GroupResult) {
	if ts := a.Teams[gr.Standings[0].TeamID]; ts != nil {
		ts.GroupWins++
	}
	if ts := a.Teams[gr.Standings[1].TeamID]; ts != nil {
		ts.GroupRunnerUp++
	}
	if ts := a.Teams[gr.Standings[3].TeamID]; ts != nil {
		ts.GroupEliminated++
	}
}

func (a *Aggregator) creditBracket(b tournament.Bracket) {
	a.creditRound(RoundR32, b.R32[:])
	a.creditRound(RoundR16, b.R16[:])
	a.creditRound(RoundQF, b.QF[:])
	a.creditRound(RoundSF, b.SF[:])
	a.creditRound(RoundFinal, []tournament.KnockoutMatch{b.Final})

	for _, m := range b.R32 {
		a.markReached(m.TeamA, RoundR32)
		a.markReached(m.TeamB, RoundR32)
	}
	for _, m := range b.R16 {
		a.markReached(m.TeamA, RoundR16)
		a.markReached(m.TeamB, RoundR16)
	}
	for _, m := range b.QF {
		a.markReached(m.TeamA, RoundQF)
		a.markReached(m.TeamB, RoundQF)
	}
	for _, m := range b.SF {
		a.markReached(m.TeamA, RoundSF)
		a.markReached(m.TeamB, RoundSF)
	}
	a.markReached(b.Final.TeamA, RoundFinal)
	a.markReached(b.Final.TeamB, RoundFinal)
}

func (a *Aggregator) markReached(id team.ID, round Round) {
	ts := a.Teams[id]
	if ts == nil {
		return
	}
	switch round {
	case RoundR32:
		ts.ReachedR32++
	case RoundR16:
		ts.ReachedR16++
	case RoundQF:
		ts.ReachedQF++
	case RoundSF:
		ts.ReachedSF++
	case RoundFinal:
		ts.ReachedFinal++
	}
}

func (a *Aggregator) creditRound(round Round, matches []tournament.KnockoutMatch) {
	for slot, m := range matches {
		if ts := a.Teams[m.TeamA]; ts != nil {
			ts.Participation[round][slot]++
			ts.Opponents[round][slot][m.TeamB]++
		}
		if ts := a.Teams[m.TeamB]; ts != nil {
			ts.Participation[round][slot]++
			ts.Opponents[round][slot][m.TeamA]++
		}
		winner, ok := m.Result.Winner()
		if !ok {
			continue
		}
		if ts := a.Teams[winner]; ts != nil {
			ts.Wins[round][slot]++
		}
	}
}

// Finalize prunes each team's path histogram to its top maxPathsPerTeam
// entries (ties broken by lexical order for determinism). Call once after
// all Add calls have completed.
func (a *Aggregator) Finalize() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, ts := range a.Teams {
		if len(ts.PathCounts) <= maxPathsPerTeam {
			continue
		}
		type kv struct {
			path  string
			count int
		}
		all := make([]kv, 0, len(ts.PathCounts))
		for p, c := range ts.PathCounts {
			all = append(all, kv{p, c})
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].count != all[j].count {
				return all[i].count > all[j].count
			}
			return all[i].path < all[j].path
		})
		pruned := make(map[string]int, maxPathsPerTeam)
		for _, e := range all[:maxPathsPerTeam] {
			pruned[e.path] = e.count
		}
		ts.PathCounts = pruned
	}
}

// ChampionshipProbability returns the fraction of simulations in which id
// won the tournament.
func (a *Aggregator) ChampionshipProbability(id team.ID) float64 {
	if a.Iterations == 0 {
		return 0
	}
	ts := a.Teams[id]
	if ts == nil {
		return 0
	}
	return float64(ts.Champion) / float64(a.Iterations)
}

// MostLikelyChampion returns the team with the highest championship count,
// ties broken by lowest team id for determinism.
func (a *Aggregator) MostLikelyChampion() (team.ID, bool) {
	var best team.ID
	bestCount := -1
	found := false
	ids := maps.Keys(a.Teams)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		c := a.Teams[id].Champion
		if c > bestCount {
			bestCount = c
			best = id
			found = true
		}
	}
	return best, found
}

// MostLikelyFinal returns the most frequent unordered finalist pairing.
func (a *Aggregator) MostLikelyFinal() ([2]team.ID, int) {
	var best [2]team.ID
	bestCount := -1
	keys := maps.Keys(a.FinalistPairs)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, k := range keys {
		c := a.FinalistPairs[k]
		if c > bestCount {
			bestCount = c
			best = k
		}
	}
	return best, bestCount
}

// MostLikelyBracketSignature returns the most frequent full-bracket
// signature among those whose champion (the signature's final, hyphen-
// joined token, per bracketSignature) equals the tournament's most likely
// champion (spec.md §4.7). Returns ("", 0) if there is no most likely
// champion yet, or no tracked signature actually crowns it.
func (a *Aggregator) MostLikelyBracketSignature() (string, int) {
	champion, ok := a.MostLikelyChampion()
	if !ok {
		return "", 0
	}
	wantChampion := strconv.Itoa(int(champion))

	var best string
	bestCount := -1
	sigs := maps.Keys(a.BracketSignatures)
	sort.Strings(sigs)
	for _, s := range sigs {
		if signatureChampion(s) != wantChampion {
			continue
		}
		c := a.BracketSignatures[s]
		if c > bestCount {
			bestCount = c
			best = s
		}
	}
	if bestCount < 0 {
		return "", 0
	}
	return best, bestCount
}

// signatureChampion extracts the final, hyphen-joined token of a bracket
// signature, which bracketSignature always writes last (the Final match's
// winner).
func signatureChampion(signature string) string {
	idx := strings.LastIndexByte(signature, '-')
	if idx < 0 {
		return signature
	}
	return signature[idx+1:]
}
