package tournament

import (
	"fmt"
	"sort"

	"github.com/sazarkin/wcsim/internal/team"
)

// SourceKind distinguishes a fixed group position from a third-place-pool
// reference.
type SourceKind int

const (
	SrcGroupWinner SourceKind = iota
	SrcGroupRunnerUp
	SrcThirdPool
)

// Source is one side of an R32 match template slot.
type Source struct {
	Kind      SourceKind
	Group     team.GroupID // valid when Kind != SrcThirdPool
	PoolIndex int          // valid when Kind == SrcThirdPool
}

func groupWinner(g byte) Source    { return Source{Kind: SrcGroupWinner, Group: team.GroupID(g)} }
func groupRunnerUp(g byte) Source  { return Source{Kind: SrcGroupRunnerUp, Group: team.GroupID(g)} }
func thirdPool(idx int) Source     { return Source{Kind: SrcThirdPool, PoolIndex: idx} }

// MatchTemplate is one of the 16 static R32 slots: a FIFA match number (for
// external reporting only) plus two sources.
type MatchTemplate struct {
	FIFANumber int
	A, B       Source
}

// r32Template is the FIFA 2026 Round-of-32 draw sheet. Slots are ordered so
// that slots 2k and 2k+1 feed R16 slot k (see SPEC_FULL.md §9 / the resolved
// open question on template ordering).
var r32Template = [16]MatchTemplate{
	{FIFANumber: 73, A: groupWinner('E'), B: thirdPool(0)},
	{FIFANumber: 74, A: groupWinner('I'), B: thirdPool(1)},
	{FIFANumber: 79, A: groupWinner('A'), B: thirdPool(2)},
	{FIFANumber: 76, A: groupWinner('L'), B: thirdPool(3)},
	{FIFANumber: 77, A: groupWinner('D'), B: thirdPool(4)},
	{FIFANumber: 78, A: groupWinner('G'), B: thirdPool(5)},
	{FIFANumber: 80, A: groupWinner('B'), B: thirdPool(6)},
	{FIFANumber: 81, A: groupWinner('K'), B: thirdPool(7)},
	{FIFANumber: 82, A: groupWinner('C'), B: groupRunnerUp('J')},
	{FIFANumber: 83, A: groupWinner('F'), B: groupRunnerUp('K')},
	{FIFANumber: 84, A: groupWinner('H'), B: groupRunnerUp('E')},
	{FIFANumber: 85, A: groupWinner('J'), B: groupRunnerUp('D')},
	{FIFANumber: 86, A: groupRunnerUp('A'), B: groupRunnerUp('I')},
	{FIFANumber: 87, A: groupRunnerUp('B'), B: groupRunnerUp('L')},
	{FIFANumber: 88, A: groupRunnerUp('C'), B: groupRunnerUp('G')},
	{FIFANumber: 75, A: groupRunnerUp('F'), B: groupRunnerUp('H')},
}

// r16FIFABase is the first FIFA match number for the Round of 16; matches
// 89..96 in fixed bracket-adjacency order.
const r16FIFABase = 89

// poolSets holds the eligible group letters for each of the 8 third-place
// pool indices, taken verbatim from spec.md §4.4.
var poolSets = [8][]team.GroupID{
	0: groupLetters("ABCDF"),
	1: groupLetters("CDFGH"),
	2: groupLetters("CEFHI"),
	3: groupLetters("EHIJK"),
	4: groupLetters("BEFIJ"),
	5: groupLetters("AEHIJ"),
	6: groupLetters("EFGIJ"),
	7: groupLetters("DEIJL"),
}

func groupLetters(s string) []team.GroupID {
	out := make([]team.GroupID, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = team.GroupID(s[i])
	}
	return out
}

// thirdPlaceTable is an optional precomputed lookup from a sorted 8-letter
// qualifying-group key to a valid assignment. It ships empty: the
// backtracking solver in AssignThirdPlacePool is the ground truth, per
// spec.md §9. A non-empty table is only ever used after its entry is
// re-validated against the pool constraints.
var thirdPlaceTable = map[string][8]team.GroupID{}

// AssignmentError reports that no valid pool assignment could be found for
// an (allegedly legal) 8-group qualifying subset. Per spec.md §7 this is a
// correctness bug, not a recoverable runtime condition.
type AssignmentError struct {
	Qualifying []team.GroupID
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("no valid third-place pool assignment for qualifying groups %v", e.Qualifying)
}

// AssignThirdPlacePool assigns each of the 8 pool indices a distinct
// qualifying group letter, respecting poolSets. qualifying must contain
// exactly 8 group letters. Tries the precomputed table first (re-validating
// it), then falls back to depth-first backtracking, which always succeeds
// for a legal 8-subset (spec.md §4.4/§9).
func AssignThirdPlacePool(qualifying []team.GroupID) ([8]team.GroupID, error) {
	key := sortedKey(qualifying)
	if cached, ok := thirdPlaceTable[key]; ok && validAssignment(cached, qualifying) {
		return cached, nil
	}
	return backtrackAssign(qualifying)
}

func sortedKey(groups []team.GroupID) string {
	sorted := append([]team.GroupID(nil), groups...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	b := make([]byte, len(sorted))
	for i, g := range sorted {
		b[i] = byte(g)
	}
	return string(b)
}

func validAssignment(a [8]team.GroupID, qualifying []team.GroupID) bool {
	qset := map[team.GroupID]bool{}
	for _, g := range qualifying {
		qset[g] = true
	}
	used := map[team.GroupID]bool{}
	for idx, g := range a {
		if !qset[g] || used[g] {
			return false
		}
		if !groupInPool(g, idx) {
			return false
		}
		used[g] = true
	}
	return true
}

func groupInPool(g team.GroupID, idx int) bool {
	for _, eligible := range poolSets[idx] {
		if eligible == g {
			return true
		}
	}
	return false
}

func backtrackAssign(qualifying []team.GroupID) ([8]team.GroupID, error) {
	var assignment [8]team.GroupID
	used := map[team.GroupID]bool{}

	var recurse func(idx int) bool
	recurse = func(idx int) bool {
		if idx == 8 {
			return true
		}
		for _, g := range poolSets[idx] {
			if !containsGroup(qualifying, g) || used[g] {
				continue
			}
			used[g] = true
			assignment[idx] = g
			if recurse(idx + 1) {
				return true
			}
			used[g] = false
		}
		return false
	}

	if !recurse(0) {
		return [8]team.GroupID{}, &AssignmentError{Qualifying: qualifying}
	}
	return assignment, nil
}

func containsGroup(groups []team.GroupID, g team.GroupID) bool {
	for _, x := range groups {
		if x == g {
			return true
		}
	}
	return false
}

// KnockoutMatch is one knockout-stage match: its two participants (resolved
// from the template or propagated from a prior round) and its played result
// once the knockout engine has simulated it.
type KnockoutMatch struct {
	FIFANumber int
	TeamA      team.ID
	TeamB      team.ID
	Result     MatchResult
	Played     bool
}

// Bracket is the full knockout draw sheet: 16 R32 matches, 8 R16, 4 QF, 2 SF,
// the third-place playoff, and the final, in bracket-adjacency order.
type Bracket struct {
	R32        [16]KnockoutMatch
	R16        [8]KnockoutMatch
	QF         [4]KnockoutMatch
	SF         [2]KnockoutMatch
	ThirdPlace KnockoutMatch
	Final      KnockoutMatch
}

// ResolveR32 builds the 16 Round-of-32 pairings from the 12 group results:
// it looks up winners/runners-up, ranks the 12 thirds, derives the
// qualifying subset and pool assignment, then resolves every template slot.
func ResolveR32(groups [12]GroupResult) (Bracket, error) {
	winners := map[team.GroupID]team.ID{}
	runnersUp := map[team.GroupID]team.ID{}
	thirds := make([]Standing, 0, 12)

	for _, gr := range groups {
		winners[gr.GroupID] = gr.Standings[0].TeamID
		runnersUp[gr.GroupID] = gr.Standings[1].TeamID
		thirds = append(thirds, gr.Standings[2])
	}

	ranked := RankThirds(thirds)
	qualifying := make([]team.GroupID, 8)
	thirdTeamByGroup := map[team.GroupID]team.ID{}
	for i := 0; i < 8; i++ {
		qualifying[i] = ranked[i].GroupID
		thirdTeamByGroup[ranked[i].GroupID] = ranked[i].TeamID
	}

	assignment, err := AssignThirdPlacePool(qualifying)
	if err != nil {
		return Bracket{}, err
	}

	var b Bracket
	for i, tmpl := range r32Template {
		b.R32[i] = KnockoutMatch{
			FIFANumber: tmpl.FIFANumber,
			TeamA:      resolveSource(tmpl.A, winners, runnersUp, assignment, thirdTeamByGroup),
			TeamB:      resolveSource(tmpl.B, winners, runnersUp, assignment, thirdTeamByGroup),
		}
	}
	for k := 0; k < 8; k++ {
		b.R16[k] = KnockoutMatch{FIFANumber: r16FIFABase + k}
	}
	return b, nil
}

// R32Template exposes the static 16-slot draw sheet for callers that need
// to reason about eligibility independent of any particular group-stage
// result (e.g. the optimal-bracket bipartite matcher).
func R32Template() [16]MatchTemplate { return r32Template }

// ThirdPlacePoolSets exposes the 8 pool-index -> eligible-group-letters
// sets used by both AssignThirdPlacePool and the optimal-bracket matcher.
func ThirdPlacePoolSets() [8][]team.GroupID { return poolSets }

// SourceEligible reports whether a team whose group is g could ever occupy
// the given template source (spec.md §4.9's bipartite edge rule). A
// SrcThirdPool source is eligible for every group in its pool, even though
// only one of them will actually qualify in any given simulation.
func SourceEligible(s Source, g team.GroupID) bool {
	switch s.Kind {
	case SrcGroupWinner, SrcGroupRunnerUp:
		return s.Group == g
	case SrcThirdPool:
		return groupInPool(g, s.PoolIndex)
	}
	return false
}

func resolveSource(s Source, winners, runnersUp map[team.GroupID]team.ID, assignment [8]team.GroupID, thirdByGroup map[team.GroupID]team.ID) team.ID {
	switch s.Kind {
	case SrcGroupWinner:
		return winners[s.Group]
	case SrcGroupRunnerUp:
		return runnersUp[s.Group]
	case SrcThirdPool:
		return thirdByGroup[assignment[s.PoolIndex]]
	}
	return 0
}
