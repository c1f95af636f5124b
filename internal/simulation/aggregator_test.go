package simulation

import "testing"

func TestAddAccumulatesChampionAcrossIterations(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	res := buildDeterministicResult(tt)

	const n = 5
	for i := 0; i < n; i++ {
		agg.Add(res)
	}
	agg.Finalize()

	if agg.Iterations != n {
		t.Fatalf("Iterations = %d, want %d", agg.Iterations, n)
	}

	var totalChampion int
	for _, ts := range agg.Teams {
		totalChampion += ts.Champion
	}
	if totalChampion != n {
		t.Errorf("sum of Champion counts = %d, want %d (one champion per iteration)", totalChampion, n)
	}

	champ := agg.Teams[res.Champion]
	if champ.Champion != n {
		t.Errorf("champion's Champion count = %d, want %d", champ.Champion, n)
	}
}

func TestWinsNeverExceedParticipationPerSlot(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	res := buildDeterministicResult(tt)
	agg.Add(res)
	agg.Finalize()

	for id, ts := range agg.Teams {
		for _, rs := range roundSlots {
			for slot := 0; slot < rs.slots; slot++ {
				wins := ts.Wins[rs.round][slot]
				part := ts.Participation[rs.round][slot]
				if wins > part {
					t.Errorf("team %d round %v slot %d: wins %d > participation %d", id, rs.round, slot, wins, part)
				}
			}
		}
	}
}

func TestGroupEliminatedCreditsTheLastPlaceTeamEvenWhenThirdQualifies(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	res := buildDeterministicResult(tt)
	agg.Add(res)
	agg.Finalize()

	for _, gr := range res.Groups {
		fourth := gr.Standings[3].TeamID
		if agg.Teams[fourth].GroupEliminated != 1 {
			t.Errorf("group %c's 4th place team %d GroupEliminated = %d, want 1", gr.GroupID, fourth, agg.Teams[fourth].GroupEliminated)
		}
	}
}

func TestFinalizePrunesPathCountsToTheTopHundred(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	ts := agg.Teams[0]
	for i := 0; i < 150; i++ {
		ts.PathCounts[string(rune('a'+i%26))+string(rune(i))] = i + 1
	}
	agg.Finalize()
	if len(ts.PathCounts) != maxPathsPerTeam {
		t.Errorf("PathCounts len = %d, want %d after pruning", len(ts.PathCounts), maxPathsPerTeam)
	}
}

func TestMostLikelyChampionBreaksTiesByLowestID(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	agg.Teams[5].Champion = 3
	agg.Teams[9].Champion = 3
	id, ok := agg.MostLikelyChampion()
	if !ok {
		t.Fatal("expected a most-likely champion")
	}
	if id != 5 {
		t.Errorf("MostLikelyChampion() = %d, want 5 (lower id wins tie)", id)
	}
}

func TestMostLikelyBracketSignatureIgnoresSignaturesCrowningTheWrongChampion(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	agg.Teams[3].Champion = 5
	agg.Teams[7].Champion = 1

	agg.BracketSignatures["9-9-7"] = 50 // crowns team 7, must be ignored
	agg.BracketSignatures["1-1-3"] = 10 // crowns team 3, the actual most likely champion
	agg.BracketSignatures["2-2-3"] = 20 // crowns team 3, higher count than the above

	sig, count := agg.MostLikelyBracketSignature()
	if sig != "2-2-3" || count != 20 {
		t.Errorf("MostLikelyBracketSignature() = (%q, %d), want (\"2-2-3\", 20)", sig, count)
	}
}

func TestMostLikelyBracketSignatureEmptyWhenNoSignatureCrownsTheChampion(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	agg.Teams[3].Champion = 5

	agg.BracketSignatures["9-9-7"] = 50 // crowns a different team entirely

	sig, count := agg.MostLikelyBracketSignature()
	if sig != "" || count != 0 {
		t.Errorf("MostLikelyBracketSignature() = (%q, %d), want (\"\", 0)", sig, count)
	}
}

func TestBracketSignatureOverflowIsCounted(t *testing.T) {
	tt := buildTestTournament()
	agg := NewAggregator(tt)
	res := buildDeterministicResult(tt)

	for i := 0; i < maxBracketSigs; i++ {
		agg.BracketSignatures[string(rune(i))+"-filler"] = 1
	}
	agg.Add(res)
	if len(agg.BracketSignatures) > maxBracketSigs {
		t.Errorf("BracketSignatures grew past the cap: %d > %d", len(agg.BracketSignatures), maxBracketSigs)
	}
	if agg.Overflow != 1 {
		t.Errorf("Overflow = %d, want 1 for the one new signature past the cap", agg.Overflow)
	}
}
