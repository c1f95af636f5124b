package team

import "testing"

func TestParseConfederationRoundTrip(t *testing.T) {
	cases := []Confederation{UEFA, CONMEBOL, CONCACAF, CAF, AFC, OFC}
	for _, c := range cases {
		parsed, err := ParseConfederation(c.String())
		if err != nil {
			t.Fatalf("ParseConfederation(%s): %v", c, err)
		}
		if parsed != c {
			t.Errorf("round trip mismatch: %s -> %s", c, parsed)
		}
	}
}

func TestParseConfederationUnknown(t *testing.T) {
	if _, err := ParseConfederation("MARS"); err == nil {
		t.Fatal("expected an error for an unknown confederation")
	}
}

func TestFormDefaultsWhenAbsent(t *testing.T) {
	tm := &Team{Name: "Testland"}
	if got := tm.Form(); got != 1.5 {
		t.Errorf("Form() = %v, want 1.5 default", got)
	}
	form := 2.4
	tm.SofascoreForm = &form
	if got := tm.Form(); got != 2.4 {
		t.Errorf("Form() = %v, want 2.4", got)
	}
}

func TestGroupFixturesCoverEveryPair(t *testing.T) {
	g := Group{ID: 'A', Teams: [4]ID{1, 2, 3, 4}}
	seen := map[[2]ID]bool{}
	for _, f := range g.Fixtures() {
		seen[[2]ID{f[0], f[1]}] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct fixtures, got %d", len(seen))
	}
	for i := ID(1); i <= 4; i++ {
		count := 0
		for _, f := range g.Fixtures() {
			if f[0] == i || f[1] == i {
				count++
			}
		}
		if count != 3 {
			t.Errorf("team %d appears in %d fixtures, want 3", i, count)
		}
	}
}
