package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sazarkin/wcsim/internal/config"
	"github.com/sazarkin/wcsim/internal/data"
)

// runTeam prints a single team's record.
func runTeam(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("team", flag.ExitOnError)
	var dataPath, format string
	fs.StringVar(&dataPath, "data", cfg.DataPath, "tournament definition (.json or .yaml)")
	fs.StringVar(&format, "format", "", "output rendering: table or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: wcsim team [flags] <name-or-code>")
	}

	t, err := data.Load(dataPath)
	if err != nil {
		return err
	}
	tm, err := findTeam(t, fs.Arg(0))
	if err != nil {
		return err
	}
	group, _ := t.GroupOf(tm.ID)

	if useTable(format) {
		fmt.Printf("%s (%s)\n", tm.Name, tm.Code)
		fmt.Printf("  confederation:  %s\n", tm.Confederation)
		fmt.Printf("  group:          %s\n", group.ID)
		fmt.Printf("  elo rating:     %.1f\n", tm.EloRating)
		fmt.Printf("  fifa ranking:   %d\n", tm.FIFARanking)
		fmt.Printf("  market value:   %.1fM\n", tm.MarketValueMillions)
		fmt.Printf("  world cup wins: %d\n", tm.WorldCupWins)
		fmt.Printf("  form:           %.2f\n", tm.Form())
		return nil
	}
	return writeJSON(os.Stdout, tm)
}
