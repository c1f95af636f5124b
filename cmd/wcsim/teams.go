package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/sazarkin/wcsim/internal/config"
	"github.com/sazarkin/wcsim/internal/data"
)

// runTeams lists every team in the data file, grouped.
func runTeams(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	var dataPath, format string
	fs.StringVar(&dataPath, "data", cfg.DataPath, "tournament definition (.json or .yaml)")
	fs.StringVar(&format, "format", "", "output rendering: table or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := data.Load(dataPath)
	if err != nil {
		return err
	}

	if !useTable(format) {
		return writeJSON(os.Stdout, t.Teams)
	}

	var sorted []struct {
		Name  string
		Code  string
		Group string
		Elo   float64
	}
	for _, tm := range t.Teams {
		g, _ := t.GroupOf(tm.ID)
		sorted = append(sorted, struct {
			Name  string
			Code  string
			Group string
			Elo   float64
		}{Name: tm.Name, Code: tm.Code, Group: string(g.ID), Elo: tm.EloRating})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Group != sorted[j].Group {
			return sorted[i].Group < sorted[j].Group
		}
		return sorted[i].Elo > sorted[j].Elo
	})

	tw := newTabwriter(os.Stdout)
	fmt.Fprintln(tw, "GROUP\tCODE\tTEAM\tELO")
	for _, row := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\n", row.Group, row.Code, row.Name, row.Elo)
	}
	return tw.Flush()
}
