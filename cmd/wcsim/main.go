// Command wcsim runs Monte Carlo World Cup tournament simulations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "simulate":
		err = runSimulate(os.Args[2:])
	case "match":
		err = runMatch(os.Args[2:])
	case "team":
		err = runTeam(os.Args[2:])
	case "teams":
		err = runTeams(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "wcsim: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "wcsim: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: wcsim <command> [flags]

Commands:
  simulate   run N Monte Carlo tournaments and report aggregate statistics
  match      predict a single match between two teams
  team       print one team's record
  teams      list every team in the data file

Global flags (each subcommand accepts its own copy):
  --data <path>           tournament definition (.json or .yaml)
  --format {table,json}   output rendering
`)
}
