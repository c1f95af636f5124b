package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	humanize "github.com/dustin/go-humanize"
	isatty "github.com/mattn/go-isatty"
)

// useTable decides table vs plain rendering when --format wasn't given
// explicitly: a real terminal gets the table, a pipe gets plain JSON, the
// way scripts expect.
func useTable(format string) bool {
	if format != "" {
		return format == "table"
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabwriter returns a tabwriter configured the same way across every
// subcommand's table output.
func newTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
}

func humanCount(n int) string { return humanize.Comma(int64(n)) }

func fmtPercent(p float64) string { return fmt.Sprintf("%.1f%%", p*100) }
