package autfile

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"glushkov/internal/automaton"
)

// Marks put in front of a state in the table.
const (
	InitialMark = "->"
	FinalMark   = "*"
)

// WriteTable prints the transition table of a to w: one row per state and one
// column per symbol, each cell holding the set of targets.
func WriteTable(w io.Writer, a *automaton.Automaton) error {
	syms := a.Alphabet()

	header := []string{"", "state"}
	for _, r := range syms {
		header = append(header, string(r))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)

	var rows [][]string
	a.States().Each(func(s int) {
		mark := ""
		if a.IsInitial(s) {
			mark += InitialMark
		}
		if a.IsFinal(s) {
			mark += FinalMark
		}
		row := []string{mark, strconv.Itoa(s)}
		for _, r := range syms {
			cell := ""
			if targets := a.Targets(s, r); !targets.Empty() {
				cell = targets.String()
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	})

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
