package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func printTable(w io.Writer, report Report, terminalWidth int) error {
	if !report.Result.Found {
		_, err := fmt.Fprintln(w, report.Profile.NoSolution)
		return err
	}

	// a table title wraps to the column widths, so it is printed on its own
	if _, err := fmt.Fprintln(w, report.Profile.Title); err != nil {
		return err
	}

	outputTable := newTable(w, terminalWidth)
	outputTable.AppendHeader(table.Row{"Step", "Move", report.Profile.ContainerA, report.Profile.ContainerB})

	path := report.Result.Path
	outputTable.AppendRow(table.Row{0, "start", path[0].A, path[0].B})
	for i, move := range report.Result.Moves {
		state := path[i+1]
		outputTable.AppendRow(table.Row{i + 1, move.String(), state.A, state.B})
	}
	outputTable.AppendFooter(table.Row{"", "moves", report.Result.MoveCount(), ""})
	outputTable.Render()

	return nil
}

func newTable(w io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(w)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	} else {
		text.DisableColors()
	}

	outputTable.Style().Options.DoNotColorBordersAndSeparators = true

	return outputTable
}
