package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func printText(w io.Writer, report Report) error {
	renderer := lipgloss.NewRenderer(w)
	titleStyle := renderer.NewStyle().Bold(true)
	goalStyle := renderer.NewStyle().Foreground(lipgloss.Color("10"))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("--- "+report.Profile.Title+" ---") + "\n\n")

	if !report.Result.Found {
		sb.WriteString(report.Profile.NoSolution + "\n")
		_, err := io.WriteString(w, sb.String())

		return err
	}

	sb.WriteString(report.Profile.PathHeading + "\n")
	path := report.Result.Path
	for i, state := range path {
		line := report.Profile.FormatState(state)
		if i == len(path)-1 {
			line = goalStyle.Render(line)
		}
		if i > 0 {
			line += "  " + report.Result.Moves[i-1].String()
		}
		sb.WriteString(line + "\n")
	}
	fmt.Fprintf(&sb, "\nReached %d in %d moves (%d states expanded).\n",
		report.Puzzle.Goal, report.Result.MoveCount(), report.Result.ExpandedNodes)

	_, err := io.WriteString(w, sb.String())

	return err
}
