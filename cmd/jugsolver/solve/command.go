// Package solve implements the default `solve` command.
package solve

import (
	"context"
	"io"
	"slices"

	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/internal/helper"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
	"github.com/pdrpinto/waterjug/internal/output"
	"github.com/urfave/cli/v3"
)

func Command(_ io.Reader, stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "finds the shortest sequence of moves that measures the goal amount",
		Flags: slices.Concat(
			helper.BuildPuzzleFlags(),
			helper.BuildProfileFlags(),
			[]cli.Flag{helper.BuildFormatFlag()},
			helper.BuildCommonFlags(),
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return action(cmd, stdout)
		},
	}
}

func action(cmd *cli.Command, stdout io.Writer) error {
	settings, err := helper.LoadSettings(cmd)
	if err != nil {
		return err
	}
	if settings.Format == output.FormatJSON {
		cmdlogger.SendEverythingToStderr()
	}

	puzzle := helper.PuzzleFromFlags(cmd)
	if err := helper.Precheck(settings.Profile, puzzle); err != nil {
		return err
	}

	result := puzzle.Solve(waterjug.WithHeuristic(settings.Heuristic))
	cmdlogger.Debugf("Expanded %d states", result.ExpandedNodes)

	report := output.Report{Profile: settings.Profile, Puzzle: puzzle, Result: result}
	if err := output.Print(stdout, settings.Format, report, helper.TerminalWidth(stdout)); err != nil {
		return err
	}
	if !result.Found {
		return helper.ErrNoSolution
	}

	return nil
}
