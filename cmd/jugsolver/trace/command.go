// Package trace implements the `trace` command, which prints the search one
// expansion at a time.
package trace

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/internal/helper"
	"github.com/pdrpinto/waterjug/internal/output"
	"github.com/urfave/cli/v3"
)

func Command(_ io.Reader, stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "trace",
		Usage: "prints every node expansion of the search, then the solution",
		Flags: slices.Concat(
			helper.BuildPuzzleFlags(),
			helper.BuildProfileFlags(),
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
	profile := settings.Profile

	puzzle := helper.PuzzleFromFlags(cmd)
	if err := helper.Precheck(profile, puzzle); err != nil {
		return err
	}

	stepper := waterjug.NewStepper(puzzle, waterjug.WithHeuristic(settings.Heuristic))
	last := -1
	for !stepper.Done() {
		snap := stepper.Step()
		// an exhausted frontier finishes without a new expansion
		if snap.StepIndex == last {
			break
		}
		last = snap.StepIndex
		fmt.Fprintf(stdout, "%3d  expand %-12s open %-3d closed %d\n",
			snap.StepIndex, profile.FormatState(snap.Current), len(snap.Open), len(snap.Closed))
	}
	fmt.Fprintln(stdout)

	result := stepper.Result()
	report := output.Report{Profile: profile, Puzzle: puzzle, Result: result}
	if err := output.Print(stdout, output.FormatText, report, 0); err != nil {
		return err
	}
	if !result.Found {
		return helper.ErrNoSolution
	}

	return nil
}
