// Package prompt implements the interactive `prompt` command, which asks for
// the capacities and the goal on stdin.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/internal/helper"
	"github.com/pdrpinto/waterjug/internal/output"
	"github.com/urfave/cli/v3"
)

func Command(stdin io.Reader, stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "asks for the capacities and the goal, then prints the solution",
		Flags: slices.Concat(
			helper.BuildProfileFlags(),
			helper.BuildCommonFlags(),
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return action(cmd, stdin, stdout)
		},
	}
}

type asker struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (a *asker) askInt(question string) (int, error) {
	fmt.Fprint(a.out, question)
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, errors.New("unexpected end of input")
	}
	text := strings.TrimSpace(a.scanner.Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", text)
	}

	return n, nil
}

func action(cmd *cli.Command, stdin io.Reader, stdout io.Writer) error {
	settings, err := helper.LoadSettings(cmd)
	if err != nil {
		return err
	}
	profile := settings.Profile

	a := &asker{scanner: bufio.NewScanner(stdin), out: stdout}
	var puzzle waterjug.Puzzle
	if puzzle.CapacityA, err = a.askInt(profile.CapacityPrompt(profile.ContainerA)); err != nil {
		return err
	}
	if puzzle.CapacityB, err = a.askInt(profile.CapacityPrompt(profile.ContainerB)); err != nil {
		return err
	}
	if puzzle.Goal, err = a.askInt(profile.GoalPrompt); err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	if err := helper.Precheck(profile, puzzle); err != nil {
		return err
	}

	result := puzzle.Solve(waterjug.WithHeuristic(settings.Heuristic))
	report := output.Report{Profile: profile, Puzzle: puzzle, Result: result}
	if err := output.Print(stdout, output.FormatText, report, 0); err != nil {
		return err
	}
	if !result.Found {
		return helper.ErrNoSolution
	}

	return nil
}
