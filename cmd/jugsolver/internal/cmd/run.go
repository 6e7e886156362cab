package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/pdrpinto/waterjug/cmd/jugsolver/internal/helper"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
	"github.com/pdrpinto/waterjug/internal/feasibility"
	"github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "n/a"
)

// CommandBuilder creates a command bound to the given streams.
type CommandBuilder = func(stdin io.Reader, stdout, stderr io.Writer) *cli.Command

// Run executes the jugsolver CLI and returns its exit code:
// 0 solved, 1 no path found, 2 rejected as unsolvable, 127 any other error.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, commands []CommandBuilder) int {
	// urfave/cli keeps its help flag in a global, which races when tests run
	// in parallel
	shouldHideHelp := testing.Testing() && os.Getenv("TEST_SHOW_HELP") != "true"

	logHandler := cmdlogger.New(stdout, stderr)
	slog.SetDefault(slog.New(logHandler))

	cli.VersionPrinter = func(cmd *cli.Command) {
		cmdlogger.Infof("jugsolver version: %s", cmd.Version)
		cmdlogger.Infof("commit: %s", commit)
	}

	cmds := make([]*cli.Command, 0, len(commands))
	for _, build := range commands {
		c := build(stdin, stdout, stderr)
		c.HideHelp = shouldHideHelp

		cmds = append(cmds, c)
	}

	app := &cli.Command{
		Name:           "jugsolver",
		Version:        version,
		Usage:          "measures an exact amount of water with two unmarked jugs",
		Suggest:        true,
		HideHelp:       shouldHideHelp,
		Reader:         stdin,
		Writer:         stdout,
		ErrWriter:      stderr,
		DefaultCommand: "solve",
		Commands:       cmds,
	}

	// errors that happen to have an ExitCode method must not make cli exit
	// the process before they are mapped below
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	args = insertDefaultCommand(args, app.Commands, app.DefaultCommand)

	err := app.Run(context.Background(), args)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrNoSolution):
			return 1
		case errors.Is(err, feasibility.ErrUnsolvable):
			// the command has already logged the profile's message
			return 2
		}
		cmdlogger.Errorf("%v", err)
	}

	if logHandler.HasErrored() {
		return 127
	}

	return 0
}
