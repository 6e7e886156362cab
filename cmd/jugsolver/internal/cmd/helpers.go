// Package cmd wires the jugsolver commands into a CLI.
package cmd

import (
	"slices"

	"github.com/urfave/cli/v3"
)

// getAllCommands returns every first argument that should not trigger the
// default command.
func getAllCommands(commands []*cli.Command) []string {
	allCommands := make([]string, 0)
	for _, command := range commands {
		allCommands = append(allCommands, command.Name)
		allCommands = append(allCommands, command.Aliases...)
	}

	for _, flag := range cli.HelpFlag.Names() {
		allCommands = append(allCommands, flag)      // help command
		allCommands = append(allCommands, "-"+flag)  // help flag
		allCommands = append(allCommands, "--"+flag) // help flag
	}

	for _, flag := range cli.VersionFlag.Names() {
		allCommands = append(allCommands, "-"+flag)
		allCommands = append(allCommands, "--"+flag)
	}

	return allCommands
}

// insertDefaultCommand inserts the default command when the first argument
// is not a known command, so "jugsolver -a 4 -b 3 -g 2" runs solve.
func insertDefaultCommand(args []string, commands []*cli.Command, defaultCommand string) []string {
	if len(args) < 2 {
		return args
	}

	if slices.Contains(getAllCommands(commands), args[1]) {
		return args
	}

	// args is copied because callers may reuse it
	argsTmp := make([]string, len(args)+1)
	argsTmp[0] = args[0]
	argsTmp[1] = defaultCommand
	copy(argsTmp[2:], args[1:])

	return argsTmp
}
