// Package helper holds the flags and setup shared by the jugsolver commands.
package helper

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
	"github.com/pdrpinto/waterjug/internal/config"
	"github.com/urfave/cli/v3"
)

// BuildCommonFlags returns the flags every command accepts.
func BuildCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "load settings from a YAML or TOML file",
			TakesFile: true,
			Sources:   cli.EnvVars("JUGSOLVER_CONFIG"),
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				lvl, err := cmdlogger.ParseLevel(s)
				if err != nil {
					return err
				}

				cmdlogger.SetLevel(lvl)

				return nil
			},
		},
	}
}

// BuildPuzzleFlags returns the required capacity and goal flags.
func BuildPuzzleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "capacity-a",
			Aliases:  []string{"a"},
			Usage:    "capacity of the first container",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "capacity-b",
			Aliases:  []string{"b"},
			Usage:    "capacity of the second container",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "goal",
			Aliases:  []string{"g"},
			Usage:    "amount to measure in either container",
			Required: true,
		},
	}
}

// BuildProfileFlags returns the flags choosing vocabulary and heuristic.
// They have no defaults of their own so that the config file can provide them.
func BuildProfileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "sets the vocabulary of the output; value can be: " + strings.Join(config.Profiles, ", "),
			Action:  oneOf("profile", config.Profiles),
		},
		&cli.StringFlag{
			Name:   "heuristic",
			Usage:  "sets the search heuristic; value can be: " + strings.Join(waterjug.HeuristicNames(), ", "),
			Action: oneOf("heuristic", waterjug.HeuristicNames()),
		},
	}
}

// BuildFormatFlag returns the output format flag.
func BuildFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "sets the output format; value can be: " + strings.Join(config.Formats, ", "),
		Action:  oneOf("format", config.Formats),
	}
}

func oneOf(name string, allowed []string) func(context.Context, *cli.Command, string) error {
	return func(_ context.Context, _ *cli.Command, s string) error {
		if slices.Contains(allowed, s) {
			return nil
		}

		return fmt.Errorf("unsupported %s \"%s\" - must be one of: %s", name, s, strings.Join(allowed, ", "))
	}
}
