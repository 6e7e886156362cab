package helper

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
	"github.com/pdrpinto/waterjug/internal/config"
	"github.com/pdrpinto/waterjug/internal/output"
	"github.com/urfave/cli/v3"
)

// ErrNoSolution is returned when a search exhausts the reachable states.
var ErrNoSolution = errors.New("no solution found")

// Settings is the configuration resolved for one command invocation.
type Settings struct {
	Config    *config.Config
	Profile   output.Profile
	Format    output.Format
	Heuristic waterjug.Heuristic
}

// LoadSettings reads the config file if one was given and applies the flags
// that were set on top of it.
func LoadSettings(cmd *cli.Command) (Settings, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return Settings{}, err
		}
		cfg = loaded
		cmdlogger.Debugf("Loaded config from %s", cfg.LoadPath)
	}

	for name, field := range map[string]*string{
		"profile":   &cfg.Profile,
		"format":    &cfg.Format,
		"heuristic": &cfg.Heuristic,
	} {
		if cmd.IsSet(name) {
			*field = cmd.String(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	if !cmd.IsSet("verbosity") {
		lvl, err := cmdlogger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return Settings{}, err
		}
		cmdlogger.SetLevel(lvl)
	}

	profile, err := output.LookupProfile(cfg.Profile)
	if err != nil {
		return Settings{}, err
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return Settings{}, err
	}
	heuristic, err := waterjug.ParseHeuristic(cfg.Heuristic)
	if err != nil {
		return Settings{}, err
	}

	return Settings{Config: cfg, Profile: profile, Format: format, Heuristic: heuristic}, nil
}

// PuzzleFromFlags reads the capacity and goal flags.
func PuzzleFromFlags(cmd *cli.Command) waterjug.Puzzle {
	return waterjug.Puzzle{
		CapacityA: cmd.Int("capacity-a"),
		CapacityB: cmd.Int("capacity-b"),
		Goal:      cmd.Int("goal"),
	}
}

// Precheck rejects unsolvable puzzles, logging the profile's message for them.
func Precheck(profile output.Profile, puzzle waterjug.Puzzle) error {
	if err := profile.Check(puzzle); err != nil {
		cmdlogger.Errorf("%s", profile.Rejection(err))
		return fmt.Errorf("rejected %d/%d/%d: %w", puzzle.CapacityA, puzzle.CapacityB, puzzle.Goal, err)
	}

	return nil
}

// TerminalWidth returns the width of w when it is a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return output.TerminalWidth(f)
	}

	return 0
}
