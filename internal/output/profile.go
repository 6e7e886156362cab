package output

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pdrpinto/waterjug"
	"github.com/pdrpinto/waterjug/internal/feasibility"
)

// Profile is the vocabulary used to present a puzzle: the same search can be
// told as water jugs, calibration containers or fuel tanks.
type Profile struct {
	Name        string
	Title       string
	ContainerA  string
	ContainerB  string
	Unit        string
	GoalPrompt  string
	PathHeading string

	NoSolution   string
	GoalTooLarge string
	Indivisible  string

	// SearchIndivisible skips the gcd precheck: indivisible goals are
	// searched and end with NoSolution instead of the Indivisible message.
	SearchIndivisible bool
}

var profiles = []Profile{
	{
		Name:         "water-jug",
		Title:        "Water Jug Problem using A* Search",
		ContainerA:   "Jug A",
		ContainerB:   "Jug B",
		GoalPrompt:   "Enter target amount: ",
		PathHeading:  "Solution Path (Jug A, Jug B):",
		NoSolution:   "No solution found.",
		GoalTooLarge: "Goal cannot be greater than both jug capacities.",
		Indivisible:  "No solution exists (goal not divisible by GCD of capacities).",
	},
	{
		Name:         "space-calibration",
		Title:        "Space Mission Water Calibration",
		ContainerA:   "Container X",
		ContainerB:   "Container Y",
		Unit:         "L",
		GoalPrompt:   "Enter required calibration amount: ",
		PathHeading:  "Calibration Steps (X , Y):",
		NoSolution:        "No valid calibration sequence found.",
		GoalTooLarge:      "Calibration impossible: target exceeds container limits.",
		SearchIndivisible: true,
	},
	{
		Name:         "fuel-blending",
		Title:        "Automated Fuel Blending Optimization System",
		ContainerA:   "Fuel Tank X",
		ContainerB:   "Fuel Tank Y",
		Unit:         "L",
		GoalPrompt:   "Enter required octane level: ",
		PathHeading:  "Optimized Fuel States (Tank X , Tank Y):",
		NoSolution:   "Optimization failed.",
		GoalTooLarge: "Target octane level exceeds system limits.",
		Indivisible:  "No feasible blending configuration exists.",
	},
}

// ProfileNames lists the built-in profiles.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}

	return names
}

// LookupProfile finds a built-in profile by name.
func LookupProfile(name string) (Profile, error) {
	i := slices.IndexFunc(profiles, func(p Profile) bool { return p.Name == name })
	if i < 0 {
		return Profile{}, fmt.Errorf("unsupported profile %q - must be one of: %s", name, strings.Join(ProfileNames(), ", "))
	}

	return profiles[i], nil
}

// CapacityPrompt is the question asked for the capacity of one container.
func (p Profile) CapacityPrompt(container string) string {
	return fmt.Sprintf("Enter capacity of %s: ", container)
}

// FormatState renders a state the way the profile's operators read it.
func (p Profile) FormatState(s waterjug.State) string {
	if p.Unit == "" {
		return s.String()
	}

	return fmt.Sprintf("(%d%s , %d%s)", s.A, p.Unit, s.B, p.Unit)
}

// Check runs the feasibility precheck this profile applies.
func (p Profile) Check(puzzle waterjug.Puzzle) error {
	if p.SearchIndivisible {
		return feasibility.CheckLimits(puzzle.CapacityA, puzzle.CapacityB, puzzle.Goal)
	}

	return feasibility.Check(puzzle.CapacityA, puzzle.CapacityB, puzzle.Goal)
}

// Rejection maps a feasibility error to the profile's message.
func (p Profile) Rejection(err error) string {
	switch {
	case errors.Is(err, feasibility.ErrGoalTooLarge) && p.GoalTooLarge != "":
		return p.GoalTooLarge
	case errors.Is(err, feasibility.ErrIndivisibleGoal) && p.Indivisible != "":
		return p.Indivisible
	default:
		return err.Error()
	}
}
