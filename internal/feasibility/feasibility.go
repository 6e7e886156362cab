// Package feasibility rejects jug puzzles that have no solution before a
// search is attempted.
package feasibility

import (
	"errors"
	"fmt"
)

// ErrUnsolvable is wrapped by every error returned from Check.
var ErrUnsolvable = errors.New("puzzle has no solution")

var (
	ErrInvalidCapacity = fmt.Errorf("%w: capacities must be positive", ErrUnsolvable)
	ErrNegativeGoal    = fmt.Errorf("%w: goal cannot be negative", ErrUnsolvable)
	ErrGoalTooLarge    = fmt.Errorf("%w: goal cannot be greater than both jug capacities", ErrUnsolvable)
	ErrIndivisibleGoal = fmt.Errorf("%w: goal is not divisible by the GCD of the capacities", ErrUnsolvable)
)

// Check returns nil when the goal is reachable from two empty jugs of the
// given capacities: 0 <= goal <= max(capA, capB) and gcd(capA, capB) divides goal.
func Check(capA, capB, goal int) error {
	if err := CheckLimits(capA, capB, goal); err != nil {
		return err
	}
	if divisor := GCD(capA, capB); goal%divisor != 0 {
		return fmt.Errorf("%w (goal %d, gcd %d)", ErrIndivisibleGoal, goal, divisor)
	}

	return nil
}

// CheckLimits runs the range checks of Check without the divisibility test.
// An instance that passes it may still have no solution.
func CheckLimits(capA, capB, goal int) error {
	if capA <= 0 || capB <= 0 {
		return fmt.Errorf("%w (got %d and %d)", ErrInvalidCapacity, capA, capB)
	}
	if goal < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeGoal, goal)
	}
	if goal > max(capA, capB) {
		return fmt.Errorf("%w (goal %d, capacities %d and %d)", ErrGoalTooLarge, goal, capA, capB)
	}

	return nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
