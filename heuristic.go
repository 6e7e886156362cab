package waterjug

import "fmt"

// Heuristic returns the estimated number of moves left from s to a state
// holding goal in either jug.
type Heuristic func(s State, goal int) int

// MinDistance is the distance between the goal and whichever jug is closer
// to it. It is the default heuristic.
func MinDistance(s State, goal int) int {
	return min(abs(s.A-goal), abs(s.B-goal))
}

// Unit estimates one more move for every non-goal state. It never
// overestimates, so searches using it always return a shortest path.
func Unit(s State, goal int) int {
	if s.A == goal || s.B == goal {
		return 0
	}

	return 1
}

var heuristics = map[string]Heuristic{
	"min-distance": MinDistance,
	"unit":         Unit,
}

// HeuristicNames lists the names accepted by ParseHeuristic.
func HeuristicNames() []string {
	return []string{"min-distance", "unit"}
}

// ParseHeuristic looks up a built-in heuristic by name.
func ParseHeuristic(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}

	return h, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
