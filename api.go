package waterjug

// Result contains the outcome of a search.
type Result struct {
	// Path runs from (0, 0) to the first goal state dequeued, both included.
	Path []State
	// Moves holds len(Path)-1 entries; Moves[i] turns Path[i] into Path[i+1].
	Moves         []Move
	ExpandedNodes int
	Found         bool
}

// MoveCount is the number of moves on the path, or 0 when nothing was found.
func (r Result) MoveCount() int {
	return len(r.Moves)
}

// Options defines parameters for the search.
type Options struct {
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default MinDistance heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) {
		if heuristic != nil {
			options.Heuristic = heuristic
		}
	}
}

func buildOptions(options []Option) Options {
	searchOptions := Options{Heuristic: MinDistance}
	for _, option := range options {
		option(&searchOptions)
	}

	return searchOptions
}

// Solve searches for the shortest sequence of moves that leaves goal units of
// water in either jug, starting with both jugs empty.
//
// The caller is responsible for rejecting unsolvable instances. If one is
// passed anyway, the search exhausts the reachable states and returns a
// Result with Found set to false.
func Solve(capA, capB, goal int, options ...Option) Result {
	return Puzzle{CapacityA: capA, CapacityB: capB, Goal: goal}.Solve(options...)
}

// Solve runs the search for p to completion.
func (p Puzzle) Solve(options ...Option) Result {
	s := newSearch(p, buildOptions(options))
	for !s.done {
		s.step()
	}

	return s.result()
}
