package waterjug

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current   State
	Open      []State
	Closed    []State
	Done      bool
	Found     bool
	Path      []State
	Moves     []Move
	StepIndex int
}

// Stepper runs the same search as Solve one expansion at a time.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	search    *search
	current   State
	stepCount int
}

// NewStepper creates a stepper positioned before the first expansion.
func NewStepper(puzzle Puzzle, options ...Option) *Stepper {
	return &Stepper{search: newSearch(puzzle, buildOptions(options))}
}

// Puzzle returns the instance being searched.
func (s *Stepper) Puzzle() Puzzle {
	return s.search.puzzle
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool {
	return s.search.done
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	if !s.search.done {
		s.advance()
	}

	return s.snapshot()
}

// Run steps until the search is done and returns its result.
func (s *Stepper) Run() Result {
	for !s.search.done {
		s.advance()
	}

	return s.search.result()
}

func (s *Stepper) advance() {
	if current, expanded := s.search.step(); expanded {
		s.stepCount++
		s.current = current
	}
}

// Result returns the outcome so far. Found is false until a goal is dequeued.
func (s *Stepper) Result() Result {
	return s.search.result()
}

func (s *Stepper) snapshot() StepSnapshot {
	path, moves := s.search.path()

	return StepSnapshot{
		Current:   s.current,
		Open:      s.search.openStates(),
		Closed:    s.search.closedStates(),
		Done:      s.search.done,
		Found:     s.search.found,
		Path:      path,
		Moves:     moves,
		StepIndex: s.stepCount,
	}
}
