package waterjug

import (
	"cmp"
	"container/heap"
	"maps"
	"slices"

	"github.com/pdrpinto/waterjug/internal"
)

// search holds the per-invocation state shared by Solve and Stepper.
type search struct {
	puzzle    Puzzle
	heuristic Heuristic

	open     frontier
	cost     map[State]int
	cameFrom map[State]State
	moveInto map[State]Move
	closed   map[State]bool

	expandedNodes int
	done          bool
	found         bool
	goal          State
}

func newSearch(puzzle Puzzle, options Options) *search {
	start := State{}
	s := &search{
		puzzle:    puzzle,
		heuristic: options.Heuristic,
		open:      make(frontier, 0),
		cost:      map[State]int{start: 0},
		cameFrom:  make(map[State]State),
		moveInto:  make(map[State]Move),
		closed:    make(map[State]bool),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, frontierItem{State: start, G: 0, F: s.heuristic(start, puzzle.Goal)})

	return s
}

// step expands the next non-stale frontier entry. It reports false once the
// frontier is exhausted.
func (s *search) step() (State, bool) {
	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(frontierItem)
		current := item.State
		// a cheaper entry for this state was pushed after this one
		if item.G > s.cost[current] {
			continue
		}
		s.expandedNodes++
		s.closed[current] = true

		if s.puzzle.IsGoal(current) {
			s.done = true
			s.found = true
			s.goal = current

			return current, true
		}

		tentative := s.cost[current] + 1
		for _, transition := range s.puzzle.Successors(current) {
			next := transition.To
			if recorded, seen := s.cost[next]; seen && tentative >= recorded {
				continue
			}
			s.cost[next] = tentative
			s.cameFrom[next] = current
			s.moveInto[next] = transition.Move
			heap.Push(&s.open, frontierItem{
				State: next,
				G:     tentative,
				F:     tentative + s.heuristic(next, s.puzzle.Goal),
			})
		}

		return current, true
	}
	s.done = true

	return State{}, false
}

func (s *search) path() ([]State, []Move) {
	if !s.found {
		return nil, nil
	}
	path := internal.ReconstructPath(s.cameFrom, s.goal)
	moves := make([]Move, 0, len(path)-1)
	for _, state := range path[1:] {
		moves = append(moves, s.moveInto[state])
	}

	return path, moves
}

func (s *search) result() Result {
	path, moves := s.path()

	return Result{
		Path:          path,
		Moves:         moves,
		ExpandedNodes: s.expandedNodes,
		Found:         s.found,
	}
}

func (s *search) openStates() []State {
	live := make(map[State]bool, len(s.open))
	for _, item := range s.open {
		if item.G == s.cost[item.State] {
			live[item.State] = true
		}
	}

	return sortedStates(live)
}

func (s *search) closedStates() []State {
	return sortedStates(s.closed)
}

func sortedStates(set map[State]bool) []State {
	return slices.SortedFunc(maps.Keys(set), compareStates)
}

func compareStates(a, b State) int {
	if c := cmp.Compare(a.A, b.A); c != 0 {
		return c
	}

	return cmp.Compare(a.B, b.B)
}
