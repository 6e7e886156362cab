package waterjug

import "fmt"

// State is the amount of water currently held by jug A and jug B.
type State struct {
	A int
	B int
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.A, s.B)
}

// Puzzle fixes the jug capacities and the goal amount for one search.
type Puzzle struct {
	CapacityA int
	CapacityB int
	Goal      int
}

// IsGoal reports whether either jug of s holds exactly the goal amount.
func (p Puzzle) IsGoal(s State) bool {
	return s.A == p.Goal || s.B == p.Goal
}

// Move is one of the six operations allowed on the jugs.
type Move int

const (
	FillA Move = iota
	FillB
	EmptyA
	EmptyB
	PourAB
	PourBA
)

// AllMoves lists the moves in the order successors are generated.
var AllMoves = []Move{FillA, FillB, EmptyA, EmptyB, PourAB, PourBA}

var moveNames = map[Move]string{
	FillA:  "fill-a",
	FillB:  "fill-b",
	EmptyA: "empty-a",
	EmptyB: "empty-b",
	PourAB: "pour-a-b",
	PourBA: "pour-b-a",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}

	return fmt.Sprintf("move(%d)", int(m))
}

// MarshalText encodes the move by name so it reads well in JSON output.
func (m Move) MarshalText() ([]byte, error) {
	if _, ok := moveNames[m]; !ok {
		return nil, fmt.Errorf("unknown move %d", int(m))
	}

	return []byte(m.String()), nil
}

// ParseMove is the inverse of Move.String.
func ParseMove(name string) (Move, error) {
	for _, m := range AllMoves {
		if moveNames[m] == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown move %q", name)
}

// Transition records that applying Move to From yields To.
type Transition struct {
	Move Move
	From State
	To   State
}

// Apply returns the state reached by performing m on s.
func (p Puzzle) Apply(m Move, s State) State {
	switch m {
	case FillA:
		return State{A: p.CapacityA, B: s.B}
	case FillB:
		return State{A: s.A, B: p.CapacityB}
	case EmptyA:
		return State{A: 0, B: s.B}
	case EmptyB:
		return State{A: s.A, B: 0}
	case PourAB:
		poured := min(s.A, p.CapacityB-s.B)
		return State{A: s.A - poured, B: s.B + poured}
	case PourBA:
		poured := min(s.B, p.CapacityA-s.A)
		return State{A: s.A + poured, B: s.B - poured}
	}

	return s
}

// Successors returns all six transitions out of s, in AllMoves order.
// Moves that leave s unchanged are included.
func (p Puzzle) Successors(s State) []Transition {
	out := make([]Transition, 0, len(AllMoves))
	for _, m := range AllMoves {
		out = append(out, Transition{Move: m, From: s, To: p.Apply(m, s)})
	}

	return out
}

// MovesBetween returns every move that takes from to to. It is empty when the
// two states are not adjacent.
func (p Puzzle) MovesBetween(from, to State) []Move {
	var moves []Move
	for _, t := range p.Successors(from) {
		if t.To == to {
			moves = append(moves, t.Move)
		}
	}

	return moves
}
