// Package waterjug solves the two-jug water puzzle with A* search.
//
// It exposes two main entry points:
//
//   - Solve: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// A state is the pair of water levels (a, b). From every state the engine
// generates the six canonical moves (fill, empty and pour for each jug) and
// expands the frontier entry with the lowest cost-so-far plus heuristic estimate
// until a state holding the goal amount in either jug is dequeued.
//
// The engine does no input parsing, validation or formatting. Callers are
// expected to reject unsolvable instances first; if they do not, the search
// exhausts the finite state space and reports that no path was found.
package waterjug
