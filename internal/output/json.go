package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdrpinto/waterjug"
)

// JSONReport is the machine-readable form of a Report, shared with the HTTP
// service.
type JSONReport struct {
	Profile       string     `json:"profile,omitempty"`
	CapacityA     int        `json:"capacityA"`
	CapacityB     int        `json:"capacityB"`
	Goal          int        `json:"goal"`
	Found         bool       `json:"found"`
	MoveCount     int        `json:"moveCount"`
	ExpandedNodes int        `json:"expandedNodes"`
	Path          [][2]int   `json:"path"`
	Steps         []JSONStep `json:"steps"`
}

// JSONStep is one move and the state it leads to.
type JSONStep struct {
	Move waterjug.Move `json:"move"`
	A    int           `json:"a"`
	B    int           `json:"b"`
}

// NewJSONReport converts a report, using empty arrays rather than null when
// nothing was found.
func NewJSONReport(report Report) JSONReport {
	out := JSONReport{
		Profile:       report.Profile.Name,
		CapacityA:     report.Puzzle.CapacityA,
		CapacityB:     report.Puzzle.CapacityB,
		Goal:          report.Puzzle.Goal,
		Found:         report.Result.Found,
		MoveCount:     report.Result.MoveCount(),
		ExpandedNodes: report.Result.ExpandedNodes,
		Path:          StatePairs(report.Result.Path),
		Steps:         make([]JSONStep, 0, len(report.Result.Moves)),
	}
	for i, move := range report.Result.Moves {
		state := report.Result.Path[i+1]
		out.Steps = append(out.Steps, JSONStep{Move: move, A: state.A, B: state.B})
	}

	return out
}

// StatePairs converts states to [a, b] pairs.
func StatePairs(states []waterjug.State) [][2]int {
	pairs := make([][2]int, 0, len(states))
	for _, s := range states {
		pairs = append(pairs, [2]int{s.A, s.B})
	}

	return pairs
}

func printJSON(w io.Writer, report Report) error {
	data, err := json.MarshalIndent(NewJSONReport(report), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))

	return err
}
