package waterjug_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pdrpinto/waterjug"
)

func TestStepper_ExpansionOrder(t *testing.T) {
	t.Parallel()

	stepper := waterjug.NewStepper(waterjug.Puzzle{CapacityA: 4, CapacityB: 3, Goal: 2})

	var got []waterjug.State
	for !stepper.Done() {
		snapshot := stepper.Step()
		got = append(got, snapshot.Current)
	}

	want := []waterjug.State{
		{0, 0}, {0, 3}, {3, 0}, {4, 0}, {1, 3}, {4, 3}, {1, 0}, {3, 3}, {4, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expansion order mismatch (-want +got):\n%s", diff)
	}
}

func TestStepper_FirstSnapshot(t *testing.T) {
	t.Parallel()

	stepper := waterjug.NewStepper(waterjug.Puzzle{CapacityA: 4, CapacityB: 3, Goal: 2})

	got := stepper.Step()
	want := waterjug.StepSnapshot{
		Current:   waterjug.State{},
		Open:      []waterjug.State{{0, 3}, {4, 0}},
		Closed:    []waterjug.State{{0, 0}},
		StepIndex: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Step() mismatch (-want +got):\n%s", diff)
	}
}

func TestStepper_FinalSnapshotRepeats(t *testing.T) {
	t.Parallel()

	stepper := waterjug.NewStepper(waterjug.Puzzle{CapacityA: 6, CapacityB: 3, Goal: 6})

	var last waterjug.StepSnapshot
	for !stepper.Done() {
		last = stepper.Step()
	}
	if !last.Done || !last.Found {
		t.Fatalf("expected a finished, successful snapshot, got %+v", last)
	}
	if diff := cmp.Diff([]waterjug.State{{0, 0}, {6, 0}}, last.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}

	again := stepper.Step()
	if diff := cmp.Diff(last, again); diff != "" {
		t.Errorf("Step() after done changed the snapshot (-want +got):\n%s", diff)
	}
}

func TestStepper_Exhausted(t *testing.T) {
	t.Parallel()

	stepper := waterjug.NewStepper(waterjug.Puzzle{CapacityA: 2, CapacityB: 6, Goal: 5})
	result := stepper.Run()
	if result.Found {
		t.Fatalf("expected no path, got %v", result.Path)
	}

	snapshot := stepper.Step()
	if !snapshot.Done || snapshot.Found {
		t.Errorf("unexpected final snapshot %+v", snapshot)
	}
	if snapshot.StepIndex != 8 {
		t.Errorf("StepIndex = %d, want 8", snapshot.StepIndex)
	}
	if len(snapshot.Open) != 0 {
		t.Errorf("frontier should be empty, got %v", snapshot.Open)
	}
}

func TestStepper_RunMatchesSolve(t *testing.T) {
	t.Parallel()

	for _, puzzle := range []waterjug.Puzzle{
		{CapacityA: 4, CapacityB: 3, Goal: 2},
		{CapacityA: 8, CapacityB: 5, Goal: 4},
		{CapacityA: 6, CapacityB: 14, Goal: 10},
	} {
		want := puzzle.Solve(waterjug.WithHeuristic(waterjug.Unit))
		got := waterjug.NewStepper(puzzle, waterjug.WithHeuristic(waterjug.Unit)).Run()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%+v: Run() differs from Solve() (-want +got):\n%s", puzzle, diff)
		}
	}
}
