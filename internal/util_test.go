package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReconstructPath(t *testing.T) {
	t.Parallel()

	cameFrom := map[string]string{"b": "a", "c": "b", "d": "c"}

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, ReconstructPath(cameFrom, "d")); diff != "" {
		t.Errorf("ReconstructPath() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, ReconstructPath(cameFrom, "a")); diff != "" {
		t.Errorf("ReconstructPath() from the start mismatch (-want +got):\n%s", diff)
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3, 4, 5}
	Reverse(s)
	if diff := cmp.Diff([]int{5, 4, 3, 2, 1}, s); diff != "" {
		t.Errorf("Reverse() mismatch (-want +got):\n%s", diff)
	}
}
