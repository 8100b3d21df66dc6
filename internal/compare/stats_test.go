package compare

import (
	"math"
	"testing"
)

func TestSummarizeSingleElement(t *testing.T) {
	s := summarize([]Delta{{L: 1, A: 2, B: 3, E: math.Sqrt(14)}})

	if s.AvgL != 1 || s.AvgA != 2 || s.AvgB != 3 {
		t.Errorf("unexpected means: %+v", s)
	}
	// Population standard deviation of a single element is exactly zero.
	if s.StdL != 0 || s.StdA != 0 || s.StdB != 0 || s.StdE != 0 {
		t.Errorf("single-element stddev not zero: %+v", s)
	}
}

func TestSummarizeThresholdsAreStrict(t *testing.T) {
	s := summarize([]Delta{{E: 2}, {E: 4}})

	if s.AvgE != 3 {
		t.Errorf("got mean dE=%v, want 3", s.AvgE)
	}
	if s.PctOver3 != 50 {
		t.Errorf("got PctOver3=%v, want 50", s.PctOver3)
	}
	if s.PctOver6 != 0 {
		t.Errorf("got PctOver6=%v, want 0", s.PctOver6)
	}
}

func TestSummarizeBoundaryNotCounted(t *testing.T) {
	s := summarize([]Delta{{E: 3}, {E: 6}})

	if s.PctOver3 != 50 {
		t.Errorf("got PctOver3=%v, want 50 (6 > 3, 3 is not)", s.PctOver3)
	}
	if s.PctOver6 != 0 {
		t.Errorf("got PctOver6=%v, want 0 (6 is not strictly greater)", s.PctOver6)
	}
}

func TestSummarizePopulationStdDev(t *testing.T) {
	// Population stddev of {2, 4} is 1; the sample form would give sqrt(2).
	s := summarize([]Delta{{E: 2}, {E: 4}})
	if math.Abs(s.StdE-1) > 1e-12 {
		t.Errorf("got StdE=%v, want 1 (population form)", s.StdE)
	}
}
