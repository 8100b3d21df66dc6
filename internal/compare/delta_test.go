package compare

import (
	"math"
	"testing"
)

func TestDeltaOfConcrete(t *testing.T) {
	orig := Record{SampleID: "S1", Coord: "A,1", L: 50, A: 0, B: 0}
	heal := Record{SampleID: "S1", Coord: "A,1", L: 51, A: 1, B: 0}

	d := deltaOf(orig, heal)
	if d.L != 1 || d.A != 1 || d.B != 0 {
		t.Errorf("got dL=%v dA=%v dB=%v, want 1 1 0", d.L, d.A, d.B)
	}
	if math.Abs(d.E-math.Sqrt2) > 1e-12 {
		t.Errorf("got dE=%v, want sqrt(2)", d.E)
	}
}

func TestDeltaOfSwapFlipsSignsButNotE(t *testing.T) {
	a := Record{L: 52.3, A: -4.1, B: 11.8}
	b := Record{L: 49.9, A: 2.2, B: 10.0}

	fwd := deltaOf(a, b)
	rev := deltaOf(b, a)

	if fwd.L != -rev.L || fwd.A != -rev.A || fwd.B != -rev.B {
		t.Errorf("channel deltas did not flip sign: %+v vs %+v", fwd, rev)
	}
	if math.Abs(fwd.E-rev.E) > 1e-12 {
		t.Errorf("dE changed under swap: %v vs %v", fwd.E, rev.E)
	}
}

func TestDeltaOfIdenticalIsZero(t *testing.T) {
	r := Record{L: 60, A: 5, B: -5}
	d := deltaOf(r, r)
	if d.L != 0 || d.A != 0 || d.B != 0 || d.E != 0 {
		t.Errorf("got %+v, want all zero", d)
	}
}
