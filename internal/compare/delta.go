package compare

import "math"

// Delta holds the per-channel differences (healing minus original) and
// the CIE76 Delta E for one matched sample.
type Delta struct {
	L, A, B, E float64
}

// deltaOf computes the color difference of a matched pair. Delta E is
// the Euclidean norm of the channel differences (CIE76, unweighted).
func deltaOf(orig, heal Record) Delta {
	dL := heal.L - orig.L
	dA := heal.A - orig.A
	dB := heal.B - orig.B
	return Delta{
		L: dL,
		A: dA,
		B: dB,
		E: math.Sqrt(dL*dL + dA*dA + dB*dB),
	}
}
