package compare

import "gonum.org/v1/gonum/stat"

// Summary aggregates a delta set: mean and population standard
// deviation per channel, plus the share of samples whose Delta E
// exceeds the 3.0 and 6.0 thresholds (in percent).
type Summary struct {
	AvgL, StdL float64
	AvgA, StdA float64
	AvgB, StdB float64
	AvgE, StdE float64
	PctOver3   float64
	PctOver6   float64
}

// summarize reduces a non-empty delta slice to a Summary. The standard
// deviation is the population form (divisor N) so single-pair and
// overall summaries stay comparable. Callers with an empty slice must
// emit a "no data" marker instead of calling summarize.
func summarize(deltas []Delta) Summary {
	n := len(deltas)
	dL := make([]float64, n)
	dA := make([]float64, n)
	dB := make([]float64, n)
	dE := make([]float64, n)
	over3, over6 := 0, 0
	for i, d := range deltas {
		dL[i], dA[i], dB[i], dE[i] = d.L, d.A, d.B, d.E
		if d.E > 3 {
			over3++
		}
		if d.E > 6 {
			over6++
		}
	}

	return Summary{
		AvgL:     stat.Mean(dL, nil),
		StdL:     stat.PopStdDev(dL, nil),
		AvgA:     stat.Mean(dA, nil),
		StdA:     stat.PopStdDev(dA, nil),
		AvgB:     stat.Mean(dB, nil),
		StdB:     stat.PopStdDev(dB, nil),
		AvgE:     stat.Mean(dE, nil),
		StdE:     stat.PopStdDev(dE, nil),
		PctOver3: float64(over3) / float64(n) * 100,
		PctOver6: float64(over6) / float64(n) * 100,
	}
}
