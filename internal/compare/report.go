package compare

import (
	"encoding/csv"
	"path/filepath"
	"strconv"
	"sync/atomic"
)

// reportHeader matches the layout instrument operators already import
// into their spreadsheets.
var reportHeader = []string{
	"Original File", "Healing File", "Sample_ID", "Chip Coordinate",
	"Orig L", "Orig A", "Orig B", "Heal L", "Heal A", "Heal B",
	"ΔL", "ΔA", "ΔB", "ΔE",
}

// pairResult retains what the console preview and the overall summary
// need after a file pair has been written: its deltas and the mean Lab
// of each side over the matched samples.
type pairResult struct {
	origName string
	healName string
	deltas   []Delta
	origMean [3]float64
	healMean [3]float64
}

// writeReport emits the full CSV report: a header, then for every
// (original, healing) file pair the detail rows and a pair summary
// block, then one overall summary across all pairs. The accumulated
// per-pair results are returned for the overall block and the preview;
// processed is bumped once per finished pair for progress display.
func writeReport(w *csv.Writer, originals, healings []string, records map[string][]Record, processed *int64) ([]pairResult, error) {
	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}

	var results []pairResult
	for _, orig := range originals {
		for _, heal := range healings {
			res, err := writePair(w, orig, heal, records)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
			atomic.AddInt64(processed, 1)
		}
	}

	if err := writeOverall(w, results); err != nil {
		return nil, err
	}
	return results, nil
}

// writePair writes the detail rows and the summary block for one file
// pair, separated from the next pair by a blank row on each side of the
// summary.
func writePair(w *csv.Writer, orig, heal string, records map[string][]Record) (pairResult, error) {
	res := pairResult{
		origName: filepath.Base(orig),
		healName: filepath.Base(heal),
	}

	for _, pair := range matchRecords(records[orig], records[heal]) {
		d := deltaOf(pair.orig, pair.heal)
		res.deltas = append(res.deltas, d)
		res.origMean[0] += pair.orig.L
		res.origMean[1] += pair.orig.A
		res.origMean[2] += pair.orig.B
		res.healMean[0] += pair.heal.L
		res.healMean[1] += pair.heal.A
		res.healMean[2] += pair.heal.B

		row := []string{
			res.origName, res.healName,
			pair.orig.SampleID, pair.orig.Coord,
			f6(pair.orig.L), f6(pair.orig.A), f6(pair.orig.B),
			f6(pair.heal.L), f6(pair.heal.A), f6(pair.heal.B),
			f6(d.L), f6(d.A), f6(d.B), f6(d.E),
		}
		if err := w.Write(row); err != nil {
			return res, err
		}
	}
	if n := len(res.deltas); n > 0 {
		for i := range res.origMean {
			res.origMean[i] /= float64(n)
			res.healMean[i] /= float64(n)
		}
	}

	if err := w.Write(nil); err != nil {
		return res, err
	}
	if err := w.Write([]string{"Summary " + res.origName + " vs " + res.healName}); err != nil {
		return res, err
	}
	if len(res.deltas) == 0 {
		if err := w.Write([]string{"No matching samples for this pair."}); err != nil {
			return res, err
		}
	} else if err := writeSummaryRows(w, summarize(res.deltas)); err != nil {
		return res, err
	}
	return res, w.Write(nil)
}

// writeOverall writes the final summary block over the union of every
// delta produced by every pair.
func writeOverall(w *csv.Writer, results []pairResult) error {
	if err := w.Write([]string{"Overall Summary Original vs Healing"}); err != nil {
		return err
	}

	var all []Delta
	for _, res := range results {
		all = append(all, res.deltas...)
	}
	if len(all) == 0 {
		return w.Write([]string{"No comparisons made."})
	}
	return writeSummaryRows(w, summarize(all))
}

// writeSummaryRows lays a Summary out as the four Avg/Std label-value
// rows followed by the threshold-exceedance row.
func writeSummaryRows(w *csv.Writer, s Summary) error {
	rows := [][]string{
		{"Avg ΔL", f6(s.AvgL), "Std ΔL", f6(s.StdL)},
		{"Avg ΔA", f6(s.AvgA), "Std ΔA", f6(s.StdA)},
		{"Avg ΔB", f6(s.AvgB), "Std ΔB", f6(s.StdB)},
		{"Avg ΔE", f6(s.AvgE), "Std ΔE", f6(s.StdE)},
		{"Pct ΔE>3", pct(s.PctOver3), "Pct ΔE>6", pct(s.PctOver6)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func f6(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
