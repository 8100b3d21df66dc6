package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	pairStyle  = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// renderPreview builds the terminal summary shown after the report is
// written: one line per file pair with approximate color swatches for
// the mean original and healing colors and the pair's average Delta E,
// colorized against the 3/6 tolerance thresholds.
func renderPreview(results []pairResult) string {
	var b strings.Builder
	for _, res := range results {
		label := pairStyle.Render(res.origName + " vs " + res.healName)
		if len(res.deltas) == 0 {
			fmt.Fprintf(&b, "%s  %s\n", label, faintStyle.Render("no matching samples"))
			continue
		}

		s := summarize(res.deltas)
		fmt.Fprintf(&b, "%s  %s %s  %d samples  avg ΔE %s  >3: %s  >6: %s\n",
			label,
			swatch(res.origMean), swatch(res.healMean),
			len(res.deltas),
			deltaEStyle(s.AvgE).Render(f6(s.AvgE)),
			pct(s.PctOver3), pct(s.PctOver6),
		)
	}
	return b.String()
}

// swatch renders a two-cell block in the sRGB approximation of a Lab
// color. Instrument Lab is on the 0..100 scale; go-colorful expects
// unit-scaled channels, and out-of-gamut colors are clamped.
func swatch(lab [3]float64) string {
	c := colorful.Lab(lab[0]/100, lab[1]/100, lab[2]/100).Clamped()
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

func deltaEStyle(avgE float64) lipgloss.Style {
	switch {
	case avgE > 6:
		return errStyle
	case avgE > 3:
		return warnStyle
	default:
		return okStyle
	}
}
