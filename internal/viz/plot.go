package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 70
	plotHeight = 12
)

// PlotZNE draws the measured energies against their fold scales together
// with the extrapolated zero-noise value as a leading point.
func PlotZNE(scales []int, energies []float64, mitigated float64) string {
	series := append([]float64{mitigated}, energies...)
	labels := make([]string, 0, len(scales)+1)
	labels = append(labels, "0")
	for _, k := range scales {
		labels = append(labels, fmt.Sprintf("%d", k))
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("energy vs scale factor (leftmost = extrapolated)"),
	)
	return graph + "\nscales: " + strings.Join(labels, ", ")
}

// PlotConvergence draws an optimizer's energy history.
func PlotConvergence(energies []float64) string {
	if len(energies) < 2 {
		return ""
	}
	return asciigraph.Plot(energies,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("vqe energy vs step"),
	)
}

// PlotSweep draws a generic x/y sweep, e.g. fidelity against noise.
func PlotSweep(ys []float64, caption string) string {
	return asciigraph.Plot(ys,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
