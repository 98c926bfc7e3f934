package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/ode"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// Plot renders one trajectory as an ascii graph.
func Plot(x ode.Trajectory, caption string) string {
	return asciigraph.Plot(x,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotMany renders several trajectories on one graph with a legend, one
// series per method.
func PlotMany(series []ode.Trajectory, labels []string, caption string) string {
	data := make([][]float64, len(series))
	for i, s := range series {
		data[i] = s
	}

	colors := []asciigraph.AnsiColor{
		asciigraph.Blue,
		asciigraph.Red,
		asciigraph.Green,
		asciigraph.Yellow,
	}
	if len(colors) > len(data) {
		colors = colors[:len(data)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(labels...),
	)
}

// Header renders a styled title plus label/value lines.
func Header(title string, fields [][2]string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(f[0]), valueStyle.Render(f[1])))
	}
	return b.String()
}
