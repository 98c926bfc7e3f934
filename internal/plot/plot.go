// Package plot renders trajectories to PNG files.
package plot

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/odelab/internal/ode"
)

func points(t []float64, x ode.Trajectory) plotter.XYs {
	n := len(t)
	if len(x) < n {
		n = len(x)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = t[i]
		pts[i].Y = x[i]
	}
	return pts
}

// SavePNG writes a line plot of the named trajectories over the grid t.
// Series are drawn in name order so output is deterministic.
func SavePNG(t []float64, series map[string]ode.Trajectory, title, path string) error {
	if len(t) == 0 || len(series) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "x"
	p.Legend.Top = true

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		args = append(args, name, points(t, series[name]))
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
