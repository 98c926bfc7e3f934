package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/rhs"
	"github.com/san-kum/odelab/internal/solvers"
)

// MaxAbsError returns the largest pointwise error of a trajectory against a
// closed-form solution sampled on the same grid.
func MaxAbsError(x ode.Trajectory, exact func(t float64) float64, t []float64) float64 {
	max := 0.0
	for i := range x {
		if i >= len(t) {
			break
		}
		if d := math.Abs(x[i] - exact(t[i])); d > max {
			max = d
		}
	}
	return max
}

// ObservedOrder estimates the convergence order from two error measurements
// taken at step sizes differing by the given refinement factor.
func ObservedOrder(errCoarse, errFine, refine float64) float64 {
	if errFine <= 0 || errCoarse <= 0 || refine <= 1 {
		return 0
	}
	return math.Log(errCoarse/errFine) / math.Log(refine)
}

// Reference integrates f with RK4 on a grid refined by the given factor and
// samples the result back onto the original grid. Used as the error
// baseline for models without a closed-form solution.
func Reference(f ode.Func, t []float64, x0 float64, refine int) ode.Trajectory {
	if len(t) < 2 || refine < 2 {
		return solvers.IntegrateRK4(f, t, x0)
	}
	fine := ode.Linspace(t[0], t[len(t)-1], (len(t)-1)*refine+1)
	full := solvers.IntegrateRK4(f, fine, x0)

	x := make(ode.Trajectory, len(t))
	for i := range t {
		x[i] = full[i*refine]
	}
	return x
}

// Row is one line of a convergence study.
type Row struct {
	Points   int
	H        float64
	MaxError float64
	Order    float64
}

// Convergence runs m over [t0, t1] for each grid resolution and measures
// the maximum error against the model's closed-form solution, or against an
// RK4 reference 10x finer when none exists. Order is estimated between
// consecutive rows; the first row reports 0.
func Convergence(m solvers.Method, model rhs.Model, t0, t1, x0 float64, pointCounts []int) ([]Row, error) {
	if t1 == t0 {
		return nil, fmt.Errorf("degenerate interval [%g, %g]", t0, t1)
	}

	f := model.Func()
	var exact func(float64) float64
	if e, ok := model.(rhs.Exact); ok {
		exact = e.Exact(x0, t0)
	}

	rows := make([]Row, 0, len(pointCounts))
	for _, n := range pointCounts {
		if n < 2 {
			return nil, fmt.Errorf("need at least 2 points, got %d", n)
		}
		grid := ode.Linspace(t0, t1, n)
		x := solvers.Integrate(m, f, grid, x0)

		var maxErr float64
		if exact != nil {
			maxErr = MaxAbsError(x, exact, grid)
		} else {
			maxErr = x.MaxAbsDiff(Reference(f, grid, x0, 10))
		}

		row := Row{Points: n, H: ode.StepSize(grid), MaxError: maxErr}
		if len(rows) > 0 {
			prev := rows[len(rows)-1]
			row.Order = ObservedOrder(prev.MaxError, maxErr, prev.H/row.H)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
