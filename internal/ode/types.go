package ode

import "math"

// Func is a scalar right-hand side dx/dt = f(x, t). The first argument is
// the state value, the second the time value. Funcs are treated as black
// boxes and are only evaluated at the points each method prescribes.
type Func func(x, t float64) float64

// Trajectory holds solution values, one per time grid entry.
type Trajectory []float64

func (tr Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(tr))
	copy(c, tr)
	return c
}

// IsValid reports whether every entry is finite. The solvers never call
// this themselves; numerical blow-up propagates silently into the output.
func (tr Trajectory) IsValid() bool {
	for _, v := range tr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbsDiff returns the largest entrywise absolute difference between two
// trajectories over their common length.
func (tr Trajectory) MaxAbsDiff(other Trajectory) float64 {
	n := len(tr)
	if len(other) < n {
		n = len(other)
	}
	max := 0.0
	for i := 0; i < n; i++ {
		d := math.Abs(tr[i] - other[i])
		if d > max {
			max = d
		}
	}
	return max
}
