package ode

import "math"

// Linspace returns n evenly spaced points covering [t0, t1] inclusive.
// n <= 0 yields an empty grid; n == 1 yields just t0.
func Linspace(t0, t1 float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	t := make([]float64, n)
	if n == 1 {
		t[0] = t0
		return t
	}
	h := (t1 - t0) / float64(n-1)
	for i := range t {
		t[i] = t0 + float64(i)*h
	}
	t[n-1] = t1
	return t
}

// StepSize returns the step the solvers will use for the grid: t[1]-t[0].
// Degenerate grids (fewer than two points) report 0.
func StepSize(t []float64) float64 {
	if len(t) < 2 {
		return 0
	}
	return t[1] - t[0]
}

// IsUniform reports whether consecutive spacings all match t[1]-t[0]
// within tol. Grids with fewer than three points are trivially uniform.
func IsUniform(t []float64, tol float64) bool {
	if len(t) < 3 {
		return true
	}
	h := t[1] - t[0]
	for i := 2; i < len(t); i++ {
		if math.Abs((t[i]-t[i-1])-h) > tol {
			return false
		}
	}
	return true
}

// CheckGrid is a caller-side guard for grids headed into the solvers.
// The solvers themselves never validate; they take the step from the
// first two points and use it for every step regardless of later spacing.
func CheckGrid(t []float64) error {
	if len(t) < 2 {
		return ErrGridTooShort
	}
	if t[1]-t[0] == 0 {
		return ErrZeroStep
	}
	if !IsUniform(t, 1e-9*math.Abs(t[1]-t[0])+1e-12) {
		return ErrNonUniformGrid
	}
	return nil
}
