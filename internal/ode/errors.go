package ode

import "errors"

// Caller-side validation errors. The solvers never return these; they are
// for layers (CLI, config) that want to reject a grid before running.
var (
	// ErrGridTooShort indicates a grid with fewer than two points, so no
	// step can be taken.
	ErrGridTooShort = errors.New("ode: time grid has fewer than two points")

	// ErrZeroStep indicates t[1] == t[0], which would freeze the trajectory.
	ErrZeroStep = errors.New("ode: step size t[1]-t[0] is zero")

	// ErrNonUniformGrid indicates spacing that drifts from t[1]-t[0].
	ErrNonUniformGrid = errors.New("ode: time grid is not uniformly spaced")
)
