package rhs

import "github.com/san-kum/odelab/internal/ode"

// Model names a scalar right-hand side.
type Model interface {
	Name() string
	Func() ode.Func
}

// Exact is implemented by models with a closed-form solution through
// (t0, x0). Used for error measurement; the solvers never look at it.
type Exact interface {
	Exact(x0, t0 float64) func(t float64) float64
}
