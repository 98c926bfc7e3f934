package solvers

import "github.com/san-kum/odelab/internal/ode"

// Euler is the explicit first-order method. Global error O(h).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }
func (e *Euler) Order() int   { return 1 }

func (e *Euler) Step(f ode.Func, x, t, h float64) float64 {
	return x + h*f(x, t)
}
