package rhs

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// CubicSine is the normalized demo equation dx/dt = -x^3 + sin(t).
// No closed-form solution is known; use an RK4 reference grid instead.
type CubicSine struct{}

func NewCubicSine() *CubicSine {
	return &CubicSine{}
}

func (c *CubicSine) Name() string { return "cubicsine" }

func (c *CubicSine) Func() ode.Func {
	return func(x, t float64) float64 {
		return -(x * x * x) + math.Sin(t)
	}
}
