package rhs

import "github.com/san-kum/odelab/internal/ode"

// Constant has derivative c everywhere; the solution is a straight line.
// Every method reproduces it exactly, which makes it the standard sanity
// model.
type Constant struct {
	C float64
}

func NewConstant(c float64) *Constant {
	return &Constant{C: c}
}

func (c *Constant) Name() string { return "constant" }

func (c *Constant) Func() ode.Func {
	return func(x, t float64) float64 {
		return c.C
	}
}

func (c *Constant) Exact(x0, t0 float64) func(t float64) float64 {
	return func(t float64) float64 {
		return x0 + c.C*(t-t0)
	}
}
