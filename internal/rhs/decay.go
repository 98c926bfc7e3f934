package rhs

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Decay is exponential decay dx/dt = -lambda*x.
type Decay struct {
	Lambda float64
}

func NewDecay(lambda float64) *Decay {
	return &Decay{Lambda: lambda}
}

func (d *Decay) Name() string { return "decay" }

func (d *Decay) Func() ode.Func {
	return func(x, t float64) float64 {
		return -d.Lambda * x
	}
}

func (d *Decay) Exact(x0, t0 float64) func(t float64) float64 {
	return func(t float64) float64 {
		return x0 * math.Exp(-d.Lambda*(t-t0))
	}
}
