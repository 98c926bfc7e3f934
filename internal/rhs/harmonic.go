package rhs

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Harmonic is pure quadrature dx/dt = cos(omega*t); the state does not
// feed back into the derivative.
type Harmonic struct {
	Omega float64
}

func NewHarmonic(omega float64) *Harmonic {
	if omega == 0 {
		omega = 1
	}
	return &Harmonic{Omega: omega}
}

func (h *Harmonic) Name() string { return "harmonic" }

func (h *Harmonic) Func() ode.Func {
	return func(x, t float64) float64 {
		return math.Cos(h.Omega * t)
	}
}

func (h *Harmonic) Exact(x0, t0 float64) func(t float64) float64 {
	return func(t float64) float64 {
		return x0 + (math.Sin(h.Omega*t)-math.Sin(h.Omega*t0))/h.Omega
	}
}
