package rhs

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Logistic is bounded growth dx/dt = r*x*(1 - x/K).
type Logistic struct {
	R float64
	K float64
}

func NewLogistic(r, k float64) *Logistic {
	return &Logistic{R: r, K: k}
}

func (l *Logistic) Name() string { return "logistic" }

func (l *Logistic) Func() ode.Func {
	return func(x, t float64) float64 {
		return l.R * x * (1 - x/l.K)
	}
}

func (l *Logistic) Exact(x0, t0 float64) func(t float64) float64 {
	if x0 == 0 {
		return func(t float64) float64 { return 0 }
	}
	a := (l.K - x0) / x0
	return func(t float64) float64 {
		return l.K / (1 + a*math.Exp(-l.R*(t-t0)))
	}
}
