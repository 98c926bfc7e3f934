package solvers

import "github.com/san-kum/odelab/internal/ode"

// RK4 is the classical fourth-order Runge-Kutta method. Global error O(h^4).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }
func (r *RK4) Order() int   { return 4 }

func (r *RK4) Step(f ode.Func, x, t, h float64) float64 {
	k1 := h * f(x, t)
	k2 := h * f(x+k1*0.5, t+h*0.5)
	k3 := h * f(x+k2*0.5, t+h*0.5)
	k4 := h * f(x+k3, t+h)
	return x + (k1+2*k2+2*k3+k4)/6.0
}
