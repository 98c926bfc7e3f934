package solvers

import "github.com/san-kum/odelab/internal/ode"

// RK2 is the second-order midpoint method. Global error O(h^2).
type RK2 struct{}

func NewRK2() *RK2 {
	return &RK2{}
}

func (r *RK2) Name() string { return "rk2" }
func (r *RK2) Order() int   { return 2 }

func (r *RK2) Step(f ode.Func, x, t, h float64) float64 {
	k1 := h * f(x, t)
	k2 := h * f(x+k1*0.5, t+h*0.5)
	return x + k2
}
