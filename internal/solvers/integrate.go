package solvers

import "github.com/san-kum/odelab/internal/ode"

// Method advances the state by one fixed step of size h from (x, t).
type Method interface {
	Name() string
	Order() int
	Step(f ode.Func, x, t, h float64) float64
}

// Integrate runs m across the time grid t starting from x0 and returns the
// trajectory, one value per grid point.
//
// The step size is taken ONCE from t[1]-t[0] and reused for every step; the
// grid must be uniformly spaced (see ode.CheckGrid). An empty grid yields an
// empty trajectory, a single-point grid yields just x0, and h == 0 yields a
// constant trajectory. Nothing is validated and non-finite values from f
// propagate into the output untouched.
func Integrate(m Method, f ode.Func, t []float64, x0 float64) ode.Trajectory {
	x := make(ode.Trajectory, len(t))
	if len(t) == 0 {
		return x
	}
	x[0] = x0
	if len(t) == 1 {
		return x
	}

	h := t[1] - t[0]
	for i := 0; i+1 < len(t); i++ {
		x[i+1] = m.Step(f, x[i], t[i], h)
	}
	return x
}

// IntegrateEuler solves dx/dt = f(x, t) over t with the explicit Euler method.
func IntegrateEuler(f ode.Func, t []float64, x0 float64) ode.Trajectory {
	return Integrate(NewEuler(), f, t, x0)
}

// IntegrateRK2 solves dx/dt = f(x, t) over t with the second-order midpoint method.
func IntegrateRK2(f ode.Func, t []float64, x0 float64) ode.Trajectory {
	return Integrate(NewRK2(), f, t, x0)
}

// IntegrateRK4 solves dx/dt = f(x, t) over t with classical fourth-order Runge-Kutta.
func IntegrateRK4(f ode.Func, t []float64, x0 float64) ode.Trajectory {
	return Integrate(NewRK4(), f, t, x0)
}
