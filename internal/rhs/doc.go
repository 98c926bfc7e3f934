// Package rhs provides named scalar right-hand sides for the solvers.
//
// Each model implements [Model], yielding the ode.Func that defines
// dx/dt = f(x, t):
//
//   - [CubicSine]: f = -x^3 + sin(t), the demo equation
//   - [Decay]: f = -lambda*x, exponential decay
//   - [Constant]: f = c, linear ramp
//   - [Logistic]: f = r*x*(1 - x/K), population growth
//   - [Harmonic]: f = cos(omega*t), pure quadrature
//
// Models with a closed-form solution also implement [Exact]; the analysis
// package uses those to measure integration error directly.
package rhs
