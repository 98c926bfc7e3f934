// Package ode provides the primitives shared by the fixed-step solvers.
//
// The package defines the fundamental types for numerical integration of
// scalar ordinary differential equations dx/dt = f(x, t):
//
//   - [Func]: scalar right-hand side f(x, t)
//   - [Trajectory]: solution values along a time grid
//   - [Linspace], [StepSize], [IsUniform], [CheckGrid]: grid helpers
//
// # Uniform spacing
//
// Every solver derives its step size ONCE, from the first two grid points,
// and reuses it for all steps. Grids must be uniformly spaced; a
// non-uniform grid is silently integrated with h = t[1]-t[0] throughout.
// Callers that want that caught should run [CheckGrid] before solving.
//
// # Thread safety
//
// All functions are pure given a pure Func; concurrent calls are safe as
// long as the supplied right-hand side is free of shared mutable state.
package ode
