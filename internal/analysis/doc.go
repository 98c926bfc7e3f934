// Package analysis measures the accuracy of completed integration runs.
//
// The package compares trajectories against closed-form solutions or an
// RK4 reference on a finer grid:
//
//   - [MaxAbsError]: largest pointwise error against an exact solution
//   - [ObservedOrder]: convergence order from two error measurements
//   - [Convergence]: error-vs-step-size study for a method and model
//   - [Reference]: RK4 baseline for models without a closed form
//
// All measurement happens after the fact; the stepping loops themselves
// never estimate error.
package analysis
