// Package viz provides terminal-based visualization for trajectories.
//
// Static plots use asciigraph ([Plot], [PlotMany]); the live view is a
// Bubble Tea model ([Model]) that advances the integration a few grid
// points per frame.
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume integration
//	R     - Reset to the initial condition
//	Q     - Quit
package viz
