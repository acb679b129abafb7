// Package optimizer implements the two-phase optimisation driver: it
// builds (or restores) an initial feasible layout, runs an exploration
// Separator to place every item, then a compression Separator to shrink
// the strip height, reporting progress through a listener.SolutionListener
// at each improvement and at final handoff.
package optimizer
