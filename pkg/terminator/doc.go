// Package terminator implements the driver's cooperative cancellation
// signal: a per-phase deadline plus an out-of-band kill flag (e.g. from
// SIGINT), both of which a Separator polls on a bounded cadence between
// candidate evaluations.
package terminator
