package eval

// invariantViolation handles a sample that breaks the evaluator's own
// accounting invariants: a negative loss, or an empty hazard set paired
// with a nonzero loss. Either one means the CDE or the collector has a
// bug, not that the sample is a legitimate Clear/Collision/Invalid
// outcome.
//
// Debug builds (built with -tags gonest_debug) panic so the bug surfaces
// immediately during development; release builds coerce the sample to
// Invalid and let the search loop discard it, the non-fatal treatment
// internal invariant violations get in production. See
// invariants_debug.go / invariants_release.go for the two bodies.
func invariantViolation(reason string, loss float64, empty bool) SampleEval {
	return handleInvariantViolation(reason, loss, empty)
}
