//go:build !gonest_debug

package eval

// handleInvariantViolation coerces the sample to Invalid rather than
// crashing a production run over what is, from the search loop's
// perspective, just another candidate to discard.
func handleInvariantViolation(reason string, loss float64, empty bool) SampleEval {
	return Invalid()
}
