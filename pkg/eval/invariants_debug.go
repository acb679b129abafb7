//go:build gonest_debug

package eval

import "fmt"

// handleInvariantViolation aborts the process so the offending sample's
// bound/trace is visible in the panic, rather than silently continuing
// on corrupted collector state.
func handleInvariantViolation(reason string, loss float64, empty bool) SampleEval {
	panic(fmt.Sprintf("eval: internal invariant violation: %s (loss=%v, empty=%v)", reason, loss, empty))
}
