// Package report computes and renders post-solve metrics for a gonest
// Solution: strip utilization, placement counts, and a human-readable
// summary in the teacher's validation-report style.
package report
