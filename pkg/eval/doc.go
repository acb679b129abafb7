// Package eval implements the sample evaluator: the hot-path routine
// that scores one candidate placement transform against the hazards
// already present in a layout, composing an optional mirror-symmetry
// sub-evaluation into the result.
package eval
