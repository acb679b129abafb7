// Package separator implements the inner search loop that drives one
// phase of optimisation: given a layout and a worklist of item copies
// still to place, it repeatedly generates candidate transforms, judges
// them through the sample evaluator, and commits the first Clear result
// it finds. Persistent collisions bump their hazard's CollisionTracker
// weight, the guided-local-search nudge that steers later rounds away
// from a stuck local minimum. Candidate generation itself is a minimal,
// documented policy (grid-jittered positions just above the layout's
// current frontier height plus occasional full-strip restarts) standing in for tuning
// that is explicitly out of scope.
package separator
