// Package cde implements the collision-detection engine the separation
// evaluator queries: a broad-phase bound prune followed by a
// convex-hull-clip overlap proxy, the per-query HazardCollector, and the
// per-layout CollisionTracker that assigns weights to hazards. The CDE's
// spatial index is intentionally simple (linear scan with bound pruning)
// since tuning it is explicitly out of scope; what matters is that it
// implements spp.CDEIndex correctly. The caller's shape buffer is
// transformed in place, but each overlap computation allocates temporary
// hull and clip buffers, so a query is not allocation-free.
package cde
