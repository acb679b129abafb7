package cde

import "github.com/dshills/gonest/pkg/spp"

// CollisionTracker assigns a scalar weight to each placed item and to the
// bin edge. Weights are read by the evaluator's loss function and bumped
// by the Separator's search loop between evaluator calls; the evaluator
// itself never mutates a tracker. All weights stay strictly positive,
// and a placement's weight is forgotten once it leaves the layout.
type CollisionTracker struct {
	items  map[spp.PlacementKey]float64
	bin    float64
	base   float64
	growth float64
}

// NewCollisionTracker creates a tracker where every hazard starts at
// weight base, and Bump multiplies a hazard's weight by growth (> 1) each
// time it is called.
func NewCollisionTracker(base, growth float64) *CollisionTracker {
	if base <= 0 {
		base = 1.0
	}
	if growth <= 1 {
		growth = 1.1
	}
	return &CollisionTracker{
		items:  make(map[spp.PlacementKey]float64),
		bin:    base,
		base:   base,
		growth: growth,
	}
}

// Init registers pk at the base weight. Called when a placement is
// committed to the layout.
func (ct *CollisionTracker) Init(pk spp.PlacementKey) {
	ct.items[pk] = ct.base
}

// Forget removes pk's weight entirely, per the invariant that weights of
// hazards no longer present are removed. Called when a placement leaves
// the layout.
func (ct *CollisionTracker) Forget(pk spp.PlacementKey) {
	delete(ct.items, pk)
}

// Weight returns the current weight of hazard h, defaulting unseen items
// to the tracker's base weight.
func (ct *CollisionTracker) Weight(h spp.Hazard) float64 {
	if h.Kind == spp.HazardBinEdge {
		return ct.bin
	}
	if w, ok := ct.items[h.PK]; ok {
		return w
	}
	return ct.base
}

// Bump multiplicatively increases h's weight, the guided-local-search
// nudge the Separator applies to hazards that persist across consecutive
// accepted candidates.
func (ct *CollisionTracker) Bump(h spp.Hazard) {
	if h.Kind == spp.HazardBinEdge {
		ct.bin *= ct.growth
		return
	}
	ct.items[h.PK] = ct.Weight(h) * ct.growth
}

// Reset restores every tracked weight to the base value. Used at phase
// boundaries so compression starts from a clean slate.
func (ct *CollisionTracker) Reset() {
	for pk := range ct.items {
		ct.items[pk] = ct.base
	}
	ct.bin = ct.base
}
