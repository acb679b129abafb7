package cde

import (
	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/spp"
)

// HazardCollector is per-evaluator scratch state, reloaded before every
// query and reused across millions of evaluations. It implements
// spp.HazardSink.
type HazardCollector struct {
	ct *CollisionTracker

	bound        float64
	currentPK    spp.PlacementKey
	hasCurrentPK bool

	collected map[spp.Hazard]float64 // hazard -> this query's overlap proxy
	binHit    bool
	partial   float64 // running Sum(weight * proxy), maintained incrementally
}

// NewHazardCollector creates a collector backed by tracker ct with no
// placement key excluded; call SetCurrentPK to exclude the candidate's own
// slot (pass has=false when there is no self-placement to exclude, e.g. a
// from-scratch probe).
func NewHazardCollector(ct *CollisionTracker) *HazardCollector {
	return &HazardCollector{
		ct:        ct,
		collected: make(map[spp.Hazard]float64),
	}
}

// SetCurrentPK configures the placement key self-excluded from
// collection, since the candidate's own slot is conceptually vacated.
func (hc *HazardCollector) SetCurrentPK(pk spp.PlacementKey, has bool) {
	hc.currentPK = pk
	hc.hasCurrentPK = has
}

// Reload clears collected state and installs a new loss bound, ready for
// the next query. currentPK is left untouched, per §4.2.
func (hc *HazardCollector) Reload(newBound float64) {
	for h := range hc.collected {
		delete(hc.collected, h)
	}
	hc.binHit = false
	hc.partial = 0
	hc.bound = newBound
}

// AcceptHazard implements spp.HazardSink. It skips the candidate's own
// placement key (self-exclusion), and otherwise records the hazard and
// folds its weighted contribution into the running partial loss.
func (hc *HazardCollector) AcceptHazard(h spp.Hazard, overlapProxy float64) {
	if hc.hasCurrentPK && h.Kind == spp.HazardItem && h.PK == hc.currentPK {
		return
	}
	if _, already := hc.collected[h]; already {
		return
	}
	hc.collected[h] = overlapProxy
	if h.Kind == spp.HazardBinEdge {
		hc.binHit = true
	}
	hc.partial += hc.ct.Weight(h) * overlapProxy
}

// EarlyTerminate reports whether the partial loss collected so far has
// already reached the bound installed by Reload, the CDE's signal to
// abort further traversal. shape is accepted for interface symmetry with
// the spec's contract but is not otherwise consulted: the running
// partial already reflects every hazard accepted for this shape.
func (hc *HazardCollector) EarlyTerminate(shape geom.Polygon) bool {
	return hc.partial >= hc.bound
}

// IsEmpty reports whether no hazards were collected this query.
func (hc *HazardCollector) IsEmpty() bool {
	return len(hc.collected) == 0
}

// Loss returns the total penalty for this query. shape is accepted for
// interface symmetry; the value is already accumulated incrementally by
// AcceptHazard since overlapProxy is computed against the same shape for
// the life of one query.
func (hc *HazardCollector) Loss(shape geom.Polygon) float64 {
	return hc.partial
}

// Hazards returns the hazards collected since the last Reload. The slice
// is a fresh copy, safe for the caller to retain past the next Reload.
func (hc *HazardCollector) Hazards() []spp.Hazard {
	out := make([]spp.Hazard, 0, len(hc.collected))
	for h := range hc.collected {
		out = append(out, h)
	}
	return out
}
