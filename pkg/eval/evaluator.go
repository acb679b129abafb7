package eval

import (
	"math"

	"github.com/dshills/gonest/pkg/cde"
	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/mirror"
	"github.com/dshills/gonest/pkg/spp"
)

// Evaluator scores candidate transforms for one item against a layout's
// hazards. It owns two polygon scratch buffers that every call reuses
// instead of copying the item's shape: this is the engine's hot path.
// Calls are not allocation-free: the CDE query allocates hull and clip
// buffers, and each call copies the collected hazards for LastHazards.
type Evaluator struct {
	layout    *spp.Layout
	item      *spp.Item
	collector *cde.HazardCollector

	shapeBuf       geom.Polygon
	mirrorShapeBuf geom.Polygon

	nEvals      int
	axisX       *float64 // nil unless symmetric mode is active
	lastHazards []spp.Hazard
}

// New creates an evaluator for item within layout, evaluating candidates
// as if currentPK's own slot has been vacated (pass hasCurrentPK=false
// when there is no existing placement to exclude, e.g. first placement
// of a fresh item).
func New(layout *spp.Layout, item *spp.Item, currentPK spp.PlacementKey, hasCurrentPK bool, ct *cde.CollisionTracker) *Evaluator {
	return NewSymmetric(layout, item, currentPK, hasCurrentPK, ct, nil)
}

// NewSymmetric is New with an optional symmetric-mode axis. When axisX is
// non-nil, every evaluation additionally checks the mirrored transform
// and composes its result with the primary one per the composition table
// in §4.3.1.
func NewSymmetric(layout *spp.Layout, item *spp.Item, currentPK spp.PlacementKey, hasCurrentPK bool, ct *cde.CollisionTracker, axisX *float64) *Evaluator {
	collector := cde.NewHazardCollector(ct)
	collector.SetCurrentPK(currentPK, hasCurrentPK)

	return &Evaluator{
		layout:         layout,
		item:           item,
		collector:      collector,
		shapeBuf:       geom.ClonePolygon(item.ShapeCD),
		mirrorShapeBuf: geom.ClonePolygon(item.ShapeCD),
		axisX:          axisX,
	}
}

// NEvals returns the number of times Evaluate has been called.
func (e *Evaluator) NEvals() int {
	return e.nEvals
}

// LastHazards returns every hazard collected by the most recent Evaluate
// call, across both the primary and (when active) mirror queries. Callers
// use this to decide which hazards' CollisionTracker weight to bump; it
// is not part of the evaluator's loss computation.
func (e *Evaluator) LastHazards() []spp.Hazard {
	return e.lastHazards
}

// lossBoundOf translates a caller-supplied upper bound into the loss
// value above which a sample is uninteresting, per §4.3.1's table.
func lossBoundOf(upperBound *SampleEval) float64 {
	if upperBound == nil {
		return math.Inf(1)
	}
	switch upperBound.Kind {
	case KindCollision:
		return upperBound.Loss
	case KindClear:
		return 0.0
	default: // KindInvalid
		return math.Inf(1)
	}
}

// Evaluate scores transform t for this evaluator's item, optionally
// pruned by upperBound (nil means no bound: always evaluate in full).
// This is Algorithm 7's translation: a primary CDE query, classified
// into Clear/Collision/Invalid, composed with a mirror sub-evaluation
// when symmetric mode is active.
func (e *Evaluator) Evaluate(t geom.Transform, upperBound *SampleEval) SampleEval {
	e.nEvals++
	lossBound := lossBoundOf(upperBound)

	primary := e.queryPrimary(t, lossBound)

	if e.axisX == nil {
		e.lastHazards = e.collector.Hazards()
		return primary
	}
	primaryHazards := e.collector.Hazards()
	return e.composeSymmetric(t, lossBound, primary, primaryHazards)
}

// queryPrimary runs one CDE query at t into e.shapeBuf and classifies it.
func (e *Evaluator) queryPrimary(t geom.Transform, lossBound float64) SampleEval {
	e.collector.Reload(lossBound)
	e.layout.CDE.CollectHazards(t, e.item, e.shapeBuf, e.collector)
	return e.classify(e.shapeBuf)
}

// classify reads collector state after a query and produces the
// corresponding SampleEval, checking early-termination first.
func (e *Evaluator) classify(shape geom.Polygon) SampleEval {
	if e.collector.EarlyTerminate(shape) {
		return Invalid()
	}

	empty := e.collector.IsEmpty()
	loss := e.collector.Loss(shape)

	if loss < 0 {
		return invariantViolation("negative loss", loss, empty)
	}
	if empty {
		if loss != 0 {
			return invariantViolation("empty hazard set with nonzero loss", loss, empty)
		}
		return Clear()
	}
	return Collision(loss)
}

// composeSymmetric runs the mirror sub-evaluation and combines it with
// the primary result per §4.3.1's composition table.
func (e *Evaluator) composeSymmetric(t geom.Transform, lossBound float64, primary SampleEval, primaryHazards []spp.Hazard) SampleEval {
	e.lastHazards = primaryHazards

	if primary.IsInvalid() {
		return Invalid()
	}

	l1 := 0.0
	if primary.IsCollision() {
		l1 = primary.Loss
	}

	tMirror := mirror.Transform(t, *e.axisX)

	residualBound := lossBound - l1
	if residualBound <= 0 {
		// The mirror cannot improve matters; avoid the query entirely.
		return Collision(l1)
	}

	e.collector.Reload(residualBound)
	e.layout.CDE.CollectHazards(tMirror, e.item, e.mirrorShapeBuf, e.collector)
	mirrorHazards := e.collector.Hazards()
	mirrorResult := e.classify(e.mirrorShapeBuf)
	e.lastHazards = append(e.lastHazards, mirrorHazards...)

	switch {
	case mirrorResult.IsInvalid():
		return Invalid()
	case mirrorResult.IsClear():
		if primary.IsClear() {
			return Clear()
		}
		return Collision(l1)
	default: // mirrorResult is Collision
		return Collision(l1 + mirrorResult.Loss)
	}
}
