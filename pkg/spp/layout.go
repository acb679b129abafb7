package spp

import "github.com/dshills/gonest/pkg/geom"

// HazardSink receives hazards discovered by a CDEIndex query and decides
// when to abort early. pkg/cde's HazardCollector implements this.
// overlapProxy is a non-negative, monotone-in-overlap quantity the CDE
// computes for this hazard against the query shape; the sink is
// responsible for applying any per-hazard weight before accumulating it
// into a loss.
type HazardSink interface {
	AcceptHazard(h Hazard, overlapProxy float64)
	EarlyTerminate(shape geom.Polygon) bool
}

// CDEIndex is the collision-detection engine's consumed interface: given
// a candidate transform and a scratch shape buffer, populate sink with
// every hazard the transformed shape collides with, writing the
// transformed shape into shapeBuf rather than a fresh polygon.
// pkg/cde.Index implements this.
type CDEIndex interface {
	Insert(pk PlacementKey, item *Item, t geom.Transform)
	Remove(pk PlacementKey)
	CollectHazards(t geom.Transform, item *Item, shapeBuf geom.Polygon, sink HazardSink)
	StripWidth() float64
	BinBound() geom.Bound
}

// Layout is the current placement state of one phase: a stable mapping
// from PlacementKey to (Item, Transform), plus the CDE index over the
// currently-placed items. The driver creates one Layout (by LBF
// construction or warm-start restore) and hands it to both phases'
// Separators in turn; it is mutated only between evaluator calls.
type Layout struct {
	CDE        CDEIndex
	placements map[PlacementKey]*Placement
	nextKey    PlacementKey
}

// NewLayout creates an empty layout backed by the given CDE index.
func NewLayout(cde CDEIndex) *Layout {
	return &Layout{
		CDE:        cde,
		placements: make(map[PlacementKey]*Placement),
	}
}

// Place commits item at transform t, mints a fresh PlacementKey, and
// inserts the placement into the CDE index. The caller is responsible
// for having verified t is Clear before calling Place.
func (l *Layout) Place(item *Item, t geom.Transform) PlacementKey {
	pk := l.nextKey
	l.nextKey++
	l.placements[pk] = &Placement{Item: item, T: t}
	l.CDE.Insert(pk, item, t)
	return pk
}

// Remove vacates the placement at pk, removing it from both the layout
// map and the CDE index.
func (l *Layout) Remove(pk PlacementKey) {
	delete(l.placements, pk)
	l.CDE.Remove(pk)
}

// Relocate moves the placement at pk to a new transform, preserving its
// PlacementKey (and therefore its CollisionTracker weight and any caller
// bookkeeping keyed on pk). pk must already be placed.
func (l *Layout) Relocate(pk PlacementKey, t geom.Transform) {
	p, ok := l.placements[pk]
	if !ok {
		return
	}
	p.T = t
	l.CDE.Remove(pk)
	l.CDE.Insert(pk, p.Item, t)
}

// Get returns the placement at pk, or nil if pk is not currently placed.
func (l *Layout) Get(pk PlacementKey) *Placement {
	return l.placements[pk]
}

// Placements returns the full placement map. Callers must not mutate it.
func (l *Layout) Placements() map[PlacementKey]*Placement {
	return l.placements
}

// Height returns the current used height of the layout: the maximum y
// extent reached by any placed item's transformed bounding box.
func (l *Layout) Height() float64 {
	height := 0.0
	buf := geom.Polygon(nil)
	for _, p := range l.placements {
		if buf == nil || len(buf[0]) != len(p.Item.ShapeCD[0]) {
			buf = geom.ClonePolygon(p.Item.ShapeCD)
		}
		geom.ApplyTransform(p.T, p.Item.ShapeCD, buf)
		b := geom.BoundOf(buf)
		if b.Max[1] > height {
			height = b.Max[1]
		}
	}
	return height
}
