package cde

import (
	"math"

	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/spp"
)

// entry is one placed item's cached transformed shape, kept around so
// CollectHazards doesn't re-transform every placed item's polygon on
// every query.
type entry struct {
	item  *spp.Item
	t     geom.Transform
	shape geom.Polygon
}

// Index is the reference collision-detection engine: broad-phase bound
// pruning followed by a convex-hull-clip overlap proxy (see geometry.go).
// Its spatial index is a linear scan over placements rather than a tree,
// since tuning the index is explicitly out of scope for this engine;
// what matters is the contract it exposes to the evaluator.
type Index struct {
	stripWidth float64
	placements map[spp.PlacementKey]*entry
}

// NewIndex creates an empty CDE index for a strip of the given width.
func NewIndex(stripWidth float64) *Index {
	return &Index{
		stripWidth: stripWidth,
		placements: make(map[spp.PlacementKey]*entry),
	}
}

// StripWidth returns the strip's fixed width.
func (ix *Index) StripWidth() float64 {
	return ix.stripWidth
}

// BinBound returns the strip's bounding region. Height is unbounded, so
// Max.Y is reported as +Inf.
func (ix *Index) BinBound() geom.Bound {
	return geom.Bound{
		Min: geom.Point{0, 0},
		Max: geom.Point{ix.stripWidth, math.Inf(1)},
	}
}

// Insert records item as placed at transform t under key pk, caching its
// transformed shape for future queries.
func (ix *Index) Insert(pk spp.PlacementKey, item *spp.Item, t geom.Transform) {
	shape := geom.ApplyTransform(t, item.ShapeCD, geom.ClonePolygon(item.ShapeCD))
	ix.placements[pk] = &entry{item: item, t: t, shape: shape}
}

// Remove forgets the placement at pk.
func (ix *Index) Remove(pk spp.PlacementKey) {
	delete(ix.placements, pk)
}

// CollectHazards applies t to item's collision polygon via shapeBuf, then
// reports every hazard (bin edge, placed items) the transformed shape
// overlaps to sink, honoring sink.EarlyTerminate for abort. Self-exclusion
// of the candidate's own placement key is the sink's responsibility, not
// this index's: CollectHazards reports every colliding placement blindly,
// including one that happens to be the candidate's own prior slot.
func (ix *Index) CollectHazards(t geom.Transform, item *spp.Item, shapeBuf geom.Polygon, sink spp.HazardSink) {
	geom.ApplyTransform(t, item.ShapeCD, shapeBuf)

	if proxy := overlapProxyOutsideBin(shapeBuf, ix.stripWidth); proxy > 0 {
		sink.AcceptHazard(spp.BinEdgeHazard, proxy)
		if sink.EarlyTerminate(shapeBuf) {
			return
		}
	}

	shapeBound := geom.BoundOf(shapeBuf)
	for pk, e := range ix.placements {
		if !shapeBound.Intersects(geom.BoundOf(e.shape)) {
			continue
		}
		proxy := overlapProxy(shapeBuf, e.shape)
		if proxy <= 0 {
			continue
		}
		sink.AcceptHazard(spp.ItemHazard(pk), proxy)
		if sink.EarlyTerminate(shapeBuf) {
			return
		}
	}
}
