package geom

import "github.com/paulmach/orb"

// Polygon is the collision-detection shape type: an outer ring plus
// optional holes, same representation as orb.Polygon so gonest can use
// orb's bound computations.
type Polygon = orb.Polygon

// Ring is a single closed loop of points.
type Ring = orb.Ring

// Point is a 2D coordinate.
type Point = orb.Point

// Bound is an axis-aligned bounding box.
type Bound = orb.Bound

// BoundOf returns the tight axis-aligned bounding box of p.
func BoundOf(p Polygon) Bound {
	return p.Bound()
}
