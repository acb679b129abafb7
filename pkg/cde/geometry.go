package cde

import (
	"sort"

	"github.com/dshills/gonest/pkg/geom"
)

// overlapProxy returns a deterministic, non-negative, monotone-in-overlap
// quantity for how much a (shape) and b (a placed item's transformed
// shape) overlap. The exact numeric form is opaque to the evaluator by
// design (§4.2's Open Question); this implementation approximates it as
// the area of the intersection of the two shapes' convex hulls, which is
// exact for convex items and a conservative over-estimate for concave
// ones. It never allocates beyond the temporary hull/clip buffers.
func overlapProxy(a, b geom.Polygon) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	boundA, boundB := geom.BoundOf(a), geom.BoundOf(b)
	if !boundA.Intersects(boundB) {
		return 0
	}

	hullA := convexHull(a[0])
	hullB := convexHull(b[0])
	if len(hullA) < 3 || len(hullB) < 3 {
		return 0
	}

	clipped := clipConvex(hullA, hullB)
	return shoelaceArea(clipped)
}

// overlapProxyOutsideBin returns the area of shape lying outside
// [0, stripWidth] x [0, +inf), used as the bin-edge hazard's overlap
// proxy. It clips shape's hull against the strip's interior and returns
// the residual (shape's hull area minus the clipped-to-strip area).
func overlapProxyOutsideBin(shape geom.Polygon, stripWidth float64) float64 {
	if len(shape) == 0 {
		return 0
	}
	hull := convexHull(shape[0])
	if len(hull) < 3 {
		return 0
	}
	total := shoelaceArea(hull)
	if total <= 0 {
		return 0
	}

	b := geom.BoundOf(shape)
	// Entirely inside: cheap exit on the common case.
	if b.Min[0] >= 0 && b.Max[0] <= stripWidth && b.Min[1] >= 0 {
		return 0
	}

	yTop := b.Max[1] + 1
	if yTop < 1 {
		yTop = 1
	}
	strip := geom.Ring{
		{0, 0},
		{stripWidth, 0},
		{stripWidth, yTop},
		{0, yTop},
	}
	inside := shoelaceArea(clipConvex(hull, strip))
	residual := total - inside
	if residual < 0 {
		residual = 0
	}
	return residual
}

// convexHull returns the convex hull of ring's points in counter-clockwise
// order, via Andrew's monotone chain. The result shares no backing array
// with ring.
func convexHull(ring geom.Ring) geom.Ring {
	pts := make([]geom.Point, len(ring))
	copy(pts, ring)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})
	pts = dedup(pts)
	if len(pts) < 3 {
		return pts
	}

	cross := func(o, a, b geom.Point) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	lower := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]geom.Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

func dedup(pts []geom.Point) []geom.Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// clipConvex clips subject (any simple polygon) against clip (a
// counter-clockwise convex polygon) using Sutherland-Hodgman, returning
// the clipped polygon's vertices in order.
func clipConvex(subject, clip geom.Ring) geom.Ring {
	output := subject
	for i := range clip {
		if len(output) == 0 {
			return output
		}
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		input := output
		output = output[:0:0]

		for j := range input {
			cur := input[j]
			prev := input[(j-1+len(input))%len(input)]

			curInside := isLeft(a, b, cur) >= 0
			prevInside := isLeft(a, b, prev) >= 0

			if curInside {
				if !prevInside {
					output = append(output, segmentIntersect(prev, cur, a, b))
				}
				output = append(output, cur)
			} else if prevInside {
				output = append(output, segmentIntersect(prev, cur, a, b))
			}
		}
	}
	return output
}

func isLeft(a, b, p geom.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func segmentIntersect(p1, p2, a, b geom.Point) geom.Point {
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := a[0], a[1]
	x4, y4 := b[0], b[1]

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return p2
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return geom.Point{x1 + t*(x2-x1), y1 + t*(y2-y1)}
}

// shoelaceArea returns the unsigned area of a simple polygon ring.
func shoelaceArea(ring geom.Ring) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
