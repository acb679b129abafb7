package geom

import "math"

// Transform is a rigid planar transform: a rotation about the origin of
// the shape's local frame followed by a translation. It is an
// immutable value type; callers construct a new Transform rather than
// mutating one in place.
type Transform struct {
	X float64
	Y float64
	R float64 // radians, [0, 2*pi)
}

// NewTransform builds a Transform from a translation and rotation.
func NewTransform(x, y, r float64) Transform {
	return Transform{X: x, Y: y, R: r}
}

// Translation returns the (x, y) component of the transform.
func (t Transform) Translation() (float64, float64) {
	return t.X, t.Y
}

// ApplyTransform rotates src about the local origin by t.R and translates
// by (t.X, t.Y), writing the result into dst. dst must have the same
// length as src; it is overwritten in place and returned, so callers can
// reuse a scratch buffer across millions of calls without allocating.
func ApplyTransform(t Transform, src Polygon, dst Polygon) Polygon {
	cos, sin := math.Cos(t.R), math.Sin(t.R)
	for i, ring := range src {
		dstRing := dst[i]
		for j, p := range ring {
			x := p[0]*cos - p[1]*sin + t.X
			y := p[0]*sin + p[1]*cos + t.Y
			dstRing[j][0] = x
			dstRing[j][1] = y
		}
	}
	return dst
}

// ClonePolygon returns a deep copy of p, suitable as an initial scratch
// buffer for ApplyTransform.
func ClonePolygon(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, ring := range p {
		r := make(Ring, len(ring))
		copy(r, ring)
		out[i] = r
	}
	return out
}
