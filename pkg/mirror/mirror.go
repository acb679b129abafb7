package mirror

import (
	"math"

	"github.com/dshills/gonest/pkg/geom"
)

// Transform reflects t across the vertical line x = axisX.
//
// Reflecting a direction across a vertical axis negates its horizontal
// component; conjugating the rotation by that reflection gives r -> pi - r.
// The function assumes rotations are measured counter-clockwise from the
// +x axis. It is pure, total, O(1), and involutive: Transform(Transform(t,
// axisX), axisX) == t.
func Transform(t geom.Transform, axisX float64) geom.Transform {
	return geom.NewTransform(2*axisX-t.X, t.Y, math.Pi-t.R)
}

// IsInValidRegion reports whether t's translation lies in the left half
// of the strip (x <= axisX), the only region symmetric mode samples from.
func IsInValidRegion(t geom.Transform, axisX float64) bool {
	return t.X <= axisX
}

// SampleBBox clips containerBBox to the left-half sampling region
// [x_min, axisX] x [y_min, y_max]. It reports ok=false if the clip would
// produce a degenerate (non-positive width) box.
func SampleBBox(containerBBox geom.Bound, axisX float64) (clipped geom.Bound, ok bool) {
	if axisX <= containerBBox.Min[0] {
		return geom.Bound{}, false
	}
	clipped = geom.Bound{
		Min: geom.Point{containerBBox.Min[0], containerBBox.Min[1]},
		Max: geom.Point{axisX, containerBBox.Max[1]},
	}
	return clipped, true
}
