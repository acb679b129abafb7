package cde

import (
	"math"
	"testing"

	"github.com/dshills/gonest/pkg/geom"
)

func unitSquare(x, y float64) geom.Polygon {
	return geom.Polygon{geom.Ring{
		{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y},
	}}
}

func TestShoelaceArea_UnitSquare(t *testing.T) {
	area := shoelaceArea(unitSquare(0, 0)[0])
	if math.Abs(area-1) > 1e-9 {
		t.Fatalf("area = %v, want 1", area)
	}
}

func TestConvexHull_Square(t *testing.T) {
	hull := convexHull(unitSquare(0, 0)[0])
	if len(hull) != 4 {
		t.Fatalf("hull has %d points, want 4", len(hull))
	}
}

func TestOverlapProxy_Disjoint(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(5, 5)
	if p := overlapProxy(a, b); p != 0 {
		t.Fatalf("disjoint overlap = %v, want 0", p)
	}
}

func TestOverlapProxy_FullOverlap(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(0, 0)
	p := overlapProxy(a, b)
	if math.Abs(p-1) > 1e-9 {
		t.Fatalf("identical-square overlap = %v, want 1", p)
	}
}

func TestOverlapProxy_HalfOverlap(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(0.5, 0)
	p := overlapProxy(a, b)
	if math.Abs(p-0.5) > 1e-9 {
		t.Fatalf("half-overlap = %v, want 0.5", p)
	}
}

func TestOverlapProxyOutsideBin_Inside(t *testing.T) {
	shape := unitSquare(2, 2)
	if p := overlapProxyOutsideBin(shape, 10); p != 0 {
		t.Fatalf("fully-inside residual = %v, want 0", p)
	}
}

func TestOverlapProxyOutsideBin_Straddling(t *testing.T) {
	shape := unitSquare(9.5, 2) // strip width 10: half the square is outside
	p := overlapProxyOutsideBin(shape, 10)
	if math.Abs(p-0.5) > 1e-6 {
		t.Fatalf("straddling residual = %v, want 0.5", p)
	}
}

func TestOverlapProxyOutsideBin_BelowZero(t *testing.T) {
	shape := unitSquare(2, -0.5) // half below y=0
	p := overlapProxyOutsideBin(shape, 10)
	if math.Abs(p-0.5) > 1e-6 {
		t.Fatalf("below-zero residual = %v, want 0.5", p)
	}
}
