package mirror

import (
	"math"
	"testing"

	"github.com/dshills/gonest/pkg/geom"
	"pgregory.net/rapid"
)

// S1 (mirror math): T = ((1, 2), r=0), axis_x = 5 => mirror = ((9, 2), r=pi).
func TestTransform_S1(t *testing.T) {
	got := Transform(geom.NewTransform(1, 2, 0), 5)

	if math.Abs(got.X-9) > 1e-9 || math.Abs(got.Y-2) > 1e-9 || math.Abs(got.R-math.Pi) > 1e-9 {
		t.Fatalf("mirror = %+v, want {9 2 %v}", got, math.Pi)
	}
}

// Property 1: mirror involutivity, modulo r -> pi - (pi - r) canonicalisation.
func TestTransform_Involutive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1e6, 1e6).Draw(rt, "x")
		y := rapid.Float64Range(-1e6, 1e6).Draw(rt, "y")
		r := rapid.Float64Range(0, 2*math.Pi).Draw(rt, "r")
		axis := rapid.Float64Range(-1e6, 1e6).Draw(rt, "axis")

		original := geom.NewTransform(x, y, r)
		twice := Transform(Transform(original, axis), axis)

		if math.Abs(twice.X-original.X) > 1e-6 {
			rt.Fatalf("x not involutive: %v != %v", twice.X, original.X)
		}
		if math.Abs(twice.Y-original.Y) > 1e-6 {
			rt.Fatalf("y not involutive: %v != %v", twice.Y, original.Y)
		}
		if math.Abs(twice.R-original.R) > 1e-6 {
			rt.Fatalf("r not involutive: %v != %v", twice.R, original.R)
		}
	})
}

// Property 2: mirror axis relations.
func TestTransform_AxisProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1e6, 1e6).Draw(rt, "x")
		y := rapid.Float64Range(-1e6, 1e6).Draw(rt, "y")
		r := rapid.Float64Range(0, 2*math.Pi).Draw(rt, "r")
		axis := rapid.Float64Range(-1e6, 1e6).Draw(rt, "axis")

		original := geom.NewTransform(x, y, r)
		mirrored := Transform(original, axis)

		if math.Abs((mirrored.X+original.X)-2*axis) > 1e-6 {
			rt.Fatalf("mirror.x + t.x != 2*axis: %v", mirrored.X+original.X)
		}
		if mirrored.Y != original.Y {
			rt.Fatalf("mirror.y changed: %v != %v", mirrored.Y, original.Y)
		}
	})
}

func TestIsInValidRegion(t *testing.T) {
	if !IsInValidRegion(geom.NewTransform(3, 0, 0), 5) {
		t.Fatal("x=3 should be valid for axis=5")
	}
	if IsInValidRegion(geom.NewTransform(7, 0, 0), 5) {
		t.Fatal("x=7 should not be valid for axis=5")
	}
}

func TestSampleBBox(t *testing.T) {
	container := geom.Bound{Min: geom.Point{0, 0}, Max: geom.Point{10, 20}}

	clipped, ok := SampleBBox(container, 4)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if clipped.Max[0] != 4 {
		t.Fatalf("clipped max x = %v, want 4", clipped.Max[0])
	}

	if _, ok := SampleBBox(container, 0); ok {
		t.Fatal("axis at container min should be degenerate")
	}
}
