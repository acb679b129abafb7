package cde

import (
	"testing"

	"github.com/dshills/gonest/pkg/spp"
)

func TestCollisionTracker_DefaultsAndBump(t *testing.T) {
	ct := NewCollisionTracker(2.0, 1.5)

	h := spp.ItemHazard(7)
	if w := ct.Weight(h); w != 2.0 {
		t.Fatalf("unseen item weight = %v, want 2.0", w)
	}

	ct.Bump(h)
	if w := ct.Weight(h); w != 3.0 {
		t.Fatalf("bumped weight = %v, want 3.0", w)
	}

	ct.Bump(spp.BinEdgeHazard)
	if w := ct.Weight(spp.BinEdgeHazard); w != 3.0 {
		t.Fatalf("bin edge weight = %v, want 3.0", w)
	}
}

func TestCollisionTracker_ForgetRemovesWeight(t *testing.T) {
	ct := NewCollisionTracker(1.0, 2.0)
	h := spp.ItemHazard(1)

	ct.Init(h.PK)
	ct.Bump(h)
	if w := ct.Weight(h); w != 2.0 {
		t.Fatalf("weight after bump = %v, want 2.0", w)
	}

	ct.Forget(h.PK)
	if w := ct.Weight(h); w != 1.0 {
		t.Fatalf("weight after forget = %v, want base 1.0", w)
	}
}

func TestCollisionTracker_Reset(t *testing.T) {
	ct := NewCollisionTracker(1.0, 2.0)
	h := spp.ItemHazard(1)
	ct.Init(h.PK)
	ct.Bump(h)
	ct.Bump(spp.BinEdgeHazard)

	ct.Reset()

	if w := ct.Weight(h); w != 1.0 {
		t.Fatalf("weight after reset = %v, want 1.0", w)
	}
	if w := ct.Weight(spp.BinEdgeHazard); w != 1.0 {
		t.Fatalf("bin weight after reset = %v, want 1.0", w)
	}
}

func TestCollisionTracker_WeightsStayPositive(t *testing.T) {
	ct := NewCollisionTracker(0, 0)
	if ct.base <= 0 || ct.growth <= 1 {
		t.Fatal("tracker must reject non-positive base / growth <= 1")
	}
}
