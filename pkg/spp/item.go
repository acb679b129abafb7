package spp

import (
	"fmt"

	"github.com/dshills/gonest/pkg/geom"
)

// Item is an immutable descriptor of one piece to nest: its
// collision-detection polygon and the discrete set of rotations the
// optimiser is allowed to place it at. Two placements of the same item
// type carry separate PlacementKeys; Item itself has no notion of how
// many times it has been placed.
type Item struct {
	ID        string       `json:"id"`
	ShapeCD   geom.Polygon `json:"shape"`
	Rotations []float64    `json:"rotations"` // radians; must contain at least one value
	Demand    int          `json:"demand"`    // how many copies of this item the instance requires
}

// Validate checks the structural invariants a well-formed item must hold.
func (it *Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item: ID must not be empty")
	}
	if len(it.ShapeCD) == 0 || len(it.ShapeCD[0]) < 3 {
		return fmt.Errorf("item %s: ShapeCD must have an outer ring with >= 3 vertices", it.ID)
	}
	if len(it.Rotations) == 0 {
		return fmt.Errorf("item %s: Rotations must not be empty", it.ID)
	}
	if it.Demand <= 0 {
		return fmt.Errorf("item %s: Demand must be > 0", it.ID)
	}
	return nil
}

// PlacementKey uniquely and stably identifies one placed item within the
// lifetime of a single Layout. Keys are minted monotonically and never
// reused, even after the placement they named is removed.
type PlacementKey uint64

// Placement pairs an item with the transform it is currently placed at.
type Placement struct {
	Item *Item
	T    geom.Transform
}
