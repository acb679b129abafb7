package spp

import "fmt"

// HazardKind distinguishes the two kinds of collision hazard a candidate
// placement can raise.
type HazardKind uint8

const (
	// HazardBinEdge marks a collision with the strip boundary.
	HazardBinEdge HazardKind = iota
	// HazardItem marks a collision with an already-placed item.
	HazardItem
)

// Hazard identifies something a candidate placement may collide with:
// the strip boundary, or a placed item keyed by its PlacementKey.
type Hazard struct {
	Kind HazardKind
	PK   PlacementKey // meaningful only when Kind == HazardItem
}

// BinEdgeHazard is the single well-known hazard value for the strip boundary.
var BinEdgeHazard = Hazard{Kind: HazardBinEdge}

// ItemHazard builds a hazard referring to the placed item pk.
func ItemHazard(pk PlacementKey) Hazard {
	return Hazard{Kind: HazardItem, PK: pk}
}

// String renders the hazard for logging and test failure messages.
func (h Hazard) String() string {
	if h.Kind == HazardBinEdge {
		return "BIN_EDGE"
	}
	return fmt.Sprintf("ITEM(%d)", h.PK)
}
