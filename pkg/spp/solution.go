package spp

import (
	"fmt"
	"sort"

	"github.com/dshills/gonest/pkg/geom"
)

// PlacedItem is one entry of a solved solution: which item type, at what
// transform, and the stable copy index (0-based, among the item's
// Demand) the placement corresponds to.
type PlacedItem struct {
	ItemID    string  `json:"itemId"`
	CopyIndex int     `json:"copyIndex"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rotation  float64 `json:"rotation"`
}

// Solution is a placement of the items an Instance demands; it may be
// partial when a phase stops before every copy is placed (see
// report.Complete). Height is the achieved strip usage; it is redundant with Placements but
// kept explicit so listeners and warm starts don't need to recompute it.
type Solution struct {
	Height     float64      `json:"height"`
	Placements []PlacedItem `json:"placements"`
}

// NewSolutionFromLayout snapshots a Layout into a Solution, resolving each
// PlacementKey back to its item ID. copyIndex must return a stable copy
// index, unique among placements of the same item; callers typically
// derive it from placement order.
func NewSolutionFromLayout(l *Layout, copyIndex func(PlacementKey, *Item) int) *Solution {
	keys := make([]PlacementKey, 0, len(l.placements))
	for pk := range l.placements {
		keys = append(keys, pk)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	sol := &Solution{Height: l.Height()}
	for _, pk := range keys {
		p := l.placements[pk]
		sol.Placements = append(sol.Placements, PlacedItem{
			ItemID:    p.Item.ID,
			CopyIndex: copyIndex(pk, p.Item),
			X:         p.T.X,
			Y:         p.T.Y,
			Rotation:  p.T.R,
		})
	}
	return sol
}

// Transforms returns the (item, transform) pairs the solution describes,
// resolved against the items known to inst. Used by RESTORE to replay a
// warm-start solution back into a fresh Layout.
func (s *Solution) Transforms(inst *Instance) ([]*Item, []geom.Transform, error) {
	byID := make(map[string]*Item, len(inst.Items))
	for _, it := range inst.Items {
		byID[it.ID] = it
	}

	items := make([]*Item, 0, len(s.Placements))
	transforms := make([]geom.Transform, 0, len(s.Placements))
	for _, p := range s.Placements {
		it, ok := byID[p.ItemID]
		if !ok {
			return nil, nil, fmt.Errorf("solution: unknown item id %q", p.ItemID)
		}
		items = append(items, it)
		transforms = append(transforms, geom.NewTransform(p.X, p.Y, p.Rotation))
	}
	return items, transforms, nil
}
