package report

import (
	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/spp"
)

// Metrics summarizes a completed Solution against the Instance it solves.
type Metrics struct {
	StripWidth     float64
	Height         float64
	ItemArea       float64
	Utilization    float64 // ItemArea / (StripWidth * Height)
	PlacedCount    int
	TotalCount     int
	BinEdgeHazards int // placements whose transformed bound pokes outside the strip
}

// Compute derives Metrics from inst and sol as a post-hoc diagnostic,
// independent of the CDE's own overlap proxy: item area is the shoelace
// area of each placed polygon's transformed outer ring, and a bin-edge
// crossing is counted when that polygon's bounding box leaves the strip.
func Compute(inst *spp.Instance, sol *spp.Solution) *Metrics {
	byID := make(map[string]*spp.Item, len(inst.Items))
	for _, it := range inst.Items {
		byID[it.ID] = it
	}

	m := &Metrics{
		StripWidth:  inst.StripWidth,
		Height:      sol.Height,
		PlacedCount: len(sol.Placements),
		TotalCount:  inst.TotalItemCount(),
	}

	for _, p := range sol.Placements {
		item, ok := byID[p.ItemID]
		if !ok {
			continue
		}
		t := geom.NewTransform(p.X, p.Y, p.Rotation)
		shape := geom.ApplyTransform(t, item.ShapeCD, geom.ClonePolygon(item.ShapeCD))
		m.ItemArea += ringArea(shape[0])

		b := geom.BoundOf(shape)
		if b.Min[0] < 0 || b.Max[0] > inst.StripWidth || b.Min[1] < 0 {
			m.BinEdgeHazards++
		}
	}

	if inst.StripWidth > 0 && sol.Height > 0 {
		m.Utilization = m.ItemArea / (inst.StripWidth * sol.Height)
	}

	return m
}

// ringArea computes the unsigned shoelace area of a closed ring.
func ringArea(ring geom.Ring) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
