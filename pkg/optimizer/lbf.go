package optimizer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/gonest/pkg/cde"
	"github.com/dshills/gonest/pkg/eval"
	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/spp"
)

// ErrNoFeasibleInitialSolution is returned by LBFBuilder.Build when an
// item copy cannot be placed anywhere within the builder's search bound.
var ErrNoFeasibleInitialSolution = errors.New("optimizer: no feasible initial solution")

// LBFBuilder constructs a legal starting layout via left-bottom-fill:
// items are sorted by decreasing bounding-box area, and each copy is
// placed at the lowest feasible y, then lowest feasible x, by scanning a
// grid and probing the sample evaluator for Clear. Named identically to
// the original reference implementation's LBFBuilder.
type LBFBuilder struct {
	// Step is the grid resolution scanned for candidate positions.
	Step float64
	// MaxRows bounds how many Step-sized rows are scanned upward before
	// giving up on a copy, guarding against runaway search on a
	// pathological instance.
	MaxRows int
}

// NewLBFBuilder creates a builder with the given scan resolution.
func NewLBFBuilder(step float64) *LBFBuilder {
	return &LBFBuilder{Step: step, MaxRows: 100000}
}

type lbfCopy struct {
	item      *spp.Item
	bboxArea  float64
	bboxH     float64
}

// Build produces a fully placed Layout for inst, along with a fresh
// CollisionTracker at base weights (LBF never bumps, since it always
// accepts the first Clear candidate it finds).
func (b *LBFBuilder) Build(inst *spp.Instance) (*spp.Layout, *cde.CollisionTracker, error) {
	layout := spp.NewLayout(cde.NewIndex(inst.StripWidth))
	ct := cde.NewCollisionTracker(1.0, 2.0)

	copies := b.sortedCopies(inst)
	for _, c := range copies {
		t, ok := b.place(layout, ct, c.item, inst.StripWidth)
		if !ok {
			return nil, nil, fmt.Errorf("%w: item %q has no clear position within %d scanned rows",
				ErrNoFeasibleInitialSolution, c.item.ID, b.MaxRows)
		}
		pk := layout.Place(c.item, t)
		ct.Init(pk)
	}

	return layout, ct, nil
}

// sortedCopies expands inst's items into individual copies sorted by
// decreasing bounding-box area (ties broken by item ID, for determinism).
func (b *LBFBuilder) sortedCopies(inst *spp.Instance) []lbfCopy {
	var copies []lbfCopy
	for _, it := range inst.Items {
		bound := geom.BoundOf(it.ShapeCD)
		area := (bound.Max[0] - bound.Min[0]) * (bound.Max[1] - bound.Min[1])
		height := bound.Max[1] - bound.Min[1]
		for i := 0; i < it.Demand; i++ {
			copies = append(copies, lbfCopy{item: it, bboxArea: area, bboxH: height})
		}
	}

	sort.SliceStable(copies, func(i, j int) bool {
		if copies[i].bboxArea != copies[j].bboxArea {
			return copies[i].bboxArea > copies[j].bboxArea
		}
		return copies[i].item.ID < copies[j].item.ID
	})
	return copies
}

// place scans rows bottom-up and columns left-to-right for the first
// Clear transform, trying every allowed rotation at each grid point.
func (b *LBFBuilder) place(layout *spp.Layout, ct *cde.CollisionTracker, item *spp.Item, stripWidth float64) (geom.Transform, bool) {
	ev := eval.New(layout, item, 0, false, ct)

	cols := int(stripWidth/b.Step) + 1
	for row := 0; row < b.MaxRows; row++ {
		y := float64(row) * b.Step
		for col := 0; col <= cols; col++ {
			x := float64(col) * b.Step
			if x > stripWidth {
				continue
			}
			for _, r := range item.Rotations {
				t := geom.NewTransform(x, y, r)
				if ev.Evaluate(t, nil).IsClear() {
					return t, true
				}
			}
		}
	}
	return geom.Transform{}, false
}
