package separator

import (
	"math"
	"sort"

	"github.com/dshills/gonest/pkg/cde"
	"github.com/dshills/gonest/pkg/config"
	"github.com/dshills/gonest/pkg/eval"
	"github.com/dshills/gonest/pkg/geom"
	"github.com/dshills/gonest/pkg/rng"
	"github.com/dshills/gonest/pkg/spp"
	"github.com/dshills/gonest/pkg/terminator"
)

// pendingCopy is one not-yet-placed instance of an item type.
type pendingCopy struct {
	item      *spp.Item
	copyIndex int
}

// Separator drives one phase's search over a Layout: it owns the
// layout's CDE and CollisionTracker exclusively for the phase, generates
// candidate transforms, and judges every one of them through a sample
// evaluator, per §4.4's contract.
type Separator struct {
	layout *spp.Layout
	ct     *cde.CollisionTracker
	rng    *rng.RNG
	cfg    config.SeparatorConfig
	axisX  *float64

	pending   []pendingCopy
	copyIndex map[spp.PlacementKey]int
}

// New builds a Separator over layout, ready to place every item copy
// items describes that is not already present in layout (so RESTORE can
// hand it a partially or fully populated layout). r is this phase's
// derived RNG; cfg tunes candidate generation and CT weight growth.
func New(layout *spp.Layout, ct *cde.CollisionTracker, r *rng.RNG, cfg config.SeparatorConfig, axisX *float64, items []*spp.Item) *Separator {
	s := &Separator{
		layout:    layout,
		ct:        ct,
		rng:       r,
		cfg:       cfg,
		axisX:     axisX,
		copyIndex: make(map[spp.PlacementKey]int),
	}

	placedCount := make(map[string]int, len(items))
	placements := layout.Placements()
	existingKeys := make([]spp.PlacementKey, 0, len(placements))
	for pk := range placements {
		existingKeys = append(existingKeys, pk)
	}
	sort.Slice(existingKeys, func(i, j int) bool { return existingKeys[i] < existingKeys[j] })
	for _, pk := range existingKeys {
		p := placements[pk]
		placedCount[p.Item.ID]++
		s.copyIndex[pk] = placedCount[p.Item.ID] - 1
	}

	sortedItems := append([]*spp.Item(nil), items...)
	sort.Slice(sortedItems, func(i, j int) bool { return sortedItems[i].ID < sortedItems[j].ID })

	for _, it := range sortedItems {
		for i := placedCount[it.ID]; i < it.Demand; i++ {
			s.pending = append(s.pending, pendingCopy{item: it, copyIndex: i})
		}
	}

	return s
}

// CopyIndex returns the stable copy index assigned to pk, for Solution
// snapshotting.
func (s *Separator) CopyIndex(pk spp.PlacementKey) int {
	return s.copyIndex[pk]
}

// Pending reports how many item copies remain unplaced.
func (s *Separator) Pending() int {
	return len(s.pending)
}

// PlaceAll runs the placement loop until every pending copy is placed,
// term signals the phase should stop, or more than one full round of the
// worklist passes without placing a copy. onImprove, if non-nil, is called
// every time a copy is successfully placed. It returns the number of
// copies placed this call.
func (s *Separator) PlaceAll(term *terminator.Terminator, onImprove func()) int {
	placed := 0
	stuckPasses := 0
	maxStuckPasses := len(s.pending) + 1

	for len(s.pending) > 0 {
		if term != nil && term.ShouldStop() {
			break
		}
		if stuckPasses > maxStuckPasses {
			break
		}

		next := s.pending[0]
		s.pending = s.pending[1:]

		t, ok := s.tryPlace(term, next.item)
		if !ok {
			s.pending = append(s.pending, next)
			stuckPasses++
			continue
		}

		pk := s.layout.Place(next.item, t)
		s.ct.Init(pk)
		s.copyIndex[pk] = next.copyIndex
		placed++
		stuckPasses = 0
		if onImprove != nil {
			onImprove()
		}
	}

	return placed
}

// tryPlace searches up to cfg.MaxCandidates transforms for item, returning
// the first Clear one found. If none is Clear, it bumps the CollisionTracker
// weight of every hazard blocking the least-bad candidate and reports failure.
func (s *Separator) tryPlace(term *terminator.Terminator, item *spp.Item) (geom.Transform, bool) {
	ev := eval.NewSymmetric(s.layout, item, 0, false, s.ct, s.axisX)

	var (
		bestT     geom.Transform
		bestEval  eval.SampleEval
		haveBest  bool
	)

	for attempt := 0; attempt < s.cfg.MaxCandidates; attempt++ {
		if term != nil && attempt%32 == 0 && term.ShouldStop() {
			break
		}

		t := s.nextCandidate(item, attempt)

		var bound *eval.SampleEval
		if haveBest {
			b := bestEval
			bound = &b
		}

		result := ev.Evaluate(t, bound)
		switch {
		case result.IsClear():
			return t, true
		case result.IsCollision():
			if !haveBest || result.Loss < bestEval.Loss {
				bestEval, bestT, haveBest = result, t, true
			}
		}
	}

	if haveBest {
		// One unbounded diagnostic query at the best candidate found, to
		// learn exactly which hazards blocked it.
		ev.Evaluate(bestT, nil)
		for _, h := range ev.LastHazards() {
			s.ct.Bump(h)
		}
	}

	return geom.Transform{}, false
}

// nextCandidate generates the attempt'th candidate transform for item: a
// grid-jittered position around the layout's current frontier height,
// with an occasional full-strip restart. This is a minimal, documented
// stand-in for candidate-sampling tuning, which is explicitly out of
// scope.
func (s *Separator) nextCandidate(item *spp.Item, attempt int) geom.Transform {
	stripWidth := s.layout.CDE.StripWidth()
	rotation := item.Rotations[attempt%len(item.Rotations)]

	if s.rng.Float64() < s.cfg.RestartProbability {
		x := s.rng.Float64Range(0, stripWidth)
		y := s.rng.Float64Range(0, s.layout.Height()+10*s.cfg.JitterRadius+1)
		return geom.NewTransform(x, y, rotation)
	}

	step := s.cfg.JitterRadius
	cols := int(stripWidth/step) + 1
	col := attempt % cols
	x := float64(col)*step + s.rng.Float64Range(-step/4, step/4)
	x = clamp(x, 0, stripWidth)

	baseY := s.layout.Height()
	y := baseY + s.rng.Float64Range(0, step)

	return geom.NewTransform(x, math.Max(y, 0), rotation)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Compress runs compaction rounds over every already-placed item,
// attempting to relocate each one ShrinkStep lower while remaining Clear
// (self-excluded via its own PlacementKey). It stops after a pass makes
// no improvement, or term signals the phase should stop. onImprove, if
// non-nil, is called after every successful relocation. It returns the
// number of successful relocations.
func (s *Separator) Compress(term *terminator.Terminator, shrinkStep float64, onImprove func()) int {
	relocations := 0
	for {
		if term != nil && term.ShouldStop() {
			return relocations
		}

		improvedThisPass := false
		for _, pk := range s.sortedPlacementKeys() {
			if term != nil && term.ShouldStop() {
				return relocations
			}
			if s.tryLower(pk, shrinkStep) {
				improvedThisPass = true
				relocations++
				if onImprove != nil {
					onImprove()
				}
			}
		}

		if !improvedThisPass {
			return relocations
		}
	}
}

func (s *Separator) sortedPlacementKeys() []spp.PlacementKey {
	placements := s.layout.Placements()
	keys := make([]spp.PlacementKey, 0, len(placements))
	for pk := range placements {
		keys = append(keys, pk)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// tryLower attempts to relocate pk's placement shrinkStep lower, keeping
// its x and rotation fixed, accepting only a Clear result.
func (s *Separator) tryLower(pk spp.PlacementKey, shrinkStep float64) bool {
	p := s.layout.Get(pk)
	if p == nil {
		return false
	}
	candidate := geom.NewTransform(p.T.X, math.Max(p.T.Y-shrinkStep, 0), p.T.R)
	if candidate.Y == p.T.Y {
		return false
	}

	ev := eval.NewSymmetric(s.layout, p.Item, pk, true, s.ct, s.axisX)
	result := ev.Evaluate(candidate, nil)
	if !result.IsClear() {
		for _, h := range ev.LastHazards() {
			s.ct.Bump(h)
		}
		return false
	}

	s.layout.Relocate(pk, candidate)
	return true
}
