package optimizer

import (
	"github.com/dshills/gonest/pkg/cde"
	"github.com/dshills/gonest/pkg/config"
	"github.com/dshills/gonest/pkg/listener"
	"github.com/dshills/gonest/pkg/rng"
	"github.com/dshills/gonest/pkg/separator"
	"github.com/dshills/gonest/pkg/spp"
	"github.com/dshills/gonest/pkg/terminator"
)

// phaseExploration and phaseCompression name the two phases a
// SolutionListener is told about.
const (
	phaseExploration = "exploration"
	phaseCompression = "compression"
)

// Driver runs the full two-phase optimisation state machine: it seeds (or
// restores) a starting layout, runs an exploration Separator to place
// every demanded copy, then a compression Separator to shrink the used
// height, reporting progress to a listener.SolutionListener throughout.
type Driver struct {
	cfg      *config.Config
	listener listener.SolutionListener
	lbf      *LBFBuilder
}

// New builds a Driver over cfg, reporting to l. l may be nil, in which
// case reports are silently dropped.
func New(cfg *config.Config, l listener.SolutionListener) *Driver {
	if l == nil {
		l = listener.Multi(nil)
	}
	return &Driver{cfg: cfg, listener: l, lbf: NewLBFBuilder(0.25)}
}

// Run executes the full pipeline against inst, optionally warm-started
// from warmStart (pass nil for a cold LBF start). term lets the caller
// interrupt either phase cooperatively (e.g. on SIGINT); pass a fresh
// terminator.New() if the caller has no external cancellation source.
func (d *Driver) Run(inst *spp.Instance, warmStart *spp.Solution, term *terminator.Terminator) (*spp.Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if term == nil {
		term = terminator.New()
	}

	configHash := d.cfg.Hash()

	var axisX *float64
	if d.cfg.Symmetric {
		x := inst.StripWidth / 2
		axisX = &x
	}

	layout, ct, err := d.initialLayout(inst, warmStart)
	if err != nil {
		return nil, err
	}

	explRNG := rng.NewRNG(d.cfg.Seed, rng.PhaseExploration, configHash)
	sep := separator.New(layout, ct, explRNG, d.cfg.Exploration.Separator, axisX, inst.Items)

	term.NewTimeout(d.cfg.Exploration.TimeLimit)
	copyIndexExpl := sep.CopyIndex
	sep.PlaceAll(term, func() {
		d.report(listener.ReportImproving, phaseExploration, layout, inst, copyIndexExpl)
	})
	d.report(listener.ReportFinal, phaseExploration, layout, inst, copyIndexExpl)

	compRNG := rng.NewRNG(d.cfg.Seed, rng.PhaseCompression, configHash)
	ct.Reset()
	sep2 := separator.New(layout, ct, compRNG, d.cfg.Compression.Separator, axisX, inst.Items)

	term.NewTimeout(d.cfg.Compression.TimeLimit)
	copyIndexComp := sep2.CopyIndex
	sep2.Compress(term, d.cfg.Compression.ShrinkStep, func() {
		d.report(listener.ReportImproving, phaseCompression, layout, inst, copyIndexComp)
	})

	term.Stop()

	final := spp.NewSolutionFromLayout(layout, func(pk spp.PlacementKey, _ *spp.Item) int {
		return copyIndexComp(pk)
	})
	d.report(listener.ReportFinal, phaseCompression, layout, inst, copyIndexComp)
	return final, nil
}

// initialLayout builds the starting Layout either by replaying warmStart
// (RESTORE) or by left-bottom-fill construction (INIT).
func (d *Driver) initialLayout(inst *spp.Instance, warmStart *spp.Solution) (*spp.Layout, *cde.CollisionTracker, error) {
	if warmStart != nil {
		return Restore(inst, warmStart)
	}
	return d.lbf.Build(inst)
}

func (d *Driver) report(kind listener.ReportKind, phase string, layout *spp.Layout, inst *spp.Instance, copyIndex func(spp.PlacementKey) int) {
	sol := spp.NewSolutionFromLayout(layout, func(pk spp.PlacementKey, _ *spp.Item) int {
		return copyIndex(pk)
	})
	d.listener.Report(kind, phase, sol, inst)
}
