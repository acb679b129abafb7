// Package rng provides phase-scoped deterministic random number
// generation for the optimisation driver (pkg/optimizer) and the
// Separator candidate loop it drives (pkg/separator).
//
// # Overview
//
// The driver's state machine (§4.5) runs a closed set of phases —
// restore/LBF-construct, exploration, compression — strictly in
// sequence. Each phase that samples candidate transforms derives its own
// RNG from the run's master seed, so phases never share a random
// sequence and re-running a phase in isolation (e.g. replaying only
// compression against a saved exploration handoff) reproduces exactly
// the candidates that phase would have seen in the original run.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_phase = H(masterSeed, phase.String(), configHash)
//
// where:
//   - masterSeed: the driver's top-level seed (CLI -s, or clock-derived)
//   - phase: Restore, Exploration, or Compression
//   - configHash: config.Config.Hash(), so tuning changes perturb the
//     candidate sequence instead of silently replaying it
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism,
//     §5, §8 property 7)
//  2. Different phases get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
//	configHash := cfg.Hash()
//	explRNG := rng.NewRNG(cfg.Seed, rng.PhaseExploration, configHash)
//	cmprRNG := rng.NewRNG(cfg.Seed, rng.PhaseCompression, configHash)
//
// The Separator uses its RNG for every random decision in that phase:
//
//	x := explRNG.Float64Range(0, stripWidth)
//	if explRNG.Float64() < cfg.RestartProbability {
//	    // sample a full-strip restart position instead of a grid jitter
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Per §5 the driver is single-
// threaded and each phase owns exactly one Separator and one RNG, so
// this is never contended in practice.
//
// # Performance
//
// The underlying math/rand.Rand is cheap per call; creating an RNG costs
// one SHA-256 digest. A phase's Separator creates its RNG once and
// reuses it across every candidate evaluated in that phase, rather than
// paying a SHA-256 digest and an allocation per candidate.
package rng
