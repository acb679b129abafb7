package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

func testConfigHash(tag string) []byte {
	h := sha256.Sum256([]byte(tag))
	return h[:]
}

// TestNewRNG_Determinism verifies that the same inputs always produce the
// same derived seed and the same sequence.
func TestNewRNG_Determinism(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := testConfigHash("test_config")

	rng1 := NewRNG(masterSeed, PhaseExploration, configHash)
	rng2 := NewRNG(masterSeed, PhaseExploration, configHash)

	if rng1.Seed() != rng2.Seed() {
		t.Fatalf("same inputs produced different seeds: %d vs %d", rng1.Seed(), rng2.Seed())
	}

	for i := 0; i < 100; i++ {
		v1 := rng1.Float64()
		v2 := rng2.Float64()
		if v1 != v2 {
			t.Fatalf("iteration %d: same RNGs produced different values: %v vs %v", i, v1, v2)
		}
	}
}

// TestNewRNG_DifferentPhases verifies the three driver phases derive
// distinct, isolated seeds and sequences from the same master seed.
func TestNewRNG_DifferentPhases(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := testConfigHash("same_config")

	restoreRNG := NewRNG(masterSeed, PhaseRestore, configHash)
	explRNG := NewRNG(masterSeed, PhaseExploration, configHash)
	cmprRNG := NewRNG(masterSeed, PhaseCompression, configHash)

	seeds := map[uint64]Phase{
		restoreRNG.Seed(): restoreRNG.Phase(),
	}
	for _, r := range []*RNG{explRNG, cmprRNG} {
		if existing, ok := seeds[r.Seed()]; ok {
			t.Fatalf("phases %s and %s derived the same seed %d", existing, r.Phase(), r.Seed())
		}
		seeds[r.Seed()] = r.Phase()
	}

	if restoreRNG.Phase() != PhaseRestore || explRNG.Phase() != PhaseExploration || cmprRNG.Phase() != PhaseCompression {
		t.Fatal("Phase() did not round-trip the phase passed to NewRNG")
	}

	v1, v2, v3 := restoreRNG.Float64(), explRNG.Float64(), cmprRNG.Float64()
	if v1 == v2 && v2 == v3 {
		t.Error("different phases produced identical first values (extremely unlikely)")
	}
}

// TestNewRNG_DifferentConfigs verifies that a different config hash (a
// different tuning configuration) yields a different derived sequence
// for the same phase and master seed.
func TestNewRNG_DifferentConfigs(t *testing.T) {
	masterSeed := uint64(123456789)

	rng1 := NewRNG(masterSeed, PhaseExploration, testConfigHash("config_v1"))
	rng2 := NewRNG(masterSeed, PhaseExploration, testConfigHash("config_v2"))
	rng3 := NewRNG(masterSeed, PhaseExploration, testConfigHash("config_v3"))

	if rng1.Seed() == rng2.Seed() || rng1.Seed() == rng3.Seed() || rng2.Seed() == rng3.Seed() {
		t.Fatal("different config hashes produced a colliding seed")
	}
}

// TestNewRNG_DifferentMasterSeeds verifies distinct master seeds (e.g.
// distinct -s CLI values) derive distinct per-phase seeds.
func TestNewRNG_DifferentMasterSeeds(t *testing.T) {
	configHash := testConfigHash("same_config")

	rng1 := NewRNG(111, PhaseExploration, configHash)
	rng2 := NewRNG(222, PhaseExploration, configHash)
	rng3 := NewRNG(333, PhaseExploration, configHash)

	if rng1.Seed() == rng2.Seed() || rng1.Seed() == rng3.Seed() || rng2.Seed() == rng3.Seed() {
		t.Fatal("different master seeds produced a colliding seed")
	}
}

// TestRNG_Float64 verifies Float64 stays in range and is deterministic.
func TestRNG_Float64(t *testing.T) {
	configHash := testConfigHash("config")
	r := NewRNG(123456789, PhaseCompression, configHash)

	for i := 0; i < 200; i++ {
		v := r.Float64()
		if v < 0.0 || v >= 1.0 {
			t.Fatalf("Float64() produced out-of-range value: %f", v)
		}
	}

	r1 := NewRNG(123456789, PhaseCompression, configHash)
	r2 := NewRNG(123456789, PhaseCompression, configHash)
	for i := 0; i < 50; i++ {
		if v1, v2 := r1.Float64(), r2.Float64(); v1 != v2 {
			t.Fatalf("iteration %d: Float64 not deterministic: %f vs %f", i, v1, v2)
		}
	}
}

// TestRNG_Float64Range verifies Float64Range's bounds, matching the
// Separator's use for jitter offsets and restart positions.
func TestRNG_Float64Range(t *testing.T) {
	configHash := testConfigHash("config")
	r := NewRNG(123456789, PhaseExploration, configHash)

	for i := 0; i < 200; i++ {
		v := r.Float64Range(5.0, 10.0)
		if v < 5.0 || v >= 10.0 {
			t.Fatalf("Float64Range(5.0, 10.0) produced out-of-range value: %f", v)
		}
	}

	// A strip-width-scale range, as used for a full-strip restart.
	for i := 0; i < 50; i++ {
		v := r.Float64Range(0, 1200.0)
		if v < 0 || v >= 1200.0 {
			t.Fatalf("Float64Range(0, 1200) produced out-of-range value: %f", v)
		}
	}
}

// TestRNG_Float64RangePanic verifies Float64Range panics on an invalid
// (non-positive-width) range.
func TestRNG_Float64RangePanic(t *testing.T) {
	r := NewRNG(123456789, PhaseExploration, testConfigHash("config"))

	defer func() {
		if recover() == nil {
			t.Error("Float64Range(10.0, 5.0) did not panic")
		}
	}()

	r.Float64Range(10.0, 5.0)
}

// TestPhase_String verifies every phase has a distinct, stable name,
// since that name is also the derivation input.
func TestPhase_String(t *testing.T) {
	names := map[Phase]string{
		PhaseRestore:     "restore",
		PhaseExploration: "exploration",
		PhaseCompression: "compression",
	}
	for phase, want := range names {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}

// TestSubSeedDerivationFormula verifies the exact derivation formula
// documented in doc.go, so the formula can't silently drift.
func TestSubSeedDerivationFormula(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := []byte{1, 2, 3, 4, 5}

	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(PhaseCompression.String()))
	h.Write(configHash)
	hash := h.Sum(nil)
	expected := binary.BigEndian.Uint64(hash[:8])

	r := NewRNG(masterSeed, PhaseCompression, configHash)
	if r.Seed() != expected {
		t.Errorf("derived seed mismatch: got %d, want %d", r.Seed(), expected)
	}
}

// BenchmarkNewRNG measures per-phase RNG derivation cost, incurred once
// per phase rather than once per candidate.
func BenchmarkNewRNG(b *testing.B) {
	configHash := testConfigHash("benchmark_config")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewRNG(123456789, PhaseExploration, configHash)
	}
}

// BenchmarkRNG_Float64Range measures the per-candidate cost the
// Separator pays on its hot path.
func BenchmarkRNG_Float64Range(b *testing.B) {
	r := NewRNG(123456789, PhaseExploration, testConfigHash("config"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Float64Range(0, 1200.0)
	}
}
