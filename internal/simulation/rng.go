package simulation

import (
	"encoding/binary"
	"math/rand/v2"
)

// newWorkerRNG derives a ChaCha8 stream from a 64-bit integer seed. Each
// simulation worker gets its own independently-seeded, non-shared stream
// (spec.md §4.6/§9): byte-exact reproducible across platforms, with no
// coordination required between workers.
func newWorkerRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewChaCha8(expandSeed(seed)))
}

// NewSeededRNG exposes newWorkerRNG to callers outside this package that
// need a single deterministically-seeded stream for one RunOnce call (e.g.
// the WASM façade's single-tournament entry point).
func NewSeededRNG(seed uint64) *rand.Rand {
	return newWorkerRNG(seed)
}

// expandSeed diffuses a single 64-bit seed into ChaCha8's 256-bit seed
// space via SplitMix64, so nearby input seeds (e.g. base, base+1, base+2 for
// consecutive workers) don't produce correlated initial states.
func expandSeed(seed uint64) [32]byte {
	var out [32]byte
	s := seed
	for i := 0; i < 4; i++ {
		s += 0x9E3779B97F4A7C15
		z := s
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		binary.LittleEndian.PutUint64(out[i*8:(i+1)*8], z)
	}
	return out
}
