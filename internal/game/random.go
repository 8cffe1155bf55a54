package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Roller is the single source of randomness consumed by the simulation.
// *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
	IntN(n int) int
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// NewRoller returns a deterministic Roller for seed.
func NewRoller(seed int64) Roller {
	return seededRNG(seed)
}

func randomBetween(r Roller, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
