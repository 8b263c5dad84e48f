package engine

import (
	"hash/fnv"
	"math/rand/v2"
)

// Source is the random stream every stochastic step draws from.
// *rand.Rand satisfies it, and because it also exposes Uint64 it can be
// handed to gonum distributions as their rand.Source.
//
// Not safe for concurrent use. One Source belongs to one simulation run.
type Source interface {
	Float64() float64
	IntN(n int) int
	Uint64() uint64
}

// NewSource returns a deterministic PCG-backed stream. Two sources created
// from the same seed produce identical sequences.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// DeriveSeed isolates a named sub-stream from a master seed:
// masterSeed XOR fnv1a64(name).
func DeriveSeed(seed int64, name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
