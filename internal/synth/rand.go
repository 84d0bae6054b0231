package synth

import "hash/fnv"

// Rand is a mulberry32 generator: a tiny 32-bit PRNG producing an
// infinite stream of float64 values in [0,1). The same seed always
// reproduces the same stream, which the whole synthetic dataset relies
// on.
type Rand struct {
	state uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next returns the next value in [0,1).
func (r *Rand) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Between returns a value in [min, max).
func (r *Rand) Between(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// IntBetween returns an integer in [min, max) via floor conversion.
// A degenerate range collapses to min.
func (r *Rand) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.Next()*float64(max-min))
}

// Pick returns a uniformly chosen element.
func Pick[T any](r *Rand, items []T) T {
	return items[int(r.Next()*float64(len(items)))]
}

// SeedFor derives a 32-bit seed from an identifier plus any secondary
// keys (window size, attribution days). FNV-1a keeps the derivation
// stable across runs and independent of identifier formatting.
func SeedFor(parts ...string) uint32 {
	h := fnv.New32a()
	for _, part := range parts {
		_, _ = h.Write([]byte(part))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum32()
}
