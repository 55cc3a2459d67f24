package sampler

import "math/rand"

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer), so that per-request streams derived from one base seed
// stay decorrelated.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent deterministic RNG for stream.
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
