package utils

import "math/rand/v2"

// NewRNG returns a deterministic PCG source for the given seed. Distinct
// streams under the same seed produce independent sequences, one per trial.
func NewRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), stream))
}
