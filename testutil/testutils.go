package testutil

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Rand returns a reproducible generator for the given seed.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomPoints draws n values of the requested width. Narrow types truncate
// the raw 64-bit draws, so collisions get likelier the narrower T is.
func RandomPoints[T constraints.Unsigned](rng *rand.Rand, n int) []T {
	points := make([]T, n)
	for i := range points {
		points[i] = T(rng.Uint64())
	}
	return points
}
