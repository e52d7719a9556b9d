package xor_distance

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// XorDistance answers closeness queries over a fixed set of points.
type XorDistance[T constraints.Unsigned] struct {
	points []T
}

// New creates an XorDistance over the given points. The slice is copied, so
// later changes by the caller do not affect the set. Duplicate values are
// kept and rank adjacently.
func New[T constraints.Unsigned](points []T) *XorDistance[T] {
	return &XorDistance[T]{points: slices.Clone(points)}
}

// Points returns a copy of the point set in insertion order.
func (x *XorDistance[T]) Points() []T {
	return slices.Clone(x.points)
}

// Closest returns up to count points ordered from the nearest to position
// outwards. The sort is stable, so duplicates keep their insertion order
// and repeated calls return identical results. A count larger than the set
// returns the whole set; a non-positive count returns an empty list.
func (x *XorDistance[T]) Closest(position T, count int) []T {
	sorted := slices.Clone(x.points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i]^position < sorted[j]^position
	})
	if count < 0 {
		count = 0
	}
	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted
}
