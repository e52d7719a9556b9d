package xor_distance

import (
	"slices"
	"testing"

	"github.com/dalibor-matura/xor-distance-exercise/testutil"
)

func FuzzClosest(f *testing.F) {
	// Add seed corpus
	f.Add(int64(1), uint64(10), uint8(10))
	f.Add(int64(7), uint64(0), uint8(0))     // Empty result
	f.Add(int64(42), ^uint64(0), uint8(200)) // Count beyond the set

	f.Fuzz(func(t *testing.T, seed int64, position uint64, count uint8) {
		rng := testutil.Rand(seed)
		points := testutil.RandomPoints[uint64](rng, 64)
		x := New(points)
		closest := x.Closest(position, int(count))

		// Invariant 1: length is capped by both count and the set size
		wantLen := int(count)
		if wantLen > len(points) {
			wantLen = len(points)
		}
		if len(closest) != wantLen {
			t.Errorf("got %d entries, want %d", len(closest), wantLen)
		}

		// Invariant 2: distances never decrease along the result
		for i := 1; i < len(closest); i++ {
			if closest[i-1]^position > closest[i]^position {
				t.Errorf("entries %d and %d out of order: distances %d > %d",
					i-1, i, closest[i-1]^position, closest[i]^position)
			}
		}

		// Invariant 3: the result consumes points from the set, one copy each
		remaining := make(map[uint64]int, len(points))
		for _, point := range points {
			remaining[point]++
		}
		for _, point := range closest {
			remaining[point]--
			if remaining[point] < 0 {
				t.Errorf("point %d returned more often than the set holds it", point)
			}
		}

		// Invariant 4: a shorter query is a prefix of the full ranking
		full := x.Closest(position, len(points))
		if !slices.Equal(closest, full[:len(closest)]) {
			t.Errorf("not a prefix of the full ranking: %v vs %v", closest, full)
		}

		// Invariant 5: repeating the query changes nothing
		if !slices.Equal(closest, x.Closest(position, int(count))) {
			t.Error("repeated query returned a different ranking")
		}
	})
}
