package bits

import (
	"testing"

	"github.com/dalibor-matura/xor-distance-exercise/bitops"
)

func FuzzPattern(f *testing.F) {
	// Add seed corpus
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(0b1010), uint64(0b0101))
	f.Add(^uint64(0), ^uint64(0)) // Everything decided to one

	f.Fuzz(func(t *testing.T, values, mask uint64) {
		pattern := New[uint64]()

		// Decide exactly the bits mask selects, copying from values.
		for i := 0; i < bitops.Width[uint64](); i++ {
			if bitops.IsBitSet(mask, i) {
				pattern.Set(i, bitops.IsBitSet(values, i))
			}
		}

		// Invariant 1: decidedness tracks the mask exactly
		for i := 0; i < bitops.Width[uint64](); i++ {
			if pattern.Decided(i) != bitops.IsBitSet(mask, i) {
				t.Errorf("bit %d decidedness diverged from the mask", i)
			}
		}

		// Invariant 2: the zero-padded number is the masked values
		if got, want := pattern.Value(), values&mask; got != want {
			t.Errorf("value %#x, want %#x", got, want)
		}

		// Invariant 3: re-constraining decided bits to the same values never
		// conflicts
		for i := 0; i < bitops.Width[uint64](); i++ {
			if bitops.IsBitSet(mask, i) {
				if err := pattern.Constrain(i, bitops.IsBitSet(values, i)); err != nil {
					t.Errorf("re-constraining bit %d failed: %v", i, err)
				}
			}
		}

		// Invariant 4: flipping any decided bit via Constrain conflicts
		for i := 0; i < bitops.Width[uint64](); i++ {
			if bitops.IsBitSet(mask, i) {
				if err := pattern.Constrain(i, !bitops.IsBitSet(values, i)); err == nil {
					t.Errorf("conflicting constraint on bit %d accepted", i)
				}
			}
		}
	})
}
