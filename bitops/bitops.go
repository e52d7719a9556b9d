// Package bitops provides single-bit and flag operations for any unsigned
// integer type.
//
// A flag is a value with exactly one bit set. Bit indexes count from the
// least-significant bit, starting at zero. Operations taking a bit index
// panic when it falls outside the width of the integer type: an out-of-range
// index is a caller bug, not a runtime condition.
package bitops

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in T.
func Width[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// IsFlag reports whether x has exactly one bit set.
func IsFlag[T constraints.Unsigned](x T) bool {
	// Subtracting one moves the single bit right, so ANDing with the
	// original value clears it; any second bit survives.
	return x > 0 && x&(x-1) == 0
}

// IsFlagSet reports whether the flag's bit is set in x. It does not check
// that flag really is a flag.
func IsFlagSet[T constraints.Unsigned](x, flag T) bool {
	return x&flag != 0
}

// SetFlag sets the flag's bit in x. It does not check that flag really is a
// flag.
func SetFlag[T constraints.Unsigned](x *T, flag T) {
	*x |= flag
}

// IsBitSet reports whether bit i of x is set. It panics if i is out of range
// for T.
func IsBitSet[T constraints.Unsigned](x T, i int) bool {
	return IsFlagSet(x, flagAt[T](i))
}

// SetBit sets bit i of x. It panics if i is out of range for T.
func SetBit[T constraints.Unsigned](x *T, i int) {
	SetFlag(x, flagAt[T](i))
}

func flagAt[T constraints.Unsigned](i int) T {
	if i < 0 || i >= Width[T]() {
		panic(fmt.Sprintf("bitops: bit index %d out of range for a %d-bit value", i, Width[T]()))
	}
	return T(1) << i
}
