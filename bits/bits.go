// Package bits provides a partially-decided bit pattern for unsigned integer
// types.
//
// A Pattern starts with every bit undecided and accumulates single-bit
// decisions. Constrain rejects a decision that contradicts an earlier one,
// which makes the pattern usable as a conflict detector when independent
// constraints each pin one bit of an unknown value. Value folds the decided
// bits into a number, with undecided bits reading as zero.
package bits

import (
	"fmt"

	"github.com/dalibor-matura/xor-distance-exercise/bitops"
	"golang.org/x/exp/constraints"
)

// Pattern is a bit pattern of T's width in which each bit is undecided, zero
// or one. The zero value has every bit undecided and is ready to use.
//
// Decided bits are tracked as two masks rather than per-bit cells, so a
// Pattern costs two words regardless of width.
type Pattern[T constraints.Unsigned] struct {
	fixed T // bits that have been decided
	value T // values of decided bits; zero wherever fixed is zero
}

// New returns a Pattern with all bits undecided.
func New[T constraints.Unsigned]() *Pattern[T] {
	return &Pattern[T]{}
}

// Bit returns the value of bit i and whether it has been decided. The value
// is false for an undecided bit. It panics if i is out of range for T.
func (p *Pattern[T]) Bit(i int) (val, decided bool) {
	flag := p.flag(i)
	return p.value&flag != 0, p.fixed&flag != 0
}

// Decided reports whether bit i has been decided. It panics if i is out of
// range for T.
func (p *Pattern[T]) Decided(i int) bool {
	return p.fixed&p.flag(i) != 0
}

// Set decides bit i to val, overwriting any earlier decision. It panics if i
// is out of range for T.
func (p *Pattern[T]) Set(i int, val bool) {
	flag := p.flag(i)
	p.fixed |= flag
	if val {
		p.value |= flag
	} else {
		p.value &^= flag
	}
}

// Constrain decides bit i to val, honoring earlier decisions: deciding an
// undecided bit or repeating an identical decision succeeds, while
// contradicting an earlier decision returns an error and leaves the pattern
// unchanged. It panics if i is out of range for T.
func (p *Pattern[T]) Constrain(i int, val bool) error {
	flag := p.flag(i)
	if p.fixed&flag != 0 {
		if (p.value&flag != 0) != val {
			return fmt.Errorf("bit %d already decided to %t", i, !val)
		}
		return nil
	}
	p.fixed |= flag
	if val {
		p.value |= flag
	}
	return nil
}

// Value returns the number formed by the decided bits, with every undecided
// bit reading as zero.
func (p *Pattern[T]) Value() T {
	return p.value
}

func (p *Pattern[T]) flag(i int) T {
	if i < 0 || i >= bitops.Width[T]() {
		panic(fmt.Sprintf("bits: bit index %d out of range for a %d-bit pattern", i, bitops.Width[T]()))
	}
	return T(1) << i
}
