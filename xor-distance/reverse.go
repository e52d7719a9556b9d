package xor_distance

import (
	"errors"
	"fmt"
	mbits "math/bits"
	"slices"

	"github.com/dalibor-matura/xor-distance-exercise/bitops"
	"github.com/dalibor-matura/xor-distance-exercise/bits"
	"golang.org/x/exp/constraints"
)

var (
	// ErrTooManyPoints reports a closest list with more entries than the
	// point set has points.
	ErrTooManyPoints = errors.New("closest list longer than the point set")

	// ErrUnknownPoint reports a closest list entry that does not occur in
	// the point set, or occurs more often than the set holds it.
	ErrUnknownPoint = errors.New("closest list names an unknown point")
)

// inequality records that closer ranks before further as seen from the
// position being recovered, i.e. closer^position < further^position.
type inequality[T constraints.Unsigned] struct {
	closer  T
	further T
}

// ReverseClosest recovers a position for which Closest reproduces closest
// element for element. It reports ok=false when no such position exists,
// either because the claimed order is contradictory or because duplicate
// points make it unreproducible. A non-nil error means the list is not a
// plausible query result over this point set at all and wraps
// ErrTooManyPoints or ErrUnknownPoint.
//
// When several positions reproduce the list, any one of them is returned;
// bits the list does not determine are zero. The empty list is reproduced
// by every position and yields zero. The work is linear in the set size
// aside from the final verification sort.
func (x *XorDistance[T]) ReverseClosest(closest []T) (position T, ok bool, err error) {
	if err := x.validateClosest(closest); err != nil {
		return 0, false, err
	}
	if len(closest) == 0 {
		return 0, true, nil
	}

	pattern := bits.New[T]()
	for _, ineq := range orderInequalities(closest) {
		if !constrainBit(pattern, ineq) {
			return 0, false, nil
		}
	}
	for _, ineq := range x.boundaryInequalities(closest) {
		if !constrainBit(pattern, ineq) {
			return 0, false, nil
		}
	}

	// Bit pinning is blind to ties, so a duplicate of a listed point can
	// still push its way into the result. Ranking the candidate settles it.
	position = pattern.Value()
	if !slices.Equal(x.Closest(position, len(closest)), closest) {
		return 0, false, nil
	}
	return position, true, nil
}

// constrainBit records the one position bit implied by an inequality over
// distinct points: at the most significant bit where the two differ, the
// position must carry the closer point's bit, or the further point would
// share the longer prefix and rank first. Equal points constrain nothing.
// Reports whether the pin is consistent with the bits fixed so far.
func constrainBit[T constraints.Unsigned](pattern *bits.Pattern[T], ineq inequality[T]) bool {
	diff := ineq.closer ^ ineq.further
	if diff == 0 {
		return true
	}
	bit := mbits.Len64(uint64(diff)) - 1
	return pattern.Constrain(bit, bitops.IsBitSet(ineq.closer, bit)) == nil
}

// orderInequalities turns a closest list into the constraints between its
// consecutive entries.
func orderInequalities[T constraints.Unsigned](closest []T) []inequality[T] {
	if len(closest) < 2 {
		return nil
	}
	ineqs := make([]inequality[T], 0, len(closest)-1)
	for i := 0; i < len(closest)-1; i++ {
		ineqs = append(ineqs, inequality[T]{closer: closest[i], further: closest[i+1]})
	}
	return ineqs
}

// boundaryInequalities constrains the last listed entry to rank before
// every point the list left out.
func (x *XorDistance[T]) boundaryInequalities(closest []T) []inequality[T] {
	if len(closest) == 0 {
		return nil
	}
	last := closest[len(closest)-1]
	further := x.furtherPoints(closest)
	ineqs := make([]inequality[T], 0, len(further))
	for _, point := range further {
		ineqs = append(ineqs, inequality[T]{closer: last, further: point})
	}
	return ineqs
}

// furtherPoints returns the points left over once closest has consumed one
// copy per entry, in insertion order.
func (x *XorDistance[T]) furtherPoints(closest []T) []T {
	remaining := make(map[T]int, len(x.points))
	for _, point := range x.points {
		remaining[point]++
	}
	for _, point := range closest {
		remaining[point]--
	}
	further := make([]T, 0, len(x.points)-len(closest))
	for _, point := range x.points {
		if remaining[point] <= 0 {
			continue
		}
		remaining[point]--
		further = append(further, point)
	}
	return further
}

// validateClosest rejects lists that no query over the point set could have
// produced, regardless of position.
func (x *XorDistance[T]) validateClosest(closest []T) error {
	if len(closest) > len(x.points) {
		return fmt.Errorf("%w: %d entries for %d points", ErrTooManyPoints, len(closest), len(x.points))
	}
	remaining := make(map[T]int, len(x.points))
	for _, point := range x.points {
		remaining[point]++
	}
	for _, point := range closest {
		if remaining[point] == 0 {
			return fmt.Errorf("%w: %d", ErrUnknownPoint, point)
		}
		remaining[point]--
	}
	return nil
}
