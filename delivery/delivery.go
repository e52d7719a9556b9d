package delivery

import (
	xor_distance "github.com/dalibor-matura/xor-distance-exercise/xor-distance"
	"golang.org/x/exp/constraints"
)

// FoodDeliverySystem tracks farm locations and matches them to customer
// positions by XOR distance.
type FoodDeliverySystem[T constraints.Unsigned] struct {
	distance *xor_distance.XorDistance[T]
}

// New creates a delivery system over the given farm locations. The slice is
// copied.
func New[T constraints.Unsigned](farms []T) *FoodDeliverySystem[T] {
	return &FoodDeliverySystem[T]{distance: xor_distance.New(farms)}
}

// Farms returns a copy of the registered farm locations.
func (s *FoodDeliverySystem[T]) Farms() []T {
	return s.distance.Points()
}

// ClosestFarms returns up to count farms ordered from the nearest to the
// customer position outwards.
func (s *FoodDeliverySystem[T]) ClosestFarms(position T, count int) []T {
	return s.distance.Closest(position, count)
}

// ReverseClosestFarms recovers a customer position that produces the given
// closest-farm list, reporting ok=false when no position does. Errors carry
// xor_distance.ErrTooManyPoints or xor_distance.ErrUnknownPoint for lists no
// query could have returned.
func (s *FoodDeliverySystem[T]) ReverseClosestFarms(closest []T) (position T, ok bool, err error) {
	return s.distance.ReverseClosest(closest)
}
