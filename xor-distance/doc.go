// Package xor_distance ranks the points of a fixed set by XOR distance and
// recovers positions from observed rankings.
//
// The distance between two unsigned integers of the same width is their
// bitwise XOR compared as a number. The package provides both directions of
// a query built on that metric:
//
//   - Closest ranks the point set by distance to a known position.
//   - ReverseClosest takes a ranking and recovers a position producing it,
//     or proves that none exists.
//
// # Metric
//
// XOR distance is symmetric and zero exactly between equal values. Because
// a^c == (a^b) ^ (b^c), the direct distance carries no bit above the
// highest bit of either leg, so d(a,c) < 2*max(d(a,b), d(b,c)) for all
// a, b, c. Ranking under it is governed by bit prefixes: of two points,
// the one sharing a longer run of leading bits with the position ranks
// closer. Two distinct points are never equidistant from any position,
// because a^x == b^x forces a == b. Ties therefore occur only between
// duplicate values.
//
// # Reconstruction
//
// A closest list of length n over a set of m points encodes n-1 order
// constraints between consecutive entries plus boundary constraints between
// the last entry and every point left out of the list. Each constraint over
// distinct values pins exactly one bit of the position: at the most
// significant bit where the two points differ, the position must carry the
// closer point's bit. Accumulating the pins in a bits.Pattern either hits a
// contradiction, proving no position exists, or yields a candidate whose
// undecided bits default to zero. The candidate is then ranked against the
// full set, which catches the cases bit pinning cannot see, such as an
// unlisted duplicate tying with a listed value.
//
// # Concurrency
//
// The point set is copied at construction and never mutated afterwards, so
// any number of Closest and ReverseClosest calls may run concurrently.
package xor_distance
