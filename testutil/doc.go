/*
Package testutil provides deterministic randomness for tests and benchmarks.

Every test that draws random points does so through a seeded source, so any
failing case can be replayed by rerunning with the seed it logged:

	rng := testutil.Rand(42)
	points := testutil.RandomPoints[uint64](rng, 2000)

The generators are not cryptographic and exist only to exercise distance
queries over large point sets.

This package is intended for testing purposes only and should not be used in
production code.
*/
package testutil
