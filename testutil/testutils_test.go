package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandDeterministic(t *testing.T) {
	require.Equal(t, RandomPoints[uint64](Rand(7), 16), RandomPoints[uint64](Rand(7), 16))
	require.NotEqual(t, RandomPoints[uint64](Rand(1), 16), RandomPoints[uint64](Rand(2), 16))
}

func TestRandomPointsLength(t *testing.T) {
	require.Len(t, RandomPoints[uint8](Rand(1), 256), 256)
	require.Empty(t, RandomPoints[uint32](Rand(1), 0))
}
