package id

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonotonicNonZeroID_Number(t *testing.T) {
	idGen, err := MonotonicNonZeroID()
	require.NoError(t, err)

	prev := uint64(0)
	for i := 0; i < 10_000; i++ {
		num := idGen.Number()
		require.NotZero(t, num)
		require.Greater(t, num, prev)
		prev = num
	}
}

func TestMonotonicNonZeroID_Str(t *testing.T) {
	idGen, err := MonotonicNonZeroID()
	require.NoError(t, err)

	num, err := strconv.ParseUint(idGen.Str(), 10, 64)
	require.NoError(t, err)
	require.NotZero(t, num)
	require.Greater(t, idGen.Number(), num)
}
