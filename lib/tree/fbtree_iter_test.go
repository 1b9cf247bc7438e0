package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForeach_EarlyStop(t *testing.T) {
	var root *Block
	for _, c := range []uint64{4, 2, 6, 8} {
		root = Insert(root, &Block{}, c)
	}

	visited := 0
	Foreach(root, func(idx int64, _ RBColor, _ uint64, _ int) bool {
		visited++
		return idx < 1
	})
	require.Equal(t, 2, visited)
}

func TestAll_Restartable(t *testing.T) {
	var root *Block
	for _, c := range []uint64{4, 2, 6, 2, 6, 6} {
		root = Insert(root, &Block{}, c)
	}

	collect := func() (caps []uint64, chains []int) {
		for capacity, chainLen := range All(root) {
			caps = append(caps, capacity)
			chains = append(chains, chainLen)
		}
		return caps, chains
	}

	caps, chains := collect()
	require.Equal(t, []uint64{2, 4, 6}, caps)
	require.Equal(t, []int{1, 0, 2}, chains)

	// The sequence restarts from scratch on every range.
	capsAgain, chainsAgain := collect()
	require.Equal(t, caps, capsAgain)
	require.Equal(t, chains, chainsAgain)

	// And stops early without draining the stack.
	for capacity := range All(root) {
		require.Equal(t, uint64(2), capacity)
		break
	}
}

func TestLen(t *testing.T) {
	require.Zero(t, Len(nil))

	var root *Block
	for i := 0; i < 10; i++ {
		root = Insert(root, &Block{}, uint64(i%3))
	}
	require.Equal(t, int64(10), Len(root))
}
