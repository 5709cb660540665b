package forward

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardContainsAndPermutingIterator(t *testing.T) {
	idx := Build([][]uint32{
		{5, 2, 2, 9}, // original order, dup token 2
		{1},
		{},
	}, nil)

	require.True(t, idx.Contains(0, 2, 3))
	require.True(t, idx.Contains(0, 9, 10))
	require.False(t, idx.Contains(0, 3, 5))
	require.False(t, idx.Contains(2, 0, 100))

	it := idx.PermutingIterator(0)
	var got []uint32
	for it.HasNext() {
		got = append(got, it.Next())
	}
	require.Equal(t, []uint32{5, 2, 2, 9}, got)
}

func TestForwardEmptyDoc(t *testing.T) {
	idx := Build([][]uint32{{}}, nil)
	it := idx.PermutingIterator(0)
	require.False(t, it.HasNext())
	require.Equal(t, 0, it.Size())
}
