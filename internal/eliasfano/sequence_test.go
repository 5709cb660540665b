package eliasfano

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceAccessAndNextGEQ(t *testing.T) {
	values := []uint32{1, 5, 9, 20, 21, 100}
	s := Build(values)
	require.Equal(t, len(values), s.Len())
	for i, want := range values {
		require.Equal(t, want, s.Access(i))
	}

	next, ok := s.NextGEQ(6)
	require.True(t, ok)
	require.Equal(t, uint32(9), next)

	next, ok = s.NextGEQ(9)
	require.True(t, ok)
	require.Equal(t, uint32(9), next)

	_, ok = s.NextGEQ(101)
	require.False(t, ok)
}

func TestSequenceContains(t *testing.T) {
	s := Build([]uint32{2, 4, 6})
	require.True(t, s.Contains(4))
	require.False(t, s.Contains(5))
}

func TestSequenceRejectsNonIncreasing(t *testing.T) {
	require.Panics(t, func() { Build([]uint32{1, 1}) })
	require.Panics(t, func() { Build([]uint32{2, 1}) })
}

func TestSequenceIterator(t *testing.T) {
	values := []uint32{3, 8, 15}
	it := Build(values).Iterator()
	var got []uint32
	for it.HasNext() {
		got = append(got, it.Next())
	}
	require.Equal(t, values, got)
}
