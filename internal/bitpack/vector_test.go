package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 5, 1000, 65535, 42}
	v := Build(values)
	for i, want := range values {
		require.Equal(t, want, v.Get(uint(i)))
	}
	require.Equal(t, uint(len(values)), v.Len())
}

func TestVectorAllZero(t *testing.T) {
	v := Build([]uint64{0, 0, 0})
	require.Equal(t, uint(1), v.Width())
	for i := uint(0); i < v.Len(); i++ {
		require.Equal(t, uint64(0), v.Get(i))
	}
}

func TestVectorOutOfBoundsPanics(t *testing.T) {
	v := Build([]uint64{1, 2, 3})
	require.Panics(t, func() { v.Get(3) })
}

func TestBuildWidthRejectsOverflow(t *testing.T) {
	require.Panics(t, func() { BuildWidth([]uint64{16}, 4) })
}
