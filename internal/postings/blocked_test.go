package postings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBlocked() *Blocked {
	docs := make(map[uint32][]uint32)
	var even, mult3 []uint32
	for i := uint32(0); i < 40; i++ {
		if i%2 == 0 {
			even = append(even, i)
		}
		if i%3 == 0 {
			mult3 = append(mult3, i)
		}
	}
	docs[1] = even
	docs[2] = mult3
	return BuildBlocked(docs, 40, 4, nil)
}

func TestBlockedIteratorAscending(t *testing.T) {
	b := newTestBlocked()
	it, ok := b.Iterator(1)
	require.True(t, ok)
	var got []uint32
	for it.HasNext() {
		got = append(got, it.Next())
	}
	require.Len(t, got, 20)
	require.Equal(t, uint32(0), got[0])
	require.Equal(t, uint32(38), got[len(got)-1])
}

func TestBlockedAdvanceIfNeeded(t *testing.T) {
	b := newTestBlocked()
	it, _ := b.Iterator(1)
	it.AdvanceIfNeeded(17)
	require.Equal(t, uint32(18), it.Peek())
	it.AdvanceIfNeeded(100)
	require.False(t, it.HasNext())
}

func TestBlockedIntersection(t *testing.T) {
	b := newTestBlocked()
	it, err := b.IntersectionIterator([]uint32{1, 2})
	require.NoError(t, err)
	var got []uint32
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	// multiples of 6 under 40
	require.Equal(t, []uint32{0, 6, 12, 18, 24, 30, 36}, got)
}

func TestBlockedIntersectionEmptyInput(t *testing.T) {
	b := newTestBlocked()
	_, err := b.IntersectionIterator(nil)
	require.ErrorIs(t, err, ErrInvalidQuery)
}
