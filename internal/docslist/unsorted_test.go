package docslist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopkIdentityPermutation(t *testing.T) {
	u := Build([]uint32{0, 1, 2, 3, 4, 5})
	got := u.Topk(0, 6, 3, false)
	require.Equal(t, []uint32{0, 1, 2}, got)
}

func TestTopkSubrangeShuffled(t *testing.T) {
	// doc ids permuted within the range; topk must still find the smallest.
	u := Build([]uint32{5, 3, 0, 4, 1, 2})
	got := u.Topk(0, 6, 3, false)
	require.ElementsMatch(t, []uint32{0, 1, 2}, got)
}

func TestTopkReturnsMinKLen(t *testing.T) {
	u := Build([]uint32{2, 0, 1})
	got := u.Topk(0, 3, 10, false)
	require.Len(t, got, 3)
}

func TestTopkEmptyRange(t *testing.T) {
	u := Build([]uint32{0, 1, 2})
	require.Nil(t, u.Topk(1, 1, 5, false))
}

func TestTopkZeroK(t *testing.T) {
	u := Build([]uint32{0, 1, 2})
	require.Nil(t, u.Topk(0, 3, 0, false))
}

func TestTopkUniqueSkipsDuplicates(t *testing.T) {
	// minimal-docs-list style: doc id 1 repeated, unique=true should only
	// emit it once.
	u := Build([]uint32{1, 1, 0, 2})
	got := u.Topk(0, 4, 3, true)
	require.Equal(t, []uint32{0, 1, 2}, got)
}
