package rmq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func bruteArgmax(scores []uint32, l, r int) (int, uint32) {
	best := l
	for i := l + 1; i < r; i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best, scores[best]
}

func TestCartesianTreeQueryMatchesBruteForce(t *testing.T) {
	scores := []uint32{5, 2, 8, 1, 9, 3, 7, 6, 4, 0}
	tree := Build(scores)
	for l := 0; l < len(scores); l++ {
		for r := l + 1; r <= len(scores); r++ {
			wantIdx, wantVal := bruteArgmax(scores, l, r)
			gotIdx, gotVal := tree.Query(l, r)
			require.Equal(t, wantVal, gotVal, "range [%d,%d)", l, r)
			require.Equal(t, scores[wantIdx], scores[gotIdx])
		}
	}
}

func TestCartesianTreeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	scores := make([]uint32, 200)
	for i := range scores {
		scores[i] = uint32(rng.Intn(1000))
	}
	tree := Build(scores)
	for trial := 0; trial < 500; trial++ {
		l := rng.Intn(len(scores))
		r := l + 1 + rng.Intn(len(scores)-l)
		_, wantVal := bruteArgmax(scores, l, r)
		_, gotVal := tree.Query(l, r)
		require.Equal(t, wantVal, gotVal)
	}
}

func TestCartesianTreeSingleton(t *testing.T) {
	tree := Build([]uint32{42})
	idx, val := tree.Query(0, 1)
	require.Equal(t, 0, idx)
	require.Equal(t, uint32(42), val)
}
