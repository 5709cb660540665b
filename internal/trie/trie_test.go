package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// dictionary ids (0-based, lex order): devils=0 jersey=1 new=2 pizza=3
// times=4 university=5 york=6. Trie-space ids are these +1.
func sampleCompletions() [][]uint32 {
	return [][]uint32{
		{3, 7, 4}, // doc0: new york pizza
		{3, 7, 5}, // doc1: new york times
		{3, 2, 1}, // doc2: new jersey devils
		{7, 6},    // doc3: york university
	}
}

func TestLocatePrefixNewYork(t *testing.T) {
	tr := Build(sampleCompletions())
	// prefix "new", suffix "y" -> dictionary range for tokens starting with
	// "y" is just {york=6}, trie-space [7,8).
	lo, hi, ok := tr.LocatePrefix([]uint32{3}, 7, 8)
	require.True(t, ok)
	docs := tr.LeafDocIDs[lo:hi]
	require.ElementsMatch(t, []uint32{0, 1}, docs)
}

func TestLocatePrefixYorkOnly(t *testing.T) {
	tr := Build(sampleCompletions())
	// single incomplete token "york" -> no complete prefix ids, suffix range
	// covers exactly {york=6}, trie-space [7,8). Only doc3 begins with york.
	lo, hi, ok := tr.LocatePrefix(nil, 7, 8)
	require.True(t, ok)
	docs := tr.LeafDocIDs[lo:hi]
	require.ElementsMatch(t, []uint32{3}, docs)
}

func TestLocatePrefixNoMatch(t *testing.T) {
	tr := Build(sampleCompletions())
	_, _, ok := tr.LocatePrefix([]uint32{99}, 0, 100)
	require.False(t, ok)
}

func TestLocatePrefixEmptySuffixRange(t *testing.T) {
	tr := Build(sampleCompletions())
	_, _, ok := tr.LocatePrefix([]uint32{3}, 50, 50)
	require.False(t, ok)
}
