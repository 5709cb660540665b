package buildfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadDict(t *testing.T) {
	r := strings.NewReader("3\ndevils\njersey\nnew\n")
	tokens, err := ReadDict(r)
	require.NoError(t, err)
	require.Equal(t, []string{"devils", "jersey", "new"}, tokens)
}

func TestReadDictHeaderMismatch(t *testing.T) {
	r := strings.NewReader("5\ndevils\njersey\n")
	_, err := ReadDict(r)
	require.Error(t, err)
}

func TestReadCompletions(t *testing.T) {
	r := strings.NewReader("100 new york pizza\n90 new york times\n80 new jersey devils\n70 york university\n")
	completions, err := ReadCompletions(r)
	require.NoError(t, err)
	require.Len(t, completions, 4)
	require.Equal(t, uint32(100), completions[0].Score)
	require.Equal(t, []string{"new", "york", "pizza"}, completions[0].Tokens)
	require.Equal(t, []string{"york", "university"}, completions[3].Tokens)
}

func TestReadPostingsByTerm(t *testing.T) {
	r := strings.NewReader("3\n3 0 1 2\n0\n2 0 3\n")
	postings, err := ReadPostingsByTerm(r)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1, 2}, postings[0])
	require.Equal(t, []uint32{0, 3}, postings[2])
	_, hasEmpty := postings[1]
	require.False(t, hasEmpty)
}

func TestReadPostingsByTermLengthMismatch(t *testing.T) {
	r := strings.NewReader("1\n5 0 1 2\n")
	_, err := ReadPostingsByTerm(r)
	require.Error(t, err)
}

func TestReadForward(t *testing.T) {
	r := strings.NewReader("2\n3 2 6 3\n2 6 5\n")
	docs, err := ReadForward(r)
	require.NoError(t, err)
	require.Equal(t, [][]uint32{{2, 6, 3}, {6, 5}}, docs)
}

func TestReadForwardTruncated(t *testing.T) {
	r := strings.NewReader("2\n3 2 6 3\n")
	_, err := ReadForward(r)
	require.Error(t, err)
}
