package serialize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleInputs() *BuildInputs {
	return &BuildInputs{
		Tokens:      []string{"devils", "jersey", "new", "pizza", "times", "university", "york"},
		Completions: [][]uint32{{3, 7, 4}, {3, 7, 5}, {3, 2, 1}, {7, 6}},
		DocIDs:      []uint32{0, 1, 2, 3},
		MinimalPostings: map[uint32][]uint32{
			6: {0, 1, 3},
		},
		Postings: map[uint32][]uint32{
			2: {0, 1, 2},
			6: {0, 1, 3},
		},
		NumDoc:  4,
		Forward: [][]uint32{{2, 6, 3}, {2, 6, 4}, {2, 1, 0}, {6, 5}},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	in := sampleInputs()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, in.Tokens, out.Tokens)
	require.Equal(t, in.Completions, out.Completions)
	require.Equal(t, in.DocIDs, out.DocIDs)
	require.Equal(t, in.MinimalPostings, out.MinimalPostings)
	require.Equal(t, in.Postings, out.Postings)
	require.Equal(t, in.NumDoc, out.NumDoc)
	require.Equal(t, in.Forward, out.Forward)
}

func TestReadBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{1, 2, 3, 4}))
	require.Error(t, err)
}

func TestReadTruncated(t *testing.T) {
	in := sampleInputs()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	truncated := buf.Bytes()[:buf.Len()-10]
	_, err := Read(bytes.NewReader(truncated))
	require.Error(t, err)
}
