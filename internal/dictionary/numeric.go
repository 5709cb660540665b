package dictionary

import (
	"encoding/binary"
	"log/slog"
)

// NumericDictionary is the "numeric dictionary variant" of spec.md §4.2: the
// same front-coded bucket scheme, but applied to sequences of token ids
// (uint32) instead of byte strings, with ids written as a variable-byte
// integer stream (encoding/binary's Uvarint) rather than raw suffix bytes.
// Used by the mapped_minimal build file to store each term's minimal
// representative doc-id sequence compactly.
type NumericDictionary struct {
	data         []byte
	bucketOffset []uint32
	headers      [][]uint32
	numEntries   int
	bucketSize   int
}

// BuildNumeric constructs a NumericDictionary from a list of id sequences.
// Sequences need not be sorted relative to one another (unlike the string
// dictionary, entries here are looked up by index, not by value) — only
// extraction by id is required.
func BuildNumeric(sequences [][]uint32, bucketSize int, log *slog.Logger) *NumericDictionary {
	if bucketSize <= 0 {
		bucketSize = DefaultBucketSize
	}
	if log == nil {
		log = slog.Default()
	}
	nd := &NumericDictionary{numEntries: len(sequences), bucketSize: bucketSize}
	for i := 0; i < len(sequences); i += bucketSize {
		end := i + bucketSize
		if end > len(sequences) {
			end = len(sequences)
		}
		nd.appendBucket(sequences[i:end])
	}
	log.Debug("dictionary: built numeric front-coded dictionary",
		slog.Int("entries", nd.numEntries), slog.Int("buckets", len(nd.headers)))
	return nd
}

func (nd *NumericDictionary) appendBucket(seqs [][]uint32) {
	nd.bucketOffset = append(nd.bucketOffset, uint32(len(nd.data)))
	header := seqs[0]
	nd.headers = append(nd.headers, header)
	nd.data = appendVarintSeq(nd.data, header)

	prev := header
	for _, s := range seqs[1:] {
		lcp := commonPrefixLenIDs(prev, s)
		nd.data = appendVarint(nd.data, uint64(lcp))
		nd.data = appendVarintSeq(nd.data, s[lcp:])
		prev = s
	}
}

func appendVarint(buf []byte, v uint64) []byte {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	return append(buf, b[:n]...)
}

func appendVarintSeq(buf []byte, ids []uint32) []byte {
	buf = appendVarint(buf, uint64(len(ids)))
	for _, id := range ids {
		buf = appendVarint(buf, uint64(id))
	}
	return buf
}

func commonPrefixLenIDs(a, b []uint32) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// NumEntries returns the number of stored sequences.
func (nd *NumericDictionary) NumEntries() int { return nd.numEntries }

// Extract returns the id sequence stored at index.
func (nd *NumericDictionary) Extract(index uint32) []uint32 {
	if int(index) >= nd.numEntries {
		panic("dictionary: numeric index out of bounds")
	}
	b := int(index) / nd.bucketSize
	within := int(index) % nd.bucketSize
	pos := nd.bucketOffset[b]

	cur, n := readVarintSeq(nd.data, pos)
	pos += uint32(n)
	for step := 0; step < within; step++ {
		lcp, n := binary.Uvarint(nd.data[pos:])
		pos += uint32(n)
		suffix, n2 := readVarintSeq(nd.data, pos)
		pos += uint32(n2)
		next := append(append([]uint32(nil), cur[:lcp]...), suffix...)
		cur = next
	}
	return cur
}

func readVarintSeq(data []byte, pos uint32) ([]uint32, int) {
	start := pos
	length, n := binary.Uvarint(data[pos:])
	pos += uint32(n)
	out := make([]uint32, length)
	for i := range out {
		v, n := binary.Uvarint(data[pos:])
		pos += uint32(n)
		out[i] = uint32(v)
	}
	return out, int(pos - start)
}

// Bytes returns an approximate memory footprint.
func (nd *NumericDictionary) Bytes() uint64 {
	return uint64(len(nd.data)) + uint64(len(nd.bucketOffset))*4
}
