// Package dictionary implements the front-coded string dictionary: the
// bidirectional mapping between token strings and dense token ids.
//
// Tokens are stored lexicographically sorted and partitioned into buckets of
// BucketSize. Within a bucket, the first token (the header) is stored
// verbatim; each later token is stored as (lcp-with-previous byte,
// suffix-bytes, 0x00 terminator). A per-bucket header cache makes the two
// binary searches spec.md describes (locate, locate_prefix) O(log(n/B)).
package dictionary

import (
	"encoding/binary"
	"log/slog"
	"sort"
	"strings"
)

// DefaultBucketSize is the front-coding bucket size (spec.md §6, B=16).
const DefaultBucketSize = 16

const notFound = ^uint32(0)

// NotFound is returned by Locate when the string is absent.
const NotFound = notFound

// Dictionary is a front-coded, lexicographically sorted string dictionary.
type Dictionary struct {
	data         []byte
	bucketOffset []uint32
	headers      []string
	numTokens    int
	bucketSize   int
	log          *slog.Logger
}

// Build constructs a Dictionary from tokens already sorted lexicographically
// (the build pipeline's .dict file is pre-sorted — spec.md §6). Panics if
// tokens are not strictly increasing: out-of-order input is CorruptIndex,
// and the engine loader does not check for it before calling Build.
func Build(tokens []string, bucketSize int, log *slog.Logger) *Dictionary {
	if bucketSize <= 0 {
		bucketSize = DefaultBucketSize
	}
	if log == nil {
		log = slog.Default()
	}
	d := &Dictionary{numTokens: len(tokens), bucketSize: bucketSize, log: log}
	for i := 0; i < len(tokens); i += bucketSize {
		end := i + bucketSize
		if end > len(tokens) {
			end = len(tokens)
		}
		if i > 0 && tokens[i] <= tokens[i-1] {
			panic("dictionary: tokens must be strictly increasing")
		}
		d.appendBucket(tokens[i:end])
	}
	log.Debug("dictionary: built front-coded dictionary",
		slog.Int("tokens", d.numTokens), slog.Int("buckets", len(d.headers)), slog.Int("bucket_size", bucketSize))
	return d
}

func (d *Dictionary) appendBucket(tokens []string) {
	d.bucketOffset = append(d.bucketOffset, uint32(len(d.data)))
	header := tokens[0]
	d.headers = append(d.headers, header)
	d.data = appendVarString(d.data, header)

	prev := header
	for _, t := range tokens[1:] {
		if t <= prev {
			panic("dictionary: tokens must be strictly increasing")
		}
		lcp := commonPrefixLen(prev, t)
		if lcp > 255 {
			lcp = 255
		}
		d.data = append(d.data, byte(lcp))
		d.data = append(d.data, t[lcp:]...)
		d.data = append(d.data, 0x00)
		prev = t
	}
}

func appendVarString(buf []byte, s string) []byte {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
	buf = append(buf, lenBuf[:n]...)
	return append(buf, s...)
}

func commonPrefixLen(a, b string) int {
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

// NumTokens returns the number of stored tokens.
func (d *Dictionary) NumTokens() int { return d.numTokens }

func (d *Dictionary) numBuckets() int { return len(d.headers) }

// decodeBucket fully reconstructs the tokens of bucket b, in order.
func (d *Dictionary) decodeBucket(b int) []string {
	pos := d.bucketOffset[b]
	headerLen, n := binary.Uvarint(d.data[pos:])
	pos += uint32(n)
	cur := string(d.data[pos : pos+uint32(headerLen)])
	pos += uint32(headerLen)

	out := []string{cur}
	limit := uint32(len(d.data))
	if b+1 < len(d.bucketOffset) {
		limit = d.bucketOffset[b+1]
	}
	for pos < limit {
		lcp := int(d.data[pos])
		pos++
		start := pos
		for d.data[pos] != 0x00 {
			pos++
		}
		cur = cur[:lcp] + string(d.data[start:pos])
		pos++ // skip terminator
		out = append(out, cur)
	}
	return out
}

// Extract returns the token string for id. Out-of-bounds id is a
// programmer error and panics.
func (d *Dictionary) Extract(id uint32) string {
	if int(id) >= d.numTokens {
		panic("dictionary: id out of bounds")
	}
	b := int(id) / d.bucketSize
	within := int(id) % d.bucketSize
	tokens := d.decodeBucket(b)
	return tokens[within]
}

// lowerBound returns the smallest id whose token is >= target, or
// d.numTokens if none.
func (d *Dictionary) lowerBound(target string) uint32 {
	if d.numTokens == 0 {
		return 0
	}
	b := sort.Search(len(d.headers), func(i int) bool { return d.headers[i] > target }) - 1
	if b < 0 {
		b = 0
	}
	tokens := d.decodeBucket(b)
	j := sort.Search(len(tokens), func(i int) bool { return tokens[i] >= target })
	if j < len(tokens) {
		return uint32(b*d.bucketSize + j)
	}
	// every token in bucket b is < target: answer starts the next bucket.
	next := uint32((b + 1) * d.bucketSize)
	if next > uint32(d.numTokens) {
		return uint32(d.numTokens)
	}
	return next
}

// Locate returns the token id for s, or NotFound.
func (d *Dictionary) Locate(s string) uint32 {
	id := d.lowerBound(s)
	if id < uint32(d.numTokens) && d.Extract(id) == s {
		return id
	}
	return NotFound
}

// LocatePrefix returns the half-open id range [lo, hi) of tokens sharing the
// given byte prefix. The range is empty (lo == hi) iff no token matches.
func (d *Dictionary) LocatePrefix(prefix []byte) (lo, hi uint32) {
	ps := string(prefix)
	lo = d.lowerBound(ps)
	if lo >= uint32(d.numTokens) || !strings.HasPrefix(d.Extract(lo), ps) {
		return 0, 0
	}
	succ, unbounded := successor(ps)
	if unbounded {
		return lo, uint32(d.numTokens)
	}
	hi = d.lowerBound(succ)
	return lo, hi
}

// successor returns the lexicographically next string after the prefix
// range ps*, i.e. ps incremented at its last byte with carry. unbounded is
// true when ps consists entirely of 0xFF bytes (or is empty), meaning no
// string can follow the range — callers should treat hi as "end of
// dictionary" in that case.
func successor(ps string) (string, bool) {
	b := []byte(ps)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0xFF {
			b[i]++
			return string(b[:i+1]), false
		}
	}
	return "", true
}

// Bytes returns an approximate memory footprint.
func (d *Dictionary) Bytes() uint64 {
	return uint64(len(d.data)) + uint64(len(d.bucketOffset))*4
}
