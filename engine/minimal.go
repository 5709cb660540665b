package engine

import (
	"log/slog"

	"github.com/pombredanne/autocomplete/internal/dictionary"
	"github.com/pombredanne/autocomplete/internal/docslist"
)

// minimalDocsList is the "minimal-docs-list projection" spec.md §4.8 names
// for the single-incomplete-token conjunctive path: each dictionary term's
// minimal representative doc ids, concatenated in ascending term-id order
// so that a suffix dictionary range [lo, hi) — already contiguous in
// term-id space — maps onto a contiguous position range, the same
// contiguity trick the completion trie uses per prefix. The per-term
// sequences are stored front-coded in a NumericDictionary (spec.md §4.2's
// numeric dictionary variant) rather than kept as a bare Go slice, so the
// build file's per-term postings are actually compressed at rest, not just
// concatenated.
type minimalDocsList struct {
	list    *docslist.UnsortedList
	nd      *dictionary.NumericDictionary
	offsets []uint32 // len(numTokens)+1; term t's ids live in [offsets[t], offsets[t+1))
}

// buildMinimalDocsList front-codes postingsByTerm (term id -> representative
// doc ids, from the .mapped_minimal build file) through a NumericDictionary,
// then flattens it back out in ascending term-id order to build an
// UnsortedList ranked against the full corpus (numDoc), not the flattened
// array's own length — term segments repeat and omit doc ids, so they are
// not themselves a permutation of 0..len.
func buildMinimalDocsList(postingsByTerm map[uint32][]uint32, numTokens int, numDoc uint32, bucketSize int, log *slog.Logger) *minimalDocsList {
	sequences := make([][]uint32, numTokens)
	for t := 0; t < numTokens; t++ {
		sequences[t] = postingsByTerm[uint32(t)]
	}
	nd := dictionary.BuildNumeric(sequences, bucketSize, log)

	offsets := make([]uint32, numTokens+1)
	var flat []uint32
	for t := 0; t < numTokens; t++ {
		offsets[t] = uint32(len(flat))
		flat = append(flat, nd.Extract(uint32(t))...)
	}
	offsets[numTokens] = uint32(len(flat))

	return &minimalDocsList{list: docslist.BuildWithUniverse(flat, numDoc), nd: nd, offsets: offsets}
}

// Topk returns up to k doc ids (deduplicated) whose term lies in the
// dictionary-space range [suffixLo, suffixHi), ascending by doc id.
func (m *minimalDocsList) Topk(suffixLo, suffixHi uint32, k int) []uint32 {
	if suffixLo >= suffixHi || m.list.Len() == 0 {
		return nil
	}
	l, r := int(m.offsets[suffixLo]), int(m.offsets[suffixHi])
	if l >= r {
		return nil
	}
	return m.list.Topk(l, r, k, true)
}

// Bytes returns an approximate memory footprint.
func (m *minimalDocsList) Bytes() uint64 {
	return m.list.Bytes() + m.nd.Bytes() + uint64(len(m.offsets))*4
}
