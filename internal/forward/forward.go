// Package forward implements the forward index: per document, the sorted
// distinct set of token ids it contains (for membership tests against a
// suffix id range) plus the original written-order permutation over that
// set (for reconstructing the printed completion string).
package forward

import (
	"log/slog"
	"sort"

	"github.com/pombredanne/autocomplete/internal/bitpack"
	"github.com/pombredanne/autocomplete/internal/eliasfano"
)

// Index is the forward index over a fixed set of documents.
type Index struct {
	docs []docEntry
	log  *slog.Logger
}

type docEntry struct {
	sorted *eliasfano.Sequence // ascending distinct token ids
	perm   *bitpack.Vector     // original-order index into sorted, one per original token
}

// Build constructs a forward Index from each document's original-order
// token id sequence (spec's forward list, "<tokid1> <tokid2> ..." per doc,
// duplicates allowed in the source order).
func Build(originalOrder [][]uint32, log *slog.Logger) *Index {
	if log == nil {
		log = slog.Default()
	}
	docs := make([]docEntry, len(originalOrder))
	for i, tokens := range originalOrder {
		docs[i] = buildDoc(tokens)
	}
	log.Debug("forward: built forward index", slog.Int("num_docs", len(docs)))
	return &Index{docs: docs, log: log}
}

func buildDoc(tokens []uint32) docEntry {
	distinct := dedupeSorted(tokens)
	position := make(map[uint32]uint64, len(distinct))
	for i, id := range distinct {
		position[id] = uint64(i)
	}
	perm := make([]uint64, len(tokens))
	for i, id := range tokens {
		perm[i] = position[id]
	}
	entry := docEntry{perm: bitpack.Build(perm)}
	if len(distinct) > 0 {
		entry.sorted = eliasfano.Build(distinct)
	}
	return entry
}

func dedupeSorted(tokens []uint32) []uint32 {
	if len(tokens) == 0 {
		return nil
	}
	cp := append([]uint32(nil), tokens...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// NumDocs returns the number of documents.
func (idx *Index) NumDocs() int { return len(idx.docs) }

// Contains reports whether doc docID contains some token id in [lo, hi).
func (idx *Index) Contains(docID uint32, lo, hi uint32) bool {
	entry := idx.docs[docID]
	if entry.sorted == nil || entry.sorted.Len() == 0 {
		return false
	}
	v, ok := entry.sorted.NextGEQ(lo)
	return ok && v < hi
}

// PermutingIterator yields docID's token ids in their original written
// order.
func (idx *Index) PermutingIterator(docID uint32) *PermutingIterator {
	entry := idx.docs[docID]
	return &PermutingIterator{entry: entry, i: 0}
}

// PermutingIterator walks one document's tokens in original order.
type PermutingIterator struct {
	entry docEntry
	i     int
}

// Size returns the number of tokens in the document.
func (it *PermutingIterator) Size() int {
	if it.entry.perm == nil {
		return 0
	}
	return int(it.entry.perm.Len())
}

// HasNext reports whether another token remains.
func (it *PermutingIterator) HasNext() bool { return it.i < it.Size() }

// Next returns the next token id in original order and advances.
func (it *PermutingIterator) Next() uint32 {
	idx := it.entry.perm.Get(uint(it.i))
	it.i++
	return it.entry.sorted.Access(int(idx))
}

// Bytes returns an approximate memory footprint.
func (idx *Index) Bytes() uint64 {
	var total uint64
	for _, d := range idx.docs {
		if d.sorted != nil {
			total += d.sorted.Bytes()
		}
		if d.perm != nil {
			total += d.perm.Bytes()
		}
	}
	return total
}
