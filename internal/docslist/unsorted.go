// Package docslist implements the unsorted docs list: top-k extraction over
// an arbitrary index range of a permutation of document ids, driven by a
// Cartesian-tree RMQ (spec.md §4.4).
package docslist

import (
	"container/heap"

	"github.com/pombredanne/autocomplete/internal/rmq"
)

// UnsortedList holds a permutation of document ids and answers topk queries
// over arbitrary subranges by repeatedly splitting at the range's current
// best (smallest doc-id / highest-score) element, found via RMQ.
type UnsortedList struct {
	docIDs []uint32
	tree   *rmq.CartesianTree
}

// Build constructs an UnsortedList from a permutation of document ids.
// Scores are never stored explicitly: score[i] = N - docIDs[i], the
// "score-is-rank" shortcut spec.md §9 calls out as load-bearing. N is taken
// to be len(docIDs), which holds whenever docIDs really is a permutation of
// 0..N (the completion-trie leaf case).
func Build(docIDs []uint32) *UnsortedList {
	return BuildWithUniverse(docIDs, uint32(len(docIDs)))
}

// BuildWithUniverse is Build with an explicit document-id universe size,
// for callers whose doc-id array is not itself a 0..len(docIDs) permutation
// — e.g. the minimal-docs-list projection, which concatenates per-term
// representative doc ids (possibly repeating, possibly shorter than the
// corpus) and must still rank against the corpus-wide doc-id space so that
// "smallest doc id" keeps meaning "highest score".
func BuildWithUniverse(docIDs []uint32, universe uint32) *UnsortedList {
	scores := make([]uint32, len(docIDs))
	for i, id := range docIDs {
		scores[i] = universe - id
	}
	return &UnsortedList{docIDs: append([]uint32(nil), docIDs...), tree: rmq.Build(scores)}
}

// Len returns the number of stored document ids.
func (u *UnsortedList) Len() int { return len(u.docIDs) }

// Bytes returns an approximate memory footprint.
func (u *UnsortedList) Bytes() uint64 {
	return uint64(len(u.docIDs))*4 + u.tree.Bytes()
}

type rangeEntry struct {
	l, r  int
	docID uint32
}

type rangeHeap []rangeEntry

func (h rangeHeap) Len() int            { return len(h) }
func (h rangeHeap) Less(i, j int) bool  { return h[i].docID < h[j].docID }
func (h rangeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rangeHeap) Push(x interface{}) { *h = append(*h, x.(rangeEntry)) }
func (h *rangeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Topk finds the k smallest document ids within docIDs[l:r) — equivalently,
// the k highest-scoring entries, since doc-id equals rank. The emitted ids
// are returned in ascending doc-id order; without unique, there are
// min(k, r-l) of them.
//
// When unique is true, entries whose document id was already emitted by a
// prior range (the minimal-docs-list case, where a document may be the
// "minimal representative" doc more than once) are skipped rather than
// re-emitted.
func (u *UnsortedList) Topk(l, r int, k int, unique bool) []uint32 {
	if l >= r || k <= 0 {
		return nil
	}
	h := &rangeHeap{}
	heap.Init(h)
	u.pushRange(h, l, r)

	var out []uint32
	var seen map[uint32]struct{}
	if unique {
		seen = make(map[uint32]struct{})
	}
	for h.Len() > 0 && len(out) < k {
		top := heap.Pop(h).(rangeEntry)

		emit := true
		if unique {
			if _, dup := seen[top.docID]; dup {
				emit = false
			} else {
				seen[top.docID] = struct{}{}
			}
		}
		if emit {
			out = append(out, top.docID)
		}

		// Split regardless of whether this entry was emitted: a
		// duplicate's sub-ranges may still hold ids not yet seen.
		idx := u.argmaxIndex(top.l, top.r)
		u.pushRange(h, top.l, idx)
		u.pushRange(h, idx+1, top.r)
	}
	return out
}

func (u *UnsortedList) pushRange(h *rangeHeap, l, r int) {
	if l >= r {
		return
	}
	idx := u.argmaxIndex(l, r)
	heap.Push(h, rangeEntry{l: l, r: r, docID: u.docIDs[idx]})
}

func (u *UnsortedList) argmaxIndex(l, r int) int {
	idx, _ := u.tree.Query(l, r)
	return idx
}
