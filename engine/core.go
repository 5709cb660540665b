// Package engine implements the query engine: parses a query string,
// orchestrates the dictionary/trie/docs-list/inverted-index/forward-index
// lookups spec.md §4.8 describes, and assembles top-k result strings.
//
// Two concrete engines are exposed — Engine (plain inverted index) and
// BlockedEngine (blocked inverted index, spec.md §4.6's higher-selectivity
// variant) — both instantiations of the same generic engineCore so that
// variant selection happens once at construction and every call inside a
// query is monomorphic (spec.md §9: "No polymorphic dispatch on the hot
// path").
package engine

import (
	"log/slog"

	"github.com/pombredanne/autocomplete/internal/dictionary"
	"github.com/pombredanne/autocomplete/internal/docslist"
	"github.com/pombredanne/autocomplete/internal/forward"
	"github.com/pombredanne/autocomplete/internal/trie"
)

// iterator is the shared shape of both inverted-index variants' ascending
// intersection iterators.
type iterator interface {
	Next() (uint32, bool)
}

// invertedIndex constrains the inverted-index type parameter: anything
// offering an ascending intersection iterator and a memory footprint.
type invertedIndex[It iterator] interface {
	IntersectionIterator(termIDs []uint32) (It, error)
	Bytes() uint64
}

// engineCore holds every index family a query touches. It, Idx are fixed at
// instantiation (see engine.go, blocked.go) — never chosen dynamically.
type engineCore[It iterator, Idx invertedIndex[It]] struct {
	dict     *dictionary.Dictionary
	trie     *trie.Trie
	docsList *docslist.UnsortedList
	minimal  *minimalDocsList
	forward  *forward.Index
	index    Idx

	maxK       uint32
	resultPool []byte
	log        *slog.Logger
}

// Bytes returns an approximate total memory footprint across every index
// family.
func (e *engineCore[It, Idx]) Bytes() uint64 {
	return e.dict.Bytes() + e.trie.Bytes() + e.docsList.Bytes() + e.minimal.Bytes() +
		e.forward.Bytes() + e.index.Bytes()
}

// PrefixTopk implements spec.md §4.8's "Prefix top-k": locate the query's
// prefix+suffix range in the completion trie, then extract the k
// smallest-doc-id (highest-score) leaves via the unsorted docs list's RMQ.
func (e *engineCore[It, Idx]) PrefixTopk(query string, k uint32) (*ResultIterator, error) {
	if k > e.maxK {
		return nil, ErrInvalidQuery
	}
	if k == 0 {
		return emptyResultIterator(), nil
	}
	p := parseQuery(e.dict, query)
	if p.notFound {
		return emptyResultIterator(), nil
	}

	prefixTrie := make([]uint32, len(p.completeIDs))
	for i, id := range p.completeIDs {
		prefixTrie[i] = id + 1 // spec.md §9 id-0 reservation: the +1 shift at the trie boundary
	}

	var trieLo, trieHi uint32
	if p.suffixEmpty {
		// No suffix constraint at all: cover every child at this node,
		// including the id-0 level-terminator (an exact match ending
		// here), not just the shifted dictionary range.
		trieLo, trieHi = 0, uint32(e.dict.NumTokens())+1
	} else {
		trieLo, trieHi = p.suffixLo+1, p.suffixHi+1
	}

	lo, hi, ok := e.trie.LocatePrefix(prefixTrie, trieLo, trieHi)
	if !ok {
		return emptyResultIterator(), nil
	}
	docs := e.docsList.Topk(int(lo), int(hi), int(k), false)
	return e.assemble(docs), nil
}

// ConjunctiveTopk implements spec.md §4.8's "Conjunctive top-k".
func (e *engineCore[It, Idx]) ConjunctiveTopk(query string, k uint32) (*ResultIterator, error) {
	if k > e.maxK {
		return nil, ErrInvalidQuery
	}
	if k == 0 {
		return emptyResultIterator(), nil
	}
	p := parseQuery(e.dict, query)
	if p.notFound {
		return emptyResultIterator(), nil
	}

	if len(p.completeIDs) == 0 {
		// Exactly one token, and it is incomplete (no complete tokens
		// precede it): the minimal-docs-list projection, not an
		// intersection of nothing.
		docs := e.minimal.Topk(p.suffixLo, p.suffixHi, int(k))
		return e.assemble(docs), nil
	}

	it, err := e.index.IntersectionIterator(p.completeIDs)
	if err != nil {
		return nil, err
	}
	docs := make([]uint32, 0, k)
	for uint32(len(docs)) < k {
		doc, has := it.Next()
		if !has {
			break
		}
		// The incomplete suffix participates only as a forward-index
		// range check, never as an intersection term (spec.md §9's
		// resolved open question).
		if e.forward.Contains(doc, p.suffixLo, p.suffixHi) {
			docs = append(docs, doc)
		}
	}
	return e.assemble(docs), nil
}

// assemble decodes docs (already in ascending doc-id / descending-score
// order, and already capped to k) into the shared result byte pool.
func (e *engineCore[It, Idx]) assemble(docs []uint32) *ResultIterator {
	e.resultPool = e.resultPool[:0]
	offsets := make([]int, 0, len(docs))
	scores := make([]uint32, 0, len(docs))
	numDoc := uint32(e.docsList.Len())

	for _, d := range docs {
		it := e.forward.PermutingIterator(d)
		first := true
		for it.HasNext() {
			tid := it.Next()
			if !first {
				e.resultPool = append(e.resultPool, ' ')
			}
			first = false
			e.resultPool = append(e.resultPool, e.dict.Extract(tid)...)
		}
		offsets = append(offsets, len(e.resultPool))
		scores = append(scores, numDoc-d)
	}

	return &ResultIterator{pool: e.resultPool, offsets: offsets, scores: scores}
}
