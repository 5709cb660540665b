// Package postings implements the inverted index: per-token-id posting
// lists of sorted document ids, a plain Elias-Fano-backed variant and a
// blocked variant for higher-selectivity conjunctive queries, plus
// leapfrog (galloping) multi-list intersection.
package postings

import (
	"errors"
	"log/slog"

	"github.com/pombredanne/autocomplete/internal/eliasfano"
)

// ErrInvalidQuery is returned when intersection is asked to run over zero
// lists — there is no well-defined intersection of nothing.
var ErrInvalidQuery = errors.New("postings: intersection requires at least one term")

// Plain is a per-token-id posting-list inverted index, each list an
// ascending Elias-Fano sequence of document ids.
type Plain struct {
	lists  map[uint32]*eliasfano.Sequence
	numDoc uint32
	log    *slog.Logger
}

// BuildPlain constructs a Plain index from term id -> ascending doc ids.
func BuildPlain(postings map[uint32][]uint32, numDoc uint32, log *slog.Logger) *Plain {
	if log == nil {
		log = slog.Default()
	}
	lists := make(map[uint32]*eliasfano.Sequence, len(postings))
	for term, docs := range postings {
		lists[term] = eliasfano.Build(docs)
	}
	log.Debug("postings: built plain inverted index", slog.Int("terms", len(lists)), slog.Int("num_docs", int(numDoc)))
	return &Plain{lists: lists, numDoc: numDoc, log: log}
}

// NumDocs returns the size of the document-id universe.
func (p *Plain) NumDocs() uint32 { return p.numDoc }

// Iterator streams the posting list for termID in ascending order. Returns
// false as the second value if the term has no postings.
func (p *Plain) Iterator(termID uint32) (*eliasfano.Iterator, bool) {
	seq, ok := p.lists[termID]
	if !ok {
		return nil, false
	}
	return seq.Iterator(), true
}

// Len returns the length of termID's posting list, or 0 if absent.
func (p *Plain) Len(termID uint32) int {
	seq, ok := p.lists[termID]
	if !ok {
		return 0
	}
	return seq.Len()
}

// Bytes returns an approximate memory footprint.
func (p *Plain) Bytes() uint64 {
	var total uint64
	for _, seq := range p.lists {
		total += seq.Bytes()
	}
	return total
}

// IntersectionIterator walks the leapfrog (galloping) intersection of the
// posting lists for termIDs, in ascending doc-id order. termIDs must be
// non-empty — an empty slice is InvalidQuery (spec §4.6).
func (p *Plain) IntersectionIterator(termIDs []uint32) (*LeapfrogIterator, error) {
	if len(termIDs) == 0 {
		return nil, ErrInvalidQuery
	}
	iters := make([]*eliasfano.Iterator, len(termIDs))
	for i, t := range termIDs {
		it, ok := p.Iterator(t)
		if !ok {
			// a missing term has zero postings: intersection is empty.
			return &LeapfrogIterator{exhausted: true}, nil
		}
		iters[i] = it
	}
	return &LeapfrogIterator{iters: iters}, nil
}

// LeapfrogIterator performs galloping set intersection: advance the list
// with the smallest current value to >= the largest current value across
// all lists, repeat until they agree or one list is exhausted. Ascending
// and monotone — required by spec §9's open question on conjunctive
// top-k correctness.
type LeapfrogIterator struct {
	iters     []*eliasfano.Iterator
	exhausted bool
}

// Next returns the next doc id present in every list, or false when done.
func (it *LeapfrogIterator) Next() (uint32, bool) {
	if it.exhausted || len(it.iters) == 0 {
		return 0, false
	}
	for {
		max := uint32(0)
		for _, l := range it.iters {
			if !l.HasNext() {
				it.exhausted = true
				return 0, false
			}
			if v := l.Peek(); v > max {
				max = v
			}
		}
		allMatch := true
		for _, l := range it.iters {
			l.AdvanceIfNeeded(max)
			if !l.HasNext() {
				it.exhausted = true
				return 0, false
			}
			if l.Peek() != max {
				allMatch = false
			}
		}
		if allMatch {
			for _, l := range it.iters {
				l.Next()
			}
			return max, true
		}
	}
}
