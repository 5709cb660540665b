package postings

import (
	"log/slog"

	"github.com/pombredanne/autocomplete/internal/bitpack"
	"github.com/pombredanne/autocomplete/internal/eliasfano"
)

// DefaultBlockSize is the number of postings per block in a Blocked list.
const DefaultBlockSize = 128

// Blocked partitions each posting list into blocks of blockSize postings:
// a skip sequence of block-starting doc ids (itself Elias-Fano
// compressed, since it is monotone) lets intersection skip whole blocks
// before falling back to a fixed-width within-block offset scan. Favoured
// over Plain for high-selectivity conjunctive queries (spec §4.6).
type Blocked struct {
	blockSize int
	lists     map[uint32]*blockedList
	numDoc    uint32
	log       *slog.Logger
}

type blockedList struct {
	blockStarts *eliasfano.Sequence // one entry per block: its first doc id
	blockLens   []int               // number of postings in each block
	offsets     *bitpack.Vector     // within-block delta from blockStarts[b], concatenated across blocks
	n           int
}

// BuildBlocked constructs a Blocked index from term id -> ascending doc ids.
func BuildBlocked(postingsByTerm map[uint32][]uint32, numDoc uint32, blockSize int, log *slog.Logger) *Blocked {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if log == nil {
		log = slog.Default()
	}
	lists := make(map[uint32]*blockedList, len(postingsByTerm))
	for term, docs := range postingsByTerm {
		lists[term] = buildBlockedList(docs, blockSize)
	}
	log.Debug("postings: built blocked inverted index", slog.Int("terms", len(lists)), slog.Int("block_size", blockSize))
	return &Blocked{blockSize: blockSize, lists: lists, numDoc: numDoc, log: log}
}

func buildBlockedList(docs []uint32, blockSize int) *blockedList {
	if len(docs) == 0 {
		return &blockedList{n: 0}
	}
	var starts []uint32
	var lens []int
	var deltas []uint64
	for i := 0; i < len(docs); i += blockSize {
		end := i + blockSize
		if end > len(docs) {
			end = len(docs)
		}
		block := docs[i:end]
		starts = append(starts, block[0])
		lens = append(lens, len(block))
		for _, d := range block {
			deltas = append(deltas, uint64(d-block[0]))
		}
	}
	return &blockedList{
		blockStarts: eliasfano.Build(starts),
		blockLens:   lens,
		offsets:     bitpack.Build(deltas),
		n:           len(docs),
	}
}

// NumDocs returns the size of the document-id universe.
func (b *Blocked) NumDocs() uint32 { return b.numDoc }

// Len returns the length of termID's posting list.
func (b *Blocked) Len(termID uint32) int {
	l, ok := b.lists[termID]
	if !ok {
		return 0
	}
	return l.n
}

// Bytes returns an approximate memory footprint.
func (b *Blocked) Bytes() uint64 {
	var total uint64
	for _, l := range b.lists {
		if l.blockStarts != nil {
			total += l.blockStarts.Bytes()
		}
		if l.offsets != nil {
			total += l.offsets.Bytes()
		}
	}
	return total
}

// Iterator returns a skip-ahead ascending iterator over termID's postings.
func (b *Blocked) Iterator(termID uint32) (*BlockedIterator, bool) {
	l, ok := b.lists[termID]
	if !ok || l.n == 0 {
		return nil, false
	}
	return &BlockedIterator{list: l, block: 0, within: 0}, true
}

// BlockedIterator walks a blockedList in ascending order, skipping whole
// blocks on NextGEQ before scanning within the target block.
type BlockedIterator struct {
	list   *blockedList
	block  int
	within int
}

func (it *BlockedIterator) globalIndex() int {
	idx := it.within
	for b := 0; b < it.block; b++ {
		idx += it.list.blockLens[b]
	}
	return idx
}

// HasNext reports whether another doc id remains.
func (it *BlockedIterator) HasNext() bool {
	return it.block < len(it.list.blockLens)
}

// Peek returns the current doc id without advancing.
func (it *BlockedIterator) Peek() uint32 {
	start := it.list.blockStarts.Access(it.block)
	delta := it.list.offsets.Get(uint(it.globalIndex()))
	return start + uint32(delta)
}

// Next returns the current doc id and advances.
func (it *BlockedIterator) Next() uint32 {
	v := it.Peek()
	it.within++
	if it.within >= it.list.blockLens[it.block] {
		it.within = 0
		it.block++
	}
	return v
}

// AdvanceIfNeeded skips whole blocks whose range cannot contain minval, then
// linear-scans within the landing block — the "coarser then finer
// resolution" spec §4.6 describes.
func (it *BlockedIterator) AdvanceIfNeeded(minval uint32) {
	if !it.HasNext() {
		return
	}
	if it.Peek() >= minval {
		return
	}
	// coarse: move to the last block whose start is <= minval; every
	// earlier block ends below that start, so the answer lies in the
	// landing block or a later one.
	for it.block < len(it.list.blockLens)-1 && it.list.blockStarts.Access(it.block+1) <= minval {
		it.block++
		it.within = 0
	}
	// fine: linear scan within the landing block.
	for it.HasNext() && it.Peek() < minval {
		it.within++
		if it.within >= it.list.blockLens[it.block] {
			it.within = 0
			it.block++
			if !it.HasNext() {
				return
			}
		}
	}
}

// IntersectionIterator performs leapfrog intersection over Blocked lists.
func (b *Blocked) IntersectionIterator(termIDs []uint32) (*BlockedLeapfrogIterator, error) {
	if len(termIDs) == 0 {
		return nil, ErrInvalidQuery
	}
	iters := make([]*BlockedIterator, len(termIDs))
	for i, t := range termIDs {
		it, ok := b.Iterator(t)
		if !ok {
			return &BlockedLeapfrogIterator{exhausted: true}, nil
		}
		iters[i] = it
	}
	return &BlockedLeapfrogIterator{iters: iters}, nil
}

// BlockedLeapfrogIterator is the Blocked-index analogue of LeapfrogIterator.
type BlockedLeapfrogIterator struct {
	iters     []*BlockedIterator
	exhausted bool
}

// Next returns the next doc id present in every list, or false when done.
func (it *BlockedLeapfrogIterator) Next() (uint32, bool) {
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
