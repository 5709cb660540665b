// Package serialize implements the persisted index layout spec.md §6
// describes: a single little-endian binary blob whose components serialize
// raw integer arrays prefixed with length fields, visited in a fixed order
// (completions, unsorted list, minimal unsorted list, dictionary, inverted,
// forward) so that writing and reading share one traversal. Modeled after
// the teacher's serialization.go Encode/Decode pair and length-prefixed
// binary.Write convention, generalized from one component (an inverted
// index) to the full six-component engine.
//
// The persisted form stores the raw build inputs each component needs to
// reconstruct itself deterministically (token strings, doc-id permutations,
// postings, forward lists) rather than the in-memory compressed
// representation byte-for-byte — the compressed structures (Elias-Fano
// sequences, front-coded buckets, the Cartesian tree) are rebuilt from this
// on load, matching how the teacher's own Decode reconstructs skip-list
// towers from stored positions rather than memory-mapping them directly.
package serialize

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrCorruptIndex is returned when persisted data violates a structural
// expectation: bad magic, truncated stream, a length field that disagrees
// with the bytes that follow it.
var ErrCorruptIndex = errors.New("serialize: corrupt index")

const magic = uint32(0xA17b1a2e)

// BuildInputs holds everything needed to reconstruct the six persisted
// components. Completions are trie-space token ids (already +1 shifted),
// one tuple per document id, descending-score order. Forward holds the
// same documents' token ids in original written order, dictionary-space
// (0-based), for forward-index construction.
type BuildInputs struct {
	Tokens          []string
	Completions     [][]uint32
	DocIDs          []uint32
	MinimalPostings map[uint32][]uint32
	Postings        map[uint32][]uint32
	NumDoc          uint32
	Forward         [][]uint32
}

// Visitor is implemented once to write and once to read; Traverse drives
// both through the same fixed component order.
type Visitor interface {
	VisitCompletions(completions [][]uint32) ([][]uint32, error)
	VisitDocsList(docIDs []uint32) ([]uint32, error)
	VisitMinimalDocsList(postings map[uint32][]uint32) (map[uint32][]uint32, error)
	VisitDictionary(tokens []string) ([]string, error)
	VisitInverted(postings map[uint32][]uint32, numDoc uint32) (map[uint32][]uint32, uint32, error)
	VisitForward(forward [][]uint32) ([][]uint32, error)
}

// Traverse visits in's components in the fixed persisted order, returning
// whatever the visitor produced (for a writer, the same values; for a
// reader, the values parsed off the wire).
func Traverse(v Visitor, in *BuildInputs) (*BuildInputs, error) {
	out := &BuildInputs{}
	var err error
	if out.Completions, err = v.VisitCompletions(in.Completions); err != nil {
		return nil, fmt.Errorf("serialize: completions: %w", err)
	}
	if out.DocIDs, err = v.VisitDocsList(in.DocIDs); err != nil {
		return nil, fmt.Errorf("serialize: unsorted list: %w", err)
	}
	if out.MinimalPostings, err = v.VisitMinimalDocsList(in.MinimalPostings); err != nil {
		return nil, fmt.Errorf("serialize: minimal unsorted list: %w", err)
	}
	if out.Tokens, err = v.VisitDictionary(in.Tokens); err != nil {
		return nil, fmt.Errorf("serialize: dictionary: %w", err)
	}
	if out.Postings, out.NumDoc, err = v.VisitInverted(in.Postings, in.NumDoc); err != nil {
		return nil, fmt.Errorf("serialize: inverted: %w", err)
	}
	if out.Forward, err = v.VisitForward(in.Forward); err != nil {
		return nil, fmt.Errorf("serialize: forward: %w", err)
	}
	return out, nil
}

// Write encodes in to w in the fixed component order.
func Write(w io.Writer, in *BuildInputs) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, magic); err != nil {
		return fmt.Errorf("serialize: write magic: %w", err)
	}
	if _, err := Traverse(&writerVisitor{w: bw}, in); err != nil {
		return err
	}
	return bw.Flush()
}

// Read decodes a BuildInputs from r, in the same fixed order Write used.
func Read(r io.Reader) (*BuildInputs, error) {
	br := bufio.NewReader(r)
	var m uint32
	if err := binary.Read(br, binary.LittleEndian, &m); err != nil {
		return nil, fmt.Errorf("serialize: read magic: %w", err)
	}
	if m != magic {
		return nil, fmt.Errorf("%w: bad magic %x", ErrCorruptIndex, m)
	}
	rv := &readerVisitor{r: br}
	out, err := Traverse(rv, &BuildInputs{})
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: truncated stream: %v", ErrCorruptIndex, err)
		}
		return nil, err
	}
	if rv.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptIndex, rv.err)
	}
	return out, nil
}

// ─── writer visitor ────────────────────────────────────────────────────

type writerVisitor struct {
	w   *bufio.Writer
	err error
}

func (wv *writerVisitor) VisitCompletions(completions [][]uint32) ([][]uint32, error) {
	return completions, wv.writeTuples(completions)
}

func (wv *writerVisitor) VisitDocsList(docIDs []uint32) ([]uint32, error) {
	return docIDs, wv.writeUint32Slice(docIDs)
}

func (wv *writerVisitor) VisitMinimalDocsList(postings map[uint32][]uint32) (map[uint32][]uint32, error) {
	return postings, wv.writePostingsByTerm(postings)
}

func (wv *writerVisitor) VisitDictionary(tokens []string) ([]string, error) {
	return tokens, wv.writeStringSlice(tokens)
}

func (wv *writerVisitor) VisitInverted(postings map[uint32][]uint32, numDoc uint32) (map[uint32][]uint32, uint32, error) {
	if err := wv.writeUint32(numDoc); err != nil {
		return nil, 0, err
	}
	return postings, numDoc, wv.writePostingsByTerm(postings)
}

func (wv *writerVisitor) writePostingsByTerm(postings map[uint32][]uint32) error {
	terms := make([]uint32, 0, len(postings))
	for t := range postings {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i] < terms[j] })
	if err := wv.writeUint32(uint32(len(terms))); err != nil {
		return err
	}
	for _, t := range terms {
		if err := wv.writeUint32(t); err != nil {
			return err
		}
		if err := wv.writeUint32Slice(postings[t]); err != nil {
			return err
		}
	}
	return nil
}

func (wv *writerVisitor) VisitForward(forward [][]uint32) ([][]uint32, error) {
	return forward, wv.writeTuples(forward)
}

func (wv *writerVisitor) writeUint32(v uint32) error {
	return binary.Write(wv.w, binary.LittleEndian, v)
}

func (wv *writerVisitor) writeUint32Slice(vs []uint32) error {
	if err := wv.writeUint32(uint32(len(vs))); err != nil {
		return err
	}
	for _, v := range vs {
		if err := wv.writeUint32(v); err != nil {
			return err
		}
	}
	return nil
}

func (wv *writerVisitor) writeTuples(tuples [][]uint32) error {
	if err := wv.writeUint32(uint32(len(tuples))); err != nil {
		return err
	}
	for _, t := range tuples {
		if err := wv.writeUint32Slice(t); err != nil {
			return err
		}
	}
	return nil
}

func (wv *writerVisitor) writeStringSlice(ss []string) error {
	if err := wv.writeUint32(uint32(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		b := []byte(s)
		if err := wv.writeUint32(uint32(len(b))); err != nil {
			return err
		}
		if _, err := wv.w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// ─── reader visitor ────────────────────────────────────────────────────

type readerVisitor struct {
	r   *bufio.Reader
	err error
}

func (rv *readerVisitor) VisitCompletions(_ [][]uint32) ([][]uint32, error) {
	return rv.readTuples()
}

func (rv *readerVisitor) VisitDocsList(_ []uint32) ([]uint32, error) {
	return rv.readUint32Slice()
}

func (rv *readerVisitor) VisitMinimalDocsList(_ map[uint32][]uint32) (map[uint32][]uint32, error) {
	return rv.readPostingsByTerm()
}

func (rv *readerVisitor) VisitDictionary(_ []string) ([]string, error) {
	return rv.readStringSlice()
}

func (rv *readerVisitor) VisitInverted(_ map[uint32][]uint32, _ uint32) (map[uint32][]uint32, uint32, error) {
	numDoc, err := rv.readUint32()
	if err != nil {
		return nil, 0, err
	}
	postings, err := rv.readPostingsByTerm()
	if err != nil {
		return nil, 0, err
	}
	return postings, numDoc, nil
}

func (rv *readerVisitor) readPostingsByTerm() (map[uint32][]uint32, error) {
	numTerms, err := rv.readUint32()
	if err != nil {
		return nil, err
	}
	postings := make(map[uint32][]uint32, numTerms)
	for i := uint32(0); i < numTerms; i++ {
		term, err := rv.readUint32()
		if err != nil {
			return nil, err
		}
		ids, err := rv.readUint32Slice()
		if err != nil {
			return nil, err
		}
		postings[term] = ids
	}
	return postings, nil
}

func (rv *readerVisitor) VisitForward(_ [][]uint32) ([][]uint32, error) {
	return rv.readTuples()
}

func (rv *readerVisitor) readUint32() (uint32, error) {
	var v uint32
	if err := binary.Read(rv.r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func (rv *readerVisitor) readUint32Slice() ([]uint32, error) {
	n, err := rv.readUint32()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		if out[i], err = rv.readUint32(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (rv *readerVisitor) readTuples() ([][]uint32, error) {
	n, err := rv.readUint32()
	if err != nil {
		return nil, err
	}
	out := make([][]uint32, n)
	for i := range out {
		if out[i], err = rv.readUint32Slice(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (rv *readerVisitor) readStringSlice() ([]string, error) {
	n, err := rv.readUint32()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		l, err := rv.readUint32()
		if err != nil {
			return nil, err
		}
		b := make([]byte, l)
		if _, err := io.ReadFull(rv.r, b); err != nil {
			return nil, err
		}
		out[i] = string(b)
	}
	return out, nil
}
