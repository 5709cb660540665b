// Package bitpack implements fixed-width packed integer vectors.
//
// A Vector stores n unsigned integers, each in the minimum number of bits
// needed to represent the largest value in the set, packed contiguously into
// a bitset.BitSet. This is the "fixed-width vector" of the integer-vector
// codecs: random access is O(width) bit tests, no per-element allocation.
//
// Used wherever a sequence is bounded but not necessarily monotone — a
// document's token-id permutation, blocked-postings within-block offsets.
package bitpack

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a read-only fixed-width packed integer array.
type Vector struct {
	bits  *bitset.BitSet
	width uint
	n     uint
}

// Build packs values into a Vector. width is derived from the largest value
// present; an explicit width may be forced (e.g. to keep widths uniform
// across sibling vectors) via BuildWidth.
func Build(values []uint64) *Vector {
	return BuildWidth(values, widthFor(values))
}

// BuildWidth packs values using a caller-supplied bit width. Panics if a
// value does not fit — this is a programmer error, not a runtime condition.
func BuildWidth(values []uint64, width uint) *Vector {
	v := &Vector{
		bits:  bitset.New(width * uint(len(values))),
		width: width,
		n:     uint(len(values)),
	}
	for i, x := range values {
		v.set(uint(i), x)
	}
	return v
}

func widthFor(values []uint64) uint {
	var max uint64
	for _, x := range values {
		if x > max {
			max = x
		}
	}
	return bitsNeeded(max)
}

func bitsNeeded(max uint64) uint {
	if max == 0 {
		return 1
	}
	var w uint
	for max > 0 {
		w++
		max >>= 1
	}
	return w
}

func (v *Vector) set(i uint, x uint64) {
	if v.width < 64 && x>>v.width != 0 {
		panic(fmt.Sprintf("bitpack: value %d does not fit in %d bits", x, v.width))
	}
	base := i * v.width
	for b := uint(0); b < v.width; b++ {
		if x&(1<<b) != 0 {
			v.bits.Set(base + b)
		}
	}
}

// Get returns the value at index i. Out-of-bounds access is a programmer
// error and panics.
func (v *Vector) Get(i uint) uint64 {
	if i >= v.n {
		panic(fmt.Sprintf("bitpack: index %d out of bounds (n=%d)", i, v.n))
	}
	base := i * v.width
	var x uint64
	for b := uint(0); b < v.width; b++ {
		if v.bits.Test(base + b) {
			x |= 1 << b
		}
	}
	return x
}

// Len returns the number of packed elements.
func (v *Vector) Len() uint { return v.n }

// Width returns the bit width used per element.
func (v *Vector) Width() uint { return v.width }

// Bytes returns an approximate memory footprint in bytes.
func (v *Vector) Bytes() uint64 {
	return uint64((v.width*v.n+7)/8) + 32
}
