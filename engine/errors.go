package engine

import "errors"

// ErrInvalidQuery is a precondition failure: k exceeds MaxK, or similar
// caller-contract violations (spec.md §7 — InvalidQuery is a programmer
// error, never degraded to an empty result).
var ErrInvalidQuery = errors.New("engine: invalid query")

// ErrCorruptIndex is returned by New when a completion names a token that
// the dictionary does not contain. Fatal: the engine is not constructed.
// Other structural faults are not reported through it: non-monotone
// postings and an out-of-order dictionary make construction panic, and
// component sizes are not cross-checked.
var ErrCorruptIndex = errors.New("engine: corrupt index")
