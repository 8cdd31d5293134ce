// Package shape defines result types and sentinel errors
// for the shape subpackage of github.com/convlab/rfield.
package shape

import "errors"

// Sentinel errors for shape propagation.
var (
	// ErrInvalidRange indicates range bounds that are negative or inverted.
	ErrInvalidRange = errors.New("shape: range bounds must be non-negative and ordered")
)

// Range is a half-open index interval [Begin, End).
type Range struct {
	Begin int
	End   int
}

// Len returns the number of positions in the range.
func (r Range) Len() int { return r.End - r.Begin }

// Empty reports whether the range contains no positions.
func (r Range) Empty() bool { return r.End <= r.Begin }

// Contains reports whether index i lies inside the range.
func (r Range) Contains(i int) bool { return i >= r.Begin && i < r.End }

// Reconciled is a mutually consistent pair of sequence lengths for a chain,
// produced by Reconcile: running the forward pass on InputLen yields exactly
// OutputLen, and the backward pass on OutputLen yields exactly InputLen.
// Surplus is the trailing raw input left unconsumed by the original,
// possibly unaligned, length.
type Reconciled struct {
	// InputLen is the exact raw input length consumed.
	InputLen int
	// OutputLen is the number of final outputs achievable from InputLen.
	OutputLen int
	// Surplus is the unused trailing input: original length minus InputLen.
	Surplus int
}
