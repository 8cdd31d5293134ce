// Package window defines options, result types, and sentinel errors
// for the window subpackage of github.com/convlab/rfield.
package window

import (
	"errors"

	"github.com/convlab/rfield/shape"
)

// Sentinel errors for window planning.
var (
	// ErrWindowConfig indicates a non-positive window count or span, or a
	// negative stride or start offset.
	ErrWindowConfig = errors.New("window: window count and span must be >= 1, stride and starts non-negative")
	// ErrInsufficientLength indicates the achievable output range cannot fit
	// the requested windows.
	ErrInsufficientLength = errors.New("window: input too short for requested windows")
	// ErrDuplicateWindow indicates two requested windows share a start position.
	ErrDuplicateWindow = errors.New("window: duplicate window start")
	// ErrSelectionIndex indicates a sub-selection offset outside [0, Span).
	ErrSelectionIndex = errors.New("window: selection offset outside window span")
)

// Options is the batch descriptor consumed by Selector.Plan.
//
// Fields:
//   - WindowCount — number of windows in the batch; must be >= 1.
//   - Span        — final-output positions per window; must be >= 1.
//   - Stride      — distance between consecutive window starts, in output
//     positions. 0 means Span (consecutive windows). Stride > Span spreads
//     windows apart; Stride < Span makes their output ranges overlap.
//   - Select      — optional in-window offsets (each in [0, Span)) marked
//     in-register. Nil selects every position in every window.
//   - Starts      — optional explicit window start positions, overriding
//     the Stride placement. Sorted ascending before use; duplicates are
//     rejected. Len must equal WindowCount when non-nil.
//
// Example:
//
//	opts := window.Options{
//	  WindowCount: 3,
//	  Span:        2,
//	  Stride:      5,        // spread: starts 0, 5, 10
//	  Select:      []int{1}, // only the last position of each window
//	}
type Options struct {
	WindowCount int
	Span        int
	Stride      int
	Select      []int
	Starts      []int
}

// DefaultOptions returns consecutive, fully selected placement for the
// given window count and span.
func DefaultOptions(count, span int) Options {
	return Options{
		WindowCount: count,
		Span:        span,
		Stride:      span,
	}
}

// Window is one selected slice of work: a range of final-output positions
// in prediction order, and the raw-input range that feeds all of them.
type Window struct {
	// Outputs is the final-output index range [Begin, End) of this window.
	Outputs shape.Range
	// Input is the raw-input index range whose positions influence every
	// output in Outputs.
	Input shape.Range
}

// BatchPlan is the complete result of Selector.Plan, in batch order
// (ascending input offset).
type BatchPlan struct {
	// Windows holds the selected windows, ascending by output start.
	Windows []Window
	// Mask flags each absolute final-output position in [0, OutputLen) as
	// in-register (true: counted toward the loss) or not. Positions inside
	// a window but not sub-selected stay false.
	Mask []bool
	// InputLen is the reconciled raw input length actually consumed.
	InputLen int
	// OutputLen is the achievable final output count for InputLen.
	OutputLen int
	// Surplus is the trailing raw input left over by reconciliation.
	Surplus int
}

// Selected returns the absolute output indices marked in-register, ascending.
func (p *BatchPlan) Selected() []int {
	var out []int
	for i, on := range p.Mask {
		if on {
			out = append(out, i)
		}
	}
	return out
}
