package window

import (
	"sort"

	"github.com/convlab/rfield/chain"
	"github.com/convlab/rfield/shape"
)

// Selector plans training windows over the outputs of one chain.
// It holds no mutable state and may be shared across goroutines.
type Selector struct {
	chain *chain.Chain
}

// NewSelector binds a Selector to a chain.
// Returns chain.ErrEmptyChain for a nil or zero-stage chain.
func NewSelector(c *chain.Chain) (*Selector, error) {
	if c.Len() == 0 {
		return nil, chain.ErrEmptyChain
	}
	return &Selector{chain: c}, nil
}

// Plan builds a BatchPlan for the given raw input length and batch
// descriptor.
//
// Algorithm Outline:
//  1. Reconcile inputLen against the chain: the achievable output count
//     bounds all window placement; the surplus is carried into the plan.
//  2. Resolve window starts — i*Stride for i = 0..WindowCount-1, or the
//     explicit Starts sorted ascending. Coinciding starts are rejected.
//  3. Reject the plan if the last window would overrun the achievable
//     output range (ErrInsufficientLength). No partial plan is returned.
//  4. For each window, back-compute the raw input span of its output
//     range via shape.ReceptiveField. Input spans of different windows
//     may overlap; output ranges overlap only when Stride < Span.
//  5. Build the mask over [0, OutputLen): every in-window position for a
//     nil Select, otherwise only the Select offsets of each window.
//
// Errors:
//   - ErrWindowConfig          — WindowCount or Span < 1, Stride < 0,
//     negative or miscounted Starts.
//   - ErrDuplicateWindow       — two windows share a start position.
//   - ErrInsufficientLength    — windows do not fit the achievable range.
//   - ErrSelectionIndex        — a Select offset outside [0, Span).
//   - chain.ErrNegativeLength  — inputLen < 0.
//
// Complexity: O(WindowCount·Len + OutputLen) time.
func (s *Selector) Plan(inputLen int, opts Options) (*BatchPlan, error) {
	rec, err := shape.Reconcile(s.chain, inputLen)
	if err != nil {
		return nil, err
	}

	starts, err := resolveStarts(opts)
	if err != nil {
		return nil, err
	}
	for _, off := range opts.Select {
		if off < 0 || off >= opts.Span {
			return nil, ErrSelectionIndex
		}
	}

	// Largest placement that still fits decides feasibility as a whole.
	if starts[len(starts)-1]+opts.Span > rec.OutputLen {
		return nil, ErrInsufficientLength
	}

	windows := make([]Window, len(starts))
	mask := make([]bool, rec.OutputLen)
	for i, b := range starts {
		outputs := shape.Range{Begin: b, End: b + opts.Span}
		input, err := shape.ReceptiveField(s.chain, outputs.Begin, outputs.End)
		if err != nil {
			return nil, err
		}
		windows[i] = Window{Outputs: outputs, Input: input}

		if opts.Select == nil {
			for p := outputs.Begin; p < outputs.End; p++ {
				mask[p] = true
			}
		} else {
			for _, off := range opts.Select {
				mask[b+off] = true
			}
		}
	}

	return &BatchPlan{
		Windows:   windows,
		Mask:      mask,
		InputLen:  rec.InputLen,
		OutputLen: rec.OutputLen,
		Surplus:   rec.Surplus,
	}, nil
}

// resolveStarts validates the descriptor and returns the ascending window
// start positions.
func resolveStarts(opts Options) ([]int, error) {
	if opts.WindowCount < 1 || opts.Span < 1 || opts.Stride < 0 {
		return nil, ErrWindowConfig
	}

	if opts.Starts != nil {
		if len(opts.Starts) != opts.WindowCount {
			return nil, ErrWindowConfig
		}
		starts := make([]int, len(opts.Starts))
		copy(starts, opts.Starts)
		sort.Ints(starts)
		for i, b := range starts {
			if b < 0 {
				return nil, ErrWindowConfig
			}
			if i > 0 && b == starts[i-1] {
				return nil, ErrDuplicateWindow
			}
		}
		return starts, nil
	}

	stride := opts.Stride
	if stride == 0 {
		stride = opts.Span
	}
	starts := make([]int, opts.WindowCount)
	for i := range starts {
		starts[i] = i * stride
	}
	return starts, nil
}
