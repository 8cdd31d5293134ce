// Package window selects aligned training windows over the outputs of a
// chain of strided transforms, and builds the batch plan and loss mask
// that a training loop consumes.
//
// 🚀 What is a window plan?
//
//	Given a raw input length and a batch descriptor (window count, output
//	span per window, stride between windows), the Selector:
//	  1. reconciles the input length against the chain (shape.Reconcile)
//	  2. places the windows over the achievable output range
//	  3. back-computes each window's raw input span (shape.ReceptiveField)
//	  4. marks the in-register output positions in a boolean mask
//
// ✨ Key behaviors:
//
//   - One stride knob, two policies – Stride == Span packs windows
//     consecutively (maximum locality); Stride > Span spreads them across
//     the input (less within-batch correlation). Both run the same code.
//   - Input overlap is normal – receptive fields of adjacent windows
//     usually overlap in raw input even when their output ranges do not.
//   - Sub-selection – Select marks only some in-window offsets as
//     in-register; the rest stay in the window (the input span still
//     covers them) but are excluded from the primary loss term.
//   - All-or-nothing – on any error no partial plan is returned.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/convlab/rfield/chain"
//	  "github.com/convlab/rfield/window"
//	)
//
//	c, _ := chain.FromTriples([][3]int{{3, 1, 1}, {3, 2, 1}})
//	sel, _ := window.NewSelector(c)
//
//	plan, err := sel.Plan(4000, window.Options{WindowCount: 4, Span: 8})
//	if err != nil {
//	  // handle ErrInsufficientLength, ErrDuplicateWindow, ...
//	}
//	for _, w := range plan.Windows {
//	  _ = w.Input // slice the raw waveform with this range
//	}
//
// Performance: O(WindowCount · Len) time, O(WindowCount + OutputLen) memory.
//
// The Selector is stateless beyond its chain reference and safe for
// concurrent use.
package window
