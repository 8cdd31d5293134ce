// Package shape propagates sequence lengths through a chain of strided
// transforms, in both directions, and reconciles the two ends.
//
// 🚀 What does shape answer?
//
//	Given a chain.Chain, four questions:
//	  • MinInputLen  — backward pass: the minimum raw input length that
//	    realizes exactly N final outputs
//	  • OutputLen    — forward pass: the number of final outputs actually
//	    achievable from L raw input positions
//	  • Reconcile    — forward then backward: a self-consistent
//	    (consumed input, achievable output) pair, with the surplus raw
//	    input reported rather than silently dropped
//	  • ReceptiveField / OutputRange — interval forms of the same two
//	    passes, mapping index ranges instead of bare lengths
//
// The two directions are deliberately not exact inverses:
// OutputLen(MinInputLen(n)) == n always, but MinInputLen(OutputLen(m))
// may fall short of m — trailing positions that do not complete a stride
// are dropped, exactly as fixed-stride sampling drops them. Reconcile
// exists to make that truncation explicit.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/convlab/rfield/chain"
//	  "github.com/convlab/rfield/shape"
//	)
//
//	c, _ := chain.New(
//	  chain.Stage{Kernel: 3, Stride: 1, Dilation: 1},
//	  chain.Stage{Kernel: 3, Stride: 2, Dilation: 1},
//	)
//
//	need, _ := shape.MinInputLen(c, 1) // 5
//	got, _ := shape.OutputLen(c, 7)    // 2
//	rec, _ := shape.Reconcile(c, 8)    // {InputLen:7 OutputLen:2 Surplus:1}
//
// Performance: every operation is a single pass over the chain —
// Time O(Len()), Memory O(1) (O(Len()) for the *Trace variants).
//
// All operations are pure and lock-free; a Chain may be shared across
// goroutines freely.
package shape
