// Package chain defines the Stage and Chain types at the heart of rfield:
// an immutable description of a stack of strided 1D transforms.
//
// 🚀 What is a chain?
//
//	A Stage is one scanning-window transform — a convolution, a pooling
//	layer, a dilated filter — reduced to the three numbers that decide
//	how it maps sequence lengths: kernel size, stride, and dilation.
//	A Chain is an ordered stack of Stages, index 0 closest to the raw
//	input, index Len()-1 closest to the final output.
//
// ✨ Key guarantees:
//
//   - Validation up front – New rejects any stage with kernel, stride,
//     or dilation below 1, and any empty stage list
//   - Immutability – a Chain never changes after construction; Stages()
//     hands back a copy, so callers cannot mutate the original
//   - Concurrency – all methods are read-only; one Chain may serve any
//     number of goroutines without locking
//
// ⚙️ Usage:
//
//	import "github.com/convlab/rfield/chain"
//
//	c, err := chain.New(
//	  chain.Stage{Kernel: 3, Stride: 1, Dilation: 1},
//	  chain.Stage{Kernel: 3, Stride: 2, Dilation: 1},
//	)
//	if err != nil {
//	  // handle ErrStageConfig / ErrEmptyChain
//	}
//	n, _ := c.Stage(0).OutputLen(5) // 3
//
// Per-stage arithmetic lives on Stage (OutputLen, MinInputLen); whole-chain
// propagation lives in the shape subpackage.
//
// See examples in example_test.go.
package chain
