// Package chain defines core types and sentinel errors
// for the chain subpackage of github.com/convlab/rfield.
package chain

import "errors"

// Sentinel errors for chain construction and per-stage arithmetic.
var (
	// ErrStageConfig indicates a stage with kernel, stride, or dilation below 1.
	ErrStageConfig = errors.New("chain: kernel, stride and dilation must all be >= 1")
	// ErrEmptyChain indicates a chain with no stages.
	ErrEmptyChain = errors.New("chain: chain must contain at least one stage")
	// ErrNegativeLength indicates a negative length passed to a length function.
	ErrNegativeLength = errors.New("chain: length must be non-negative")
)

// Stage describes one scanning-window transform by the three parameters
// that govern its length mapping. All three must be >= 1; Dilation 1 is
// an ordinary dense kernel. A Stage is a plain immutable value.
type Stage struct {
	// Kernel is the kernel (filter) size in taps.
	Kernel int
	// Stride is the hop between consecutive output positions, in input positions.
	Stride int
	// Dilation is the spacing between kernel taps; 1 means dense.
	Dilation int
}

// EffectiveKernel returns the input span covered by one kernel application:
// (Kernel-1)*Dilation + 1.
func (s Stage) EffectiveKernel() int {
	return (s.Kernel-1)*s.Dilation + 1
}

// validate reports whether the stage parameters form a legal transform.
func (s Stage) validate() error {
	if s.Kernel < 1 || s.Stride < 1 || s.Dilation < 1 {
		return ErrStageConfig
	}
	return nil
}

// Chain is an ordered stack of Stages from raw input (index 0) to final
// output (index Len()-1). It is immutable once built and safe for
// concurrent use.
type Chain struct {
	stages []Stage
}
