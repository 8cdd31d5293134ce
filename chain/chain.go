package chain

// New builds an immutable Chain from the given Stages, in order: stages[0]
// is closest to the raw input, the last stage closest to the final output.
//
// Returns ErrEmptyChain when no stages are given and ErrStageConfig when
// any stage has kernel, stride, or dilation below 1. The stage slice is
// copied; the caller keeps no handle into the Chain.
//
// Complexity: O(n) over the number of stages.
func New(stages ...Stage) (*Chain, error) {
	if len(stages) == 0 {
		return nil, ErrEmptyChain
	}
	owned := make([]Stage, len(stages))
	for i, s := range stages {
		if err := s.validate(); err != nil {
			return nil, err
		}
		owned[i] = s
	}
	return &Chain{stages: owned}, nil
}

// FromTriples builds a Chain from (kernel, stride, dilation) triples, the
// form in which model-definition layers usually hand over a stack.
// A dilation of 0 in a triple is treated as the default 1.
//
// Returns the same errors as New.
func FromTriples(triples [][3]int) (*Chain, error) {
	stages := make([]Stage, len(triples))
	for i, t := range triples {
		d := t[2]
		if d == 0 {
			d = 1
		}
		stages[i] = Stage{Kernel: t[0], Stride: t[1], Dilation: d}
	}
	return New(stages...)
}

// Len returns the number of stages in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.stages)
}

// Stage returns the i-th stage, 0 being closest to the raw input.
// The index must be in [0, Len()); out-of-range panics like a slice access.
func (c *Chain) Stage(i int) Stage {
	return c.stages[i]
}

// Stages returns a copy of the stage list in input-to-output order.
func (c *Chain) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}
