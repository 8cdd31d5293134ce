package shape

import "github.com/convlab/rfield/chain"

// MinInputLen — backward pass.
//
// Description:
//
//	Walks the chain from the last stage to the first, replacing the
//	running count with stage.MinInputLen at each step. The result is
//	the minimum raw input length that realizes exactly outputLen final
//	outputs.
//
// Errors:
//   - chain.ErrEmptyChain     — nil chain or chain with no stages.
//   - chain.ErrNegativeLength — outputLen < 0.
//
// Complexity: Time O(Len), Memory O(1).
func MinInputLen(c *chain.Chain, outputLen int) (int, error) {
	if c.Len() == 0 {
		return 0, chain.ErrEmptyChain
	}
	n := outputLen
	for i := c.Len() - 1; i >= 0; i-- {
		var err error
		if n, err = c.Stage(i).MinInputLen(n); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// MinInputTrace is MinInputLen with the per-stage intermediates kept:
// the returned slice has Len()+1 entries, entry i being the length
// required at the input of stage i (entry 0 = raw input, entry Len() =
// outputLen itself). Callers aligning intermediate feature maps need
// these, not just the two ends.
//
// Errors as for MinInputLen. Complexity: Time O(Len), Memory O(Len).
func MinInputTrace(c *chain.Chain, outputLen int) ([]int, error) {
	if c.Len() == 0 {
		return nil, chain.ErrEmptyChain
	}
	trace := make([]int, c.Len()+1)
	trace[c.Len()] = outputLen
	for i := c.Len() - 1; i >= 0; i-- {
		n, err := c.Stage(i).MinInputLen(trace[i+1])
		if err != nil {
			return nil, err
		}
		trace[i] = n
	}
	return trace, nil
}

// OutputLen — forward pass.
//
// Description:
//
//	Walks the chain from the first stage to the last, replacing the
//	running count with stage.OutputLen at each step. The result is the
//	number of final outputs actually achievable from inputLen raw input
//	positions; trailing positions that do not complete a stride at some
//	stage contribute nothing.
//
// Errors:
//   - chain.ErrEmptyChain     — nil chain or chain with no stages.
//   - chain.ErrNegativeLength — inputLen < 0.
//
// Complexity: Time O(Len), Memory O(1).
func OutputLen(c *chain.Chain, inputLen int) (int, error) {
	if c.Len() == 0 {
		return 0, chain.ErrEmptyChain
	}
	n := inputLen
	for i := 0; i < c.Len(); i++ {
		var err error
		if n, err = c.Stage(i).OutputLen(n); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// OutputTrace is OutputLen with the per-stage intermediates kept: entry i
// is the length at the input of stage i (entry 0 = inputLen, entry Len()
// = the final output count).
//
// Errors as for OutputLen. Complexity: Time O(Len), Memory O(Len).
func OutputTrace(c *chain.Chain, inputLen int) ([]int, error) {
	if c.Len() == 0 {
		return nil, chain.ErrEmptyChain
	}
	trace := make([]int, c.Len()+1)
	trace[0] = inputLen
	for i := 0; i < c.Len(); i++ {
		n, err := c.Stage(i).OutputLen(trace[i])
		if err != nil {
			return nil, err
		}
		trace[i+1] = n
	}
	return trace, nil
}

// Reconcile resolves an available, not necessarily aligned, raw input
// length into a self-consistent (consumed input, achievable output) pair.
//
// Algorithm Outline:
//  1. Forward pass on inputLen → achievable output count.
//  2. Backward pass on that count → exact input length consumed.
//  3. Surplus = inputLen - consumed; always >= 0, reported to the caller.
//
// Reconcile is idempotent: feeding Reconciled.InputLen back in returns
// the same pair with Surplus 0.
//
// Errors as for OutputLen. Complexity: Time O(Len), Memory O(1).
func Reconcile(c *chain.Chain, inputLen int) (Reconciled, error) {
	out, err := OutputLen(c, inputLen)
	if err != nil {
		return Reconciled{}, err
	}
	in, err := MinInputLen(c, out)
	if err != nil {
		return Reconciled{}, err
	}
	return Reconciled{InputLen: in, OutputLen: out, Surplus: inputLen - in}, nil
}
