package shape

import "github.com/convlab/rfield/chain"

// ReceptiveField — interval form of the backward pass.
//
// Description:
//
//	Returns the raw-input index range whose positions influence the
//	final-output range [outB, outE). Walking the chain from the last
//	stage to the first, an output range [b, e) maps to the input range
//	[b*stride, (e-1)*stride + effectiveKernel).
//
//	An empty output range yields the empty Range{} with no error.
//
// Errors:
//   - chain.ErrEmptyChain — nil chain or chain with no stages.
//   - ErrInvalidRange     — outB < 0 or outE < outB.
//
// Complexity: Time O(Len), Memory O(1).
func ReceptiveField(c *chain.Chain, outB, outE int) (Range, error) {
	if c.Len() == 0 {
		return Range{}, chain.ErrEmptyChain
	}
	if outB < 0 || outE < outB {
		return Range{}, ErrInvalidRange
	}
	if outB == outE {
		return Range{}, nil
	}
	b, e := outB, outE
	for i := c.Len() - 1; i >= 0; i-- {
		s := c.Stage(i)
		b = b * s.Stride
		e = (e-1)*s.Stride + s.EffectiveKernel()
	}
	return Range{Begin: b, End: e}, nil
}

// OutputRange — interval form of the forward pass.
//
// Description:
//
//	Returns the maximal final-output range in which every position has
//	its entire receptive field inside the raw-input range [inB, inE).
//	Per stage, output j covers inputs [j*stride, j*stride+effectiveKernel),
//	so the surviving outputs are j in [ceil(b/stride), floor((e-ek)/stride)].
//	If no output survives some stage, the empty Range{} is returned.
//
//	An empty input range yields the empty Range{} with no error.
//
// Errors:
//   - chain.ErrEmptyChain — nil chain or chain with no stages.
//   - ErrInvalidRange     — inB < 0 or inE < inB.
//
// Complexity: Time O(Len), Memory O(1).
func OutputRange(c *chain.Chain, inB, inE int) (Range, error) {
	if c.Len() == 0 {
		return Range{}, chain.ErrEmptyChain
	}
	if inB < 0 || inE < inB {
		return Range{}, ErrInvalidRange
	}
	b, e := inB, inE
	for i := 0; i < c.Len(); i++ {
		s := c.Stage(i)
		ek := s.EffectiveKernel()
		if e-b < ek {
			return Range{}, nil
		}
		lo := ceilDiv(b, s.Stride)
		hi := (e - ek) / s.Stride // last surviving output, inclusive
		if lo > hi {
			return Range{}, nil
		}
		b, e = lo, hi+1
	}
	return Range{Begin: b, End: e}, nil
}

// ceilDiv returns ceil(n/d) for n >= 0, d >= 1.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
