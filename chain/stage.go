package chain

// OutputLen returns the number of output positions this stage yields from
// inputLen input positions: floor((inputLen - effectiveKernel)/Stride) + 1
// when inputLen covers at least one kernel application, else 0.
//
// Returns ErrNegativeLength for inputLen < 0 and ErrStageConfig for an
// invalid stage.
//
// Complexity: O(1).
func (s Stage) OutputLen(inputLen int) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if inputLen < 0 {
		return 0, ErrNegativeLength
	}
	ek := s.EffectiveKernel()
	if inputLen < ek {
		return 0, nil
	}
	return (inputLen-ek)/s.Stride + 1, nil
}

// MinInputLen returns the minimum number of input positions needed for this
// stage to yield exactly outputLen output positions:
// (outputLen-1)*Stride + effectiveKernel, or 0 when outputLen is 0.
//
// Returns ErrNegativeLength for outputLen < 0 and ErrStageConfig for an
// invalid stage.
//
// MinInputLen is a strict right-inverse of OutputLen:
// OutputLen(MinInputLen(n)) == n for every n >= 0. The converse is lossy:
// MinInputLen(OutputLen(m)) <= m, because trailing input positions that do
// not complete a stride are dropped. That asymmetry models fixed-stride
// sampling and is intentional.
//
// Complexity: O(1).
func (s Stage) MinInputLen(outputLen int) (int, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if outputLen < 0 {
		return 0, ErrNegativeLength
	}
	if outputLen == 0 {
		return 0, nil
	}
	return (outputLen-1)*s.Stride + s.EffectiveKernel(), nil
}
