package shape_test

import (
	"errors"
	"testing"

	"github.com/convlab/rfield/chain"
	"github.com/convlab/rfield/shape"
)

func mustChain(t *testing.T, stages ...chain.Stage) *chain.Chain {
	t.Helper()
	c, err := chain.New(stages...)
	if err != nil {
		t.Fatalf("chain.New error: %v", err)
	}
	return c
}

//----------------------------------------------------------------------------//
// ReceptiveField Tests
//----------------------------------------------------------------------------//

// TestReceptiveField_SingleStage checks the per-stage interval formula.
func TestReceptiveField_SingleStage(t *testing.T) {
	c := mustChain(t, chain.Stage{Kernel: 3, Stride: 2, Dilation: 1})
	cases := []struct {
		name       string
		outB, outE int
		want       shape.Range
	}{
		{"FirstOutput", 0, 1, shape.Range{Begin: 0, End: 3}},
		{"SecondOutput", 1, 2, shape.Range{Begin: 2, End: 5}},
		{"TwoOutputs", 0, 2, shape.Range{Begin: 0, End: 5}},
		{"Empty", 3, 3, shape.Range{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shape.ReceptiveField(c, tc.outB, tc.outE)
			if err != nil {
				t.Fatalf("ReceptiveField(%d,%d) error: %v", tc.outB, tc.outE, err)
			}
			if got != tc.want {
				t.Errorf("ReceptiveField(%d,%d) = %+v; want %+v", tc.outB, tc.outE, got, tc.want)
			}
		})
	}
}

// TestReceptiveField_Dilated checks that dilation widens the field.
func TestReceptiveField_Dilated(t *testing.T) {
	c := mustChain(t, chain.Stage{Kernel: 2, Stride: 1, Dilation: 4})
	got, err := shape.ReceptiveField(c, 0, 1)
	if err != nil {
		t.Fatalf("ReceptiveField error: %v", err)
	}
	if want := (shape.Range{Begin: 0, End: 5}); got != want {
		t.Errorf("ReceptiveField(0,1) = %+v; want %+v", got, want)
	}
}

// TestReceptiveField_MatchesMinInputLen verifies that the interval form of
// the backward pass agrees with the length form on the [0, n) prefix.
func TestReceptiveField_MatchesMinInputLen(t *testing.T) {
	c := mustChain(t,
		chain.Stage{Kernel: 5, Stride: 3, Dilation: 1},
		chain.Stage{Kernel: 3, Stride: 2, Dilation: 2},
		chain.Stage{Kernel: 2, Stride: 1, Dilation: 4},
	)
	for n := 1; n <= 32; n++ {
		rf, err := shape.ReceptiveField(c, 0, n)
		if err != nil {
			t.Fatalf("ReceptiveField(0,%d) error: %v", n, err)
		}
		min, err := shape.MinInputLen(c, n)
		if err != nil {
			t.Fatalf("MinInputLen(%d) error: %v", n, err)
		}
		if rf.Begin != 0 || rf.End != min {
			t.Errorf("ReceptiveField(0,%d) = %+v; want [0,%d)", n, rf, min)
		}
	}
}

//----------------------------------------------------------------------------//
// OutputRange Tests
//----------------------------------------------------------------------------//

// TestOutputRange_SingleStage checks the maximal-fit formula including the
// interior alignment of an unaligned begin bound.
func TestOutputRange_SingleStage(t *testing.T) {
	c := mustChain(t, chain.Stage{Kernel: 3, Stride: 2, Dilation: 1})
	cases := []struct {
		name     string
		inB, inE int
		want     shape.Range
	}{
		{"Prefix", 0, 7, shape.Range{Begin: 0, End: 3}},
		{"UnalignedBegin", 1, 7, shape.Range{Begin: 1, End: 3}},
		{"TooShort", 0, 2, shape.Range{}},
		{"InteriorTooShort", 3, 5, shape.Range{}},
		{"Empty", 4, 4, shape.Range{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shape.OutputRange(c, tc.inB, tc.inE)
			if err != nil {
				t.Fatalf("OutputRange(%d,%d) error: %v", tc.inB, tc.inE, err)
			}
			if got != tc.want {
				t.Errorf("OutputRange(%d,%d) = %+v; want %+v", tc.inB, tc.inE, got, tc.want)
			}
		})
	}
}

// TestOutputRange_MatchesOutputLen verifies that the interval form of the
// forward pass agrees with the length form on the [0, L) prefix.
func TestOutputRange_MatchesOutputLen(t *testing.T) {
	c := mustChain(t,
		chain.Stage{Kernel: 3, Stride: 1, Dilation: 1},
		chain.Stage{Kernel: 3, Stride: 2, Dilation: 1},
	)
	for l := 0; l <= 64; l++ {
		or, err := shape.OutputRange(c, 0, l)
		if err != nil {
			t.Fatalf("OutputRange(0,%d) error: %v", l, err)
		}
		out, err := shape.OutputLen(c, l)
		if err != nil {
			t.Fatalf("OutputLen(%d) error: %v", l, err)
		}
		if or.Len() != out || (out > 0 && or.Begin != 0) {
			t.Errorf("OutputRange(0,%d) = %+v; want [0,%d)", l, or, out)
		}
	}
}

// TestIntervalDuality verifies that the receptive field of any output range
// is exactly reproduced by OutputRange: the two interval passes are mutual
// inverses on ranges that came from real outputs.
func TestIntervalDuality(t *testing.T) {
	c := mustChain(t,
		chain.Stage{Kernel: 5, Stride: 3, Dilation: 1},
		chain.Stage{Kernel: 3, Stride: 2, Dilation: 1},
	)
	for b := 0; b < 8; b++ {
		for e := b + 1; e <= 12; e++ {
			rf, err := shape.ReceptiveField(c, b, e)
			if err != nil {
				t.Fatalf("ReceptiveField(%d,%d) error: %v", b, e, err)
			}
			back, err := shape.OutputRange(c, rf.Begin, rf.End)
			if err != nil {
				t.Fatalf("OutputRange(%+v) error: %v", rf, err)
			}
			if back.Begin != b || back.End != e {
				t.Errorf("OutputRange(ReceptiveField(%d,%d)) = %+v; want [%d,%d)", b, e, back, b, e)
			}
		}
	}
}

// TestIntervals_Errors verifies the range and empty-chain guards.
func TestIntervals_Errors(t *testing.T) {
	c := mustChain(t, chain.Stage{Kernel: 3, Stride: 1, Dilation: 1})

	if _, err := shape.ReceptiveField(c, -1, 2); !errors.Is(err, shape.ErrInvalidRange) {
		t.Errorf("ReceptiveField(-1,2) error = %v; want ErrInvalidRange", err)
	}
	if _, err := shape.ReceptiveField(c, 3, 2); !errors.Is(err, shape.ErrInvalidRange) {
		t.Errorf("ReceptiveField(3,2) error = %v; want ErrInvalidRange", err)
	}
	if _, err := shape.OutputRange(c, -1, 0); !errors.Is(err, shape.ErrInvalidRange) {
		t.Errorf("OutputRange(-1,0) error = %v; want ErrInvalidRange", err)
	}
	if _, err := shape.OutputRange(nil, 0, 4); !errors.Is(err, chain.ErrEmptyChain) {
		t.Errorf("OutputRange(nil,...) error = %v; want ErrEmptyChain", err)
	}
	if _, err := shape.ReceptiveField(nil, 0, 4); !errors.Is(err, chain.ErrEmptyChain) {
		t.Errorf("ReceptiveField(nil,...) error = %v; want ErrEmptyChain", err)
	}
}
