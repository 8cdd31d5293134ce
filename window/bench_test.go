package window_test

import (
	"testing"

	"github.com/convlab/rfield/chain"
	"github.com/convlab/rfield/window"
)

// benchSelector builds a selector over a 30-stage dilated stack.
func benchSelector(b *testing.B) *window.Selector {
	stages := make([]chain.Stage, 30)
	for i := range stages {
		stages[i] = chain.Stage{Kernel: 2, Stride: 1, Dilation: 1 << (i % 10)}
	}
	c, err := chain.New(stages...)
	if err != nil {
		b.Fatalf("chain.New failed: %v", err)
	}
	sel, err := window.NewSelector(c)
	if err != nil {
		b.Fatalf("NewSelector failed: %v", err)
	}
	return sel
}

// BenchmarkPlan_Consecutive benchmarks consecutive placement of 16 windows.
func BenchmarkPlan_Consecutive(b *testing.B) {
	sel := benchSelector(b)
	opts := window.DefaultOptions(16, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Plan(160000, opts); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlan_Spread benchmarks spread placement with sub-selection.
func BenchmarkPlan_Spread(b *testing.B) {
	sel := benchSelector(b)
	opts := window.Options{
		WindowCount: 16,
		Span:        64,
		Stride:      512,
		Select:      []int{0, 63},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Plan(160000, opts); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}
