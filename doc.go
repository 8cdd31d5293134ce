// Package rfield is exact sequence-length bookkeeping for chains of
// strided 1D transforms — convolutions, pooling, dilated filters — plus
// aligned training-window selection on top of it.
//
// 🚀 What is rfield?
//
//	A small, pure-Go library that answers, for a stack of
//	kernel/stride/dilation stages, the questions every sequence model
//	pipeline asks:
//		• How much raw input do I need for N final outputs? (backward pass)
//		• How many outputs does L raw samples actually yield? (forward pass)
//		• Which exact input slice is consumed, and what is left over?
//		  (reconciliation)
//		• Which input span feeds output range [b, e)? (receptive field)
//		• Where do my aligned training windows and loss masks go?
//		  (window planning)
//
// ✨ Why choose rfield?
//
//   - Exact integer arithmetic – no float rounding, no off-by-one guessing
//   - Immutable chains – build once, reuse freely from any goroutine
//   - Honest truncation – surplus input is reported, never silently dropped
//   - Policy, not dogma – window clustering vs. spreading is one stride knob
//
// Everything is organized under three subpackages and a CLI:
//
//	chain/      — Stage and Chain types, per-stage length formulas
//	shape/      — forward/backward propagation, reconciliation, intervals
//	window/     — aligned window selection, batch plans and loss masks
//	cmd/rfplan/ — inspect and watch chain configs from the command line
//
// Quick ASCII example, two stages (kernel 3/stride 1, then kernel 3/stride 2):
//
//	input   0 1 2 3 4
//	         \|/ \|/
//	mid       0 1 2
//	           \|/
//	output      0
//
//	5 raw samples → 3 intermediate positions → 1 final output.
//
// Dive into README.md and the example tests for full walkthroughs.
//
//	go get github.com/convlab/rfield
package rfield
