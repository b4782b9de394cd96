// Package avx2 is the wide-lane kernel backend: float64 arithmetic in
// 4-lane (256-bit) vector registers with a scalar tail.
//
// Every operation splits its input into a bulk region whose length is a
// multiple of Lanes, processed with vector loads, lane-wise arithmetic and
// stores, and a tail of at most Lanes-1 elements processed with ordinary
// scalar arithmetic. Elementwise results are bit-identical to a scalar loop.
// Reductions accumulate per lane, combine the lanes in lane order, then fold
// the tail in index order, so they may round differently than a strict
// left-to-right loop once len(x) > Lanes.
//
// Package sse2 exposes the same functions with 2 lanes; import exactly one
// of them. Built with GOEXPERIMENT=simd on amd64 the lanes are
// simd/archsimd.Float64x4 registers (AVX2); otherwise, or with the purego
// tag, a portable [4]float64 lane type with the same semantics is used and
// Accelerated is false.
//
// Binary sequence operations panic with an error wrapping
// ErrLengthMismatch when the operands differ in length. Division by zero
// and overflow produce IEEE 754 infinities and NaNs, never errors.
package avx2

import "github.com/cwbudde/algo-kernels/internal/lanes"

const (
	// Name identifies the backend.
	Name = "avx2"

	// Lanes is the number of float64 values per vector register.
	Lanes = 4
)

// ErrLengthMismatch is wrapped by the panic value of every binary sequence
// operation called with operands of different lengths.
var ErrLengthMismatch = lanes.ErrLengthMismatch
