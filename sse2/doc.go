// Package sse2 is the narrow-lane kernel backend: float64 arithmetic in
// 2-lane (128-bit) vector registers with a scalar tail.
//
// It is a drop-in replacement for package avx2: same functions, same
// signatures, same panics. Only the lane width differs, which changes the
// accumulation grouping of Sum, Product and Dot (and so, possibly, their
// rounding) but never the result of an elementwise operation.
//
// With GOEXPERIMENT=simd on amd64 the lanes are simd/archsimd.Float64x2
// registers. Elsewhere, or with the purego tag, a portable [2]float64 lane
// type is compiled in and Accelerated is false.
package sse2

import "github.com/cwbudde/algo-kernels/internal/lanes"

const (
	// Name identifies the backend.
	Name = "sse2"

	// Lanes is the number of float64 values per vector register.
	Lanes = 2
)

// ErrLengthMismatch is wrapped by the panic value of every binary sequence
// operation called with operands of different lengths.
var ErrLengthMismatch = lanes.ErrLengthMismatch
