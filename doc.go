// Package kernels provides vectorized float64 kernels: elementwise
// arithmetic between two sequences or a sequence and a scalar, and the sum,
// product and dot-product reductions.
//
// # Backends
//
// The kernels live in two interchangeable backend packages with identical
// function sets:
//
//   - avx2: 4 lanes per vector register
//   - sse2: 2 lanes per vector register
//
// Programs that pick their instruction set at build time import one of them
// directly; neither depends on the other. This package adds an optional
// runtime layer on top: the first call resolves the highest-priority
// backend the CPU supports through a registry, falling back to a scalar-only
// implementation, and every later call goes straight to it.
//
// Vector backends are only registered when they are compiled with real
// SIMD intrinsics (GOEXPERIMENT=simd on amd64, without the purego tag).
//
// # Configuration
//
// ALGO_KERNELS_NO_SIMD=1 disables vector backends, and
// ALGO_KERNELS_BACKEND=<name> pins one by name ("avx2", "sse2", "generic").
// Both are read once, before the first call.
//
// # Semantics
//
// Elementwise results are exactly those of a scalar loop. Sum, Product and
// Dot accumulate per lane and may round differently than a left-to-right
// loop. Empty reductions return 0 (Sum, Dot) or 1 (Product).
//
// Binary sequence operations panic with an error wrapping ErrLengthMismatch
// when the operands differ in length; CheckLengths performs the same check
// without panicking. Division by zero and overflow follow IEEE 754.
//
// All functions are safe for concurrent use as long as callers do not mutate
// a slice that is being read.
package kernels
