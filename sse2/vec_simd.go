//go:build amd64 && goexperiment.simd && !purego

package sse2

import "simd/archsimd"

// Accelerated reports whether the lanes are real vector registers.
const Accelerated = true

type vec = archsimd.Float64x2

// load reads s[0:Lanes]; len(s) >= Lanes.
func load(s []float64) vec {
	return archsimd.LoadFloat64x2Slice(s)
}

// splat loads x into both lanes. A plain load keeps the backend on AVX;
// the archsimd broadcast is AVX2-only.
func splat(x float64) vec {
	t := [Lanes]float64{x, x}
	return archsimd.LoadFloat64x2Slice(t[:])
}
