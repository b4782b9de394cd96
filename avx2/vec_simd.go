//go:build amd64 && goexperiment.simd && !purego

package avx2

import "simd/archsimd"

// Accelerated reports whether the lanes are real vector registers.
const Accelerated = true

type vec = archsimd.Float64x4

// load reads s[0:Lanes]; len(s) >= Lanes.
func load(s []float64) vec {
	return archsimd.LoadFloat64x4Slice(s)
}

func splat(x float64) vec {
	return archsimd.BroadcastFloat64x4(x)
}
