//go:build !(amd64 && goexperiment.simd) || purego

package avx2

// Accelerated reports whether the lanes are real vector registers.
const Accelerated = false

// vec emulates a 4 x float64 register. Each lane is rounded separately, so
// results match the vector instructions exactly.
type vec [Lanes]float64

func load(s []float64) vec {
	return vec(s[:Lanes])
}

func splat(x float64) vec {
	return vec{x, x, x, x}
}

func (v vec) Add(w vec) vec {
	return vec{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v vec) Sub(w vec) vec {
	return vec{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul converts each product explicitly so it cannot be fused into a
// following Add.
func (v vec) Mul(w vec) vec {
	return vec{float64(v[0] * w[0]), float64(v[1] * w[1]), float64(v[2] * w[2]), float64(v[3] * w[3])}
}

func (v vec) Div(w vec) vec {
	return vec{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

func (v vec) StoreSlice(s []float64) {
	copy(s[:Lanes], v[:])
}
