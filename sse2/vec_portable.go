//go:build !(amd64 && goexperiment.simd) || purego

package sse2

// Accelerated reports whether the lanes are real vector registers.
const Accelerated = false

type vec [Lanes]float64

func load(s []float64) vec {
	return vec(s[:Lanes])
}

func splat(x float64) vec {
	return vec{x, x}
}

func (v vec) Add(w vec) vec { return vec{v[0] + w[0], v[1] + w[1]} }
func (v vec) Sub(w vec) vec { return vec{v[0] - w[0], v[1] - w[1]} }
func (v vec) Div(w vec) vec { return vec{v[0] / w[0], v[1] / w[1]} }

// Mul rounds each product on its own; see Dot.
func (v vec) Mul(w vec) vec { return vec{float64(v[0] * w[0]), float64(v[1] * w[1])} }

func (v vec) StoreSlice(s []float64) {
	s[0], s[1] = v[0], v[1]
}
