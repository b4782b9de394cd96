package avx2

import "github.com/cwbudde/algo-kernels/internal/lanes"

// hsum adds the lanes of v in lane order.
func hsum(v vec) float64 {
	var t [Lanes]float64
	v.StoreSlice(t[:])
	return t[0] + t[1] + t[2] + t[3]
}

// hprod multiplies the lanes of v in lane order.
func hprod(v vec) float64 {
	var t [Lanes]float64
	v.StoreSlice(t[:])
	return t[0] * t[1] * t[2] * t[3]
}

// Sum returns the sum of all elements in x, or 0 for an empty slice.
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	bulk := lanes.Bulk(len(x), Lanes)
	acc := splat(0)
	for i := 0; i < bulk; i += Lanes {
		acc = acc.Add(load(x[i:]))
	}

	return lanes.SumTail(hsum(acc), x, bulk)
}

// Product returns the product of all elements in x. The product of an
// empty slice is 1.
func Product(x []float64) float64 {
	if len(x) == 0 {
		return 1
	}

	bulk := lanes.Bulk(len(x), Lanes)
	acc := splat(1)
	for i := 0; i < bulk; i += Lanes {
		acc = acc.Mul(load(x[i:]))
	}

	return lanes.ProductTail(hprod(acc), x, bulk)
}

// Dot returns sum(a[i] * b[i]), or 0 for empty slices.
// Panics if len(a) != len(b).
func Dot(a, b []float64) float64 {
	lanes.CheckLen("dot", a, b)
	if len(a) == 0 {
		return 0
	}

	bulk := lanes.Bulk(len(a), Lanes)
	acc := splat(0)
	for i := 0; i < bulk; i += Lanes {
		acc = acc.Add(load(a[i:]).Mul(load(b[i:])))
	}

	return lanes.DotTail(hsum(acc), a, b, bulk)
}
