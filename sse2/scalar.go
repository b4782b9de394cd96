package sse2

import "github.com/cwbudde/algo-kernels/internal/lanes"

// AddScalar returns a new slice with a[i] + k.
func AddScalar(a []float64, k float64) []float64 {
	dst := make([]float64, len(a))
	addScalarBlock(dst, a, k)
	return dst
}

// SubScalar returns a new slice with a[i] - k.
func SubScalar(a []float64, k float64) []float64 {
	dst := make([]float64, len(a))
	subScalarBlock(dst, a, k)
	return dst
}

// MulScalar returns a new slice with a[i] * k.
func MulScalar(a []float64, k float64) []float64 {
	dst := make([]float64, len(a))
	mulScalarBlock(dst, a, k)
	return dst
}

// DivScalar returns a new slice with a[i] / k.
func DivScalar(a []float64, k float64) []float64 {
	dst := make([]float64, len(a))
	divScalarBlock(dst, a, k)
	return dst
}

// ScalarAdd returns a new slice with k + a[i].
func ScalarAdd(k float64, a []float64) []float64 {
	return AddScalar(a, k)
}

// ScalarSub returns a new slice with k - a[i].
func ScalarSub(k float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	scalarSubBlock(dst, k, a)
	return dst
}

// ScalarMul returns a new slice with k * a[i].
func ScalarMul(k float64, a []float64) []float64 {
	return MulScalar(a, k)
}

// ScalarDiv returns a new slice with k / a[i].
func ScalarDiv(k float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	scalarDivBlock(dst, k, a)
	return dst
}

// AddScalarBlock computes dst[i] = a[i] + k. Panics if len(dst) != len(a).
func AddScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("add-scalar", dst, len(a))
	addScalarBlock(dst, a, k)
}

// SubScalarBlock computes dst[i] = a[i] - k. Panics if len(dst) != len(a).
func SubScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("sub-scalar", dst, len(a))
	subScalarBlock(dst, a, k)
}

// MulScalarBlock computes dst[i] = a[i] * k. Panics if len(dst) != len(a).
func MulScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("mul-scalar", dst, len(a))
	mulScalarBlock(dst, a, k)
}

// DivScalarBlock computes dst[i] = a[i] / k. Panics if len(dst) != len(a).
func DivScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("div-scalar", dst, len(a))
	divScalarBlock(dst, a, k)
}

// ScalarSubBlock computes dst[i] = k - a[i]. Panics if len(dst) != len(a).
func ScalarSubBlock(dst []float64, k float64, a []float64) {
	lanes.CheckDst("scalar-sub", dst, len(a))
	scalarSubBlock(dst, k, a)
}

// ScalarDivBlock computes dst[i] = k / a[i]. Panics if len(dst) != len(a).
func ScalarDivBlock(dst []float64, k float64, a []float64) {
	lanes.CheckDst("scalar-div", dst, len(a))
	scalarDivBlock(dst, k, a)
}

func addScalarBlock(dst, a []float64, k float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	vk := splat(k)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Add(vk).StoreSlice(dst[i:])
	}
	lanes.AddScalarTail(dst, a, k, bulk)
}

func subScalarBlock(dst, a []float64, k float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	vk := splat(k)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Sub(vk).StoreSlice(dst[i:])
	}
	lanes.SubScalarTail(dst, a, k, bulk)
}

func mulScalarBlock(dst, a []float64, k float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	vk := splat(k)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Mul(vk).StoreSlice(dst[i:])
	}
	lanes.MulScalarTail(dst, a, k, bulk)
}

func divScalarBlock(dst, a []float64, k float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	vk := splat(k)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Div(vk).StoreSlice(dst[i:])
	}
	lanes.DivScalarTail(dst, a, k, bulk)
}

func scalarSubBlock(dst []float64, k float64, a []float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	vk := splat(k)
	for i := 0; i < bulk; i += Lanes {
		vk.Sub(load(a[i:])).StoreSlice(dst[i:])
	}
	lanes.ScalarSubTail(dst, k, a, bulk)
}

func scalarDivBlock(dst []float64, k float64, a []float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	vk := splat(k)
	for i := 0; i < bulk; i += Lanes {
		vk.Div(load(a[i:])).StoreSlice(dst[i:])
	}
	lanes.ScalarDivTail(dst, k, a, bulk)
}
