package avx2

import "github.com/cwbudde/algo-kernels/internal/lanes"

// Add returns a new slice with a[i] + b[i].
// Panics if len(a) != len(b).
func Add(a, b []float64) []float64 {
	lanes.CheckLen("add", a, b)
	dst := make([]float64, len(a))
	addBlock(dst, a, b)
	return dst
}

// Sub returns a new slice with a[i] - b[i].
// Panics if len(a) != len(b).
func Sub(a, b []float64) []float64 {
	lanes.CheckLen("sub", a, b)
	dst := make([]float64, len(a))
	subBlock(dst, a, b)
	return dst
}

// Mul returns a new slice with a[i] * b[i].
// Panics if len(a) != len(b).
func Mul(a, b []float64) []float64 {
	lanes.CheckLen("mul", a, b)
	dst := make([]float64, len(a))
	mulBlock(dst, a, b)
	return dst
}

// Div returns a new slice with a[i] / b[i]. A zero divisor yields ±Inf or
// NaN. Panics if len(a) != len(b).
func Div(a, b []float64) []float64 {
	lanes.CheckLen("div", a, b)
	dst := make([]float64, len(a))
	divBlock(dst, a, b)
	return dst
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length; dst may alias a or b. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	lanes.CheckLen("add", a, b)
	lanes.CheckDst("add", dst, len(a))
	addBlock(dst, a, b)
}

// SubBlock performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length; dst may alias a or b. Panics if lengths differ.
func SubBlock(dst, a, b []float64) {
	lanes.CheckLen("sub", a, b)
	lanes.CheckDst("sub", dst, len(a))
	subBlock(dst, a, b)
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length; dst may alias a or b. Panics if lengths differ.
func MulBlock(dst, a, b []float64) {
	lanes.CheckLen("mul", a, b)
	lanes.CheckDst("mul", dst, len(a))
	mulBlock(dst, a, b)
}

// DivBlock performs element-wise division: dst[i] = a[i] / b[i].
// Slices must have equal length; dst may alias a or b. Panics if lengths differ.
func DivBlock(dst, a, b []float64) {
	lanes.CheckLen("div", a, b)
	lanes.CheckDst("div", dst, len(a))
	divBlock(dst, a, b)
}

func addBlock(dst, a, b []float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Add(load(b[i:])).StoreSlice(dst[i:])
	}
	lanes.AddTail(dst, a, b, bulk)
}

func subBlock(dst, a, b []float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Sub(load(b[i:])).StoreSlice(dst[i:])
	}
	lanes.SubTail(dst, a, b, bulk)
}

func mulBlock(dst, a, b []float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Mul(load(b[i:])).StoreSlice(dst[i:])
	}
	lanes.MulTail(dst, a, b, bulk)
}

func divBlock(dst, a, b []float64) {
	bulk := lanes.Bulk(len(dst), Lanes)
	for i := 0; i < bulk; i += Lanes {
		load(a[i:]).Div(load(b[i:])).StoreSlice(dst[i:])
	}
	lanes.DivTail(dst, a, b, bulk)
}
