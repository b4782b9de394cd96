// Package generic provides the scalar-only kernels: the same operations as
// the lane backends with a lane width of 1, so every element goes through
// the shared tail loops in index order.
//
// The dispatcher falls back to it when no vector backend is usable.
package generic

import "github.com/cwbudde/algo-kernels/internal/lanes"

// Name identifies the backend.
const Name = "generic"

// Sum adds x in index order, starting from 0.
func Sum(x []float64) float64 { return lanes.SumTail(0, x, 0) }

// Product multiplies x in index order, starting from 1.
func Product(x []float64) float64 { return lanes.ProductTail(1, x, 0) }

// Dot returns sum(a[i] * b[i]) in index order. Panics if len(a) != len(b).
func Dot(a, b []float64) float64 {
	lanes.CheckLen("dot", a, b)
	return lanes.DotTail(0, a, b, 0)
}

func Add(a, b []float64) []float64 { return binary("add", a, b, lanes.AddTail) }
func Sub(a, b []float64) []float64 { return binary("sub", a, b, lanes.SubTail) }
func Mul(a, b []float64) []float64 { return binary("mul", a, b, lanes.MulTail) }
func Div(a, b []float64) []float64 { return binary("div", a, b, lanes.DivTail) }

func AddBlock(dst, a, b []float64) { block("add", dst, a, b, lanes.AddTail) }
func SubBlock(dst, a, b []float64) { block("sub", dst, a, b, lanes.SubTail) }
func MulBlock(dst, a, b []float64) { block("mul", dst, a, b, lanes.MulTail) }
func DivBlock(dst, a, b []float64) { block("div", dst, a, b, lanes.DivTail) }

func AddScalar(a []float64, k float64) []float64 { return withScalar(a, k, lanes.AddScalarTail) }
func SubScalar(a []float64, k float64) []float64 { return withScalar(a, k, lanes.SubScalarTail) }
func MulScalar(a []float64, k float64) []float64 { return withScalar(a, k, lanes.MulScalarTail) }
func DivScalar(a []float64, k float64) []float64 { return withScalar(a, k, lanes.DivScalarTail) }

func ScalarAdd(k float64, a []float64) []float64 { return AddScalar(a, k) }
func ScalarMul(k float64, a []float64) []float64 { return MulScalar(a, k) }

func ScalarSub(k float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	lanes.ScalarSubTail(dst, k, a, 0)
	return dst
}

func ScalarDiv(k float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	lanes.ScalarDivTail(dst, k, a, 0)
	return dst
}

func AddScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("add-scalar", dst, len(a))
	lanes.AddScalarTail(dst, a, k, 0)
}

func SubScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("sub-scalar", dst, len(a))
	lanes.SubScalarTail(dst, a, k, 0)
}

func MulScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("mul-scalar", dst, len(a))
	lanes.MulScalarTail(dst, a, k, 0)
}

func DivScalarBlock(dst, a []float64, k float64) {
	lanes.CheckDst("div-scalar", dst, len(a))
	lanes.DivScalarTail(dst, a, k, 0)
}

func ScalarSubBlock(dst []float64, k float64, a []float64) {
	lanes.CheckDst("scalar-sub", dst, len(a))
	lanes.ScalarSubTail(dst, k, a, 0)
}

func ScalarDivBlock(dst []float64, k float64, a []float64) {
	lanes.CheckDst("scalar-div", dst, len(a))
	lanes.ScalarDivTail(dst, k, a, 0)
}

type tailFn func(dst, a, b []float64, from int)

func binary(op string, a, b []float64, tail tailFn) []float64 {
	lanes.CheckLen(op, a, b)
	dst := make([]float64, len(a))
	tail(dst, a, b, 0)
	return dst
}

func block(op string, dst, a, b []float64, tail tailFn) {
	lanes.CheckLen(op, a, b)
	lanes.CheckDst(op, dst, len(a))
	tail(dst, a, b, 0)
}

func withScalar(a []float64, k float64, tail func(dst, a []float64, k float64, from int)) []float64 {
	dst := make([]float64, len(a))
	tail(dst, a, k, 0)
	return dst
}
