package lanes

// Reduction tails fold x[from:] into acc in index order.

func SumTail(acc float64, x []float64, from int) float64 {
	for i := from; i < len(x); i++ {
		acc += x[i]
	}
	return acc
}

func ProductTail(acc float64, x []float64, from int) float64 {
	for i := from; i < len(x); i++ {
		acc *= x[i]
	}
	return acc
}

// DotTail requires len(b) >= len(a). The explicit conversion keeps each
// product rounded before it is added, as in the vector path.
func DotTail(acc float64, a, b []float64, from int) float64 {
	for i := from; i < len(a); i++ {
		acc += float64(a[i] * b[i])
	}
	return acc
}

// Elementwise tails write dst[from:] and require len(a) == len(b) == len(dst).

func AddTail(dst, a, b []float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}

func SubTail(dst, a, b []float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] - b[i]
	}
}

func MulTail(dst, a, b []float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] * b[i]
	}
}

func DivTail(dst, a, b []float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] / b[i]
	}
}

// Scalar tails: the sequence is on the left unless the name starts with
// Scalar.

func AddScalarTail(dst, a []float64, k float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] + k
	}
}

func SubScalarTail(dst, a []float64, k float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] - k
	}
}

func MulScalarTail(dst, a []float64, k float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] * k
	}
}

func DivScalarTail(dst, a []float64, k float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] / k
	}
}

func ScalarSubTail(dst []float64, k float64, a []float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = k - a[i]
	}
}

// ScalarDivTail covers every index through len(dst)-1.
func ScalarDivTail(dst []float64, k float64, a []float64, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = k / a[i]
	}
}
