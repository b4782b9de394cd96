package kernels

// Reductions.

// Sum returns the sum of x. Empty input returns 0.
func Sum(x []float64) float64 { return active().Sum(x) }

// Product returns the product of x. Empty input returns 1.
func Product(x []float64) float64 { return active().Product(x) }

// Dot returns the dot product of a and b. Empty input returns 0.
// Panics if len(a) != len(b).
func Dot(a, b []float64) float64 { return active().Dot(a, b) }

// Sequence with sequence. Each returns a new slice of len(a) and panics if
// len(a) != len(b).

// Add returns a[i] + b[i].
func Add(a, b []float64) []float64 { return active().Add(a, b) }

// Sub returns a[i] - b[i].
func Sub(a, b []float64) []float64 { return active().Sub(a, b) }

// Mul returns a[i] * b[i].
func Mul(a, b []float64) []float64 { return active().Mul(a, b) }

// Div returns a[i] / b[i].
func Div(a, b []float64) []float64 { return active().Div(a, b) }

// Sequence with scalar.

// AddScalar returns a[i] + k.
func AddScalar(a []float64, k float64) []float64 { return active().AddScalar(a, k) }

// SubScalar returns a[i] - k.
func SubScalar(a []float64, k float64) []float64 { return active().SubScalar(a, k) }

// MulScalar returns a[i] * k.
func MulScalar(a []float64, k float64) []float64 { return active().MulScalar(a, k) }

// DivScalar returns a[i] / k.
func DivScalar(a []float64, k float64) []float64 { return active().DivScalar(a, k) }

// ScalarAdd returns k + a[i].
func ScalarAdd(k float64, a []float64) []float64 { return active().ScalarAdd(k, a) }

// ScalarSub returns k - a[i].
func ScalarSub(k float64, a []float64) []float64 { return active().ScalarSub(k, a) }

// ScalarMul returns k * a[i].
func ScalarMul(k float64, a []float64) []float64 { return active().ScalarMul(k, a) }

// ScalarDiv returns k / a[i].
func ScalarDiv(k float64, a []float64) []float64 { return active().ScalarDiv(k, a) }

// Block forms write into dst, which must have the length of the sequence
// operand. dst may alias an input.

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) { active().AddBlock(dst, a, b) }

// SubBlock computes dst[i] = a[i] - b[i].
func SubBlock(dst, a, b []float64) { active().SubBlock(dst, a, b) }

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) { active().MulBlock(dst, a, b) }

// DivBlock computes dst[i] = a[i] / b[i].
func DivBlock(dst, a, b []float64) { active().DivBlock(dst, a, b) }

// AddScalarBlock computes dst[i] = a[i] + k.
func AddScalarBlock(dst, a []float64, k float64) { active().AddScalarBlock(dst, a, k) }

// SubScalarBlock computes dst[i] = a[i] - k.
func SubScalarBlock(dst, a []float64, k float64) { active().SubScalarBlock(dst, a, k) }

// MulScalarBlock computes dst[i] = a[i] * k.
func MulScalarBlock(dst, a []float64, k float64) { active().MulScalarBlock(dst, a, k) }

// DivScalarBlock computes dst[i] = a[i] / k.
func DivScalarBlock(dst, a []float64, k float64) { active().DivScalarBlock(dst, a, k) }

// ScalarSubBlock computes dst[i] = k - a[i].
func ScalarSubBlock(dst []float64, k float64, a []float64) { active().ScalarSubBlock(dst, k, a) }

// ScalarDivBlock computes dst[i] = k / a[i].
func ScalarDivBlock(dst []float64, k float64, a []float64) { active().ScalarDivBlock(dst, k, a) }
