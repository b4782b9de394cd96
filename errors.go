package kernels

import "github.com/cwbudde/algo-kernels/internal/lanes"

// ErrLengthMismatch is wrapped by the panic value of a binary sequence
// operation whose operands differ in length, and by CheckLengths.
var ErrLengthMismatch = lanes.ErrLengthMismatch

// CheckLengths returns an error wrapping ErrLengthMismatch if a and b differ
// in length. Use it to validate input before calling a kernel that would
// panic.
func CheckLengths(a, b []float64) error {
	return lanes.Validate("check", a, b)
}
