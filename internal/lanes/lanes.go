// Package lanes holds the partition and scalar-tail logic shared by every
// lane-width backend.
//
// A backend with lane width W splits a sequence of length n into a bulk
// region [0, Bulk(n, W)) processed with vector registers and a tail region
// [Bulk(n, W), n) processed here, one element at a time, with the same IEEE
// operator the vector path uses.
package lanes

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch reports that two sequence operands differ in length.
var ErrLengthMismatch = errors.New("length mismatch")

// Bulk returns the length of the bulk region of an n-element sequence for
// the given lane width. The result is a multiple of width and n-Bulk is in
// [0, width).
func Bulk(n, width int) int {
	return n - n%width
}

// CheckLen panics with an error wrapping ErrLengthMismatch when a and b
// differ in length.
func CheckLen(op string, a, b []float64) {
	if len(a) != len(b) {
		panic(mismatch(op, len(a), len(b)))
	}
}

// CheckDst panics with an error wrapping ErrLengthMismatch when dst cannot
// hold exactly n results.
func CheckDst(op string, dst []float64, n int) {
	if len(dst) != n {
		panic(mismatch(op, len(dst), n))
	}
}

// Validate is the non-panicking form of CheckLen.
func Validate(op string, a, b []float64) error {
	if len(a) != len(b) {
		return mismatch(op, len(a), len(b))
	}
	return nil
}

func mismatch(op string, got, want int) error {
	return fmt.Errorf("kernels: %s: %w: %d != %d", op, ErrLengthMismatch, got, want)
}
