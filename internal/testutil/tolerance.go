// Package testutil holds assertions and deterministic inputs shared by the
// kernel tests.
package testutil

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// RequireSliceEqual fails t unless got and want have the same length and
// are bit-for-bit equal element by element (NaN matches NaN).
func RequireSliceEqual(t testing.TB, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !SameFloat(got[i], want[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelClose fails t if got and want differ by more than rel relative
// error.
func RequireRelClose(t testing.TB, got, want, rel float64) {
	t.Helper()
	if e := RelErr(got, want); e > rel {
		t.Fatalf("got %v, want %v (relative error %v > %v)", got, want, e, rel)
	}
}

// RelErr returns |got-want| / max(|got|, |want|), 0 when both are equal.
func RelErr(got, want float64) float64 {
	if SameFloat(got, want) {
		return 0
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	if scale == 0 {
		return 0
	}
	return math.Abs(got-want) / scale
}

// SameFloat reports whether a and b are equal, treating NaN as equal to NaN.
func SameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequirePanicIs fails t unless fn panics with an error matching target.
func RequirePanicIs(t testing.TB, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if recovered == nil {
		t.Fatalf("expected panic wrapping %v, got none", target)
	}
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("panic value %v (%T) is not an error", recovered, recovered)
	}
	if !errors.Is(err, target) {
		t.Fatalf("panic error %v does not wrap %v", err, target)
	}
}
