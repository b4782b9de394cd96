package kernels

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-vecmath"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPackageFunctions(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7}
	b := []float64{7, 6, 5, 4, 3, 2, 1}

	require.Equal(t, 28.0, Sum(a))
	require.Equal(t, 5040.0, Product(a))
	require.Equal(t, 84.0, Dot(a, b))

	require.Equal(t, []float64{8, 8, 8, 8, 8, 8, 8}, Add(a, b))
	require.Equal(t, []float64{-6, -4, -2, 0, 2, 4, 6}, Sub(a, b))
	require.Equal(t, []float64{7, 12, 15, 16, 15, 12, 7}, Mul(a, b))
	require.Equal(t, []float64{1.0 / 7, 2.0 / 6, 3.0 / 5, 1, 5.0 / 3, 3, 7}, Div(a, b))

	require.Equal(t, []float64{3, 4, 5, 6, 7, 8, 9}, AddScalar(a, 2))
	require.Equal(t, []float64{-1, 0, 1, 2, 3, 4, 5}, SubScalar(a, 2))
	require.Equal(t, []float64{2, 4, 6, 8, 10, 12, 14}, MulScalar(a, 2))
	require.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5}, DivScalar(a, 2))
	require.Equal(t, AddScalar(a, 2), ScalarAdd(2, a))
	require.Equal(t, MulScalar(a, 2), ScalarMul(2, a))
	require.Equal(t, []float64{1, 0, -1, -2, -3, -4, -5}, ScalarSub(2, a))
	require.Equal(t, []float64{420, 210, 140, 105, 84, 70, 60}, ScalarDiv(420, a))
}

func TestPackageBlockFunctions(t *testing.T) {
	a := testutil.DeterministicNoise(21, 4, 19)
	b := testutil.NonZero(22, 19)
	dst := make([]float64, len(a))

	blocks := []struct {
		name  string
		block func()
		want  []float64
	}{
		{"AddBlock", func() { AddBlock(dst, a, b) }, Add(a, b)},
		{"SubBlock", func() { SubBlock(dst, a, b) }, Sub(a, b)},
		{"MulBlock", func() { MulBlock(dst, a, b) }, Mul(a, b)},
		{"DivBlock", func() { DivBlock(dst, a, b) }, Div(a, b)},
		{"AddScalarBlock", func() { AddScalarBlock(dst, a, 0.5) }, AddScalar(a, 0.5)},
		{"SubScalarBlock", func() { SubScalarBlock(dst, a, 0.5) }, SubScalar(a, 0.5)},
		{"MulScalarBlock", func() { MulScalarBlock(dst, a, 0.5) }, MulScalar(a, 0.5)},
		{"DivScalarBlock", func() { DivScalarBlock(dst, a, 0.5) }, DivScalar(a, 0.5)},
		{"ScalarSubBlock", func() { ScalarSubBlock(dst, 0.5, a) }, ScalarSub(0.5, a)},
		{"ScalarDivBlock", func() { ScalarDivBlock(dst, 0.5, b) }, ScalarDiv(0.5, b)},
	}

	for _, tc := range blocks {
		t.Run(tc.name, func(t *testing.T) {
			clear(dst)
			tc.block()
			require.Equal(t, tc.want, dst)
		})
	}
}

// The elementwise block kernels must agree bit for bit with algo-vecmath.
func TestVecmathParity(t *testing.T) {
	for _, n := range testutil.Sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := testutil.DeterministicNoise(int64(n)+31, 20, n)
			b := testutil.DeterministicNoise(int64(n)+32, 20, n)

			want := make([]float64, n)
			got := make([]float64, n)

			vecmath.MulBlock(want, a, b)
			MulBlock(got, a, b)
			require.Equal(t, want, got, "MulBlock")

			vecmath.ScaleBlock(want, a, -1.25)
			MulScalarBlock(got, a, -1.25)
			require.Equal(t, want, got, "ScaleBlock")

			copy(want, a)
			vecmath.AddBlockInPlace(want, b)
			AddBlock(got, a, b)
			require.Equal(t, want, got, "AddBlockInPlace")
		})
	}
}

func TestConcurrentCalls(t *testing.T) {
	a := testutil.DeterministicNoise(41, 1, 1025)
	b := testutil.NonZero(42, 1025)
	wantSum := Sum(a)
	wantDot := Dot(a, b)
	wantDiv := Div(a, b)

	var g errgroup.Group
	for w := range 16 {
		g.Go(func() error {
			for range 50 {
				if got := Sum(a); got != wantSum {
					return fmt.Errorf("worker %d: Sum = %v, want %v", w, got, wantSum)
				}
				if got := Dot(a, b); got != wantDot {
					return fmt.Errorf("worker %d: Dot = %v, want %v", w, got, wantDot)
				}
				got := Div(a, b)
				for i := range got {
					if got[i] != wantDiv[i] {
						return fmt.Errorf("worker %d: Div[%d] = %v, want %v", w, i, got[i], wantDiv[i])
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkDispatchSum(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	b.SetBytes(int64(len(x) * 8))
	b.ReportAllocs()

	for b.Loop() {
		_ = Sum(x)
	}
}

func BenchmarkDispatchMulBlock(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	y := testutil.DeterministicNoise(2, 1, 4096)
	dst := make([]float64, len(x))
	b.SetBytes(int64(len(x) * 16))
	b.ReportAllocs()

	for b.Loop() {
		MulBlock(dst, x, y)
	}
}

func BenchmarkVecmathMulBlock(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	y := testutil.DeterministicNoise(2, 1, 4096)
	dst := make([]float64, len(x))
	b.SetBytes(int64(len(x) * 16))
	b.ReportAllocs()

	for b.Loop() {
		vecmath.MulBlock(dst, x, y)
	}
}
