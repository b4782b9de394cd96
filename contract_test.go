package kernels

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-kernels/avx2"
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/internal/registry"
	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/sse2"
	"github.com/stretchr/testify/require"
)

// contractEntries returns every backend regardless of whether it was
// registered. Unaccelerated builds still run the portable lane emulation.
func contractEntries() []registry.OpEntry {
	return []registry.OpEntry{genericEntry(), sse2Entry(), avx2Entry()}
}

var accelerated = map[string]bool{
	avx2.Name: avx2.Accelerated,
	sse2.Name: sse2.Accelerated,
}

func forEachEntry(t *testing.T, fn func(t *testing.T, e registry.OpEntry)) {
	features := cpu.DetectFeatures()
	for _, e := range contractEntries() {
		t.Run(e.Name, func(t *testing.T) {
			if accelerated[e.Name] && !cpu.Supports(features, e.SIMDLevel) {
				t.Skipf("CPU lacks %s", e.SIMDLevel)
			}
			require.Empty(t, e.Missing())
			fn(t, e)
		})
	}
}

func TestContractScenario(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7}
	b := []float64{7, 6, 5, 4, 3, 2, 1}

	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		require.Equal(t, 28.0, e.Sum(a))
		require.Equal(t, 5040.0, e.Product(a))
		require.Equal(t, 84.0, e.Dot(a, b))

		require.Equal(t, []float64{8, 8, 8, 8, 8, 8, 8}, e.Add(a, b))
		require.Equal(t, []float64{-6, -4, -2, 0, 2, 4, 6}, e.Sub(a, b))
		require.Equal(t, []float64{7, 12, 15, 16, 15, 12, 7}, e.Mul(a, b))
		require.Equal(t, []float64{4, 5, 6, 7, 8, 9, 10}, e.AddScalar(a, 3))
		require.Equal(t, []float64{9, 8, 7, 6, 5, 4, 3}, e.ScalarSub(10, a))
		require.Equal(t, []float64{420, 210, 140, 105, 84, 70, 60}, e.ScalarDiv(420, a))
	})
}

func TestContractEmpty(t *testing.T) {
	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		require.Equal(t, 0.0, e.Sum(nil))
		require.Equal(t, 1.0, e.Product(nil))
		require.Equal(t, 0.0, e.Dot(nil, nil))

		for name, out := range map[string][]float64{
			"Add":       e.Add(nil, nil),
			"Div":       e.Div([]float64{}, []float64{}),
			"MulScalar": e.MulScalar(nil, 2),
			"ScalarDiv": e.ScalarDiv(1, nil),
		} {
			require.NotNil(t, out, name)
			require.Empty(t, out, name)
		}
	})
}

func TestContractElementwiseMatchesGeneric(t *testing.T) {
	ref := genericEntry()

	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		for _, n := range testutil.Sizes {
			a := testutil.DeterministicNoise(int64(n)+1, 50, n)
			b := testutil.NonZero(int64(n)+2, n)
			const k = 1.75

			require.Equal(t, ref.Add(a, b), e.Add(a, b), "Add n=%d", n)
			require.Equal(t, ref.Sub(a, b), e.Sub(a, b), "Sub n=%d", n)
			require.Equal(t, ref.Mul(a, b), e.Mul(a, b), "Mul n=%d", n)
			require.Equal(t, ref.Div(a, b), e.Div(a, b), "Div n=%d", n)

			require.Equal(t, ref.AddScalar(a, k), e.AddScalar(a, k), "AddScalar n=%d", n)
			require.Equal(t, ref.SubScalar(a, k), e.SubScalar(a, k), "SubScalar n=%d", n)
			require.Equal(t, ref.MulScalar(a, k), e.MulScalar(a, k), "MulScalar n=%d", n)
			require.Equal(t, ref.DivScalar(a, k), e.DivScalar(a, k), "DivScalar n=%d", n)
			require.Equal(t, ref.ScalarSub(k, a), e.ScalarSub(k, a), "ScalarSub n=%d", n)
			require.Equal(t, ref.ScalarDiv(k, b), e.ScalarDiv(k, b), "ScalarDiv n=%d", n)
		}
	})
}

func TestContractReductionsWithinTolerance(t *testing.T) {
	ref := genericEntry()

	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		for _, n := range testutil.Sizes {
			a := testutil.DeterministicNoise(int64(n)+3, 10, n)
			b := testutil.DeterministicNoise(int64(n)+4, 10, n)

			var absSum, absDot float64
			for i := range a {
				absSum += math.Abs(a[i])
				absDot += math.Abs(a[i] * b[i])
			}

			if n <= e.Lanes {
				require.Equal(t, ref.Sum(a), e.Sum(a), "Sum n=%d", n)
				require.Equal(t, ref.Dot(a, b), e.Dot(a, b), "Dot n=%d", n)
				continue
			}
			require.InDelta(t, ref.Sum(a), e.Sum(a), 1e-9*absSum+1e-300, "Sum n=%d", n)
			require.InDelta(t, ref.Dot(a, b), e.Dot(a, b), 1e-9*absDot+1e-300, "Dot n=%d", n)
		}
	})
}

func TestContractProductSmallIntegers(t *testing.T) {
	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		for n := 0; n <= 12; n++ {
			x := testutil.Ramp(1, 1, n)
			want := 1.0
			for i := 2; i <= n; i++ {
				want *= float64(i)
			}
			require.Equal(t, want, e.Product(x), "n=%d", n)
		}
	})
}

func TestContractAddSubRoundTrip(t *testing.T) {
	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		for _, n := range []int{e.Lanes - 1, e.Lanes, e.Lanes + 1, 2*e.Lanes + 1, 100} {
			a := testutil.Ramp(-3, 0.5, n)
			b := testutil.Ramp(2, 0.25, n)
			require.Equal(t, a, e.Sub(e.Add(a, b), b), "n=%d", n)
		}
	})
}

func TestContractCommutative(t *testing.T) {
	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		a := testutil.DeterministicNoise(5, 3, 37)
		b := testutil.DeterministicNoise(6, 3, 37)

		require.Equal(t, e.Add(a, b), e.Add(b, a))
		require.Equal(t, e.Mul(a, b), e.Mul(b, a))
		require.Equal(t, e.Dot(a, b), e.Dot(b, a))
	})
}

func TestContractScalarLeftCoversEveryIndex(t *testing.T) {
	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		for _, n := range []int{1, e.Lanes + 1, 2*e.Lanes + 1, 2*e.Lanes + e.Lanes - 1} {
			a := testutil.NonZero(int64(n), n)
			const k = 3.0

			div := e.ScalarDiv(k, a)
			sub := e.ScalarSub(k, a)
			add := e.ScalarAdd(k, a)
			mul := e.ScalarMul(k, a)
			for i := range a {
				require.Equal(t, k/a[i], div[i], "ScalarDiv n=%d i=%d", n, i)
				require.Equal(t, k-a[i], sub[i], "ScalarSub n=%d i=%d", n, i)
				require.Equal(t, k+a[i], add[i], "ScalarAdd n=%d i=%d", n, i)
				require.Equal(t, k*a[i], mul[i], "ScalarMul n=%d i=%d", n, i)
			}
		}
	})
}

func TestContractDivisionByZero(t *testing.T) {
	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		n := 2*e.Lanes + 1
		a := testutil.Ramp(-1, 1, n) // contains a zero numerator
		zeros := make([]float64, n)

		got := e.Div(a, zeros)
		for i, v := range got {
			switch {
			case a[i] > 0:
				require.True(t, math.IsInf(v, 1), "i=%d", i)
			case a[i] < 0:
				require.True(t, math.IsInf(v, -1), "i=%d", i)
			default:
				require.True(t, math.IsNaN(v), "i=%d", i)
			}
		}

		for i, v := range e.ScalarDiv(1, zeros) {
			require.True(t, math.IsInf(v, 1), "i=%d", i)
		}
	})
}

func TestContractLengthMismatch(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}

	forEachEntry(t, func(t *testing.T, e registry.OpEntry) {
		cases := map[string]func(){
			"add": func() { e.Add(a, b) },
			"sub": func() { e.Sub(a, b) },
			"mul": func() { e.Mul(a, b) },
			"div": func() { e.Div(a, b) },
			"dot": func() { e.Dot(a, b) },
		}
		for op, fn := range cases {
			require.PanicsWithError(t, fmt.Sprintf("kernels: %s: length mismatch: 3 != 4", op), fn)
			testutil.RequirePanicIs(t, ErrLengthMismatch, fn)
		}

		dst := []float64{-1, -1, -1}
		require.Panics(t, func() { e.AddBlock(dst, a, b) })
		require.Equal(t, []float64{-1, -1, -1}, dst, "dst written before validation")
	})
}

func TestCheckLengths(t *testing.T) {
	require.NoError(t, CheckLengths(nil, nil))
	require.NoError(t, CheckLengths([]float64{1}, []float64{2}))

	err := CheckLengths([]float64{1, 2}, []float64{1})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrLengthMismatch))
	require.Contains(t, err.Error(), "2 != 1")
}
