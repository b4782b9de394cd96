package testutil

import "math/rand"

// Sizes covers the empty case, lengths around one and two vector widths of
// both backends, and larger lengths that are not multiples of 4.
var Sizes = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 15, 16, 17, 31, 33, 64, 100, 1023, 1025}

// DeterministicNoise returns values in [-amplitude, amplitude) from a fixed
// seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NonZero returns deterministic values whose magnitude is in [0.5, 1.5),
// safe as divisors.
func NonZero(seed int64, length int) []float64 {
	out := DeterministicNoise(seed, 1, length)
	for i, v := range out {
		if v < 0 {
			out[i] = v - 0.5
		} else {
			out[i] = v + 0.5
		}
	}
	return out
}

// Ramp returns start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
