package testutil

import (
	"math"
	"math/cmplx"
)

// Dense, eagerly evaluated reference implementations of the
// frequency-domain filters, written directly against row-major slices.
// The chunked implementations are required to match these element for
// element within floating tolerance, for every chunk partition.

// FFTFreqAt returns the signed sample frequency of index i for a
// transform of length n, in cycles per sample.
func FFTFreqAt(i, n int) float64 {
	if i < (n+1)/2 {
		return float64(i) / float64(n)
	}
	return float64(i-n) / float64(n)
}

// RefGaussian applies the Gaussian Fourier filter to a dense row-major
// array with the given extents.
func RefGaussian(data []complex128, dims []int, sigma []float64) []complex128 {
	out := make([]complex128, len(data))
	idx := make([]int, len(dims))
	for p := range data {
		sum := 0.0
		for a, v := range idx {
			w := 2 * math.Pi * FFTFreqAt(v, dims[a])
			sum += sigma[a] * sigma[a] * w * w
		}
		out[p] = data[p] * complex(math.Exp(-sum/2), 0)
		increment(idx, dims)
	}
	return out
}

// RefShift applies the linear-phase shift Fourier filter to a dense
// row-major array with the given extents.
func RefShift(data []complex128, dims []int, shift []float64) []complex128 {
	out := make([]complex128, len(data))
	idx := make([]int, len(dims))
	for p := range data {
		theta := 0.0
		for a, v := range idx {
			theta += shift[a] * 2 * math.Pi * FFTFreqAt(v, dims[a])
		}
		out[p] = data[p] * cmplx.Exp(complex(0, -theta))
		increment(idx, dims)
	}
	return out
}
