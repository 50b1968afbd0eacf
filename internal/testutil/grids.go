package testutil

// Ramp returns the consecutive values 0..n-1 as float64, the row-major
// flattening of a consecutive-integer grid of any shape with n cells.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// RampComplex returns the consecutive values 0..n-1 cast to complex.
func RampComplex(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(float64(i), 0)
	}
	return out
}

// RampInt64 returns the consecutive values 0..n-1 as int64.
func RampInt64(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}

// Roll circularly shifts a dense row-major array of the given extents
// by shift samples per axis, positive shifts moving values toward
// higher indices. This is the spatial-domain ground truth for the
// frequency-domain shift filter at integral displacements.
func Roll(data []complex128, dims []int, shift []int) []complex128 {
	out := make([]complex128, len(data))
	st := rowMajorStrides(dims)
	idx := make([]int, len(dims))
	for p := range data {
		q := 0
		for a, v := range idx {
			w := (v + shift[a]) % dims[a]
			if w < 0 {
				w += dims[a]
			}
			q += w * st[a]
		}
		out[q] = data[p]
		increment(idx, dims)
	}
	return out
}

func rowMajorStrides(dims []int) []int {
	st := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= dims[i]
	}
	return st
}

func increment(idx, dims []int) {
	for a := len(dims) - 1; a >= 0; a-- {
		idx[a]++
		if idx[a] < dims[a] {
			return
		}
		idx[a] = 0
	}
}
