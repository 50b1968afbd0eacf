package fourier

import (
	"math"

	"github.com/cwbudde/algo-ndfourier/ndarray"
)

// FreqGrid builds the stacked angular-frequency grid for an array of
// the given shape and chunk partition: one field per axis, joined along
// a new leading axis. Field i holds 2*pi times the signed sample
// frequency along axis i in FFT wrap-around order, broadcast across
// every other axis. The trailing shape and partition of the grid match
// shape and chunks axis for axis, so the grid combines chunk for chunk
// with data partitioned the same way.
//
// dtype selects the numeric type of the grid, normally the real
// precision of the data the grid will be combined with.
//
// Rank disagreement between shape and chunks is a programming error and
// panics; user-facing argument validation belongs to the filters.
func FreqGrid(shape ndarray.Shape, chunks ndarray.Chunks, dtype ndarray.DType) *ndarray.Array {
	if len(shape) != len(chunks) {
		panic("fourier: shape and chunk partition rank differ")
	}
	fields := make([]*ndarray.Array, len(shape))
	for i := range shape {
		seq, err := ndarray.FFTFreq(shape[i], chunks[i])
		if err != nil {
			panic(err)
		}
		field, err := seq.Along(i, shape, chunks)
		if err != nil {
			panic(err)
		}
		fields[i] = field
	}
	grid, err := ndarray.Stack(fields...)
	if err != nil {
		panic(err)
	}
	return grid.Scale(2 * math.Pi).AsType(dtype)
}
