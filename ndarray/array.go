package ndarray

import "fmt"

// Array is a lazily evaluated, chunk-partitioned n-dimensional array.
//
// An Array never holds its full contents: it records how each chunk is
// computed, and chunks are evaluated on demand during materialization.
// Arrays are immutable and safe for concurrent use; every operation
// returns a new handle.
type Array struct {
	shape  Shape
	chunks Chunks
	dtype  DType
	node   node
}

// node computes one dense block of an array, identified by its chunk
// coordinates within the chunk grid.
type node interface {
	chunk(coords []int) (*block, error)
}

// Shape returns a copy of the logical shape.
func (a *Array) Shape() Shape { return a.shape.clone() }

// Chunks returns a copy of the chunk partition.
func (a *Array) Chunks() Chunks { return a.chunks.clone() }

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// NumChunks returns the total number of blocks in the chunk grid.
func (a *Array) NumChunks() int { return countCoords(a.chunks.gridDims()) }

// sourceNode serves blocks sliced out of a dense row-major buffer.
type sourceNode[T int64 | float64 | complex128] struct {
	data   []T
	dtype  DType
	shape  Shape
	chunks Chunks
}

func (s *sourceNode[T]) chunk(coords []int) (*block, error) {
	bs := s.chunks.blockShape(coords)
	off := make([]int, len(coords))
	for i, b := range coords {
		off[i] = s.chunks.offset(i, b)
	}
	out := newBlock(s.dtype, bs)
	var dst []T
	switch s.dtype {
	case Int64:
		dst = any(out.i).([]T)
	case Float64:
		dst = any(out.f).([]T)
	case Complex128:
		dst = any(out.c).([]T)
	}
	copyRegion(dst, s.data, s.shape, off, bs)
	return out, nil
}

// copyRegion copies the hyper-rectangle starting at off with extents
// lens out of a dense row-major src with the given dims into dst.
func copyRegion[T int64 | float64 | complex128](dst, src []T, dims, off, lens []int) {
	st := strides(dims)
	last := len(dims) - 1
	rowLen := lens[last]
	di := 0
	_ = forEachCoord(lens[:last], func(coords []int) error {
		si := off[last] * st[last]
		for i, c := range coords {
			si += (off[i] + c) * st[i]
		}
		copy(dst[di:di+rowLen], src[si:si+rowLen])
		di += rowLen
		return nil
	})
}

func newSource[T int64 | float64 | complex128](data []T, dtype DType, shape Shape, chunks Chunks) (*Array, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if err := chunks.validate(shape); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: %d elements for shape size %d", ErrLengthMismatch, len(data), shape.Size())
	}
	shape = shape.clone()
	chunks = chunks.clone()
	return &Array{
		shape:  shape,
		chunks: chunks,
		dtype:  dtype,
		node:   &sourceNode[T]{data: data, dtype: dtype, shape: shape, chunks: chunks},
	}, nil
}

// FromSlice wraps a dense row-major float64 slice as a chunked array.
// The data is referenced, not copied; the caller must not mutate it
// while the array is in use.
func FromSlice(data []float64, shape Shape, chunks Chunks) (*Array, error) {
	return newSource(data, Float64, shape, chunks)
}

// FromComplexSlice wraps a dense row-major complex128 slice as a
// chunked array. The data is referenced, not copied.
func FromComplexSlice(data []complex128, shape Shape, chunks Chunks) (*Array, error) {
	return newSource(data, Complex128, shape, chunks)
}

// FromInt64Slice wraps a dense row-major int64 slice as a chunked
// array. The data is referenced, not copied.
func FromInt64Slice(data []int64, shape Shape, chunks Chunks) (*Array, error) {
	return newSource(data, Int64, shape, chunks)
}
