package ndarray

import (
	"errors"
	"fmt"
)

// Errors returned by array constructors and combinators.
var (
	ErrEmptyShape     = errors.New("ndarray: shape must have at least one axis")
	ErrBadExtent      = errors.New("ndarray: axis extents must be positive")
	ErrBadChunks      = errors.New("ndarray: chunk lengths must be positive and sum to the axis extent")
	ErrRankMismatch   = errors.New("ndarray: rank mismatch")
	ErrShapeMismatch  = errors.New("ndarray: shape mismatch")
	ErrChunksMismatch = errors.New("ndarray: chunk partition mismatch")
	ErrLengthMismatch = errors.New("ndarray: data length does not match shape")
	ErrNarrowing      = errors.New("ndarray: narrowing dtype conversion")
)

// Shape describes the logical extent of an array, one entry per axis.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Size returns the total number of elements.
func (s Shape) Size() int {
	n := 1
	for _, v := range s {
		n *= v
	}
	return n
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

func (s Shape) validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	for i, v := range s {
		if v <= 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrBadExtent, i, v)
		}
	}
	return nil
}

func (s Shape) equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Chunks describes how each axis is partitioned into contiguous blocks.
// chunks[axis] lists the block lengths along that axis; they must be
// positive and sum to the axis extent.
type Chunks [][]int

func (c Chunks) clone() Chunks {
	out := make(Chunks, len(c))
	for i, axis := range c {
		out[i] = make([]int, len(axis))
		copy(out[i], axis)
	}
	return out
}

func (c Chunks) validate(s Shape) error {
	if len(c) != len(s) {
		return fmt.Errorf("%w: %d chunked axes for rank %d", ErrRankMismatch, len(c), len(s))
	}
	for i, axis := range c {
		if err := validateChunking(axis, s[i]); err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
	}
	return nil
}

func validateChunking(lens []int, extent int) error {
	if len(lens) == 0 {
		return ErrBadChunks
	}
	sum := 0
	for _, v := range lens {
		if v <= 0 {
			return fmt.Errorf("%w: block length %d", ErrBadChunks, v)
		}
		sum += v
	}
	if sum != extent {
		return fmt.Errorf("%w: blocks sum to %d, extent is %d", ErrBadChunks, sum, extent)
	}
	return nil
}

func (c Chunks) equal(o Chunks) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if len(c[i]) != len(o[i]) {
			return false
		}
		for j := range c[i] {
			if c[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// gridDims returns the number of blocks along each axis.
func (c Chunks) gridDims() []int {
	out := make([]int, len(c))
	for i, axis := range c {
		out[i] = len(axis)
	}
	return out
}

// offset returns the global start index of block b along axis.
func (c Chunks) offset(axis, b int) int {
	off := 0
	for _, v := range c[axis][:b] {
		off += v
	}
	return off
}

// blockShape returns the dense extents of the block at chunk coords.
func (c Chunks) blockShape(coords []int) []int {
	out := make([]int, len(c))
	for i, b := range coords {
		out[i] = c[i][b]
	}
	return out
}

// RegularChunks partitions shape into blocks of the given lengths, one
// per axis; the final block along an axis may be shorter. A block length
// of zero (or one exceeding the extent) selects the whole axis.
func RegularChunks(shape Shape, blockLens ...int) (Chunks, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(blockLens) != len(shape) {
		return nil, fmt.Errorf("%w: %d block lengths for rank %d", ErrRankMismatch, len(blockLens), len(shape))
	}
	out := make(Chunks, len(shape))
	for i, bl := range blockLens {
		if bl < 0 {
			return nil, fmt.Errorf("%w: block length %d", ErrBadChunks, bl)
		}
		if bl == 0 || bl > shape[i] {
			bl = shape[i]
		}
		for rem := shape[i]; rem > 0; rem -= bl {
			if bl > rem {
				out[i] = append(out[i], rem)
			} else {
				out[i] = append(out[i], bl)
			}
		}
	}
	return out, nil
}

// SingleChunk partitions the whole array as one block per axis.
func SingleChunk(shape Shape) Chunks {
	out := make(Chunks, len(shape))
	for i, v := range shape {
		out[i] = []int{v}
	}
	return out
}

// strides returns row-major strides for the given extents.
func strides(dims []int) []int {
	out := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		out[i] = acc
		acc *= dims[i]
	}
	return out
}

// forEachCoord invokes fn for every multi-index of dims in row-major
// order. Stops at the first error. The coords slice is reused between
// calls; fn must not retain it.
func forEachCoord(dims []int, fn func(coords []int) error) error {
	coords := make([]int, len(dims))
	for {
		if err := fn(coords); err != nil {
			return err
		}
		axis := len(dims) - 1
		for axis >= 0 {
			coords[axis]++
			if coords[axis] < dims[axis] {
				break
			}
			coords[axis] = 0
			axis--
		}
		if axis < 0 {
			return nil
		}
	}
}

func countCoords(dims []int) int {
	n := 1
	for _, v := range dims {
		n *= v
	}
	return n
}
