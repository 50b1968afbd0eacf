package ndarray

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Dense holds a fully materialized array in row-major order. Exactly
// one value slice is populated, according to DType.
type Dense struct {
	Shape       Shape
	DType       DType
	Int64s      []int64
	Float64s    []float64
	Complex128s []complex128
}

// Materialize evaluates every chunk and assembles the dense row-major
// result. Chunks are computed concurrently, bounded by GOMAXPROCS;
// evaluation stops at the first chunk error or context cancellation.
func (a *Array) Materialize(ctx context.Context) (*Dense, error) {
	out := &Dense{Shape: a.Shape(), DType: a.dtype}
	size := a.shape.Size()
	switch a.dtype {
	case Int64:
		out.Int64s = make([]int64, size)
	case Float64:
		out.Float64s = make([]float64, size)
	case Complex128:
		out.Complex128s = make([]complex128, size)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	_ = forEachCoord(a.chunks.gridDims(), func(coords []int) error {
		c := append([]int(nil), coords...)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := a.node.chunk(c)
			if err != nil {
				return err
			}
			off := make([]int, len(c))
			for i, bi := range c {
				off[i] = a.chunks.offset(i, bi)
			}
			switch a.dtype {
			case Int64:
				writeRegion(out.Int64s, b.i, a.shape, off, b.shape)
			case Float64:
				writeRegion(out.Float64s, b.f, a.shape, off, b.shape)
			case Complex128:
				writeRegion(out.Complex128s, b.c, a.shape, off, b.shape)
			}
			return nil
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// writeRegion scatters a dense row-major src of extents lens into the
// hyper-rectangle starting at off of a dense row-major dst with the
// given dims. The inverse of copyRegion.
func writeRegion[T int64 | float64 | complex128](dst, src []T, dims, off, lens []int) {
	st := strides(dims)
	last := len(dims) - 1
	rowLen := lens[last]
	si := 0
	_ = forEachCoord(lens[:last], func(coords []int) error {
		di := off[last] * st[last]
		for i, c := range coords {
			di += (off[i] + c) * st[i]
		}
		copy(dst[di:di+rowLen], src[si:si+rowLen])
		si += rowLen
		return nil
	})
}

// Float64s materializes the array as a dense row-major float64 slice.
// Integer arrays are converted; complex arrays are rejected with
// ErrNarrowing.
func (a *Array) Float64s(ctx context.Context) ([]float64, error) {
	if a.dtype == Complex128 {
		return nil, ErrNarrowing
	}
	d, err := a.AsType(Float64).Materialize(ctx)
	if err != nil {
		return nil, err
	}
	return d.Float64s, nil
}

// Complex128s materializes the array as a dense row-major complex128
// slice, promoting real and integer elements.
func (a *Array) Complex128s(ctx context.Context) ([]complex128, error) {
	d, err := a.AsType(Complex128).Materialize(ctx)
	if err != nil {
		return nil, err
	}
	return d.Complex128s, nil
}
