package ndarray

import "fmt"

// seqNode generates a chunk-partitioned 1-D sequence from its global
// index, so each block is computed from its own offset and recombining
// with data chunked the same way never re-chunks.
type seqNode struct {
	chunks Chunks
	dtype  DType
	valueF func(i int) float64
	valueI func(i int) int64
}

func (n *seqNode) chunk(coords []int) (*block, error) {
	off := n.chunks.offset(0, coords[0])
	ln := n.chunks[0][coords[0]]
	out := newBlock(n.dtype, []int{ln})
	if n.dtype == Int64 {
		for i := 0; i < ln; i++ {
			out.i[i] = n.valueI(off + i)
		}
		return out, nil
	}
	for i := 0; i < ln; i++ {
		out.f[i] = n.valueF(off + i)
	}
	return out, nil
}

func newSeq(n int, chunking []int, sn *seqNode) (*Array, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrBadExtent, n)
	}
	if err := validateChunking(chunking, n); err != nil {
		return nil, err
	}
	lens := make([]int, len(chunking))
	copy(lens, chunking)
	sn.chunks = Chunks{lens}
	return &Array{shape: Shape{n}, chunks: sn.chunks, dtype: sn.dtype, node: sn}, nil
}

// FFTFreq returns the 1-D signed sample-frequency sequence for a
// transform of the given length, partitioned by chunking. Values follow
// the FFT wrap-around order 0, 1/n, ..., up to the Nyquist index, then
// the negative frequencies -floor(n/2)/n, ..., -1/n. Frequencies are in
// cycles per sample; multiply by 2*pi for angular frequency.
func FFTFreq(n int, chunking []int) (*Array, error) {
	half := (n + 1) / 2
	return newSeq(n, chunking, &seqNode{
		dtype: Float64,
		valueF: func(i int) float64 {
			if i < half {
				return float64(i) / float64(n)
			}
			return float64(i-n) / float64(n)
		},
	})
}

// Coords returns the 1-D integer coordinate sequence 0..n-1,
// partitioned by chunking.
func Coords(n int, chunking []int) (*Array, error) {
	return newSeq(n, chunking, &seqNode{
		dtype:  Int64,
		valueI: func(i int) int64 { return int64(i) },
	})
}

// alongNode replicates a 1-D sequence along every axis but one.
type alongNode struct {
	src    *Array
	axis   int
	chunks Chunks
}

func (n *alongNode) chunk(coords []int) (*block, error) {
	line, err := n.src.node.chunk(coords[n.axis : n.axis+1])
	if err != nil {
		return nil, err
	}
	bs := n.chunks.blockShape(coords)
	out := newBlock(line.dtype, bs)
	st := strides(bs)
	size := out.size()
	switch line.dtype {
	case Int64:
		for p := 0; p < size; p++ {
			out.i[p] = line.i[(p/st[n.axis])%bs[n.axis]]
		}
	case Float64:
		for p := 0; p < size; p++ {
			out.f[p] = line.f[(p/st[n.axis])%bs[n.axis]]
		}
	case Complex128:
		for p := 0; p < size; p++ {
			out.c[p] = line.c[(p/st[n.axis])%bs[n.axis]]
		}
	}
	return out, nil
}

// Along places a 1-D sequence along one axis of an n-dimensional space,
// replicated across every other axis. The sequence's extent and
// chunking must match the target's on that axis, and the result adopts
// the target partition on all axes, so it combines block for block with
// data chunked by chunks.
func (a *Array) Along(axis int, shape Shape, chunks Chunks) (*Array, error) {
	if a.Rank() != 1 {
		return nil, fmt.Errorf("%w: Along needs a 1-D sequence, got rank %d", ErrRankMismatch, a.Rank())
	}
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if err := chunks.validate(shape); err != nil {
		return nil, err
	}
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("%w: axis %d out of range for rank %d", ErrRankMismatch, axis, len(shape))
	}
	if shape[axis] != a.shape[0] {
		return nil, fmt.Errorf("%w: sequence length %d, axis extent %d", ErrShapeMismatch, a.shape[0], shape[axis])
	}
	if !(Chunks{chunks[axis]}).equal(Chunks{a.chunks[0]}) {
		return nil, fmt.Errorf("%w: sequence chunking differs from target axis %d", ErrChunksMismatch, axis)
	}
	shape = shape.clone()
	chunks = chunks.clone()
	return &Array{
		shape:  shape,
		chunks: chunks,
		dtype:  a.dtype,
		node:   &alongNode{src: a, axis: axis, chunks: chunks},
	}, nil
}
