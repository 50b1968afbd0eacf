package ndarray

import "fmt"

// unaryNode applies an elementwise kernel to the chunks of one source.
type unaryNode struct {
	src   *Array
	apply func(*block) *block
}

func (n *unaryNode) chunk(coords []int) (*block, error) {
	b, err := n.src.node.chunk(coords)
	if err != nil {
		return nil, err
	}
	return n.apply(b), nil
}

func (a *Array) mapUnary(dtype DType, apply func(*block) *block) *Array {
	return &Array{
		shape:  a.shape,
		chunks: a.chunks,
		dtype:  dtype,
		node:   &unaryNode{src: a, apply: apply},
	}
}

// AsType returns the array converted to dtype. Only widening
// conversions are allowed; narrowing panics, as it would silently lose
// value information.
func (a *Array) AsType(dtype DType) *Array {
	if dtype == a.dtype {
		return a
	}
	if dtype < a.dtype {
		panic(fmt.Sprintf("ndarray: cannot convert %v to %v", a.dtype, dtype))
	}
	return a.mapUnary(dtype, func(b *block) *block { return b.asType(dtype) })
}

// Scale returns k times the array, elementwise. Integer input is
// promoted to float64.
func (a *Array) Scale(k float64) *Array {
	return a.mapUnary(promote(a.dtype, Float64), func(b *block) *block { return scaleBlock(b, k) })
}

// Square returns the elementwise square. Integer input is promoted to
// float64.
func (a *Array) Square() *Array {
	return a.mapUnary(promote(a.dtype, Float64), func(b *block) *block { return squareBlock(b) })
}

// Exp returns the elementwise exponential. Integer input is promoted to
// float64; complex input uses the complex exponential.
func (a *Array) Exp() *Array {
	return a.mapUnary(promote(a.dtype, Float64), func(b *block) *block { return expBlock(b) })
}

// MulImag returns i*k times the array, elementwise. The result is
// always complex.
func (a *Array) MulImag(k float64) *Array {
	return a.mapUnary(Complex128, func(b *block) *block { return mulImagBlock(b, k) })
}

// binaryNode combines chunk pairs from two identically partitioned
// sources.
type binaryNode struct {
	lhs, rhs *Array
	apply    func(x, y *block) *block
}

func (n *binaryNode) chunk(coords []int) (*block, error) {
	x, err := n.lhs.node.chunk(coords)
	if err != nil {
		return nil, err
	}
	y, err := n.rhs.node.chunk(coords)
	if err != nil {
		return nil, err
	}
	return n.apply(x, y), nil
}

func combine(a, b *Array, apply func(x, y *block) *block) (*Array, error) {
	if !a.shape.equal(b.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	if !a.chunks.equal(b.chunks) {
		return nil, ErrChunksMismatch
	}
	return &Array{
		shape:  a.shape,
		chunks: a.chunks,
		dtype:  promote(promote(a.dtype, b.dtype), Float64),
		node:   &binaryNode{lhs: a, rhs: b, apply: apply},
	}, nil
}

// Mul returns the elementwise product of a and b. Both arrays must have
// identical shape and chunk partition so the product combines block for
// block without any re-chunking.
func (a *Array) Mul(b *Array) (*Array, error) {
	return combine(a, b, mulBlocks)
}

// Add returns the elementwise sum of a and b, under the same shape and
// partition requirements as [Array.Mul].
func (a *Array) Add(b *Array) (*Array, error) {
	return combine(a, b, addBlocks)
}

// stackNode joins members along a new leading axis.
type stackNode struct {
	members []*Array
	dtype   DType
}

func (n *stackNode) chunk(coords []int) (*block, error) {
	b, err := n.members[coords[0]].node.chunk(coords[1:])
	if err != nil {
		return nil, err
	}
	b = b.asType(n.dtype)
	shape := append([]int{1}, b.shape...)
	return &block{shape: shape, dtype: b.dtype, i: b.i, f: b.f, c: b.c}, nil
}

// Stack joins arrays of identical shape and chunk partition along a new
// leading axis. Each member occupies one chunk of length 1 along the
// new axis, so the trailing partition is preserved exactly.
func Stack(members ...*Array) (*Array, error) {
	if len(members) == 0 {
		return nil, ErrEmptyShape
	}
	first := members[0]
	dtype := first.dtype
	for _, m := range members[1:] {
		if !m.shape.equal(first.shape) {
			return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, m.shape, first.shape)
		}
		if !m.chunks.equal(first.chunks) {
			return nil, ErrChunksMismatch
		}
		dtype = promote(dtype, m.dtype)
	}
	shape := append(Shape{len(members)}, first.shape.clone()...)
	lead := make([]int, len(members))
	for i := range lead {
		lead[i] = 1
	}
	chunks := append(Chunks{lead}, first.chunks.clone()...)
	return &Array{
		shape:  shape,
		chunks: chunks,
		dtype:  dtype,
		node:   &stackNode{members: members, dtype: dtype},
	}, nil
}

// contractNode sums vec[k] * src[k, ...] over the leading axis.
type contractNode struct {
	src   *Array
	vec   []float64
	dtype DType
}

func (n *contractNode) chunk(coords []int) (*block, error) {
	out := newBlock(n.dtype, n.src.chunks.blockShape(append([]int{0}, coords...))[1:])
	inner := make([]int, 0, len(coords)+1)
	for k0 := range n.src.chunks[0] {
		inner = append(inner[:0], k0)
		inner = append(inner, coords...)
		b, err := n.src.node.chunk(inner)
		if err != nil {
			return nil, err
		}
		sliceLen := out.size()
		off := n.src.chunks.offset(0, k0)
		for j := 0; j < b.shape[0]; j++ {
			accumulateScaled(out, n.vec[off+j], sliceAt(b, j, sliceLen))
		}
	}
	return out, nil
}

// sliceAt views slice j along the leading axis of b as its own block.
func sliceAt(b *block, j, sliceLen int) *block {
	out := &block{shape: b.shape[1:], dtype: b.dtype}
	lo, hi := j*sliceLen, (j+1)*sliceLen
	switch b.dtype {
	case Int64:
		out.i = b.i[lo:hi]
	case Float64:
		out.f = b.f[lo:hi]
	case Complex128:
		out.c = b.c[lo:hi]
	}
	return out
}

// Contract contracts vec against the leading axis of a: the result at
// index idx is the sum over k of vec[k] * a[k, idx...]. The result drops
// the leading axis and keeps the trailing shape and partition unchanged.
func Contract(vec []float64, a *Array) (*Array, error) {
	if a.Rank() < 2 {
		return nil, fmt.Errorf("%w: contraction needs a stacked axis", ErrRankMismatch)
	}
	if len(vec) != a.shape[0] {
		return nil, fmt.Errorf("%w: %d coefficients for leading extent %d", ErrLengthMismatch, len(vec), a.shape[0])
	}
	cv := make([]float64, len(vec))
	copy(cv, vec)
	return &Array{
		shape:  a.shape[1:].clone(),
		chunks: a.chunks[1:].clone(),
		dtype:  promote(a.dtype, Float64),
		node:   &contractNode{src: a, vec: cv, dtype: promote(a.dtype, Float64)},
	}, nil
}
