package ndarray

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// block is one dense chunk of an array, row-major. Exactly one of the
// value slices is populated, according to dtype.
type block struct {
	shape []int
	dtype DType
	i     []int64
	f     []float64
	c     []complex128
}

func newBlock(dtype DType, shape []int) *block {
	b := &block{shape: shape, dtype: dtype}
	n := countCoords(shape)
	switch dtype {
	case Int64:
		b.i = make([]int64, n)
	case Float64:
		b.f = make([]float64, n)
	case Complex128:
		b.c = make([]complex128, n)
	}
	return b
}

func (b *block) size() int { return countCoords(b.shape) }

// asType returns b converted to dtype. Only widening conversions occur;
// a request to narrow is a programming error and panics.
func (b *block) asType(dtype DType) *block {
	if dtype == b.dtype {
		return b
	}
	if dtype < b.dtype {
		panic("ndarray: narrowing block conversion")
	}
	out := newBlock(dtype, b.shape)
	switch {
	case b.dtype == Int64 && dtype == Float64:
		for i, v := range b.i {
			out.f[i] = float64(v)
		}
	case b.dtype == Int64 && dtype == Complex128:
		for i, v := range b.i {
			out.c[i] = complex(float64(v), 0)
		}
	case b.dtype == Float64 && dtype == Complex128:
		for i, v := range b.f {
			out.c[i] = complex(v, 0)
		}
	}
	return out
}

// scratchBuf holds pooled scratch memory for complex-to-planar
// unpacking ahead of vectorized real arithmetic.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// mulBlocks returns the elementwise product. Both blocks must have the
// same size; dtypes are promoted first.
func mulBlocks(a, b *block) *block {
	dtype := promote(promote(a.dtype, b.dtype), Float64)
	if dtype == Complex128 && a.dtype != Complex128 {
		// Keep the complex operand on the left so the planar fast
		// path below applies.
		a, b = b, a
	}
	a = a.asType(dtype)
	out := newBlock(dtype, a.shape)
	switch {
	case dtype == Float64:
		vecmath.MulBlock(out.f, a.f, b.asType(Float64).f)
	case b.dtype != Complex128:
		mulComplexReal(out.c, a.c, b.asType(Float64).f)
	default:
		for i, v := range a.c {
			out.c[i] = v * b.c[i]
		}
	}
	return out
}

// mulComplexReal computes dst[i] = a[i] * k[i] for a real-valued k,
// through planar re/im scratch so the multiply vectorizes.
func mulComplexReal(dst, a []complex128, k []float64) {
	re, im, buf := getScratch(len(a))
	for i, v := range a {
		re[i] = real(v)
		im[i] = imag(v)
	}
	vecmath.MulBlockInPlace(re, k)
	vecmath.MulBlockInPlace(im, k)
	for i := range dst {
		dst[i] = complex(re[i], im[i])
	}
	putScratch(buf)
}

// addBlocks returns the elementwise sum, promoting dtypes as needed.
func addBlocks(a, b *block) *block {
	dtype := promote(promote(a.dtype, b.dtype), Float64)
	a = a.asType(dtype)
	b = b.asType(dtype)
	out := newBlock(dtype, a.shape)
	if dtype == Float64 {
		copy(out.f, a.f)
		vecmath.AddBlockInPlace(out.f, b.f)
		return out
	}
	for i, v := range a.c {
		out.c[i] = v + b.c[i]
	}
	return out
}

// accumulateScaled adds w * src to dst in place. dst must be Float64 or
// Complex128 and src is promoted to match.
func accumulateScaled(dst *block, w float64, src *block) {
	src = src.asType(dst.dtype)
	if dst.dtype == Float64 {
		tmp, _, buf := getScratch(len(src.f))
		vecmath.ScaleBlock(tmp, src.f, w)
		vecmath.AddBlockInPlace(dst.f, tmp)
		putScratch(buf)
		return
	}
	cw := complex(w, 0)
	for i, v := range src.c {
		dst.c[i] += cw * v
	}
}

// scaleBlock returns k times the block, promoting integers to float64.
func scaleBlock(a *block, k float64) *block {
	a = a.asType(promote(a.dtype, Float64))
	out := newBlock(a.dtype, a.shape)
	if a.dtype == Float64 {
		vecmath.ScaleBlock(out.f, a.f, k)
		return out
	}
	ck := complex(k, 0)
	for i, v := range a.c {
		out.c[i] = ck * v
	}
	return out
}

// squareBlock returns the elementwise square, promoting integers to
// float64.
func squareBlock(a *block) *block {
	a = a.asType(promote(a.dtype, Float64))
	out := newBlock(a.dtype, a.shape)
	if a.dtype == Float64 {
		vecmath.MulBlock(out.f, a.f, a.f)
		return out
	}
	for i, v := range a.c {
		out.c[i] = v * v
	}
	return out
}

// expBlock returns the elementwise exponential, promoting integers to
// float64.
func expBlock(a *block) *block {
	a = a.asType(promote(a.dtype, Float64))
	out := newBlock(a.dtype, a.shape)
	if a.dtype == Float64 {
		for i, v := range a.f {
			out.f[i] = math.Exp(v)
		}
		return out
	}
	for i, v := range a.c {
		out.c[i] = cmplx.Exp(v)
	}
	return out
}

// mulImagBlock returns i*k times the block, always complex.
func mulImagBlock(a *block, k float64) *block {
	a = a.asType(Complex128)
	out := newBlock(Complex128, a.shape)
	ik := complex(0, k)
	for i, v := range a.c {
		out.c[i] = ik * v
	}
	return out
}
