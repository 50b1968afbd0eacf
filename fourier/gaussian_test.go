package fourier

import (
	"context"
	"errors"
	"testing"

	"github.com/cwbudde/algo-ndfourier/internal/testutil"
	"github.com/cwbudde/algo-ndfourier/ndarray"
)

// rampArray returns the 10x14 consecutive-integer array cast to
// complex, chunked as 5x7 blocks, mirroring the canonical scenario the
// filters are validated against.
func rampArray(t *testing.T) *ndarray.Array {
	t.Helper()
	return rampArrayChunked(t, 5, 7)
}

func rampArrayChunked(t *testing.T, blockLens ...int) *ndarray.Array {
	t.Helper()
	shape := ndarray.Shape{10, 14}
	chunks, err := ndarray.RegularChunks(shape, blockLens...)
	if err != nil {
		t.Fatalf("RegularChunks: %v", err)
	}
	arr, err := ndarray.FromComplexSlice(testutil.RampComplex(140), shape, chunks)
	if err != nil {
		t.Fatalf("FromComplexSlice: %v", err)
	}
	return arr
}

func TestGaussianIdentityAtZero(t *testing.T) {
	ctx := context.Background()
	in := rampArray(t)
	want := testutil.RampComplex(140)

	for _, sigma := range []Param{Scalar(0), PerAxis(0, 0)} {
		out, err := Gaussian(in, sigma)
		if err != nil {
			t.Fatalf("Gaussian: %v", err)
		}
		if out.DType() != ndarray.Complex128 {
			t.Fatalf("dtype = %v, want complex128", out.DType())
		}
		got, err := out.Complex128s(ctx)
		if err != nil {
			t.Fatalf("materialize: %v", err)
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 0)
	}
}

func TestGaussianSignInvariance(t *testing.T) {
	ctx := context.Background()
	in := rampArray(t)

	pos, err := Gaussian(in, Scalar(2.5))
	if err != nil {
		t.Fatalf("Gaussian(+): %v", err)
	}
	neg, err := Gaussian(in, Scalar(-2.5))
	if err != nil {
		t.Fatalf("Gaussian(-): %v", err)
	}
	gotPos, err := pos.Complex128s(ctx)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	gotNeg, err := neg.Complex128s(ctx)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, gotPos, gotNeg, 0)
}

func TestGaussianMatchesReference(t *testing.T) {
	ctx := context.Background()
	in := rampArray(t)
	dense := testutil.RampComplex(140)
	dims := []int{10, 14}

	sigmas := []struct {
		name  string
		param Param
		vec   []float64
	}{
		{"scalar 4", Scalar(4), []float64{4, 4}},
		{"scalar 0.5", Scalar(0.5), []float64{0.5, 0.5}},
		{"per-axis", PerAxis(0.8, 1.5), []float64{0.8, 1.5}},
		{"mixed sign", PerAxis(-1, 2), []float64{-1, 2}},
		{"one axis off", PerAxis(1, 0), []float64{1, 0}},
	}
	for _, tt := range sigmas {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Gaussian(in, tt.param)
			if err != nil {
				t.Fatalf("Gaussian: %v", err)
			}
			got, err := out.Complex128s(ctx)
			if err != nil {
				t.Fatalf("materialize: %v", err)
			}
			want := testutil.RefGaussian(dense, dims, tt.vec)
			testutil.RequireComplexNearlyEqual(t, got, want, 1e-11)
		})
	}
}

func TestGaussianPartitionInvariance(t *testing.T) {
	ctx := context.Background()
	ref, err := Gaussian(rampArrayChunked(t, 10, 14), Scalar(4))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	want, err := ref.Complex128s(ctx)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	for _, bl := range [][]int{{5, 7}, {3, 4}, {1, 14}, {10, 1}} {
		out, err := Gaussian(rampArrayChunked(t, bl...), Scalar(4))
		if err != nil {
			t.Fatalf("partition %v: %v", bl, err)
		}
		got, err := out.Complex128s(ctx)
		if err != nil {
			t.Fatalf("materialize: %v", err)
		}
		testutil.RequireComplexNearlyEqual(t, got, want, 0)
	}
}

func TestGaussianPromotesInteger(t *testing.T) {
	ctx := context.Background()
	shape := ndarray.Shape{10, 14}
	chunks, err := ndarray.RegularChunks(shape, 5, 7)
	if err != nil {
		t.Fatalf("RegularChunks: %v", err)
	}
	in, err := ndarray.FromInt64Slice(testutil.RampInt64(140), shape, chunks)
	if err != nil {
		t.Fatalf("FromInt64Slice: %v", err)
	}

	out, err := Gaussian(in, Scalar(1))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if out.DType() != ndarray.Float64 {
		t.Fatalf("dtype = %v, want float64", out.DType())
	}

	got, err := out.Float64s(ctx)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	want := testutil.RefGaussian(testutil.RampComplex(140), []int{10, 14}, []float64{1, 1})
	wantRe := make([]float64, len(want))
	for i, v := range want {
		wantRe[i] = real(v)
	}
	testutil.RequireSliceNearlyEqual(t, got, wantRe, 1e-12)
}

func TestGaussianKeepsRealInputReal(t *testing.T) {
	shape := ndarray.Shape{6}
	in, err := ndarray.FromSlice(testutil.Ramp(6), shape, ndarray.SingleChunk(shape))
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	out, err := Gaussian(in, Scalar(2))
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if out.DType() != ndarray.Float64 {
		t.Fatalf("dtype = %v, want float64", out.DType())
	}
}

func TestGaussianErrors(t *testing.T) {
	in := rampArray(t)

	tests := []struct {
		name    string
		sigma   Param
		opts    []Option
		wantErr error
	}{
		{"length short", PerAxis(0), nil, ErrParamLength},
		{"length long", PerAxis(1, 2, 3), nil, ErrParamLength},
		{"zero param", Param{}, nil, ErrParamType},
		{"unsupported n", Scalar(0), []Option{WithRealLength(0)}, ErrUnsupportedMode},
		{"unsupported n with axis", Scalar(1), []Option{WithRealLength(3), WithRealAxis(1)}, ErrUnsupportedMode},
		// Parameter validation precedes the mode check.
		{"bad param wins over n", PerAxis(0), []Option{WithRealLength(0)}, ErrParamLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Gaussian(in, tt.sigma, tt.opts...); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Gaussian(nil, Scalar(1)); !errors.Is(err, ErrNilInput) {
		t.Fatalf("nil input: got %v", err)
	}
}
