package fourier

import (
	"fmt"

	"github.com/cwbudde/algo-ndfourier/ndarray"
)

// Gaussian multiplies a Fourier-domain array with the transform of a
// Gaussian kernel, attenuating high frequencies. Inverse transforming
// the result yields the input blurred by a Gaussian of width sigma.
//
// sigma gives the kernel width per axis in samples of the
// spatial-domain signal; a scalar applies to every axis. Only its
// square enters the kernel, so negative widths act like their absolute
// value, and an all-zero sigma returns the input unchanged. Integer
// input is promoted to float64; real and complex input keep their type.
//
// The result is lazy and chunked exactly like the input.
func Gaussian(in *ndarray.Array, sigma Param, opts ...Option) (*ndarray.Array, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	sig, err := sigma.normalize(in.Rank())
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.realLength != -1 {
		return nil, fmt.Errorf("%w: n = %d", ErrUnsupportedMode, cfg.realLength)
	}

	x := in
	if x.DType() == ndarray.Int64 {
		x = x.AsType(ndarray.Float64)
	}

	grid := FreqGrid(x.Shape(), x.Chunks(), x.DType().Real())
	for i, s := range sig {
		sig[i] = s * s
	}
	sum, err := ndarray.Contract(sig, grid.Square())
	if err != nil {
		return nil, err
	}
	kernel := sum.Scale(-0.5).Exp()
	return x.Mul(kernel)
}
