package fourier

import "errors"

// Errors returned by the filters. Arguments are validated before any
// lazy computation is composed, so a non-nil error means no work was
// queued.
var (
	ErrNilInput        = errors.New("fourier: nil input array")
	ErrParamType       = errors.New("fourier: parameter must be a real number or a sequence of real numbers")
	ErrParamLength     = errors.New("fourier: parameter length does not match the input rank")
	ErrUnsupportedMode = errors.New("fourier: real-transform mode (n != -1) is not implemented")
)

// Option configures a filter call.
type Option func(*config)

type config struct {
	realLength int
	realAxis   int
}

func defaultConfig() config {
	return config{realLength: -1, realAxis: -1}
}

// WithRealLength declares the input to be the result of a real
// transform whose pre-transform extent along the real axis was n. Only
// the default n == -1 (input from a full complex transform) is
// supported; any other value makes the filter fail with
// ErrUnsupportedMode rather than silently mishandling the folded
// spectrum.
func WithRealLength(n int) Option {
	return func(c *config) { c.realLength = n }
}

// WithRealAxis selects the axis of the real transform. It only matters
// together with [WithRealLength], which currently rejects every
// non-default length.
func WithRealAxis(axis int) Option {
	return func(c *config) { c.realAxis = axis }
}
