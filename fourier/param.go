package fourier

import "fmt"

// Param is a per-axis filter parameter: either a single scalar applied
// to every axis or an explicit value per axis. Build one with [Scalar]
// or [PerAxis], or from dynamically typed input with [ParamOf]. The
// zero Param is invalid and fails validation with ErrParamType.
type Param struct {
	vec    []float64
	scalar float64
	kind   paramKind
}

type paramKind int

const (
	paramInvalid paramKind = iota
	paramScalar
	paramPerAxis
)

// Scalar builds a Param that applies v to every axis.
func Scalar(v float64) Param {
	return Param{kind: paramScalar, scalar: v}
}

// PerAxis builds a Param with one value per axis. The length must equal
// the input's rank at the call site; that is checked by the filter.
func PerAxis(v ...float64) Param {
	vec := make([]float64, len(v))
	copy(vec, v)
	return Param{kind: paramPerAxis, vec: vec}
}

// ParamOf converts dynamically typed input into a Param. Integer and
// real floating values become scalars; slices of those become per-axis
// parameters. Complex values are rejected with ErrParamType, as are
// maps and any other container; a slice containing a complex element is
// rejected the same way.
func ParamOf(v any) (Param, error) {
	if s, ok := realValue(v); ok {
		return Scalar(s), nil
	}
	switch x := v.(type) {
	case []float64:
		return PerAxis(x...), nil
	case []float32:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return PerAxis(out...), nil
	case []int:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return PerAxis(out...), nil
	case []int64:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return PerAxis(out...), nil
	case []any:
		out := make([]float64, len(x))
		for i, e := range x {
			s, ok := realValue(e)
			if !ok {
				return Param{}, fmt.Errorf("%w: element %d is %T", ErrParamType, i, e)
			}
			out[i] = s
		}
		return PerAxis(out...), nil
	}
	return Param{}, fmt.Errorf("%w: got %T", ErrParamType, v)
}

// realValue extracts a real number from a dynamically typed value.
// Complex values are not real numbers here, matching the validation
// contract of the filters.
func realValue(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// normalize expands the parameter to one value per axis.
func (p Param) normalize(rank int) ([]float64, error) {
	switch p.kind {
	case paramScalar:
		out := make([]float64, rank)
		for i := range out {
			out[i] = p.scalar
		}
		return out, nil
	case paramPerAxis:
		if len(p.vec) != rank {
			return nil, fmt.Errorf("%w: %d values for rank %d", ErrParamLength, len(p.vec), rank)
		}
		out := make([]float64, rank)
		copy(out, p.vec)
		return out, nil
	}
	return nil, fmt.Errorf("%w: zero Param", ErrParamType)
}
