package ndarray

// DType identifies the element type of an array.
//
// Arithmetic follows the usual promotion order: combining an Int64 array
// with a Float64 one yields Float64, and anything combined with
// Complex128 yields Complex128. Narrowing conversions are not provided.
type DType int

const (
	Int64 DType = iota
	Float64
	Complex128
)

// String returns the Go-style name of the dtype.
func (d DType) String() string {
	switch d {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	}
	return "unknown"
}

// IsComplex reports whether the dtype carries an imaginary component.
func (d DType) IsComplex() bool { return d == Complex128 }

// Real returns the dtype of the real component: Float64 for Complex128,
// the dtype itself otherwise.
func (d DType) Real() DType {
	if d == Complex128 {
		return Float64
	}
	return d
}

// promote returns the wider of two dtypes.
func promote(a, b DType) DType {
	if a > b {
		return a
	}
	return b
}
