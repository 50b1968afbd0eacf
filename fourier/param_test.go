package fourier

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ndfourier/internal/testutil"
)

func TestParamOf(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		rank    int
		want    []float64
		wantErr error
	}{
		{"int scalar", 3, 2, []float64{3, 3}, nil},
		{"float scalar", 1.5, 3, []float64{1.5, 1.5, 1.5}, nil},
		{"int64 scalar", int64(-2), 1, []float64{-2}, nil},
		{"float32 scalar", float32(0.5), 2, []float64{0.5, 0.5}, nil},
		{"float slice", []float64{0.8, 1.5}, 2, []float64{0.8, 1.5}, nil},
		{"int slice", []int{1, 0}, 2, []float64{1, 0}, nil},
		{"mixed any slice", []any{1, 2.5}, 2, []float64{1, 2.5}, nil},
		{"complex scalar", complex(0, 0), 2, nil, ErrParamType},
		{"complex64 scalar", complex64(0), 2, nil, ErrParamType},
		{"complex element", []any{0.0, complex(0, 0)}, 2, nil, ErrParamType},
		{"complex slice", []complex128{0, 0}, 2, nil, ErrParamType},
		{"map", map[string]float64{}, 2, nil, ErrParamType},
		{"string", "4", 2, nil, ErrParamType},
		{"nil", nil, 2, nil, ErrParamType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParamOf(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParamOf(%v) err = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParamOf(%v): %v", tt.in, err)
			}
			got, err := p.normalize(tt.rank)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
		})
	}
}

func TestParamNormalize(t *testing.T) {
	got, err := Scalar(4).normalize(3)
	if err != nil {
		t.Fatalf("scalar normalize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{4, 4, 4}, 0)

	if _, err := PerAxis(0).normalize(2); !errors.Is(err, ErrParamLength) {
		t.Fatalf("short vector accepted: %v", err)
	}
	if _, err := PerAxis(1, 2, 3).normalize(2); !errors.Is(err, ErrParamLength) {
		t.Fatalf("long vector accepted: %v", err)
	}
	if _, err := (Param{}).normalize(2); !errors.Is(err, ErrParamType) {
		t.Fatalf("zero Param accepted: %v", err)
	}
}

func TestParamNormalizeCopies(t *testing.T) {
	vec := []float64{1, 2}
	p := PerAxis(vec...)
	vec[0] = 99
	got, err := p.normalize(2)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2}, 0)
}
