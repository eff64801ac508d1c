package autodiff_test

import (
	"math"
	"testing"

	"github.com/grad-ml/grad/internal/autodiff"
)

// TestCentralDifference checks the finite-difference helper on a function
// with a known derivative.
func TestCentralDifference(t *testing.T) {
	f := func(xs []float64) float64 { return xs[0] * xs[0] * xs[1] }

	// d/dx0 (x0² x1) = 2 x0 x1 = 12 at (2, 3)
	got := autodiff.CentralDifference(f, []float64{2, 3}, 0, 1e-5)
	if math.Abs(got-12.0) > 1e-4 {
		t.Errorf("d/dx0 = %v, want ≈ 12", got)
	}

	// d/dx1 (x0² x1) = x0² = 4
	got = autodiff.CentralDifference(f, []float64{2, 3}, 1, 1e-5)
	if math.Abs(got-4.0) > 1e-4 {
		t.Errorf("d/dx1 = %v, want ≈ 4", got)
	}
}

// TestCheckGradient_Primitives verifies every differentiable primitive
// against central differences at points inside its domain.
func TestCheckGradient_Primitives(t *testing.T) {
	type expr func(p []*autodiff.Scalar) (*autodiff.Scalar, error)

	tests := []struct {
		name  string
		vals  []float64
		build expr
	}{
		{"add", []float64{1.3, -2.1}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Add(p[1]), nil
		}},
		{"sub", []float64{1.3, -2.1}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Sub(p[1]), nil
		}},
		{"neg", []float64{0.7}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Neg(), nil
		}},
		{"mul", []float64{1.5, -0.5}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Mul(p[1]), nil
		}},
		{"div", []float64{1.5, 2.5}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Div(p[1])
		}},
		{"pow", []float64{1.7, 2.3}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Pow(p[1])
		}},
		{"exp", []float64{0.4}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Exp(), nil
		}},
		{"log", []float64{2.2}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Log()
		}},
		{"relu positive", []float64{1.1}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].ReLU(), nil
		}},
		{"relu negative", []float64{-1.1}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].ReLU(), nil
		}},
		{"sigmoid", []float64{0.3}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Sigmoid(), nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := autodiff.CheckGradient(tt.build, tt.vals); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestCheckGradient_Compositions verifies multi-op expressions, including
// ones with shared nodes, against central differences.
func TestCheckGradient_Compositions(t *testing.T) {
	tests := []struct {
		name  string
		vals  []float64
		build func(p []*autodiff.Scalar) (*autodiff.Scalar, error)
	}{
		{"sigmoid(x*w + b)", []float64{1.0, 2.0, -1.0}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Mul(p[1]).Add(p[2]).Sigmoid(), nil
		}},
		{"x*x + x", []float64{3.0}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Mul(p[0]).Add(p[0]), nil
		}},
		{"relu(a*b) - exp(c)", []float64{1.2, 0.8, -0.3}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			return p[0].Mul(p[1]).ReLU().Sub(p[2].Exp()), nil
		}},
		{"log(x² + 1) / y", []float64{1.4, 2.6}, func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
			sq, err := p[0].PowScalar(2)
			if err != nil {
				return nil, err
			}
			num, err := sq.AddScalar(1.0).Log()
			if err != nil {
				return nil, err
			}
			return num.Div(p[1])
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := autodiff.CheckGradient(tt.build, tt.vals); err != nil {
				t.Error(err)
			}
		})
	}
}
