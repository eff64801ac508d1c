package autodiff

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/grad-ml/grad/internal/parallel"
)

// Finite-difference defaults. The absolute tolerance dominates near zero,
// the relative tolerance for large derivatives.
const (
	checkEps    = 1e-5
	checkAbsTol = 1e-4
	checkRelTol = 1e-3
)

// CentralDifference approximates the partial derivative of f with respect to
// its arg-th input at vals, using the central difference formula
//
//	(f(..., x+eps, ...) - f(..., x-eps, ...)) / (2*eps)
//
// f must be pure. vals is not mutated.
func CentralDifference(f func([]float64) float64, vals []float64, arg int, eps float64) float64 {
	plus := make([]float64, len(vals))
	minus := make([]float64, len(vals))
	copy(plus, vals)
	copy(minus, vals)
	plus[arg] += eps
	minus[arg] -= eps
	return (f(plus) - f(minus)) / (2 * eps)
}

// CheckGradient verifies the analytic gradients of an expression against
// central-difference approximations.
//
// build receives one Param leaf per entry of vals and must construct the
// expression root from them. The gradient of the root with respect to every
// leaf is compared against the numerical estimate; a mismatch on any
// argument is reported as an error listing the disagreeing values.
//
// The probe evaluations are independent single-use graphs, so they run
// through the parallel helper.
func CheckGradient(build func(params []*Scalar) (*Scalar, error), vals []float64) error {
	params := make([]*Scalar, len(vals))
	for i, v := range vals {
		params[i] = Param(v)
	}

	root, err := build(params)
	if err != nil {
		return fmt.Errorf("gradcheck: build failed: %w", err)
	}
	if err := root.Backward(); err != nil {
		return fmt.Errorf("gradcheck: backward failed: %w", err)
	}

	// Re-runs build at shifted inputs; each call constructs a fresh graph.
	eval := func(xs []float64) float64 {
		probes := make([]*Scalar, len(xs))
		for i, x := range xs {
			probes[i] = Param(x)
		}
		out, err := build(probes)
		if err != nil {
			panic(fmt.Sprintf("gradcheck: build failed at probe point %v: %v", xs, err))
		}
		return out.Value()
	}

	numeric := make([]float64, len(vals))
	parallel.For(len(vals), func(i int) {
		numeric[i] = CentralDifference(eval, vals, i, checkEps)
	}, parallel.DefaultConfig())

	var mismatches []string
	for i, p := range params {
		analytic := p.Grad()
		if !scalar.EqualWithinAbsOrRel(analytic, numeric[i], checkAbsTol, checkRelTol) {
			mismatches = append(mismatches, fmt.Sprintf(
				"arg %d: analytic %v vs numeric %v", i, analytic, numeric[i]))
		}
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("gradcheck: gradient mismatch at %v: %s",
			vals, strings.Join(mismatches, "; "))
	}
	return nil
}
