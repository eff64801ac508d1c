// Copyright 2025 Grad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built eagerly as a DAG of Scalar nodes; calling Backward
// on any node runs topological backpropagation and accumulates d(root)/d(n)
// into every reachable node that tracks gradients.
//
// Example:
//
//	import "github.com/grad-ml/grad/autodiff"
//
//	func main() {
//	    x := autodiff.Param(1.0)
//	    w := autodiff.Param(2.0)
//	    b := autodiff.Param(-1.0)
//
//	    z := x.Mul(w).Add(b).Sigmoid()
//
//	    if err := z.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(w.Grad()) // dz/dw ≈ 0.1966
//	}
package autodiff

import (
	"github.com/grad-ml/grad/internal/autodiff"
	"github.com/grad-ml/grad/internal/autodiff/ops"
)

// Scalar is one node of a scalar computation graph.
type Scalar = autodiff.Scalar

// Op identifies the primitive operation that produced a node.
type Op = ops.Kind

// DomainError reports a violation of a primitive's mathematical domain at
// node-construction time.
type DomainError = ops.DomainError

// GraphConsistencyError reports a malformed graph discovered during a
// backward pass. It indicates a construction bug and should be treated as
// fatal.
type GraphConsistencyError = autodiff.GraphConsistencyError

// Domain violation sentinels, matched with errors.Is.
var (
	ErrDivisionByZero = ops.ErrDivisionByZero
	ErrLogNonPositive = ops.ErrLogNonPositive
	ErrNegativeBase   = ops.ErrNegativeBase
)

// Constant creates a leaf node without gradient tracking.
func Constant(value float64) *Scalar {
	return autodiff.Constant(value)
}

// Param creates a trainable leaf node with gradient tracking enabled.
func Param(value float64) *Scalar {
	return autodiff.Param(value)
}

// CentralDifference numerically approximates a partial derivative of f.
func CentralDifference(f func([]float64) float64, vals []float64, arg int, eps float64) float64 {
	return autodiff.CentralDifference(f, vals, arg, eps)
}

// CheckGradient verifies the analytic gradients of an expression against
// central-difference approximations.
func CheckGradient(build func(params []*Scalar) (*Scalar, error), vals []float64) error {
	return autodiff.CheckGradient(build, vals)
}
