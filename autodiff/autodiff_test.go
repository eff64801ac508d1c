// Copyright 2025 Grad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grad-ml/grad/autodiff"
)

// TestPublicAPI_EndToEnd drives the whole public surface: graph building,
// backward, gradient readout, and gradient checking.
func TestPublicAPI_EndToEnd(t *testing.T) {
	x := autodiff.Param(1.0)
	w := autodiff.Param(2.0)
	b := autodiff.Param(-1.0)

	z := x.Mul(w).Add(b).Sigmoid()
	assert.InDelta(t, 0.7311, z.Value(), 1e-3)

	require.NoError(t, z.Backward())
	assert.InDelta(t, 0.1966, w.Grad(), 1e-3)
	assert.InDelta(t, 0.1966, b.Grad(), 1e-3)
	assert.InDelta(t, 0.3932, x.Grad(), 1e-3)
}

func TestPublicAPI_DomainErrors(t *testing.T) {
	_, err := autodiff.Constant(1.0).Div(autodiff.Constant(0.0))
	assert.True(t, errors.Is(err, autodiff.ErrDivisionByZero))

	var domainErr *autodiff.DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestPublicAPI_CheckGradient(t *testing.T) {
	err := autodiff.CheckGradient(func(p []*autodiff.Scalar) (*autodiff.Scalar, error) {
		return p[0].Mul(p[0]).Add(p[1].Exp()), nil
	}, []float64{1.5, 0.25})
	assert.NoError(t, err)
}
