// Copyright 2025 Grad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/grad-ml/grad/internal/autodiff"
	"github.com/grad-ml/grad/internal/optim"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD configuration.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*autodiff.Scalar, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds Adam configuration.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer over the given parameters.
func NewAdam(params []*autodiff.Scalar, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
