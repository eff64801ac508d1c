// Copyright 2025 Grad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/grad-ml/grad/internal/autodiff"
	"github.com/grad-ml/grad/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Activation selects a neuron's nonlinearity.
type Activation = nn.Activation

// Available activations.
const (
	Identity = nn.Identity
	ReLU     = nn.ReLU
	Sigmoid  = nn.Sigmoid
)

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// Layer applies a set of neurons to a shared input.
type Layer = nn.Layer

// MLP is a stack of fully connected layers.
type MLP = nn.MLP

// MLPConfig describes an MLP.
type MLPConfig = nn.MLPConfig

// NewMLP creates an MLP from the config.
func NewMLP(cfg MLPConfig) (*MLP, error) {
	return nn.NewMLP(cfg)
}

// MSELoss builds the mean squared error node over prediction/target pairs.
func MSELoss(preds, targets []*autodiff.Scalar) (*autodiff.Scalar, error) {
	return nn.MSELoss(preds, targets)
}

// BCELoss builds the binary cross-entropy node over probability predictions
// and 0/1 targets.
func BCELoss(preds, targets []*autodiff.Scalar) (*autodiff.Scalar, error) {
	return nn.BCELoss(preds, targets)
}
