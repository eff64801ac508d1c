// Package nn implements neural network modules built from scalar autodiff
// nodes.
//
// This package provides building blocks for small fully-connected networks:
//   - Module interface: Base interface for all NN components
//   - Neuron: act(w·x + b) over scalar nodes
//   - Layer: parallel neurons sharing an input
//   - MLP: stack of layers
//   - Loss functions: MSE, BCE
//
// Every weight and bias is an autodiff.Param leaf, so one Backward call on a
// loss node yields gradients for every parameter of the model.
package nn

import (
	"github.com/grad-ml/grad/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build networks; Forward wires the inputs into
// the caller's computation graph and returns the output nodes.
type Module interface {
	// Forward computes the module's outputs for the given input nodes.
	//
	// The returned scalars belong to the same graph as the inputs, so a
	// Backward call on any value derived from them reaches the module's
	// parameters.
	Forward(inputs []*autodiff.Scalar) ([]*autodiff.Scalar, error)

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters.
	Parameters() []*autodiff.Scalar
}

// Activation selects the nonlinearity a neuron applies to its weighted sum.
type Activation int

const (
	// Identity applies no nonlinearity (linear output).
	Identity Activation = iota
	// ReLU applies max(0, x).
	ReLU
	// Sigmoid applies 1 / (1 + e^(-x)).
	Sigmoid
)

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	}
	return "unknown"
}

func activate(a Activation, x *autodiff.Scalar) *autodiff.Scalar {
	switch a {
	case ReLU:
		return x.ReLU()
	case Sigmoid:
		return x.Sigmoid()
	}
	return x
}
