package nn

import (
	"fmt"
	"math/rand"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Neuron computes act(w·x + b) over scalar nodes.
//
// Weights are initialized uniformly in [-1, 1); the bias starts at zero.
type Neuron struct {
	weights []*autodiff.Scalar
	bias    *autodiff.Scalar
	act     Activation
}

// NewNeuron creates a neuron with in input weights.
func NewNeuron(in int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]*autodiff.Scalar, in)
	for i := range weights {
		weights[i] = autodiff.Param(rng.Float64()*2 - 1)
	}
	return &Neuron{
		weights: weights,
		bias:    autodiff.Param(0),
		act:     act,
	}
}

// Forward computes the neuron's single output for the given inputs.
func (n *Neuron) Forward(inputs []*autodiff.Scalar) ([]*autodiff.Scalar, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs))
	}

	sum := n.bias
	for i, x := range inputs {
		sum = sum.Add(n.weights[i].Mul(x))
	}
	return []*autodiff.Scalar{activate(n.act, sum)}, nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Scalar {
	return append(append([]*autodiff.Scalar{}, n.weights...), n.bias)
}
