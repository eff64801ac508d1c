package nn

import (
	"math/rand"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Layer is a set of neurons applied in parallel to the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of out neurons over in inputs.
func NewLayer(in, out int, act Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, out)
	for i := range neurons {
		neurons[i] = NewNeuron(in, act, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward computes one output per neuron.
func (l *Layer) Forward(inputs []*autodiff.Scalar) ([]*autodiff.Scalar, error) {
	outputs := make([]*autodiff.Scalar, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out[0]
	}
	return outputs, nil
}

// Parameters returns the parameters of every neuron.
func (l *Layer) Parameters() []*autodiff.Scalar {
	var params []*autodiff.Scalar
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
