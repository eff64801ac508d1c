package nn

import (
	"fmt"
	"math/rand"

	"github.com/grad-ml/grad/internal/autodiff"
)

// MLPConfig describes a multilayer perceptron.
type MLPConfig struct {
	In               int        // Number of input features
	Hidden           []int      // Hidden layer widths, in order
	Out              int        // Number of outputs
	HiddenActivation Activation // Nonlinearity for hidden layers (default: ReLU)
	OutputActivation Activation // Nonlinearity for the output layer (default: Identity)
	Seed             int64      // Weight initialization seed
}

// MLP is a stack of fully connected layers.
//
// Example:
//
//	model := nn.NewMLP(nn.MLPConfig{
//	    In:               2,
//	    Hidden:           []int{8, 8},
//	    Out:              1,
//	    OutputActivation: nn.Sigmoid,
//	})
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP from the config.
func NewMLP(cfg MLPConfig) (*MLP, error) {
	if cfg.In <= 0 || cfg.Out <= 0 {
		return nil, fmt.Errorf("nn: MLP needs positive In and Out, got %d and %d", cfg.In, cfg.Out)
	}
	if cfg.HiddenActivation == Identity {
		cfg.HiddenActivation = ReLU
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	widths := append([]int{cfg.In}, cfg.Hidden...)
	widths = append(widths, cfg.Out)

	layers := make([]*Layer, 0, len(widths)-1)
	for i := 0; i < len(widths)-1; i++ {
		act := cfg.HiddenActivation
		if i == len(widths)-2 {
			act = cfg.OutputActivation
		}
		layers = append(layers, NewLayer(widths[i], widths[i+1], act, rng))
	}
	return &MLP{layers: layers}, nil
}

// Forward feeds the inputs through every layer in order.
func (m *MLP) Forward(inputs []*autodiff.Scalar) ([]*autodiff.Scalar, error) {
	outputs := inputs
	var err error
	for _, layer := range m.layers {
		outputs, err = layer.Forward(outputs)
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// Parameters returns the parameters of every layer.
func (m *MLP) Parameters() []*autodiff.Scalar {
	var params []*autodiff.Scalar
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
