package optim

import (
	"github.com/grad-ml/grad/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Scalar
	lr         float64
	momentum   float64
	velocities map[*autodiff.Scalar]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*autodiff.Scalar, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Scalar]float64),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() error {
	for _, param := range s.params {
		grad := param.Grad()
		update := grad
		if s.momentum != 0 {
			v := s.momentum*s.velocities[param] + grad
			s.velocities[param] = v
			update = v
		}
		if err := param.ApplyUpdate(-s.lr * update); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
