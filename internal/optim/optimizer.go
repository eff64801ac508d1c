// Package optim implements optimization algorithms over scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss := buildLoss(model, data) // fresh graph per epoch
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/grad-ml/grad/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers read each parameter's accumulated gradient and shift its value
// to reduce the loss. A fresh computation graph must be built after Step,
// since interior nodes still hold the pre-update values.
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// Call it after Step, before the next backward pass, so gradients from
	// the previous iteration do not accumulate into the next one.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

func zeroGrads(params []*autodiff.Scalar) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
