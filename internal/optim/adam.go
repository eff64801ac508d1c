package optim

import (
	"math"

	"github.com/grad-ml/grad/internal/autodiff"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*autodiff.Scalar
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // Timestep for bias correction
	m      map[*autodiff.Scalar]float64
	v      map[*autodiff.Scalar]float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Running average coefficients (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given parameters, filling in
// the standard hyperparameter defaults where the config is zero.
func NewAdam(params []*autodiff.Scalar, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*autodiff.Scalar]float64),
		v:      make(map[*autodiff.Scalar]float64),
	}
}

// Step performs a single Adam update over all parameters.
func (a *Adam) Step() error {
	a.t++
	biasCorr1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorr2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad := param.Grad()

		m := a.beta1*a.m[param] + (1-a.beta1)*grad
		v := a.beta2*a.v[param] + (1-a.beta2)*grad*grad
		a.m[param] = m
		a.v[param] = v

		mHat := m / biasCorr1
		vHat := v / biasCorr2

		if err := param.ApplyUpdate(-a.lr * mHat / (math.Sqrt(vHat) + a.eps)); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrads(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}
