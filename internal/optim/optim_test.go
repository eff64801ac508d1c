package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grad-ml/grad/internal/autodiff"
	"github.com/grad-ml/grad/internal/optim"
)

// quadraticStep builds loss = (x - 4)², runs backward, and returns the loss
// value. A fresh graph is built per call, as optimizers require.
func quadraticStep(t *testing.T, x *autodiff.Scalar) float64 {
	t.Helper()
	diff := x.SubScalar(4.0)
	loss := diff.Mul(diff)
	require.NoError(t, loss.Backward())
	return loss.Value()
}

func TestSGD_ConvergesOnQuadratic(t *testing.T) {
	x := autodiff.Param(0.0)
	opt := optim.NewSGD([]*autodiff.Scalar{x}, optim.SGDConfig{LR: 0.1})

	prev := quadraticStep(t, x)
	require.NoError(t, opt.Step())
	opt.ZeroGrad()

	for i := 0; i < 50; i++ {
		loss := quadraticStep(t, x)
		assert.LessOrEqual(t, loss, prev, "loss increased at iteration %d", i)
		prev = loss
		require.NoError(t, opt.Step())
		opt.ZeroGrad()
	}

	assert.InDelta(t, 4.0, x.Value(), 1e-3)
}

func TestSGD_SingleStep(t *testing.T) {
	x := autodiff.Param(1.0)
	opt := optim.NewSGD([]*autodiff.Scalar{x}, optim.SGDConfig{LR: 0.5})

	y := x.Mul(x) // dy/dx = 2
	require.NoError(t, y.Backward())
	require.NoError(t, opt.Step())

	// x - lr * grad = 1 - 0.5*2 = 0
	assert.InDelta(t, 0.0, x.Value(), 1e-12)
}

func TestSGD_Momentum(t *testing.T) {
	x := autodiff.Param(0.0)
	opt := optim.NewSGD([]*autodiff.Scalar{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Constant gradient of 1 via loss = x.
	for i := 0; i < 2; i++ {
		loss := x.AddScalar(0.0)
		require.NoError(t, loss.Backward())
		require.NoError(t, opt.Step())
		opt.ZeroGrad()
	}

	// Step 1: v=1, x=-0.1. Step 2: v=1.9, x=-0.29.
	assert.InDelta(t, -0.29, x.Value(), 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	opt := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, opt.GetLR())

	opt.SetLR(0.2)
	assert.Equal(t, 0.2, opt.GetLR())
}

func TestZeroGrad(t *testing.T) {
	x := autodiff.Param(2.0)
	opt := optim.NewSGD([]*autodiff.Scalar{x}, optim.SGDConfig{LR: 0.1})

	require.NoError(t, x.Mul(x).Backward())
	require.NotZero(t, x.Grad())

	opt.ZeroGrad()
	assert.Zero(t, x.Grad())
}

func TestAdam_ConvergesOnQuadratic(t *testing.T) {
	x := autodiff.Param(0.0)
	opt := optim.NewAdam([]*autodiff.Scalar{x}, optim.AdamConfig{LR: 0.1})

	for i := 0; i < 500; i++ {
		quadraticStep(t, x)
		require.NoError(t, opt.Step())
		opt.ZeroGrad()
	}

	assert.InDelta(t, 4.0, x.Value(), 0.05)
}

func TestAdam_FirstStepMagnitude(t *testing.T) {
	x := autodiff.Param(1.0)
	opt := optim.NewAdam([]*autodiff.Scalar{x}, optim.AdamConfig{LR: 0.001})

	require.NoError(t, x.Mul(x).Backward())
	require.NoError(t, opt.Step())

	// With bias correction the first step is ≈ lr regardless of gradient scale.
	assert.InDelta(t, 1.0-0.001, x.Value(), 1e-6)
}

func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, opt.GetLR())
}

func TestOptimizerInterface(t *testing.T) {
	var _ optim.Optimizer = optim.NewSGD(nil, optim.SGDConfig{})
	var _ optim.Optimizer = optim.NewAdam(nil, optim.AdamConfig{})
}
