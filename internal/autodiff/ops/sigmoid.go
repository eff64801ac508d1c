package ops

import "math"

// Sigmoid rules: output = σ(a) = 1 / (1 + e^(-a)).
//
// Backward pass: dσ/da = σ(a) * (1 - σ(a)). Since the derivative is a
// function of the output, the forward output is saved as context and no
// exponential is recomputed:
//
//	grad_a = outputGrad * s * (1 - s)

func sigmoidForward(a float64) (float64, []float64) {
	s := 1.0 / (1.0 + math.Exp(-a))
	return s, []float64{s}
}

func sigmoidBackward(ctx []float64, outputGrad float64) float64 {
	s := ctx[0]
	return outputGrad * s * (1.0 - s)
}
