package ops

// ReLU rules: output = max(0, a).
//
// Backward pass: grad_a = outputGrad if a > 0, else 0. The subgradient at
// exactly a = 0 is 0 (strict comparison). The input is saved as context.

func reluForward(a float64) (float64, []float64) {
	if a > 0 {
		return a, []float64{a}
	}
	return 0, []float64{a}
}

func reluBackward(ctx []float64, outputGrad float64) float64 {
	if ctx[0] > 0 {
		return outputGrad
	}
	return 0
}
