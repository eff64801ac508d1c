package ops

// Add rules: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Nothing needs to be saved for the backward rule.

func addForward(a, b float64) float64 {
	return a + b
}

func addBackward(outputGrad float64) (float64, float64) {
	return outputGrad, outputGrad
}
