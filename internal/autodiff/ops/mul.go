package ops

// Mul rules: output = a * b.
//
// Backward pass (product rule):
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// Both inputs are saved as context since each appears in the other's rule.

func mulForward(a, b float64) (float64, []float64) {
	return a * b, []float64{a, b}
}

func mulBackward(ctx []float64, outputGrad float64) (float64, float64) {
	a, b := ctx[0], ctx[1]
	return outputGrad * b, outputGrad * a
}
