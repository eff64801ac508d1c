package ops

// Neg rules: output = -a.
//
// Backward pass: d(-a)/da = -1, so grad_a = -outputGrad.

func negForward(a float64) float64 {
	return -a
}

func negBackward(outputGrad float64) float64 {
	return -outputGrad
}
