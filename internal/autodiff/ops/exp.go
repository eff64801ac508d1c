package ops

import "math"

// Exp rules: output = e^a.
//
// Backward pass: d(e^a)/da = e^a. The forward output is saved as context so
// the backward rule reuses it instead of recomputing the exponential.

func expForward(a float64) (float64, []float64) {
	e := math.Exp(a)
	return e, []float64{e}
}

func expBackward(ctx []float64, outputGrad float64) float64 {
	return outputGrad * ctx[0]
}
