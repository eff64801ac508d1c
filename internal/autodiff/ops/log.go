package ops

import "math"

// Log rules: output = ln(a).
//
// The forward rule rejects non-positive inputs with a *DomainError.
//
// Backward pass: d(ln(a))/da = 1/a, so grad_a = outputGrad / a. The input is
// saved as context.

func logForward(a float64) (float64, []float64, error) {
	if a <= 0 {
		return 0, nil, &DomainError{Op: Log, Input: a, Err: ErrLogNonPositive}
	}
	return math.Log(a), []float64{a}, nil
}

func logBackward(ctx []float64, outputGrad float64) float64 {
	return outputGrad / ctx[0]
}
