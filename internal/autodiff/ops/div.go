package ops

// Div rules: output = a / b.
//
// The forward rule rejects a divisor of exactly zero with a *DomainError
// before any node is built.
//
// Backward pass (quotient rule):
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²

func divForward(a, b float64) (float64, []float64, error) {
	if b == 0 {
		return 0, nil, &DomainError{Op: Div, Input: b, Err: ErrDivisionByZero}
	}
	return a / b, []float64{a, b}, nil
}

func divBackward(ctx []float64, outputGrad float64) (float64, float64) {
	a, b := ctx[0], ctx[1]
	return outputGrad / b, -outputGrad * a / (b * b)
}
