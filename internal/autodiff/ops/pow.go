package ops

import "math"

// Pow rules: output = a^b. The exponent may be non-integer, but a negative
// base with a non-integer exponent has no real result and is rejected with a
// *DomainError.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1), so grad_a = outputGrad * b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a), so grad_b = outputGrad * a^b * ln(a)
//
// ln(a) is undefined for a <= 0; in that case (integer exponents of
// non-positive bases) the exponent gradient is defined as zero. In the common
// case the exponent is a constant node and its gradient is discarded anyway.

func powForward(a, b float64) (float64, []float64, error) {
	if a < 0 && b != math.Trunc(b) {
		return 0, nil, &DomainError{Op: Pow, Input: a, Err: ErrNegativeBase}
	}
	return math.Pow(a, b), []float64{a, b}, nil
}

func powBackward(ctx []float64, outputGrad float64) (float64, float64) {
	a, b := ctx[0], ctx[1]
	gradBase := outputGrad * b * math.Pow(a, b-1)
	gradExp := 0.0
	if a > 0 {
		gradExp = outputGrad * math.Pow(a, b) * math.Log(a)
	}
	return gradBase, gradExp
}
