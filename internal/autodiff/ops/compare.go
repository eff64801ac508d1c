package ops

// Comparison rules: each produces an indicator value (1.0 when the relation
// holds, 0.0 otherwise) meant for control flow in client code.
//
// These are step functions, so their derivative is 0 almost everywhere. The
// backward dispatch returns exact zeros for both inputs rather than a value
// that could be mistaken for a real gradient; Kind.Differentiable reports
// false for all three.

func ltForward(a, b float64) float64 {
	if a < b {
		return 1.0
	}
	return 0.0
}

func gtForward(a, b float64) float64 {
	if a > b {
		return 1.0
	}
	return 0.0
}

func eqForward(a, b float64) float64 {
	if a == b {
		return 1.0
	}
	return 0.0
}
