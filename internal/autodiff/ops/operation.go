// Package ops defines the closed set of differentiable scalar primitives.
//
// Each primitive pairs a forward rule (compute the output value and the
// context the backward rule will need) with a backward rule (map the gradient
// of the output to a gradient per input). The pairs live one per file; the
// Kind enum and the exhaustive dispatch below keep the operation set closed,
// so adding a primitive means adding a Kind, a file with the two rules, and
// the matching switch cases.
//
// Supported operations:
//   - Add, Sub, Neg: linear ops, gradient passes through (possibly negated)
//   - Mul, Div: product rule / quotient rule, Div rejects a zero divisor
//   - Pow: d(a^b)/da = b*a^(b-1), rejects non-integer powers of negative bases
//   - Exp, Log: exp caches its output, log rejects non-positive inputs
//   - ReLU, Sigmoid: the two nonlinearities
//   - Lt, Gt, Eq: step functions used for control flow, gradient is zero
package ops

import "fmt"

// Kind identifies a primitive operation. The zero value is Leaf, meaning the
// node was created directly from a value and has no backward rule.
type Kind uint8

const (
	Leaf Kind = iota
	Add
	Sub
	Neg
	Mul
	Div
	Pow
	Exp
	Log
	ReLU
	Sigmoid
	Lt
	Gt
	Eq
)

var kindNames = [...]string{
	Leaf:    "leaf",
	Add:     "add",
	Sub:     "sub",
	Neg:     "neg",
	Mul:     "mul",
	Div:     "div",
	Pow:     "pow",
	Exp:     "exp",
	Log:     "log",
	ReLU:    "relu",
	Sigmoid: "sigmoid",
	Lt:      "lt",
	Gt:      "gt",
	Eq:      "eq",
}

// String returns the lowercase operation name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of inputs the operation consumes.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Neg, Exp, Log, ReLU, Sigmoid:
		return 1
	case Add, Sub, Mul, Div, Pow, Lt, Gt, Eq:
		return 2
	}
	return 0
}

// Differentiable reports whether the operation has a meaningful derivative.
// The comparison ops exist for control flow only; their backward rule returns
// exact zeros rather than silently propagating a misleading value.
func (k Kind) Differentiable() bool {
	switch k {
	case Lt, Gt, Eq:
		return false
	}
	return true
}

// Forward computes the output value for the operation and returns the saved
// context its backward rule needs. Domain violations (zero divisor,
// non-positive log input, non-integer power of a negative base) are reported
// as a *DomainError at this point, before any node is constructed.
func Forward(k Kind, inputs ...float64) (value float64, ctx []float64, err error) {
	if len(inputs) != k.Arity() {
		return 0, nil, fmt.Errorf("ops: %s: %w: got %d inputs, want %d",
			k, ErrArityMismatch, len(inputs), k.Arity())
	}

	switch k {
	case Add:
		return addForward(inputs[0], inputs[1]), nil, nil
	case Sub:
		return subForward(inputs[0], inputs[1]), nil, nil
	case Neg:
		return negForward(inputs[0]), nil, nil
	case Mul:
		value, ctx = mulForward(inputs[0], inputs[1])
		return value, ctx, nil
	case Div:
		return divForward(inputs[0], inputs[1])
	case Pow:
		return powForward(inputs[0], inputs[1])
	case Exp:
		value, ctx = expForward(inputs[0])
		return value, ctx, nil
	case Log:
		return logForward(inputs[0])
	case ReLU:
		value, ctx = reluForward(inputs[0])
		return value, ctx, nil
	case Sigmoid:
		value, ctx = sigmoidForward(inputs[0])
		return value, ctx, nil
	case Lt:
		return ltForward(inputs[0], inputs[1]), nil, nil
	case Gt:
		return gtForward(inputs[0], inputs[1]), nil, nil
	case Eq:
		return eqForward(inputs[0], inputs[1]), nil, nil
	}
	return 0, nil, fmt.Errorf("ops: %s has no forward rule", k)
}

// Backward maps the gradient of the operation's output onto a gradient per
// input, using the context saved by Forward. It is pure: the returned slice
// is freshly allocated and the context is never mutated.
func Backward(k Kind, ctx []float64, outputGrad float64) ([]float64, error) {
	if err := checkContext(k, ctx); err != nil {
		return nil, err
	}

	switch k {
	case Add:
		ga, gb := addBackward(outputGrad)
		return []float64{ga, gb}, nil
	case Sub:
		ga, gb := subBackward(outputGrad)
		return []float64{ga, gb}, nil
	case Neg:
		return []float64{negBackward(outputGrad)}, nil
	case Mul:
		ga, gb := mulBackward(ctx, outputGrad)
		return []float64{ga, gb}, nil
	case Div:
		ga, gb := divBackward(ctx, outputGrad)
		return []float64{ga, gb}, nil
	case Pow:
		ga, gb := powBackward(ctx, outputGrad)
		return []float64{ga, gb}, nil
	case Exp:
		return []float64{expBackward(ctx, outputGrad)}, nil
	case Log:
		return []float64{logBackward(ctx, outputGrad)}, nil
	case ReLU:
		return []float64{reluBackward(ctx, outputGrad)}, nil
	case Sigmoid:
		return []float64{sigmoidBackward(ctx, outputGrad)}, nil
	case Lt, Gt, Eq:
		return []float64{0, 0}, nil
	}
	return nil, fmt.Errorf("ops: %s has no backward rule", k)
}

// contextSize returns the number of context values Forward saves for the
// operation's backward rule.
func contextSize(k Kind) int {
	switch k {
	case Mul, Div, Pow:
		return 2
	case Exp, Log, ReLU, Sigmoid:
		return 1
	}
	return 0
}

func checkContext(k Kind, ctx []float64) error {
	if len(ctx) != contextSize(k) {
		return fmt.Errorf("ops: %s: %w: got %d saved values, want %d",
			k, ErrBadContext, len(ctx), contextSize(k))
	}
	if k == Leaf {
		return fmt.Errorf("ops: %w: leaf nodes have no backward rule", ErrBadContext)
	}
	return nil
}
