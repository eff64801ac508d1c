// Package autodiff implements reverse-mode automatic differentiation over
// scalar computation graphs.
//
// Expressions are built eagerly: every operation on a Scalar computes its
// value immediately and the result node records which operation produced it
// and from which parents. Requesting gradients from a root node walks the
// recorded graph once in reverse topological order, applying each node's
// backward rule and accumulating the chain-rule contributions into its
// parents.
//
// Architecture:
//   - Scalar: one node of the DAG (value, gradient accumulator, provenance)
//   - ops: closed set of primitives, each pairing a forward and backward rule
//   - Backward: topological backpropagation engine rooted at any node
//
// Usage:
//
//	x := autodiff.Param(3.0)
//	y := x.Mul(x).Add(x) // y = x² + x
//
//	if err := y.Backward(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Grad()) // dy/dx = 2x + 1 = 7.0
package autodiff

import (
	"fmt"
	"sync/atomic"

	"github.com/grad-ml/grad/internal/autodiff/ops"
)

// nodeCount hands out unique node IDs. Atomic so independent graphs may be
// built from different goroutines; a single graph is still single-threaded.
var nodeCount atomic.Uint64

// Scalar is one node of a scalar computation graph.
//
// Its value is fixed at construction and never mutated afterwards; only the
// gradient accumulator changes, and only during a backward pass (or when
// reset through ZeroGrad). Leaf nodes have no operation and terminate
// gradient propagation.
type Scalar struct {
	value        float64   // Forward result, immutable after construction
	grad         float64   // Accumulator for d(root)/d(this), written by Backward
	op           ops.Kind  // Primitive that produced this node (ops.Leaf for leaves)
	parents      []*Scalar // Direct inputs of op, in argument order
	ctx          []float64 // Forward context saved for the backward rule
	requiresGrad bool      // Whether Backward accumulates into this node
	id           uint64    // Unique ID, used to deduplicate graph traversals
}

// Constant creates a leaf node that opts out of gradient tracking. Subgraphs
// built purely from constants are pruned from the backward traversal and a
// constant's gradient stays exactly zero.
func Constant(value float64) *Scalar {
	return newNode(value, false, ops.Leaf, nil)
}

// Param creates a trainable leaf node. Its gradient accumulates across
// backward passes until ZeroGrad is called.
func Param(value float64) *Scalar {
	return newNode(value, true, ops.Leaf, nil)
}

func newNode(value float64, requiresGrad bool, op ops.Kind, ctx []float64, parents ...*Scalar) *Scalar {
	return &Scalar{
		value:        value,
		op:           op,
		parents:      parents,
		ctx:          ctx,
		requiresGrad: requiresGrad,
		id:           nodeCount.Add(1),
	}
}

// apply constructs the node for op over the given inputs. The forward rule
// runs immediately; a domain violation aborts construction and no node is
// created. The result requires grad iff any input does.
func apply(op ops.Kind, inputs ...*Scalar) (*Scalar, error) {
	vals := make([]float64, len(inputs))
	requiresGrad := false
	for i, in := range inputs {
		vals[i] = in.value
		requiresGrad = requiresGrad || in.requiresGrad
	}

	value, ctx, err := ops.Forward(op, vals...)
	if err != nil {
		return nil, err
	}
	return newNode(value, requiresGrad, op, ctx, inputs...), nil
}

// mustApply is apply for primitives with a total domain.
func mustApply(op ops.Kind, inputs ...*Scalar) *Scalar {
	out, err := apply(op, inputs...)
	if err != nil {
		panic(fmt.Sprintf("autodiff: %s: unexpected error: %v", op, err))
	}
	return out
}

// Value returns the scalar's forward value.
func (s *Scalar) Value() float64 {
	return s.value
}

// Grad returns the accumulated gradient d(root)/d(s) from the most recent
// backward pass(es). Zero before any backward call.
func (s *Scalar) Grad() float64 {
	return s.grad
}

// RequiresGrad reports whether backward passes accumulate into this node.
func (s *Scalar) RequiresGrad() bool {
	return s.requiresGrad
}

// IsLeaf reports whether the node was created directly from a value rather
// than by an operation.
func (s *Scalar) IsLeaf() bool {
	return s.op == ops.Leaf
}

// Op returns the primitive that produced this node, or ops.Leaf.
func (s *Scalar) Op() ops.Kind {
	return s.op
}

// ZeroGrad resets the gradient accumulator.
//
// Call it between training iterations to prevent gradients from a previous
// backward pass leaking into the next one.
func (s *Scalar) ZeroGrad() {
	s.grad = 0
}

// ApplyUpdate shifts a leaf's value by delta.
//
// This is the one sanctioned mutation of a value, reserved for optimizers
// updating trainable parameters between graph episodes. Interior nodes are
// immutable: a fresh expression must be built after an update.
func (s *Scalar) ApplyUpdate(delta float64) error {
	if !s.IsLeaf() {
		return fmt.Errorf("autodiff: ApplyUpdate on non-leaf %s node", s.op)
	}
	s.value += delta
	return nil
}

// String implements fmt.Stringer for debugging.
func (s *Scalar) String() string {
	if s.IsLeaf() {
		if s.requiresGrad {
			return fmt.Sprintf("Scalar(%g, grad=%g)", s.value, s.grad)
		}
		return fmt.Sprintf("Scalar(%g, const)", s.value)
	}
	return fmt.Sprintf("Scalar(%g, op=%s, grad=%g)", s.value, s.op, s.grad)
}

// Add returns a node for s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return mustApply(ops.Add, s, other)
}

// Sub returns a node for s - other.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return mustApply(ops.Sub, s, other)
}

// Neg returns a node for -s.
func (s *Scalar) Neg() *Scalar {
	return mustApply(ops.Neg, s)
}

// Mul returns a node for s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return mustApply(ops.Mul, s, other)
}

// Div returns a node for s / other. Fails with a DomainError when other's
// value is exactly zero.
func (s *Scalar) Div(other *Scalar) (*Scalar, error) {
	return apply(ops.Div, s, other)
}

// Pow returns a node for s^other. Fails with a DomainError when s is
// negative and other is not an integer.
func (s *Scalar) Pow(other *Scalar) (*Scalar, error) {
	return apply(ops.Pow, s, other)
}

// Exp returns a node for e^s.
func (s *Scalar) Exp() *Scalar {
	return mustApply(ops.Exp, s)
}

// Log returns a node for ln(s). Fails with a DomainError when s's value is
// not strictly positive.
func (s *Scalar) Log() (*Scalar, error) {
	return apply(ops.Log, s)
}

// ReLU returns a node for max(0, s).
func (s *Scalar) ReLU() *Scalar {
	return mustApply(ops.ReLU, s)
}

// Sigmoid returns a node for 1 / (1 + e^(-s)).
func (s *Scalar) Sigmoid() *Scalar {
	return mustApply(ops.Sigmoid, s)
}

// Lt returns an indicator node: 1 if s < other, else 0. Not differentiable;
// both parents receive a zero gradient.
func (s *Scalar) Lt(other *Scalar) *Scalar {
	return mustApply(ops.Lt, s, other)
}

// Gt returns an indicator node: 1 if s > other, else 0. Not differentiable.
func (s *Scalar) Gt(other *Scalar) *Scalar {
	return mustApply(ops.Gt, s, other)
}

// Eq returns an indicator node: 1 if s == other, else 0. Not differentiable.
func (s *Scalar) Eq(other *Scalar) *Scalar {
	return mustApply(ops.Eq, s, other)
}

// AddScalar returns a node for s + c. The raw literal is wrapped in a
// Constant leaf before the operation node is built.
func (s *Scalar) AddScalar(c float64) *Scalar {
	return s.Add(Constant(c))
}

// SubScalar returns a node for s - c.
func (s *Scalar) SubScalar(c float64) *Scalar {
	return s.Sub(Constant(c))
}

// MulScalar returns a node for s * c.
func (s *Scalar) MulScalar(c float64) *Scalar {
	return s.Mul(Constant(c))
}

// DivScalar returns a node for s / c. Fails with a DomainError when c is
// exactly zero.
func (s *Scalar) DivScalar(c float64) (*Scalar, error) {
	return s.Div(Constant(c))
}

// PowScalar returns a node for s^c with a constant exponent. Fails with a
// DomainError when s is negative and c is not an integer.
func (s *Scalar) PowScalar(c float64) (*Scalar, error) {
	return s.Pow(Constant(c))
}
