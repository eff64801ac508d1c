package autodiff

import (
	"fmt"

	"github.com/grad-ml/grad/internal/autodiff/ops"
)

// GraphConsistencyError reports a malformed computation graph discovered
// during a backward pass: wrong parent arity for a node's operation, or a
// saved forward context the backward rule cannot use. It indicates a
// construction bug, not a recoverable runtime condition.
type GraphConsistencyError struct {
	Node string // String form of the offending node
	Err  error
}

// Error implements the error interface.
func (e *GraphConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent graph at %s: %v", e.Node, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GraphConsistencyError) Unwrap() error {
	return e.Err
}

// Backward runs backpropagation from s with the conventional seed of 1,
// accumulating d(s)/d(n) into every reachable node n that requires grad.
func (s *Scalar) Backward() error {
	return s.BackwardSeed(1.0)
}

// BackwardSeed runs backpropagation from s, seeding d(L)/d(s) = seed.
//
// Algorithm:
//  1. Topologically order the sub-DAG reachable from s through parent edges,
//     visiting every node exactly once even when it feeds multiple consumers.
//     Subgraphs that do not require grad are pruned.
//  2. Walk the order in reverse, so each node's gradient is complete (all of
//     its consumers processed) before its own backward rule fires.
//  3. For each node, invoke the operation's backward rule with the
//     accumulated gradient and add the per-input results into the parents'
//     accumulators. Addition, never overwrite: a node feeding two paths must
//     end up with the sum of both contributions.
//
// Gradients persist and accumulate across calls until ZeroGrad. A seed of 0
// deposits exact zeros on every reachable node.
func (s *Scalar) BackwardSeed(seed float64) error {
	order := topoOrder(s)
	if len(order) == 0 {
		// Root is a constant; nothing tracks gradients.
		return nil
	}

	// Per-call accumulators, keyed by node ID. Cross-call accumulation into
	// Scalar.grad happens below, once per node, after its gradient is final.
	deriv := make(map[uint64]float64, len(order))
	deriv[s.id] = seed

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		d := deriv[node.id]
		node.grad += d

		if node.IsLeaf() {
			continue
		}
		if len(node.parents) != node.op.Arity() {
			return &GraphConsistencyError{
				Node: node.String(),
				Err:  fmt.Errorf("%w: %d parents for %s", ops.ErrArityMismatch, len(node.parents), node.op),
			}
		}

		parentGrads, err := ops.Backward(node.op, node.ctx, d)
		if err != nil {
			return &GraphConsistencyError{Node: node.String(), Err: err}
		}
		for j, parent := range node.parents {
			if !parent.requiresGrad {
				continue
			}
			deriv[parent.id] += parentGrads[j]
		}
	}
	return nil
}

// topoOrder returns the grad-requiring sub-DAG reachable from root in
// topological order (parents before children, root last). Depth-first
// post-order with a visited set: a node consumed via several paths appears
// exactly once, and dead branches that never reach root are never visited.
func topoOrder(root *Scalar) []*Scalar {
	if !root.requiresGrad {
		return nil
	}

	visited := make(map[uint64]struct{})
	order := make([]*Scalar, 0, 64)

	var visit func(*Scalar)
	visit = func(n *Scalar) {
		if _, seen := visited[n.id]; seen || !n.requiresGrad {
			return
		}
		visited[n.id] = struct{}{}
		for _, parent := range n.parents {
			visit(parent)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}
