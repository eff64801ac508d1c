package ops

import (
	"errors"
	"fmt"
)

// Domain violation sentinels. Callers match with errors.Is.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrLogNonPositive = errors.New("logarithm of non-positive value")
	ErrNegativeBase   = errors.New("non-integer power of negative base")
)

// Consistency sentinels. These indicate a graph-construction bug rather than
// bad numeric input.
var (
	ErrArityMismatch = errors.New("input count does not match operation arity")
	ErrBadContext    = errors.New("saved forward context does not match operation")
)

// DomainError reports a violation of a primitive's mathematical domain,
// detected while constructing a node. It is not recoverable by the engine;
// the caller has to avoid producing the invalid input (clamp the divisor,
// check positivity before taking a log, and so on).
type DomainError struct {
	Op    Kind    // Operation whose domain was violated
	Input float64 // The offending input value
	Err   error   // One of the domain sentinels above
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v (input %v)", e.Op, e.Err, e.Input)
}

// Unwrap returns the underlying sentinel for errors.Is matching.
func (e *DomainError) Unwrap() error {
	return e.Err
}
