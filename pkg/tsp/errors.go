package tsp

import "errors"

// ErrInvalidInstance is returned when the cost matrix is malformed: wrong
// dimensions, negative or non-finite off-diagonal costs, a diagonal below
// the self-loop sentinel, or a start node out of range.
var ErrInvalidInstance = errors.New("tsp: invalid instance")

// ErrIterationLimit is returned by the iterative-cut solver when the
// configured iteration bound is hit before a single spanning cycle is
// found. The partial trace accumulated so far is still returned.
var ErrIterationLimit = errors.New("tsp: iteration limit exceeded")

// ErrStructuralInconsistency is returned when a solver assignment violates
// an internal invariant, e.g. a tour walk of N steps does not return to the
// start node. It indicates an upstream solver or decomposition defect.
var ErrStructuralInconsistency = errors.New("tsp: structurally inconsistent assignment")
