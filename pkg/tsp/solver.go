package tsp

// Result is the outcome of a successful solve: the optimal closed tour,
// its total cost, and the iteration trace that led to it. The direct
// formulation produces a single-iteration trace; the iterative-cut
// formulation records every solve/decompose/cut round.
type Result struct {
	Tour  []int
	Cost  float64
	Trace Trace
}

// TourSolver computes an optimal tour for an instance.
//
// Errors follow the package taxonomy: ErrInvalidInstance for malformed
// input, milp.ErrInfeasible and milp.ErrUnavailable propagated from the
// solver, ErrIterationLimit when the iterative bound is hit (the partial
// trace is still returned alongside), and ErrStructuralInconsistency for
// violated internal invariants. Solvers never mutate the instance.
type TourSolver interface {
	Solve(instance Instance) (Result, error)
}
