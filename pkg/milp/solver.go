package milp

import (
	"errors"
	"math"
)

var negInf = math.Inf(-1)

// ErrInfeasible is returned when the problem admits no feasible assignment
// under its current constraint set.
var ErrInfeasible = errors.New("milp: problem is infeasible")

// ErrUnavailable is returned when the underlying solver cannot be reached
// (library missing, misconfigured, or failed to initialize).
var ErrUnavailable = errors.New("milp: solver unavailable")

// ErrSolverFailed is returned when the solver terminated without producing
// an optimal solution for a reason other than infeasibility.
var ErrSolverFailed = errors.New("milp: solver failed")

// Solver solves a MILP to optimality or reports why it could not.
// Implementations must be safe to reuse across sequential Solve calls.
type Solver interface {
	Solve(problem Problem) (*Solution, error)
}
