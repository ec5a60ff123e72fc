package tsp

import (
	"fmt"

	"github.com/Savio09/TSP-Solver/pkg/milp"
)

type directSolver struct {
	solver milp.Solver
}

// NewDirectSolver returns a TourSolver using the direct (Miller-Tucker-
// Zemlin) formulation: degree constraints plus ordering variables that
// structurally forbid subtours, solved with a single MILP call.
func NewDirectSolver(solver milp.Solver) TourSolver {
	return &directSolver{solver: solver}
}

func (direct *directSolver) Solve(instance Instance) (Result, error) {
	if err := instance.Validate(); err != nil {
		return Result{}, err
	}

	//** Build the static constraint set
	builder := newProblemBuilder(instance)
	builder.degreeRows()
	builder.orderingRows()

	//** Single solver call
	solution, err := direct.solver.Solve(builder.build())
	if err != nil {
		return Result{}, err
	}

	//** Decode and extract the tour
	next, err := decodeAssignment(solution.Values, instance.N())
	if err != nil {
		return Result{}, err
	}

	cycles := Cycles(next)
	if len(cycles) != 1 {
		// The ordering constraints make multi-cycle assignments infeasible,
		// so reaching this means the solver returned a corrupt solution.
		return Result{}, fmt.Errorf("%w: direct formulation produced %d cycles", ErrStructuralInconsistency, len(cycles))
	}

	tour, err := ExtractTour(next, instance.Start)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour: tour,
		Cost: solution.Objective,
		Trace: Trace{Iterations: []Iteration{{
			Index:     1,
			Objective: solution.Objective,
			Edges:     assignmentEdges(next),
			Cycles:    cycles,
			Final:     true,
		}}},
	}, nil
}
