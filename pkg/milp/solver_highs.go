package milp

import (
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"
)

type highsSolver struct {
	timeLimit float64 // seconds per solve, 0 means unlimited
}

// NewHighsSolver returns a Solver backed by the HiGHS library. A positive
// timeLimit bounds each individual solve in wall-clock seconds.
func NewHighsSolver(timeLimit float64) Solver {
	return &highsSolver{timeLimit: timeLimit}
}

func (solver *highsSolver) Solve(problem Problem) (*Solution, error) {
	model := highs.Model{
		ColCosts: problem.Costs,
		ColLower: problem.ColLower,
		ColUpper: problem.ColUpper,
	}

	if len(problem.Integer) > 0 {
		varTypes := make([]highs.VariableType, len(problem.Integer))
		for i, isInteger := range problem.Integer {
			if isInteger {
				varTypes[i] = highs.Integer
			}
		}
		model.VarTypes = varTypes
	}

	for _, row := range problem.Rows {
		model.AddSparseRow(row.Lower, row.Cols, row.Coeffs, row.Upper)
	}

	opts := []highs.SolveOption{highs.WithOutput(false)}
	if solver.timeLimit > 0 {
		opts = append(opts, highs.WithTimeLimit(solver.timeLimit))
	}

	solution, err := model.Solve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case solution.IsOptimal():
		return &Solution{Values: solution.ColValues, Objective: solution.Objective}, nil
	case solution.IsInfeasible():
		return nil, ErrInfeasible
	default:
		return nil, fmt.Errorf("%w: model status %v", ErrSolverFailed, solution.Status)
	}
}
