package tsp

import (
	"sort"

	"github.com/Savio09/TSP-Solver/pkg/milp"
)

// DefaultMaxIterations is the safety bound of the iterative-cut loop. It is
// not a correctness requirement: with every detected subtour cut in each
// round the loop converges in a handful of iterations for small instances.
const DefaultMaxIterations = 50

type lazySolver struct {
	solver        milp.Solver
	maxIterations int
}

// NewLazySolver returns a TourSolver using lazy subtour elimination: it
// starts from degree constraints only, decomposes each candidate
// assignment into cycles and re-solves with one elimination cut per
// detected subtour until a single spanning cycle emerges. maxIterations
// values below 1 fall back to DefaultMaxIterations.
func NewLazySolver(solver milp.Solver, maxIterations int) TourSolver {
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}
	return &lazySolver{solver: solver, maxIterations: maxIterations}
}

func (lazy *lazySolver) Solve(instance Instance) (Result, error) {
	if err := instance.Validate(); err != nil {
		return Result{}, err
	}

	n := instance.N()
	cuts := make([]Cut, 0)
	recorded := make(map[string]bool) // canonical cut keys already on record
	trace := Trace{}

	for iteration := 1; ; iteration++ {
		//** Solve under the current constraint set
		builder := newProblemBuilder(instance)
		builder.degreeRows()
		builder.cutRows(cuts)

		solution, err := lazy.solver.Solve(builder.build())
		if err != nil {
			// Degree constraints alone are always feasible on a complete
			// graph, but infeasibility and solver failures are propagated
			// rather than retried.
			return Result{Trace: trace}, err
		}

		next, err := decodeAssignment(solution.Values, n)
		if err != nil {
			return Result{Trace: trace}, err
		}

		//** Decompose into cycles
		cycles := Cycles(next)
		step := Iteration{
			Index:     iteration,
			Objective: solution.Objective,
			Edges:     assignmentEdges(next),
			Cycles:    cycles,
		}

		if len(cycles) == 1 {
			//** Accepted: a single cycle spans all nodes
			step.Final = true
			trace.Iterations = append(trace.Iterations, step)

			tour, err := ExtractTour(next, instance.Start)
			if err != nil {
				return Result{Trace: trace}, err
			}
			return Result{Tour: tour, Cost: solution.Objective, Trace: trace}, nil
		}

		//** Cut and retry: one elimination constraint per detected subtour,
		// all of them at once. Cutting every cycle simultaneously is what
		// bounds the iteration count in practice.
		for _, cycle := range cycles {
			cut := newCut(cycle)
			if recorded[cut.key()] {
				continue
			}
			recorded[cut.key()] = true
			cuts = append(cuts, cut)
			step.CutsAdded = append(step.CutsAdded, cut)
		}
		trace.Iterations = append(trace.Iterations, step)

		if iteration >= lazy.maxIterations {
			return Result{Trace: trace}, ErrIterationLimit
		}
	}
}

// newCut records the node set of a detected subtour in canonical sorted
// order.
func newCut(cycle Cycle) Cut {
	nodes := append([]int(nil), cycle...)
	sort.Ints(nodes)
	return Cut{Nodes: nodes}
}
