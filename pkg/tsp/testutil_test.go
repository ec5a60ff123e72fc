package tsp

import (
	"math/rand"

	"github.com/Savio09/TSP-Solver/pkg/milp"
)

// scriptedSolver replays a fixed sequence of responses, so loop-control
// tests can drive the iterative solver deterministically.
type scriptedSolver struct {
	responses []scriptedResponse
	calls     int
	problems  []milp.Problem // every problem received, for inspection
}

type scriptedResponse struct {
	next      []int
	objective float64
	err       error
}

func (solver *scriptedSolver) Solve(problem milp.Problem) (*milp.Solution, error) {
	if solver.calls >= len(solver.responses) {
		panic("scriptedSolver: no responses left")
	}
	response := solver.responses[solver.calls]
	solver.calls++
	solver.problems = append(solver.problems, problem)

	if response.err != nil {
		return nil, response.err
	}

	n := len(response.next)
	values := make([]float64, problem.NumVars())
	for i, j := range response.next {
		values[i*n+j] = 1
	}
	return &milp.Solution{Values: values, Objective: response.objective}, nil
}

// enumSolver is an exhaustive reference MILP solver for the small binary
// problems the package builds: it enumerates every one-outgoing/one-incoming
// edge assignment, discards those violating any constraint row, and returns
// the cheapest. For problems carrying ordering variables it restricts the
// search to single spanning cycles and synthesizes the order values from
// tour positions. Exact for n small enough to enumerate.
type enumSolver struct {
	n     int
	start int
}

func (solver enumSolver) Solve(problem milp.Problem) (*milp.Solution, error) {
	n := solver.n
	hasOrdering := problem.NumVars() > n*n

	var best *milp.Solution
	next := make([]int, n)
	used := make([]bool, n)

	var enumerate func(node int)
	enumerate = func(node int) {
		if node == n {
			candidate := solver.candidate(problem, next, hasOrdering)
			if candidate != nil && (best == nil || candidate.Objective < best.Objective) {
				best = candidate
			}
			return
		}
		for successor := 0; successor < n; successor++ {
			if successor == node || used[successor] {
				continue
			}
			next[node] = successor
			used[successor] = true
			enumerate(node + 1)
			used[successor] = false
		}
	}
	enumerate(0)

	if best == nil {
		return nil, milp.ErrInfeasible
	}
	return best, nil
}

func (solver enumSolver) candidate(problem milp.Problem, next []int, hasOrdering bool) *milp.Solution {
	n := solver.n
	values := make([]float64, problem.NumVars())
	for i, j := range next {
		values[i*n+j] = 1
	}

	if hasOrdering {
		// Ordering variables only admit values for a single cycle through
		// the start node: u[node] = position of node in the tour (2..n).
		positions := make([]int, n)
		node := solver.start
		for step := 1; step <= n; step++ {
			positions[node] = step
			node = next[node]
		}
		if node != solver.start {
			return nil
		}
		column := n * n
		for candidate := 0; candidate < n; candidate++ {
			if candidate == solver.start {
				continue
			}
			if positions[candidate] == 0 {
				return nil // not reached: multi-cycle assignment
			}
			values[column] = float64(positions[candidate])
			column++
		}
	}

	if !satisfiesRows(problem, values) {
		return nil
	}

	objective := 0.0
	for column, value := range values {
		objective += problem.Costs[column] * value
	}
	return &milp.Solution{Values: values, Objective: objective}
}

func satisfiesRows(problem milp.Problem, values []float64) bool {
	const eps = 1e-6
	for _, row := range problem.Rows {
		sum := 0.0
		for k, column := range row.Cols {
			sum += row.Coeffs[k] * values[column]
		}
		if sum < row.Lower-eps || sum > row.Upper+eps {
			return false
		}
	}
	return true
}

// randomSymmetricInstance builds an instance with positive integer costs.
func randomSymmetricInstance(n int, seed int64) Instance {
	rng := rand.New(rand.NewSource(seed))
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		costs[i][i] = SentinelCost
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cost := float64(1 + rng.Intn(99))
			costs[i][j] = cost
			costs[j][i] = cost
		}
	}
	return Instance{Costs: costs, Start: 0}
}

// ringInstance has unit costs between consecutive nodes mod n and sentinel
// costs everywhere else, so the only optimal tour is the ring itself.
func ringInstance(n int) Instance {
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			costs[i][j] = SentinelCost
		}
	}
	for i := 0; i < n; i++ {
		costs[i][(i+1)%n] = 1
		costs[(i+1)%n][i] = 1
	}
	return Instance{Costs: costs, Start: 0}
}

// randomDerangement returns a successor array with no fixed points, i.e. a
// feasible edge assignment that may decompose into several cycles.
func randomDerangement(n int, rng *rand.Rand) []int {
	for {
		perm := rng.Perm(n)
		fixedPoint := false
		for i, j := range perm {
			if i == j {
				fixedPoint = true
				break
			}
		}
		if !fixedPoint {
			return perm
		}
	}
}
