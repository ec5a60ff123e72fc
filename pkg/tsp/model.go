package tsp

import (
	"fmt"

	"github.com/Savio09/TSP-Solver/pkg/milp"
)

// Variable layout: edge indicator x_ij lives at column i*n + j. The direct
// formulation appends one continuous ordering variable per non-start node
// after the n*n edge block.

type problemBuilder struct {
	instance Instance
	n        int
	problem  milp.Problem
}

func newProblemBuilder(instance Instance) *problemBuilder {
	n := instance.N()
	builder := &problemBuilder{instance: instance, n: n}

	costs := make([]float64, n*n)
	lower := make([]float64, n*n)
	upper := make([]float64, n*n)
	integer := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			col := i*n + j
			costs[col] = instance.Costs[i][j]
			integer[col] = true
			if i == j {
				// Self-loops are forbidden by an explicit bound, not just by
				// the sentinel cost.
				upper[col] = 0
			} else {
				upper[col] = 1
			}
		}
	}

	builder.problem = milp.Problem{
		Costs:    costs,
		ColLower: lower,
		ColUpper: upper,
		Integer:  integer,
	}
	return builder
}

func (builder *problemBuilder) edgeCol(i, j int) int {
	return i*builder.n + j
}

// degreeRows adds the shared constraints of both formulations: every node
// has exactly one outgoing and exactly one incoming selected edge.
func (builder *problemBuilder) degreeRows() {
	n := builder.n
	for i := 0; i < n; i++ {
		outCols := make([]int, 0, n-1)
		inCols := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			outCols = append(outCols, builder.edgeCol(i, j))
			inCols = append(inCols, builder.edgeCol(j, i))
		}
		builder.problem.AddEqRow(outCols, ones(n-1), 1)
		builder.problem.AddEqRow(inCols, ones(n-1), 1)
	}
}

// orderingRows adds the Miller-Tucker-Zemlin constraints of the direct
// formulation: one ordering variable u_i in [2, n] per non-start node, and
// u_i - u_j + n*x_ij <= n-1 for every ordered pair of non-start nodes.
// Any cycle avoiding the start node would force an impossible total order,
// so subtours are structurally infeasible.
func (builder *problemBuilder) orderingRows() {
	n := builder.n
	orderCol := make(map[int]int, n-1)
	for node := 0; node < n; node++ {
		if node == builder.instance.Start {
			continue
		}
		orderCol[node] = len(builder.problem.Costs)
		builder.problem.Costs = append(builder.problem.Costs, 0)
		builder.problem.ColLower = append(builder.problem.ColLower, 2)
		builder.problem.ColUpper = append(builder.problem.ColUpper, float64(n))
		builder.problem.Integer = append(builder.problem.Integer, false)
	}

	for i := 0; i < n; i++ {
		if i == builder.instance.Start {
			continue
		}
		for j := 0; j < n; j++ {
			if j == builder.instance.Start || j == i {
				continue
			}
			builder.problem.AddLeRow(
				[]int{orderCol[i], orderCol[j], builder.edgeCol(i, j)},
				[]float64{1, -1, float64(n)},
				float64(n-1),
			)
		}
	}
}

// cutRows adds one subtour-elimination inequality per recorded cut: the
// selected edges with both endpoints inside the cut's node set may not
// exceed |S|-1.
func (builder *problemBuilder) cutRows(cuts []Cut) {
	for _, cut := range cuts {
		cols := make([]int, 0, len(cut.Nodes)*(len(cut.Nodes)-1))
		for _, i := range cut.Nodes {
			for _, j := range cut.Nodes {
				if i != j {
					cols = append(cols, builder.edgeCol(i, j))
				}
			}
		}
		builder.problem.AddLeRow(cols, ones(len(cols)), float64(len(cut.Nodes)-1))
	}
}

func (builder *problemBuilder) build() milp.Problem {
	return builder.problem
}

func ones(n int) []float64 {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1
	}
	return coeffs
}

// decodeAssignment turns the solver's edge-variable values into a successor
// array. Every node must have exactly one selected outgoing edge; anything
// else means the degree constraints were not honored.
func decodeAssignment(values []float64, n int) ([]int, error) {
	next := make([]int, n)
	for i := 0; i < n; i++ {
		next[i] = -1
		for j := 0; j < n; j++ {
			if i == j || values[i*n+j] < 0.5 {
				continue
			}
			if next[i] != -1 {
				return nil, fmt.Errorf("%w: node %d has multiple outgoing edges", ErrStructuralInconsistency, i)
			}
			next[i] = j
		}
		if next[i] == -1 {
			return nil, fmt.Errorf("%w: node %d has no outgoing edge", ErrStructuralInconsistency, i)
		}
	}
	return next, nil
}

// assignmentEdges lists the selected edges of a successor array in node
// order, the shape consumed by the animation frontend.
func assignmentEdges(next []int) []Edge {
	edges := make([]Edge, len(next))
	for i, j := range next {
		edges[i] = Edge{From: i, To: j}
	}
	return edges
}
