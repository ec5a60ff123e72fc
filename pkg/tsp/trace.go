package tsp

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Cut is a subtour-elimination inequality over a node set: the number of
// selected edges with both endpoints in Nodes must not exceed len(Nodes)-1.
// Nodes is sorted ascending. Cuts are append-only; once recorded a cut is
// never removed.
type Cut struct {
	Nodes []int
}

// key is the canonical identity of a cut, used to avoid recording the same
// node set twice across iterations.
func (cut Cut) key() string {
	return strings.Join(lo.Map(cut.Nodes, func(node int, _ int) string {
		return fmt.Sprint(node)
	}), ",")
}

// Iteration is one pass of the iterative-cut loop: the assignment the
// solver returned, the cycles it decomposed into and the cuts recorded in
// response. Final marks the accepting iteration.
type Iteration struct {
	Index     int
	Objective float64
	Edges     []Edge
	Cycles    []Cycle
	CutsAdded []Cut
	Final     bool
}

// Trace is the ordered iteration history of a solve. It is immutable once
// the solve returns.
type Trace struct {
	Iterations []Iteration
}

// Cuts returns every cut recorded across all iterations, in the order they
// were added.
func (trace Trace) Cuts() []Cut {
	return lo.FlatMap(trace.Iterations, func(iteration Iteration, _ int) []Cut {
		return iteration.CutsAdded
	})
}
