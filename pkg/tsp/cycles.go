package tsp

import "fmt"

// Edge is a selected directed edge of a candidate assignment.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Cycle is an ordered node sequence closed by an implicit edge from its
// last node back to its first. Cycles are canonical: they start at their
// lowest-indexed member, so equal node sets produce equal cycles.
type Cycle []int

// Cycles partitions the nodes of an assignment into its disjoint cycles.
// next[i] is the successor of node i; every node must have exactly one
// successor and one predecessor. A malformed assignment is a contract
// violation of the caller (it signals a constraint-construction bug
// upstream), so Cycles panics instead of returning an error.
//
// Nodes are scanned in ascending order, so each emitted cycle starts at its
// lowest-indexed member. O(N) time and space.
func Cycles(next []int) []Cycle {
	n := len(next)
	visited := make([]bool, n)
	cycles := make([]Cycle, 0, 1)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		cycle := Cycle{}
		for node := start; ; {
			if node < 0 || node >= n {
				panic(fmt.Sprintf("tsp: successor %d out of range in assignment %v", node, next))
			}
			if visited[node] {
				// Revisiting a node before closing the cycle means some node
				// has two predecessors, which degree constraints forbid.
				panic(fmt.Sprintf("tsp: node %d has multiple predecessors in assignment %v", node, next))
			}
			visited[node] = true
			cycle = append(cycle, node)
			node = next[node]
			if node == start {
				break
			}
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}
