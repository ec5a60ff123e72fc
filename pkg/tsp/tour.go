package tsp

import "fmt"

// ExtractTour walks the successor array from the start node for exactly N
// steps and returns the visited order with the start node appended once
// more at the end. The walk must return to the start node on its final
// step; anything else indicates an upstream solver or decomposition defect
// and yields ErrStructuralInconsistency.
func ExtractTour(next []int, start int) ([]int, error) {
	n := len(next)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start node %d out of range", ErrStructuralInconsistency, start)
	}

	tour := make([]int, 0, n+1)
	node := start
	for step := 0; step < n; step++ {
		tour = append(tour, node)
		node = next[node]
		if node == start && step < n-1 {
			return nil, fmt.Errorf("%w: walk returned to start after %d steps, want %d", ErrStructuralInconsistency, step+1, n)
		}
	}
	if node != start {
		return nil, fmt.Errorf("%w: walk of %d steps did not return to start", ErrStructuralInconsistency, n)
	}
	return append(tour, start), nil
}

// TourCost sums the instance costs along a closed tour.
func TourCost(instance Instance, tour []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(tour); i++ {
		total += instance.Costs[tour[i]][tour[i+1]]
	}
	return total
}

// VerifyTour checks that tour is a closed Hamiltonian cycle of the
// instance: it starts and ends at the start node and visits every other
// node exactly once.
func VerifyTour(instance Instance, tour []int) bool {
	n := instance.N()
	if len(tour) != n+1 || tour[0] != instance.Start || tour[n] != instance.Start {
		return false
	}
	seen := make([]bool, n)
	for _, node := range tour[:n] {
		if node < 0 || node >= n || seen[node] {
			return false
		}
		seen[node] = true
	}
	return true
}
