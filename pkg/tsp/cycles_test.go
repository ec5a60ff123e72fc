package tsp

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclesPartitionAllNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(11)
		next := randomDerangement(n, rng)

		cycles := Cycles(next)

		//** Node sets must partition {0..n-1}: no overlap, no omission
		seen := make([]bool, n)
		total := 0
		for _, cycle := range cycles {
			for _, node := range cycle {
				assert.False(t, seen[node], "node %d appears in two cycles", node)
				seen[node] = true
				total++
			}
		}
		assert.Equal(t, n, total)
	}
}

func TestCyclesCanonicalForm(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 100; trial++ {
		next := randomDerangement(8, rng)
		cycles := Cycles(next)

		for _, cycle := range cycles {
			lowest := append([]int(nil), cycle...)
			sort.Ints(lowest)
			assert.Equal(t, lowest[0], cycle[0], "cycle %v must start at its lowest member", cycle)
		}
	}
}

func TestCyclesIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	next := randomDerangement(10, rng)

	assert.Equal(t, Cycles(next), Cycles(next))
}

func TestCyclesSingleTour(t *testing.T) {
	next := []int{1, 2, 3, 4, 0}

	cycles := Cycles(next)

	assert.Len(t, cycles, 1)
	assert.Equal(t, Cycle{0, 1, 2, 3, 4}, cycles[0])
}

func TestCyclesTwoSubtours(t *testing.T) {
	// 0 -> 1 -> 0 and 2 -> 3 -> 4 -> 2
	next := []int{1, 0, 3, 4, 2}

	cycles := Cycles(next)

	assert.Equal(t, []Cycle{{0, 1}, {2, 3, 4}}, cycles)
}

func TestCyclesPanicsOnMalformedAssignment(t *testing.T) {
	assert.Panics(t, func() {
		Cycles([]int{1, 5, 0}) // successor out of range
	})
	assert.Panics(t, func() {
		Cycles([]int{1, 2, 1}) // node 1 has two predecessors
	})
}
