package tsp

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// SentinelCost marks forbidden edges, in particular the diagonal of every
// cost matrix. It is large enough that no optimal tour ever selects a
// sentinel edge on instances with realistic travel costs.
const SentinelCost float64 = 1_000_000

// Location is one visitable place of an instance.
type Location struct {
	Code string
	Name string
	Lat  float64
	Lng  float64
}

// Instance is an immutable TSP problem: a set of locations, a cost matrix
// over them and a designated start/end node. Treat it as read-only after
// construction; solvers never mutate it.
type Instance struct {
	Locations []Location
	Costs     [][]float64
	Start     int
}

// N returns the number of nodes.
func (instance Instance) N() int {
	return len(instance.Costs)
}

// Validate checks the structural invariants of the instance: a square cost
// matrix of at least two nodes, finite non-negative off-diagonal costs, a
// sentinel diagonal and a start node within range. Locations are optional
// but must match the matrix dimension when present.
func (instance Instance) Validate() error {
	n := instance.N()
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidInstance, n)
	}
	if instance.Start < 0 || instance.Start >= n {
		return fmt.Errorf("%w: start node %d out of range [0,%d)", ErrInvalidInstance, instance.Start, n)
	}
	if len(instance.Locations) > 0 && len(instance.Locations) != n {
		return fmt.Errorf("%w: %d locations for a %dx%d cost matrix", ErrInvalidInstance, len(instance.Locations), n, n)
	}
	for i, row := range instance.Costs {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInstance, i, len(row), n)
		}
		for j, cost := range row {
			if i == j {
				if cost < SentinelCost {
					return fmt.Errorf("%w: diagonal entry (%d,%d) = %v is below the self-loop sentinel", ErrInvalidInstance, i, j, cost)
				}
				continue
			}
			if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
				return fmt.Errorf("%w: cost (%d,%d) = %v must be finite and non-negative", ErrInvalidInstance, i, j, cost)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the instance, so callers can hold onto it
// without sharing the underlying slices.
func (instance Instance) Clone() Instance {
	return Instance{
		Locations: append([]Location(nil), instance.Locations...),
		Costs: lo.Map(instance.Costs, func(row []float64, _ int) []float64 {
			return append([]float64(nil), row...)
		}),
		Start: instance.Start,
	}
}

// InstanceFromJSON loads and validates an instance from a JSON file with
// keys "locations", "costs" and "start".
func InstanceFromJSON(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, fmt.Errorf("cannot parse instance file: %w", err)
	}

	var instance Instance
	if err := mapstructure.Decode(inputJson, &instance); err != nil {
		return Instance{}, fmt.Errorf("cannot decode instance: %w", err)
	}

	if err := instance.Validate(); err != nil {
		return Instance{}, err
	}
	return instance, nil
}
