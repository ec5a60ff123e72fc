package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/samber/lo"

	"github.com/Savio09/TSP-Solver/pkg/milp"
	"github.com/Savio09/TSP-Solver/pkg/tsp"
)

var (
	maxIterations int
	validMethods  = []string{"mtz", "lazy"}
	solvers       = map[string]func(milp.Solver) tsp.TourSolver{
		"mtz": tsp.NewDirectSolver,
		"lazy": func(solver milp.Solver) tsp.TourSolver {
			return tsp.NewLazySolver(solver, maxIterations)
		},
	}
)

func main() {
	method := flag.String("method", "lazy", fmt.Sprintf("formulation to use %v", validMethods))
	input := flag.String("input", "", "optional JSON instance file (defaults to the built-in San Francisco instance)")
	timeLimit := flag.Float64("time-limit", 30, "per-solve time limit in seconds, 0 for unlimited")
	quiet := flag.Bool("quiet", false, "print only the final tour and cost")
	flag.IntVar(&maxIterations, "max-iterations", tsp.DefaultMaxIterations, "iteration bound of the lazy method")
	flag.Parse()

	if !lo.Contains(validMethods, *method) {
		log.Fatalf("invalid method %q: must be one of %v", *method, validMethods)
	}

	instance := tsp.SanFrancisco()
	if *input != "" {
		var err error
		instance, err = tsp.InstanceFromJSON(*input)
		if err != nil {
			log.Fatalf("cannot load instance: %v", err)
		}
	}

	tourSolver := solvers[*method](milp.NewHighsSolver(*timeLimit))
	result, err := tourSolver.Solve(instance)
	if err != nil {
		if errors.Is(err, tsp.ErrIterationLimit) {
			log.Fatalf("no single tour within %d iterations (%d cuts recorded)",
				maxIterations, len(result.Trace.Cuts()))
		}
		log.Fatal(err)
	}

	if !*quiet && *method == "lazy" {
		for _, iteration := range result.Trace.Iterations {
			fmt.Printf("iteration %d: objective %.0f, %d cycle(s)\n",
				iteration.Index, iteration.Objective, len(iteration.Cycles))
			for _, cut := range iteration.CutsAdded {
				fmt.Printf("  cut: %v\n", nodeCodes(instance, cut.Nodes))
			}
		}
	}

	fmt.Printf("tour: %v\n", strings.Join(nodeCodes(instance, result.Tour), " -> "))
	fmt.Printf("cost: %.0f\n", result.Cost)

	if !tsp.VerifyTour(instance, result.Tour) {
		log.Fatal("verification failed")
	}
}

func nodeCodes(instance tsp.Instance, nodes []int) []string {
	return lo.Map(nodes, func(node int, _ int) string {
		if len(instance.Locations) > 0 {
			return instance.Locations[node].Code
		}
		return fmt.Sprint(node)
	})
}
