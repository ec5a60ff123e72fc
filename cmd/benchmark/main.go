package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Savio09/TSP-Solver/pkg/milp"
	"github.com/Savio09/TSP-Solver/pkg/tsp"
)

// Runs both formulations over random symmetric instances and reports
// whether they agree on the optimum, plus the iteration behaviour of the
// lazy method.

func main() {
	runs := flag.Int("runs", 20, "number of random instances")
	nodes := flag.Int("nodes", 10, "instance size")
	seed := flag.Int64("seed", 42, "base random seed")
	out := flag.String("out", "", "CSV output file (defaults to stdout)")
	flag.Parse()

	output := os.Stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		output = file
	}

	writer := csv.NewWriter(output)
	defer writer.Flush()
	writer.Write([]string{"seed", "mtz_cost", "mtz_ms", "lazy_cost", "lazy_ms", "lazy_iterations", "lazy_cuts", "equal"})

	solver := milp.NewHighsSolver(60)
	direct := tsp.NewDirectSolver(solver)
	lazy := tsp.NewLazySolver(solver, tsp.DefaultMaxIterations)

	for run := 0; run < *runs; run++ {
		instanceSeed := *seed + int64(run)
		instance := randomInstance(*nodes, instanceSeed)

		mtzResult, mtzElapsed, err := timedSolve(direct, instance)
		if err != nil {
			log.Fatalf("mtz failed on seed %d: %v", instanceSeed, err)
		}
		lazyResult, lazyElapsed, err := timedSolve(lazy, instance)
		if err != nil {
			log.Fatalf("lazy failed on seed %d: %v", instanceSeed, err)
		}

		writer.Write([]string{
			fmt.Sprint(instanceSeed),
			fmt.Sprintf("%.0f", mtzResult.Cost),
			fmt.Sprint(mtzElapsed.Milliseconds()),
			fmt.Sprintf("%.0f", lazyResult.Cost),
			fmt.Sprint(lazyElapsed.Milliseconds()),
			fmt.Sprint(len(lazyResult.Trace.Iterations)),
			fmt.Sprint(len(lazyResult.Trace.Cuts())),
			fmt.Sprint(mtzResult.Cost == lazyResult.Cost),
		})
	}
}

func timedSolve(solver tsp.TourSolver, instance tsp.Instance) (tsp.Result, time.Duration, error) {
	start := time.Now()
	result, err := solver.Solve(instance)
	return result, time.Since(start), err
}

func randomInstance(n int, seed int64) tsp.Instance {
	rng := rand.New(rand.NewSource(seed))
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		costs[i][i] = tsp.SentinelCost
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cost := float64(1 + rng.Intn(99))
			costs[i][j] = cost
			costs[j][i] = cost
		}
	}
	return tsp.Instance{Costs: costs, Start: 0}
}
