// Command phase3 runs the attack's phase 3: once a and e are fully
// known, it recovers b and c by selecting several size-31 cubes in
// parallel, extracting their round-5/6 coefficients in the compact
// (1, b_i*c_i, b_i, c_i) representation, evaluating the matching
// numeric cube-sums against a single fixed (b, c) draw, and handing the
// whole system to an external solver in one pass.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/baudrin-research/asconcube/internal/ascon"
	"github.com/baudrin-research/asconcube/internal/recovery"
	"github.com/baudrin-research/asconcube/internal/solver"
)

func main() {
	resultsDir := flag.String("results-dir", "results", "directory the driver reads and writes its exchange files in")
	numCubes := flag.Int("cubes", 3, "number of simultaneous size-31 cubes")
	nbZeros := flag.Int("nb-zeros", 28, "maximum number of e_i=0 columns per cube")
	cubeSize := flag.Int("cube-size", 31, "cube size")
	workers := flag.Int("workers", ascon.DefaultWorkers, "worker pool size for the numeric cube-sums and -parallel-columns extraction")
	seed := flag.Int64("seed", 1, "PRNG seed for a, e, the cube draws, and the simulated b/c values")
	solverCmd := flag.String("solver-cmd", "", "shell command the driver invokes in -results-dir to solve the system (defaults to \"zsh script.run\")")
	parallelColumns := flag.Bool("parallel-columns", false, "extract every cube's columns concurrently instead of one at a time (more RAM, less wall-clock)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	a, e := rng.Uint64(), rng.Uint64()
	ctx := recovery.NewContext(a, e)

	if err := os.MkdirAll(*resultsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "phase3: %v\n", err)
		os.Exit(1)
	}

	var sh solver.ShellSolver
	if *solverCmd != "" {
		sh.Command = []string{"sh", "-c", *solverCmd}
	}

	cfg := recovery.Config{
		Workers:         *workers,
		NumCubes:        *numCubes,
		NbZerosPhase3:   *nbZeros,
		CubeSizePhase3:  *cubeSize,
		ResultsDir:      *resultsDir,
		Rand:            rng,
		Solver:          sh,
		ParallelColumns: *parallelColumns,
	}

	if err := recovery.Phase3Driver(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "phase3: %v\n", err)
		os.Exit(1)
	}

	if !ctx.BCDone() {
		fmt.Fprintln(os.Stderr, "phase3: solver did not recover every b_i/c_i")
		os.Exit(1)
	}
	fmt.Println("phase3: recovery complete")
}
