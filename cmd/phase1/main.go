// Command phase1 verifies the two size-32 cubes used by phase 1 of the
// attack: for a number of random capacities it computes the cube-sum of
// the chosen cube (6 rounds, round constants on, last linear layer
// omitted since it is invertible), and appends the result in hex to one
// of four files under $PHASE1_RESULTS_DIR, selected by the most-significant
// bits of a and e - from the original experiments, exactly one of the
// four files should end up holding only all-zero vectors.
//
// Usage: phase1 <header> <cube-selector>
//
// header names the result-file prefix; cube-selector is "0" for cube v,
// any other integer for cube w - matching the original verification
// program's two-positional-argument CLI exactly. Every other knob
// (trial count, results directory, worker pool size, PRNG seed) is an
// ambient environment setting rather than a third CLI argument, per the
// original's "number of worker threads configured at program start".
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/baudrin-research/asconcube/internal/ascon"
	"github.com/baudrin-research/asconcube/internal/fileio"
)

// cubeV and cubeW are the two size-32 cubes phase 1 checks, reproduced
// exactly from the paper's verification program.
var (
	cubeV = []int{0, 1, 4, 5, 6, 8, 14, 15, 16, 26, 27, 30, 34, 37, 38, 48, 49, 50, 56, 58, 59, 60, 63, 17, 35, 40, 46, 55, 9, 12, 18, 19}
	cubeW = []int{0, 1, 4, 5, 6, 8, 14, 15, 16, 26, 27, 30, 34, 37, 38, 48, 49, 50, 56, 58, 59, 60, 63, 17, 35, 40, 46, 55, 7, 24, 41, 43}
)

func envInt(name string, fallback int) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envString(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <header> <cube-selector>\n", os.Args[0])
		os.Exit(1)
	}
	header := os.Args[1]
	cubeIndex, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "phase1: cube selector %q is not an integer\n", os.Args[2])
		os.Exit(1)
	}

	resultsDir := envString("PHASE1_RESULTS_DIR", "results")
	nbTries := envInt("PHASE1_TRIES", 10)
	workers := envInt("PHASE1_WORKERS", ascon.DefaultWorkers)
	seed := int64(envInt("PHASE1_SEED", 1))

	cube, cubeID := cubeV, 0
	if cubeIndex != 0 {
		cube, cubeID = cubeW, 1
	}

	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "phase1: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < nbTries; i++ {
		s := ascon.State{0, rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
		a := s[1]>>63&1 != 0
		e := (^(s[3] ^ s[4]))>>63&1 != 0

		ascon.CubeSum(&s, 6, cube, false, true, workers)

		path := fileio.ResultPath(resultsDir, header, cubeID, a, e)
		if err := fileio.AppendResultLine(path, s[0]); err != nil {
			fmt.Fprintf(os.Stderr, "phase1: trial %d: %v\n", i, err)
			os.Exit(1)
		}

		popcount := 0
		for b := s[0]; b != 0; b &= b - 1 {
			popcount++
		}
		fmt.Printf("%d a=%v e=%v weight=%d\n", i, a, e, popcount)
	}
}
