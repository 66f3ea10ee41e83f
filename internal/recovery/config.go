package recovery

import (
	"context"
	"math/rand"

	"github.com/baudrin-research/asconcube/internal/solver"
)

// Config controls one recovery run. Solver is required; every other
// field has a documented default matching the original attack's
// hard-coded constants.
type Config struct {
	// Workers bounds the numeric cube-sum worker pool and, with
	// ParallelColumns, phase 3's column extraction pool. 0 selects
	// ascon.DefaultWorkers. It does not bound anf.GetL4 or
	// trail.Recover/RecoverCompact, which start one goroutine per
	// column, product or trail.
	Workers int
	// MaxTries is phase 2's cube-retry budget. 0 selects 15.
	MaxTries int
	// NumCubes is phase 3's number of simultaneous cubes. 0 selects 3.
	NumCubes int
	// NbZerosPhase3 bounds phase 3's e_i=0 cube positions. 0 selects 28.
	NbZerosPhase3 int
	// CubeSizePhase3 is phase 3's cube size. 0 selects 31.
	CubeSizePhase3 int
	// ParallelColumns selects phase 3's all-columns-parallel extraction
	// variant, fanning every column of every cube out across Workers at
	// once instead of walking columns one at a time. It trades the
	// sequential mode's bounded, predictable memory footprint (only one
	// column's worth of trail products live at a time) for wall-clock
	// time; leave it false when RAM is the binding constraint.
	ParallelColumns bool
	// ResultsDir is where parameters.txt, polynomials*.txt,
	// cube_sum_vectors.txt and recovered_a.txt (phase 2) or
	// recovered_b_c.txt (phase 3) are read and written.
	ResultsDir string
	// Rand drives cube selection and the simulated b/c capacity values.
	// Nil selects a fixed deterministic seed, which is appropriate for
	// reproducible experiments but not for production key recovery
	// against a live oracle.
	Rand *rand.Rand
	// Solver consumes a completed results directory and is expected to
	// write recovered_a.txt (phase 2) or recovered_b_c.txt (phase 3)
	// into it.
	Solver solver.Solver
}

func (c Config) maxTries() int {
	if c.MaxTries > 0 {
		return c.MaxTries
	}
	return 15
}

func (c Config) numCubes() int {
	if c.NumCubes > 0 {
		return c.NumCubes
	}
	return 3
}

func (c Config) nbZerosPhase3() int {
	if c.NbZerosPhase3 > 0 {
		return c.NbZerosPhase3
	}
	return 28
}

func (c Config) cubeSizePhase3() int {
	if c.CubeSizePhase3 > 0 {
		return c.CubeSizePhase3
	}
	return 31
}

func (c Config) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(1))
}

func (c Config) background() context.Context {
	return context.Background()
}
