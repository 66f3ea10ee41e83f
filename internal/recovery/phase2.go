package recovery

import (
	"fmt"
	"path/filepath"

	"github.com/baudrin-research/asconcube/internal/anf"
	"github.com/baudrin-research/asconcube/internal/ascon"
	"github.com/baudrin-research/asconcube/internal/fileio"
	"github.com/baudrin-research/asconcube/internal/pipeline"
	"github.com/baudrin-research/asconcube/internal/trail"
)

// round4DegreesPhase2 keeps only the degree-8 monomials after round 4,
// the filter phase 2's rounds_1_to_4 applies.
var round4DegreesPhase2 = []int{8}

// phase2Iteration carries one SelectCube-to-recovered-bits pass through
// the pipeline, mirroring a single trip around coefficient_recovery.cpp
// main's while loop body.
type phase2Iteration struct {
	ctx *Context
	cfg Config

	cube       []int
	target     uint64
	nbUnknowns int

	l4          [320]anf.PolyMap
	polynomials []string

	b, c uint64
	sum  uint64

	recoveredBits map[int]bool
}

// Phase2Driver runs phase 2's recovery loop - repeatedly selecting a
// cube, extracting its round-5/6 coefficients, evaluating the matching
// numeric cube-sum, solving the resulting system, and folding newly
// recovered a_i bits back into ctx - until every a_i with e_i=1 is
// known or MaxTries is exhausted.
func Phase2Driver(ctx *Context, cfg Config) error {
	if cfg.Solver == nil {
		return fmt.Errorf("recovery: Config.Solver is required")
	}
	rng := cfg.rng()

	for tries := 0; !ctx.Done() && tries < cfg.maxTries(); tries++ {
		it := &phase2Iteration{ctx: ctx, cfg: cfg}

		p := pipeline.New[*phase2Iteration]()
		p.Add(pipeline.NewFuncStep("select cube", func(it *phase2Iteration) error {
			it.cube, it.target, it.nbUnknowns = SelectCube(it.ctx, rng)
			return nil
		}))
		p.Add(pipeline.NewFuncStep("build L4", func(it *phase2Iteration) error {
			start := InitStatePhase2(it.cube, it.ctx)
			l4, err := anf.GetL4(start, round4DegreesPhase2...)
			if err != nil {
				return err
			}
			it.l4 = l4
			return nil
		}))
		p.Add(pipeline.NewFuncStep("recover coefficients", func(it *phase2Iteration) error {
			return it.recoverCoefficients()
		}))
		p.Add(pipeline.NewFuncStep("evaluate cube sum", func(it *phase2Iteration) error {
			it.b, it.c = rng.Uint64(), rng.Uint64()
			it.sum = evaluatePhase2CubeSum(it.ctx.A, it.b, it.c, it.ctx.E, it.cube, it.cfg.Workers)
			return nil
		}))
		p.Add(pipeline.NewFuncStep("write results", func(it *phase2Iteration) error {
			return it.writeResults()
		}))
		p.Add(pipeline.NewFuncStep("solve", func(it *phase2Iteration) error {
			return it.cfg.Solver.Solve(it.cfg.background(), it.cfg.ResultsDir)
		}))
		p.Add(pipeline.NewFuncStep("update recovered bits", func(it *phase2Iteration) error {
			bits, err := fileio.ReadRecoveredBitsFile(filepath.Join(it.cfg.ResultsDir, "recovered_a.txt"))
			if err != nil {
				return err
			}
			it.recoveredBits = bits
			it.ctx.ApplyRecoveredBits(bits)
			return nil
		}))

		if err := p.Execute(it); err != nil {
			return fmt.Errorf("recovery: phase 2 try %d: %w", tries+1, err)
		}
	}
	return nil
}

// recoverCoefficients extracts column by column, stopping early once the
// number of non-constant coefficients exceeds twice the cube's unknown
// count - an empirical heuristic from the original attack (more
// non-constant equations than that rarely yields a solvable system for
// the remaining unknowns, so continuing wastes the expensive S5/S6
// extraction on later columns).
func (it *phase2Iteration) recoverCoefficients() error {
	it.polynomials = it.polynomials[:0]
	nonConstant := 0
	for col := 0; col < 64; col++ {
		coeff, err := trail.Recover(col, it.l4, it.target)
		if err != nil {
			return fmt.Errorf("recover coefficients: column %d: %w", col, err)
		}
		s := trail.Serialize(coeff)
		it.polynomials = append(it.polynomials, s)
		if s != "0" && s != "1" {
			nonConstant++
		}
		if nonConstant > 2*it.nbUnknowns {
			break
		}
	}
	return nil
}

func (it *phase2Iteration) writeResults() error {
	if err := fileio.WriteParameters(filepath.Join(it.cfg.ResultsDir, "parameters.txt"), fileio.Parameters{
		A: it.ctx.A, E: it.ctx.E, Targets: []uint64{it.target},
	}); err != nil {
		return err
	}
	if err := fileio.WritePhase2CubeSum(filepath.Join(it.cfg.ResultsDir, "cube_sum_vectors.txt"), it.sum); err != nil {
		return err
	}
	return fileio.WritePolynomials(filepath.Join(it.cfg.ResultsDir, "polynomials.txt"), it.polynomials)
}

// evaluatePhase2CubeSum computes the numeric cube-sum oracle value for
// one cube: capacity rows (a, b, c, d=~(c^e)) are fixed, row (rate) 0 is
// summed over every subset of cube, with 6 rounds, no final linear
// layer, and no round constants - exactly cube_sum_given_cubes_given_a_e's
// invocation.
func evaluatePhase2CubeSum(a, b, c, e uint64, cube []int, workers int) uint64 {
	s := ascon.State{0, a, b, c, ^(c ^ e)}
	ascon.CubeSum(&s, 6, cube, false, false, workers)
	return s[0]
}
