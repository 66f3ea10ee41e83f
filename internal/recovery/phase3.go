package recovery

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/baudrin-research/asconcube/internal/anf"
	"github.com/baudrin-research/asconcube/internal/ascon"
	"github.com/baudrin-research/asconcube/internal/fileio"
	"github.com/baudrin-research/asconcube/internal/pipeline"
	"github.com/baudrin-research/asconcube/internal/trail"
)

// phase3Run carries the whole phase-3 pass through the pipeline: unlike
// phase 2, phase 3 is one-shot per Context - cubes.3.cpp's main is not a
// retry loop, it draws nb_cubes cubes once, extracts every column of
// every cube, evaluates the matching numeric cube-sums against a single
// fixed (b, c) draw, and hands the whole system to the solver once.
type phase3Run struct {
	ctx *Context
	cfg Config

	cubes   [][]int
	targets []uint64

	polynomials [][]string // polynomials[k] holds cube k's 64 column strings

	sums []uint64
}

// Phase3Driver runs phase 3's one-shot recovery pass: b and c are drawn
// fresh (ctx.B, ctx.C), NumCubes distinct cubes are selected, every
// column's compact coefficient is extracted per cube, the matching
// numeric cube-sum vector is evaluated, the whole system is written out
// and handed to the solver, and the solver's answer is folded back into
// ctx.RecoveredB/RecoveredC.
func Phase3Driver(ctx *Context, cfg Config) error {
	if cfg.Solver == nil {
		return fmt.Errorf("recovery: Config.Solver is required")
	}
	rng := cfg.rng()

	run := &phase3Run{ctx: ctx, cfg: cfg}

	p := pipeline.New[*phase3Run]()
	p.Add(pipeline.NewFuncStep("select cubes", func(r *phase3Run) error {
		r.cubes, r.targets = SelectCubesPhase3(r.ctx, rng, r.cfg.numCubes(), r.cfg.nbZerosPhase3(), r.cfg.cubeSizePhase3())
		return nil
	}))
	p.Add(pipeline.NewFuncStep("draw b, c", func(r *phase3Run) error {
		r.ctx.B, r.ctx.C = rng.Uint64(), rng.Uint64()
		return nil
	}))
	p.Add(pipeline.NewFuncStep("recover coefficients", func(r *phase3Run) error {
		return r.recoverCoefficients()
	}))
	p.Add(pipeline.NewFuncStep("evaluate cube sums", func(r *phase3Run) error {
		r.sums = make([]uint64, len(r.cubes))
		for k, cube := range r.cubes {
			r.sums[k] = evaluatePhase3CubeSum(r.ctx.A, r.ctx.B, r.ctx.C, r.ctx.E, cube, r.cfg.Workers)
		}
		return nil
	}))
	p.Add(pipeline.NewFuncStep("write results", func(r *phase3Run) error {
		return r.writeResults()
	}))
	p.Add(pipeline.NewFuncStep("solve", func(r *phase3Run) error {
		return r.cfg.Solver.Solve(r.cfg.background(), r.cfg.ResultsDir)
	}))
	p.Add(pipeline.NewFuncStep("update recovered words", func(r *phase3Run) error {
		b, c, err := fileio.ReadRecoveredWordsFile(filepath.Join(r.cfg.ResultsDir, "recovered_b_c.txt"))
		if err != nil {
			return err
		}
		r.ctx.ApplyRecoveredWords(b, c)
		return nil
	}))

	if err := p.Execute(run); err != nil {
		return fmt.Errorf("recovery: phase 3: %w", err)
	}
	return nil
}

// round4DegreesPhase3 keeps degree-7 and degree-8 monomials after round
// 4 - phase 3's wider filter, since unlike phase 2 its round-6
// coefficients need both degrees to reconstruct the degree-31 target.
var round4DegreesPhase3 = []int{7, 8}

// recoverCoefficients extracts every column of every selected cube, with
// no early-stop heuristic - phase 3 has no per-cube unknown count to
// compare against, since a and e are already fully known by this phase.
// It dispatches to the sequential or all-columns-parallel variant per
// Config.ParallelColumns.
func (r *phase3Run) recoverCoefficients() error {
	if r.cfg.ParallelColumns {
		return r.recoverCoefficientsParallel()
	}
	return r.recoverCoefficientsSequential()
}

// recoverCoefficientsSequential is phase 3's RAM-bounded default: one
// cube's l4 table and one column's trail products live at a time.
func (r *phase3Run) recoverCoefficientsSequential() error {
	r.polynomials = make([][]string, len(r.cubes))
	for k, cube := range r.cubes {
		compactL4, err := r.buildCompactL4(k, cube)
		if err != nil {
			return err
		}

		columns := make([]string, 64)
		for col := 0; col < 64; col++ {
			coeff, err := trail.RecoverCompact(col, compactL4, r.targets[k])
			if err != nil {
				return fmt.Errorf("recover coefficients: cube %d column %d: %w", k, col, err)
			}
			columns[col] = trail.SerializeCompact(coeff)
		}
		r.polynomials[k] = columns
	}
	return nil
}

// recoverCoefficientsParallel fans every column of every cube out across
// Workers at once. It holds all of the cubes' l4 tables in memory
// simultaneously, trading the sequential mode's bounded footprint for
// wall-clock time when RAM permits.
func (r *phase3Run) recoverCoefficientsParallel() error {
	r.polynomials = make([][]string, len(r.cubes))
	compactL4s := make([][320]anf.CompactPolyMap, len(r.cubes))
	for k, cube := range r.cubes {
		l4, err := r.buildCompactL4(k, cube)
		if err != nil {
			return err
		}
		compactL4s[k] = l4
	}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = ascon.DefaultWorkers
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for k := range r.cubes {
		k := k
		r.polynomials[k] = make([]string, 64)
		for col := 0; col < 64; col++ {
			k, col := k, col
			g.Go(func() error {
				coeff, err := trail.RecoverCompact(col, compactL4s[k], r.targets[k])
				if err != nil {
					return fmt.Errorf("recover coefficients: cube %d column %d: %w", k, col, err)
				}
				r.polynomials[k][col] = trail.SerializeCompact(coeff)
				return nil
			})
		}
	}
	return g.Wait()
}

// buildCompactL4 extracts cube k's round-4 ANF table in compact form.
func (r *phase3Run) buildCompactL4(k int, cube []int) ([320]anf.CompactPolyMap, error) {
	start := InitStatePhase3(cube, r.ctx)
	l4, err := anf.GetL4(start, round4DegreesPhase3...)
	if err != nil {
		return [320]anf.CompactPolyMap{}, fmt.Errorf("recover coefficients: cube %d: %w", k, err)
	}
	return compactFromPolyMaps(l4), nil
}

func compactFromPolyMaps(l4 [320]anf.PolyMap) [320]anf.CompactPolyMap {
	var out [320]anf.CompactPolyMap
	for i, p := range l4 {
		out[i] = anf.CompactFromPolyMap(p)
	}
	return out
}

func (r *phase3Run) writeResults() error {
	if err := fileio.WriteParameters(filepath.Join(r.cfg.ResultsDir, "parameters.txt"), fileio.Parameters{
		A: r.ctx.A, E: r.ctx.E, Targets: r.targets,
	}); err != nil {
		return err
	}
	if err := fileio.WriteCubeSumVectors(filepath.Join(r.cfg.ResultsDir, "cube_sum_vectors.txt"), fileio.CubeSumVectors{
		B: r.ctx.B, C: r.ctx.C, Sums: r.sums,
	}); err != nil {
		return err
	}
	for k, columns := range r.polynomials {
		path := filepath.Join(r.cfg.ResultsDir, fmt.Sprintf("polynomials_cube_%d.txt", k))
		if err := fileio.WritePolynomials(path, columns); err != nil {
			return err
		}
	}
	return nil
}

// evaluatePhase3CubeSum mirrors cube_sum_given_cubes_given_a_e's state
// setup exactly: same row layout as phase 2's oracle, this time with a
// genuine b rather than an all-zero row.
func evaluatePhase3CubeSum(a, b, c, e uint64, cube []int, workers int) uint64 {
	s := ascon.State{0, a, b, c, ^(c ^ e)}
	ascon.CubeSum(&s, 6, cube, false, false, workers)
	return s[0]
}
