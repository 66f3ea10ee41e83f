package recovery

import "github.com/baudrin-research/asconcube/internal/anf"

// row offsets into the 320-bit anf.State, matching the ASCON
// permutation's row layout: 0=v(rate)/a/b/c/e(capacity).
const (
	rowV = 0 * 64
	rowA = 1 * 64
	rowB = 2 * 64
	rowC = 3 * 64
	rowE = 4 * 64
)

// InitStatePhase2 builds the symbolic round-1-4 input state for one
// phase-2 cube: v_i is a variable for i in cube, a_i is a constant (its
// known value) wherever it is already known - either because e_i=0 (so
// this a_i cannot affect the cube-sum and its ground-truth value is
// substituted directly) or because it was already recovered as 1 in an
// earlier iteration - and otherwise a variable; row b is left entirely
// at zero, since phase 2's coefficients are provably independent of b;
// c is a variable in every column, and row e (really d = c XOR NOT e)
// is c optionally XORed with the constant 1 when e_i=0.
func InitStatePhase2(cube []int, ctx *Context) anf.State {
	var s anf.State
	inCube := make(map[int]bool, len(cube))
	for _, j := range cube {
		inCube[j] = true
	}

	for j := 0; j < 64; j++ {
		if inCube[j] {
			var v anf.Monomial
			v[anf.BankV] = uint64(1) << uint(63-j)
			s[rowV+j] = anf.NewCoor(v)

			switch {
			case (!ctx.eBit(j) && ctx.aBit(j)) || ctx.isRecoveredOne(j):
				s[rowA+j] = anf.NewCoor(anf.One)
			case ctx.eBit(j):
				var a anf.Monomial
				a[anf.BankA] = uint64(1) << uint(63-j)
				s[rowA+j] = anf.NewCoor(a)
			default:
				s[rowA+j] = anf.NewCoor()
			}
		}

		var c anf.Monomial
		c[anf.BankC] = uint64(1) << uint(63-j)
		s[rowC+j] = anf.NewCoor(c)

		d := anf.NewCoor(c)
		if !ctx.eBit(j) {
			d = anf.Add(d, anf.NewCoor(anf.One))
		}
		s[rowE+j] = d
	}
	return s
}

// InitStatePhase3 builds the symbolic round-1-4 input state for one
// phase-3 cube: by this phase a and e are both fully known, so a_i is a
// constant in every column (not just cube columns), b and c are
// variables in every column, and row e is built the same way
// InitStatePhase2 builds it.
func InitStatePhase3(cube []int, ctx *Context) anf.State {
	var s anf.State
	inCube := make(map[int]bool, len(cube))
	for _, j := range cube {
		inCube[j] = true
	}

	for j := 0; j < 64; j++ {
		if inCube[j] {
			var v anf.Monomial
			v[anf.BankV] = uint64(1) << uint(63-j)
			s[rowV+j] = anf.NewCoor(v)
		}
		if ctx.aBit(j) {
			s[rowA+j] = anf.NewCoor(anf.One)
		}

		var b anf.Monomial
		b[anf.BankB] = uint64(1) << uint(63-j)
		s[rowB+j] = anf.NewCoor(b)

		var c anf.Monomial
		c[anf.BankC] = uint64(1) << uint(63-j)
		s[rowC+j] = anf.NewCoor(c)

		d := anf.NewCoor(c)
		if !ctx.eBit(j) {
			d = anf.Add(d, anf.NewCoor(anf.One))
		}
		s[rowE+j] = d
	}
	return s
}
