package anf

import "golang.org/x/sync/errgroup"

// sbox computes the symbolic ANF of one column of ASCON's S-box from its
// five input coordinates. When quadratic is true only the S-box's
// quadratic part is computed (the linear terms below are skipped) — the
// attack only ever needs the quadratic part once it is no longer looking
// at round 1, since the linear terms cannot raise the degree that the
// degree filters are tracking.
//
// Ported term-for-term from the original implementation's sbox: the five
// output equations and the product-before-linear-terms structure are
// exactly as given there, not re-derived from the S-box truth table.
func sbox(x0, x1, x2, x3, x4 Coor, quadratic bool, condition MulFilter) (y0, y1, y2, y3, y4 Coor) {
	x2x1 := Mul(x2, x1, condition)
	y2 = Mul(x4, x3, condition)
	y3 = Mul(x0, Add(x3, x4), condition)
	y4 = Mul(x1, Add(x4, x0), condition)
	y1 = Add(Mul(Add(x2, x1), x3, condition), x2x1)
	y0 = Add(x2x1, y4)

	if !quadratic {
		x0x1x2x3 := Add(Add(Add(x0, x1), x2), x3)
		constOne := NewCoor(One)

		y0 = Add(y0, x0x1x2x3)
		y1 = Add(Add(y1, x0x1x2x3), x4)
		y2 = Add(Add(Add(y2, x1), Add(x2, constOne)), x4)
		y3 = Add(Add(y3, x0x1x2x3), x4)
		y4 = Add(Add(Add(y4, x1), x3), x4)
	}
	return
}

// sboxState applies sbox to all 64 columns of s, fanning the columns out
// across a worker pool (mirroring the original OpenMP "parallel for"
// over the 64 columns).
func sboxState(s State, quadratic bool, condition MulFilter) (State, error) {
	var out State
	var g errgroup.Group
	for col := 0; col < 64; col++ {
		col := col
		g.Go(func() error {
			y0, y1, y2, y3, y4 := sbox(s[col], s[col+64], s[col+128], s[col+192], s[col+256], quadratic, condition)
			out[col] = y0
			out[col+64] = y1
			out[col+128] = y2
			out[col+192] = y3
			out[col+256] = y4
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return State{}, err
	}
	return out, nil
}
