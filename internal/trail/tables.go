package trail

// Product names one of the degree-2 "size-2 products" computed during the
// S-box layer of round 5: for a target column col, it multiplies
// l4[Y1*64 + (X+col)%64] by l4[Y2*64 + (X+col)%64]. X, Y1, Y2 are exactly
// the original implementation's hard-coded trail parameters; they encode
// which rotated copies of which state rows collide during round 5's
// diffusion for the specific column c_{0,0} this attack targets.
type Product struct {
	X, Y1, Y2 int
}

// Trail pairs two size-2 products whose round-6 combination contributes to
// the degree-32 target monomial in column 0. Only trails of this fixed
// length-4 shape reach c_{0,0} through the remaining 1.5 rounds; every
// other combination of S-box inputs is provably irrelevant and is never
// computed.
type Trail struct {
	First, Second Product
}

// ListProducts is the fixed list of size-2 products that appear in at
// least one trail of length 4 leading into column 0 after round 5.
// Verbatim from the attack's original round 5/6 multiplier.
var ListProducts = []Product{
	{X: 0, Y1: 1, Y2: 2},
	{X: 0, Y1: 1, Y2: 3},
	{X: 0, Y1: 2, Y2: 3},
	{X: 0, Y1: 3, Y2: 4},
	{X: 3, Y1: 1, Y2: 2},
	{X: 3, Y1: 1, Y2: 3},
	{X: 3, Y1: 2, Y2: 3},
	{X: 23, Y1: 0, Y2: 1},
	{X: 23, Y1: 1, Y2: 4},
	{X: 25, Y1: 1, Y2: 2},
	{X: 25, Y1: 1, Y2: 3},
	{X: 25, Y1: 2, Y2: 3},
	{X: 36, Y1: 0, Y2: 1},
	{X: 36, Y1: 1, Y2: 2},
	{X: 36, Y1: 1, Y2: 4},
	{X: 45, Y1: 0, Y2: 1},
	{X: 45, Y1: 1, Y2: 2},
	{X: 45, Y1: 1, Y2: 4},
	{X: 57, Y1: 0, Y2: 1},
	{X: 57, Y1: 1, Y2: 4},
	{X: 58, Y1: 3, Y2: 4},
	{X: 63, Y1: 3, Y2: 4},
}

// ListTrails is the fixed list of length-4 trails leading to column 0
// through the last 1.5 rounds. Verbatim from the attack's original round
// 5/6 multiplier.
var ListTrails = []Trail{
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 58, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 3, Y2: 4}, Second: Product{X: 25, Y1: 2, Y2: 3}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 58, Y1: 3, Y2: 4}, Second: Product{X: 3, Y1: 2, Y2: 3}},
	{First: Product{X: 0, Y1: 3, Y2: 4}, Second: Product{X: 3, Y1: 2, Y2: 3}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 58, Y1: 3, Y2: 4}},
	{First: Product{X: 57, Y1: 1, Y2: 4}, Second: Product{X: 25, Y1: 2, Y2: 3}},
	{First: Product{X: 57, Y1: 1, Y2: 4}, Second: Product{X: 3, Y1: 2, Y2: 3}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 57, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 58, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 3, Y2: 4}, Second: Product{X: 25, Y1: 1, Y2: 3}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 58, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 3, Y2: 4}, Second: Product{X: 25, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 57, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 57, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 58, Y1: 3, Y2: 4}, Second: Product{X: 3, Y1: 1, Y2: 3}},
	{First: Product{X: 0, Y1: 3, Y2: 4}, Second: Product{X: 3, Y1: 1, Y2: 3}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 58, Y1: 3, Y2: 4}, Second: Product{X: 3, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 3, Y2: 4}, Second: Product{X: 3, Y1: 1, Y2: 2}},
	{First: Product{X: 57, Y1: 1, Y2: 4}, Second: Product{X: 3, Y1: 1, Y2: 3}},
	{First: Product{X: 57, Y1: 1, Y2: 4}, Second: Product{X: 3, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 58, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 63, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 58, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 0, Y1: 3, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 25, Y1: 2, Y2: 3}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 3, Y1: 2, Y2: 3}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 57, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 57, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 25, Y1: 1, Y2: 3}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 25, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 23, Y1: 1, Y2: 4}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 3, Y1: 1, Y2: 3}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 3, Y1: 1, Y2: 2}},
	{First: Product{X: 57, Y1: 0, Y2: 1}, Second: Product{X: 25, Y1: 2, Y2: 3}},
	{First: Product{X: 57, Y1: 0, Y2: 1}, Second: Product{X: 3, Y1: 2, Y2: 3}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 57, Y1: 0, Y2: 1}},
	{First: Product{X: 57, Y1: 0, Y2: 1}, Second: Product{X: 25, Y1: 1, Y2: 3}},
	{First: Product{X: 57, Y1: 0, Y2: 1}, Second: Product{X: 25, Y1: 1, Y2: 2}},
	{First: Product{X: 57, Y1: 0, Y2: 1}, Second: Product{X: 3, Y1: 1, Y2: 3}},
	{First: Product{X: 57, Y1: 0, Y2: 1}, Second: Product{X: 3, Y1: 1, Y2: 2}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 57, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 57, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 45, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 36, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 2, Y2: 3}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 2, Y2: 3}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 2, Y2: 3}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 1, Y2: 3}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 25, Y1: 1, Y2: 2}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 1, Y2: 3}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 3, Y1: 1, Y2: 2}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 3}, Second: Product{X: 23, Y1: 0, Y2: 1}},
	{First: Product{X: 0, Y1: 1, Y2: 2}, Second: Product{X: 23, Y1: 0, Y2: 1}},
}
