package anf

import "golang.org/x/sync/errgroup"

// linShifts gives, for each row, the two column offsets that row's
// linear layer XORs in, in (first, second) order. These are the same
// (64-alpha, 64-beta) complements of ascon.shiftTable's rotation amounts
// that the original implementation hard-codes as `shifts[10]`.
var linShifts = [5][2]int{
	{45, 36},
	{3, 25},
	{63, 58},
	{54, 47},
	{57, 23},
}

// linLayer applies ASCON's linear diffusion layer symbolically: each
// output coordinate is the XOR of its own column with two rotated
// columns of the same row.
func linLayer(s State) (State, error) {
	var out State
	var g errgroup.Group
	for row := 0; row < 5; row++ {
		row := row
		for col := 0; col < 64; col++ {
			col := col
			g.Go(func() error {
				cur := row*64 + col
				shift0 := row*64 + (col+linShifts[row][0])%64
				shift1 := row*64 + (col+linShifts[row][1])%64
				out[cur] = AddAll(s[cur], s[shift0], s[shift1])
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return State{}, err
	}
	return out, nil
}
