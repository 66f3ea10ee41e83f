package anf

import "golang.org/x/sync/errgroup"

// PolyMap represents one coordinate's ANF as a polynomial in the public
// variables v, with coefficients that are themselves GF(2) polynomials in
// the secret variables: the usual F[v][a,b,c,e] isomorphism, keyed by the
// bank-0 (public-variable) mask of each monomial.
type PolyMap map[uint64]Coor

// ConvertToPolyMap reindexes coordinate c by its monomials' public-variable
// masks, so all secret-variable terms sharing the same v-monomial are
// grouped into one coefficient coordinate.
func ConvertToPolyMap(c Coor) PolyMap {
	m := make(PolyMap)
	for x := range c {
		coeff := m[x[BankV]]
		if coeff == nil {
			coeff = make(Coor)
			m[x[BankV]] = coeff
		}
		coeff.toggle(x)
	}
	return m
}

// GetL4 computes BuildL4's result and converts every one of its 320
// coordinates into a PolyMap, fanning the conversion out column by column
// (mirroring the original implementation's convert_l4).
func GetL4(start State, round4Degrees ...int) ([320]PolyMap, error) {
	l4, err := BuildL4(start, round4Degrees...)
	if err != nil {
		return [320]PolyMap{}, err
	}

	var out [320]PolyMap
	var g errgroup.Group
	for i := 0; i < 320; i++ {
		i := i
		g.Go(func() error {
			out[i] = ConvertToPolyMap(l4[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [320]PolyMap{}, err
	}
	return out, nil
}
