package trail

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/baudrin-research/asconcube/internal/anf"
)

// Recover computes the coefficient of the degree-32 monomial target in
// column col of the ASCON state after round 6, given l4 (the rounds 1-4
// partial ANF from anf.GetL4). It reproduces the two-step structure of
// the original coefficient_recovery: first every entry of ListProducts is
// multiplied down to its degree-16 part (step S5-L5), then every entry of
// ListTrails recombines two of those products into a degree-32
// contribution (step S6), and the contributions are XORed together.
func Recover(col int, l4 [320]anf.PolyMap, target uint64) (anf.Coor, error) {
	products := make(map[Product]anf.PolyMap, len(ListProducts))
	var mu sync.Mutex
	var g errgroup.Group
	for _, p := range ListProducts {
		p := p
		g.Go(func() error {
			result := ColumnProduct(l4, col, p)
			mu.Lock()
			products[p] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contributions := make([]anf.Coor, len(ListTrails))
	var g2 errgroup.Group
	for i, t := range ListTrails {
		i, t := i, t
		g2.Go(func() error {
			c0, c1 := products[t.First], products[t.Second]
			if len(c0) == 0 || len(c1) == 0 {
				return nil
			}
			contributions[i] = MulS6(c0, c1, target)
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, err
	}

	final := make(anf.Coor)
	for _, c := range contributions {
		final = anf.Add(final, c)
	}
	return final, nil
}

// Serialize renders a coefficient coordinate as a readable polynomial in
// the secret row a (bank anf.BankA), reproducing the original
// implementation's convert_monom_to_txt exactly: terms joined by " + ",
// factors within a term joined by "*", and the empty coordinate rendered
// as "0". The constant monomial's term is written by assigning s = "1"
// rather than appending - harmless only because the constant monomial is
// the all-zero bank array, which sorts first in the original's
// std::set<monom> and so is always the first term visited; Serialize
// reproduces that ordering explicitly since Go map iteration is
// unordered, to keep the same guarantee true here.
func Serialize(c anf.Coor) string {
	monomials := make([]anf.Monomial, 0, len(c))
	for m := range c {
		monomials = append(monomials, m)
	}
	sort.Slice(monomials, func(i, j int) bool {
		return lessMonomial(monomials[i], monomials[j])
	})

	var s string
	plus := false
	for _, m := range monomials {
		if !plus {
			plus = true
		} else {
			s += " + "
		}

		var factors []string
		for j := 0; j < 64; j++ {
			if (m[anf.BankA]>>uint(63-j))&1 != 0 {
				factors = append(factors, "a"+strconv.Itoa(j))
			}
		}
		if len(factors) == 0 {
			s = "1"
		} else {
			s += strings.Join(factors, "*")
		}
	}
	if s == "" {
		s = "0"
	}
	return s
}

// lessMonomial orders monomials the way std::array<uint64_t,5> is ordered
// inside a std::set: lexicographically bank by bank.
func lessMonomial(a, b anf.Monomial) bool {
	for i := 0; i < 5; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
