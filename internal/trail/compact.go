// Phase 3 reruns the same S5/S6 extraction as phase 2 but over
// anf.CompactPolyMap instead of anf.PolyMap: by the time rounds 5-6 run in
// phase 3, rows a and e are already known constants, so every surviving
// coefficient fits the restricted {1, b_i*c_i, b_i, c_i} shape and XOR-ing
// masks together is enough to combine them, no polynomial multiplication
// needed. ListProducts and ListTrails are unchanged from phase 2 - both
// phases reach coordinate c_{0,col} through the same 1.5-round trails.
package trail

import (
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/baudrin-research/asconcube/internal/anf"
)

// MulS5Compact computes the degree-15 and degree-16 part of the product of
// two compact degree-7/8 poly_maps. Because every degree-8 monomial carries the
// trivial coefficient 1, the product's coefficient at a given degree-16
// monomial is just whichever side contributed the degree-7 factor, so no
// multiplication of the two compact coefficients is needed - only a
// selection.
func MulS5Compact(c1, c2 anf.CompactPolyMap) anf.CompactPolyMap {
	prod := make(anf.CompactPolyMap)
	for monom1, coeff1 := range c1 {
		degree7 := bits.OnesCount64(monom1) == 7
		for monom2, coeff2 := range c2 {
			tmp := monom1 | monom2
			if bits.OnesCount64(tmp) < 15 {
				continue
			}
			if degree7 {
				prod[tmp] = anf.AddCompact(prod[tmp], coeff1)
			} else {
				prod[tmp] = anf.AddCompact(prod[tmp], coeff2)
			}
		}
	}
	return prod
}

// MulS6Compact computes the single compact coefficient of the degree-31
// target monomial in the product of two compact degree-15/16 poly_maps,
// walking the smaller map and looking up each monomial's complement in
// the other. A degree-16/degree-16 pairing can cover target through two
// distinct single-bit completions of the complement, so that case also
// checks every such covering monomial and folds in its constant flag.
//
// The covering case counts a constant 1 for each hit without looking at
// the outer degree-16 monomial's coefficient, so it relies on every
// degree-16 entry of a MulS5Compact product having the constant 1 as its
// coefficient. That property is not checked here.
func MulS6Compact(c1, c2 anf.CompactPolyMap, target uint64) anf.CompactCoeff {
	first, second := c1, c2
	if len(c2) < len(c1) {
		first, second = c2, c1
	}

	var prod anf.CompactCoeff
	for monom1, coeff1 := range first {
		if coeff1 == (anf.CompactCoeff{}) {
			continue
		}
		subleading := bits.OnesCount64(monom1) == 15
		complement := (^monom1) & target

		if coeff2, ok := second[complement]; ok && coeff2 != (anf.CompactCoeff{}) {
			if subleading {
				prod = anf.AddCompact(prod, coeff1)
			} else {
				prod = anf.AddCompact(prod, coeff2)
			}
		}

		if !subleading {
			for i := 0; i < 64; i++ {
				if (monom1>>uint(i))&1 == 0 {
					continue
				}
				covering := complement | (uint64(1) << uint(i))
				if coeff2, ok := second[covering]; ok && coeff2.HasConst() {
					prod[anf.ConstIndex] ^= 1
				}
			}
		}
	}
	return prod
}

// ColumnProductCompact is ColumnProduct's phase-3 counterpart, evaluating
// one entry of ListProducts for column col over compact poly_maps.
func ColumnProductCompact(l4 [320]anf.CompactPolyMap, col int, p Product) anf.CompactPolyMap {
	idx1 := p.Y1*64 + (p.X+col)%64
	idx2 := p.Y2*64 + (p.X+col)%64
	return MulS5Compact(l4[idx1], l4[idx2])
}

// RecoverCompact is Recover's phase-3 counterpart: it returns the single
// compact coefficient of the degree-31 monomial target in column col,
// with rows a and e already folded into known constants by the caller's
// state construction.
func RecoverCompact(col int, l4 [320]anf.CompactPolyMap, target uint64) (anf.CompactCoeff, error) {
	products := make([]anf.CompactPolyMap, len(ListProducts))
	var g errgroup.Group
	for i, p := range ListProducts {
		i, p := i, p
		g.Go(func() error {
			products[i] = ColumnProductCompact(l4, col, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return anf.CompactCoeff{}, err
	}
	indexOf := make(map[Product]int, len(ListProducts))
	for i, p := range ListProducts {
		indexOf[p] = i
	}

	contributions := make([]anf.CompactCoeff, len(ListTrails))
	var g2 errgroup.Group
	for i, t := range ListTrails {
		i, t := i, t
		g2.Go(func() error {
			c0, c1 := products[indexOf[t.First]], products[indexOf[t.Second]]
			if len(c0) == 0 || len(c1) == 0 {
				return nil
			}
			contributions[i] = MulS6Compact(c0, c1, target)
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return anf.CompactCoeff{}, err
	}

	var final anf.CompactCoeff
	for _, c := range contributions {
		final = anf.AddCompact(final, c)
	}
	return final, nil
}

// SerializeCompact renders a compact coefficient as a readable polynomial
// over rows b and c, in the same term order the original implementation
// used for this representation: the constant term first if present, then
// b_i*c_i, b_i and c_i terms in ascending i. Unlike Serialize's row-a
// format, this representation checks the constant exactly once up front,
// so there is no overwrite quirk to preserve here.
func SerializeCompact(c anf.CompactCoeff) string {
	var parts []string
	if c.HasConst() {
		parts = append(parts, "1")
	}
	for j := 0; j < 64; j++ {
		if (c[anf.BCIndex]>>uint(63-j))&1 != 0 {
			parts = append(parts, "b"+strconv.Itoa(j)+"*c"+strconv.Itoa(j))
		}
	}
	for j := 0; j < 64; j++ {
		if (c[anf.BIndex]>>uint(63-j))&1 != 0 {
			parts = append(parts, "b"+strconv.Itoa(j))
		}
	}
	for j := 0; j < 64; j++ {
		if (c[anf.CIndex]>>uint(63-j))&1 != 0 {
			parts = append(parts, "c"+strconv.Itoa(j))
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}
