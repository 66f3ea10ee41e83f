// Package trail computes the last two rounds of the cube attack's partial
// ANF propagation: the degree-16 S5 layer and the degree-32 S6
// coefficient for one target column, restricted to the fixed trails
// ListTrails that can actually reach it. Expanding the full S-box
// symbolically through these rounds the way internal/anf does rounds 1-4
// is intractable; instead, only the handful of input/output pairs named
// by ListProducts and ListTrails are ever multiplied.
package trail

import (
	"math/bits"

	"github.com/baudrin-research/asconcube/internal/anf"
)

// MulS5 computes the degree-16 part of the product of two degree-8
// poly_maps, as produced by anf.GetL4. Every pairwise combination of
// public-variable monomials is tried (there is no cheaper way to find
// which pairs reach degree 16), but only degree-16 products are kept.
func MulS5(c1, c2 anf.PolyMap) anf.PolyMap {
	prod := make(anf.PolyMap)
	for mask1, coeff1 := range c1 {
		for mask2, coeff2 := range c2 {
			mask := mask1 | mask2
			if bits.OnesCount64(mask) != 16 {
				continue
			}
			existing := prod[mask]
			if existing == nil {
				existing = make(anf.Coor)
				prod[mask] = existing
			}
			product := anf.Mul(coeff1, coeff2, anf.KeepAll)
			prod[mask] = anf.Add(existing, product)
		}
	}
	return prod
}

// MulS6 computes the single coefficient of the degree-32 target monomial
// in the product of two degree-16 poly_maps. It walks the smaller map and
// looks up each monomial's complement (relative to target) in the other,
// which is what makes a degree-32 target tractable to extract without
// building the whole product.
func MulS6(c1, c2 anf.PolyMap, target uint64) anf.Coor {
	first, second := c1, c2
	if len(c2) < len(c1) {
		first, second = c2, c1
	}

	prod := make(anf.Coor)
	for mask1, coeff1 := range first {
		if len(coeff1) == 0 {
			continue
		}
		complement := (^mask1) & target
		coeff2, ok := second[complement]
		if !ok || len(coeff2) == 0 {
			continue
		}
		product := anf.Mul(coeff1, coeff2, anf.KeepAll)
		prod = anf.Add(prod, product)
	}
	return prod
}

// ColumnProduct evaluates one entry of ListProducts for the target column
// col: l4[p.Y1*64 + (p.X+col)%64] times l4[p.Y2*64 + (p.X+col)%64],
// restricted to degree 16 by MulS5.
func ColumnProduct(l4 [320]anf.PolyMap, col int, p Product) anf.PolyMap {
	idx1 := p.Y1*64 + (p.X+col)%64
	idx2 := p.Y2*64 + (p.X+col)%64
	return MulS5(l4[idx1], l4[idx2])
}
