// Package anf computes the partial algebraic normal form of the ASCON
// permutation's first four rounds, symbolically, over five banks of
// boolean variables: the public/cube bits v (bank 0) and the four
// 64-bit secret-state rows a, b, c, e (banks 1-4). Only the part of the
// ANF needed by the attack is ever materialized — degree filters after
// each S-box layer discard monomials that cannot contribute to the
// eventual cube-sum coefficients, the same pruning the attack's
// original implementation performs.
package anf

import "math/bits"

// Bank indices into a Monomial, naming the five 64-bit variable groups.
const (
	BankV = 0 // public/cube variables
	BankA = 1 // secret capacity row a
	BankB = 2 // secret capacity row b
	BankC = 3 // secret capacity row c
	BankE = 4 // secret capacity row e
)

// Monomial is a product of boolean variables, recorded as one 64-bit
// presence mask per bank: bit 63-j of Monomial[bank] means variable j of
// that bank divides the monomial (big-endian column numbering, the same
// as the rest of the module).
type Monomial [5]uint64

// Degree returns the number of public-variable (bank 0) factors in m.
// This is the "degree" the attack's degree filters operate on.
func (m Monomial) Degree() int {
	return bits.OnesCount64(m[BankV])
}

// Mul returns the product of two monomials: the bankwise OR of their
// variable masks (repeated variables vanish, since x*x = x over GF(2)).
func (m Monomial) Mul(other Monomial) Monomial {
	var r Monomial
	for i := 0; i < 5; i++ {
		r[i] = m[i] | other[i]
	}
	return r
}

// One is the empty monomial (the multiplicative identity, representing
// the constant 1).
var One = Monomial{}
