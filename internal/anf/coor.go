package anf

// Coor ("coordinate") is a single bit of symbolic ANF state: a sum of
// distinct monomials over GF(2), represented as a presence set. Addition
// is therefore symmetric difference (XOR), and a monomial present twice
// cancels out — mirroring the std::set<monom> the attack's original
// implementation sums into with insert/erase toggling.
type Coor map[Monomial]struct{}

// NewCoor builds a Coor containing exactly the given monomials (duplicates
// cancel, matching the XOR semantics of Add).
func NewCoor(monomials ...Monomial) Coor {
	c := make(Coor, len(monomials))
	for _, m := range monomials {
		c.toggle(m)
	}
	return c
}

func (c Coor) toggle(m Monomial) {
	if _, ok := c[m]; ok {
		delete(c, m)
	} else {
		c[m] = struct{}{}
	}
}

// Add returns c1 XOR c2: the symmetric difference of their monomial sets.
func Add(c1, c2 Coor) Coor {
	c := make(Coor, len(c1)+len(c2))
	for m := range c1 {
		c[m] = struct{}{}
	}
	for m := range c2 {
		c.toggle(m)
	}
	return c
}

// AddAll folds Add over any number of coordinates.
func AddAll(coords ...Coor) Coor {
	c := make(Coor)
	for _, other := range coords {
		for m := range other {
			c.toggle(m)
		}
	}
	return c
}

// MulFilter is a predicate deciding whether a product monomial is worth
// keeping. Applying it during multiplication, rather than after, is what
// keeps intermediate coordinates from growing to the size of the full
// (unfiltered) ANF.
type MulFilter func(Monomial) bool

// KeepAll never filters out a monomial.
func KeepAll(Monomial) bool { return true }

// DegreeIn restricts to monomials whose public-variable degree is one of degs.
func DegreeIn(degs ...int) MulFilter {
	allowed := make(map[int]struct{}, len(degs))
	for _, d := range degs {
		allowed[d] = struct{}{}
	}
	return func(m Monomial) bool {
		_, ok := allowed[m.Degree()]
		return ok
	}
}

// Mul returns the product of c1 and c2, keeping only product monomials
// that pass condition. Every pairwise product is computed (there's no way
// to know in advance which survive), but only survivors are toggled into
// the result, so the result coordinate never grows larger than
// necessary.
func Mul(c1, c2 Coor, condition MulFilter) Coor {
	c := make(Coor)
	for x := range c1 {
		for y := range c2 {
			m := x.Mul(y)
			if condition(m) {
				c.toggle(m)
			}
		}
	}
	return c
}
