package anf

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func TestMonomialMul(t *testing.T) {
	a := Monomial{0b101, 0, 0, 0, 0}
	b := Monomial{0b110, 0, 0, 0, 0}
	qt.Assert(t, qt.Equals(a.Mul(b), Monomial{0b111, 0, 0, 0, 0}))
	qt.Assert(t, qt.Equals(a.Mul(a), a))
}

func TestMonomialDegree(t *testing.T) {
	m := Monomial{0b1011, 7, 0, 0, 0}
	qt.Assert(t, qt.Equals(m.Degree(), 3))
}

func TestCoorAddCancelsSharedMonomials(t *testing.T) {
	m1 := Monomial{1, 0, 0, 0, 0}
	m2 := Monomial{2, 0, 0, 0, 0}
	c1 := NewCoor(m1, m2)
	c2 := NewCoor(m2)

	got := Add(c1, c2)
	want := NewCoor(m1)
	qt.Assert(t, qt.HasLen(got, len(want)))
	for m := range want {
		_, ok := got[m]
		qt.Assert(t, qt.IsTrue(ok), qt.Commentf("Add result missing monomial %v", m))
	}
}

func TestCoorAddSelfIsEmpty(t *testing.T) {
	c := NewCoor(Monomial{1, 0, 0, 0, 0}, Monomial{2, 0, 0, 0, 0})
	qt.Assert(t, qt.HasLen(Add(c, c), 0))
}

func TestMulAppliesFilter(t *testing.T) {
	c1 := NewCoor(Monomial{1, 0, 0, 0, 0}, Monomial{2, 0, 0, 0, 0})
	c2 := NewCoor(Monomial{4, 0, 0, 0, 0})

	all := Mul(c1, c2, KeepAll)
	if len(all) != 2 {
		t.Fatalf("Mul(KeepAll) produced %d monomials, want 2", len(all))
	}

	filtered := Mul(c1, c2, DegreeIn(3))
	for m := range filtered {
		if m.Degree() != 3 {
			t.Errorf("filtered result contains degree-%d monomial %v", m.Degree(), m)
		}
	}
}

func TestConvertToPolyMapGroupsByBankZero(t *testing.T) {
	mv0a1 := Monomial{1, 1, 0, 0, 0}
	mv0a2 := Monomial{1, 2, 0, 0, 0}
	mv1 := Monomial{2, 0, 0, 0, 0}
	c := NewCoor(mv0a1, mv0a2, mv1)

	pm := ConvertToPolyMap(c)
	if len(pm) != 2 {
		t.Fatalf("PolyMap has %d public-variable buckets, want 2", len(pm))
	}
	if coeff, ok := pm[1]; !ok || len(coeff) != 2 {
		t.Errorf("bucket for mask 1 = %v, want 2 monomials", coeff)
	}
	if coeff, ok := pm[2]; !ok || len(coeff) != 1 {
		t.Errorf("bucket for mask 2 = %v, want 1 monomial", coeff)
	}
}

func TestConvertToCompactCoeffAcceptsValidShapes(t *testing.T) {
	c := NewCoor(
		One,
		Monomial{0, 0, 1, 0, 0},    // b_63 (bit 0)
		Monomial{0, 0, 0, 4, 0},    // c_61 (bit 2)
		Monomial{0, 0, 8, 8, 0},    // b_60 * c_60 (bit 3)
	)
	got := ConvertToCompactCoeff(c)
	if !got.HasConst() {
		t.Error("expected constant term present")
	}
	if got[BIndex] != 1 {
		t.Errorf("b-mask = %#x, want bit 0 set", got[BIndex])
	}
	if got[CIndex] != 4 {
		t.Errorf("c-mask = %#x, want bit 2 set", got[CIndex])
	}
	if got[BCIndex] != 8 {
		t.Errorf("bc-mask = %#x, want bit 3 set", got[BCIndex])
	}
}

func TestConvertToCompactCoeffRejectsInvalidShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a monomial outside {1, b_i*c_i, b_i, c_i}")
		}
	}()
	// b_63 * b_62: two distinct b-indices in one monomial, not a valid shape.
	c := NewCoor(Monomial{0, 0, 0b11, 0, 0})
	ConvertToCompactCoeff(c)
}

// identityState builds a toy symbolic state where state bit i is simply
// the single public-variable monomial v_{63 - (i mod 64)}, letting BuildL4 run
// to completion quickly while still exercising every round's degree
// filter.
func identityState() State {
	var s State
	for i := 0; i < 320; i++ {
		var m Monomial
		m[BankV] = uint64(1) << uint(i%64)
		s[i] = NewCoor(m)
	}
	return s
}

func TestBuildL4RespectsRound4DegreeFilter(t *testing.T) {
	l4, err := BuildL4(identityState(), 8)
	if err != nil {
		t.Fatalf("BuildL4: %v", err)
	}
	for i, coord := range l4 {
		for m := range coord {
			if m.Degree() != 8 {
				t.Fatalf("state bit %d: monomial %v has degree %d, want 8", i, m, m.Degree())
			}
		}
	}
}

func TestBuildL4IsDeterministic(t *testing.T) {
	// BuildL4 fans its rounds out across a worker pool (see sboxState,
	// linLayer); this pins down that the parallel reduction doesn't
	// introduce any run-to-run nondeterminism in the resulting ANF.
	l4a, err := BuildL4(identityState(), 8)
	qt.Assert(t, qt.IsNil(err))
	l4b, err := BuildL4(identityState(), 8)
	qt.Assert(t, qt.IsNil(err))

	if diff := cmp.Diff(l4a, l4b, cmp.Comparer(coorEqual)); diff != "" {
		t.Fatalf("BuildL4 not deterministic across runs (-first +second):\n%s", diff)
	}
}

func coorEqual(a, b Coor) bool {
	if len(a) != len(b) {
		return false
	}
	for m := range a {
		if _, ok := b[m]; !ok {
			return false
		}
	}
	return true
}

func TestBuildL4MultipleRound4Degrees(t *testing.T) {
	l4, err := BuildL4(identityState(), 7, 8)
	if err != nil {
		t.Fatalf("BuildL4: %v", err)
	}
	for i, coord := range l4 {
		for m := range coord {
			if d := m.Degree(); d != 7 && d != 8 {
				t.Fatalf("state bit %d: monomial %v has degree %d, want 7 or 8", i, m, d)
			}
		}
	}
}
