package trail

import (
	"strings"
	"testing"

	"github.com/baudrin-research/asconcube/internal/anf"
)

func TestTableSizes(t *testing.T) {
	if got, want := len(ListProducts), 22; got != want {
		t.Errorf("len(ListProducts) = %d, want %d", got, want)
	}
	if got, want := len(ListTrails), 121; got != want {
		t.Errorf("len(ListTrails) = %d, want %d", got, want)
	}
}

func TestListTrailsReferenceKnownProducts(t *testing.T) {
	known := make(map[Product]bool, len(ListProducts))
	for _, p := range ListProducts {
		known[p] = true
	}
	for i, tr := range ListTrails {
		if !known[tr.First] {
			t.Errorf("trail %d: First product %+v not in ListProducts", i, tr.First)
		}
		if !known[tr.Second] {
			t.Errorf("trail %d: Second product %+v not in ListProducts", i, tr.Second)
		}
	}
}

func polyMapFromMasks(masks ...uint64) anf.PolyMap {
	pm := make(anf.PolyMap, len(masks))
	for _, mask := range masks {
		var m anf.Monomial
		m[anf.BankV] = mask
		pm[mask] = anf.NewCoor(m)
	}
	return pm
}

func TestMulS5KeepsOnlyDegree16(t *testing.T) {
	// 8-bit mask and its disjoint 8-bit complement within 16 bits union to
	// degree 16; any other pairing must be dropped.
	c1 := polyMapFromMasks(0x00FF)
	c2 := polyMapFromMasks(0xFF00, 0x0F0F)

	prod := MulS5(c1, c2)
	if _, ok := prod[0xFFFF]; !ok {
		t.Fatalf("expected degree-16 union 0xFFFF present, got %v", prod)
	}
	if _, ok := prod[0x0FFF]; ok {
		t.Errorf("degree-12 union 0x0FFF should have been filtered out")
	}
	if len(prod) != 1 {
		t.Errorf("MulS5 kept %d entries, want 1", len(prod))
	}
}

func TestMulS6FindsComplement(t *testing.T) {
	const target = 0xFFFFFFFF // degree 32

	lowMask := uint64(0x0000FFFF)
	highMask := uint64(0xFFFF0000)

	c1 := polyMapFromMasks(lowMask)
	c2 := polyMapFromMasks(highMask)

	got := MulS6(c1, c2, target)
	if len(got) != 1 {
		t.Fatalf("MulS6 result has %d monomials, want 1", len(got))
	}
	for m := range got {
		if m[anf.BankV] != target {
			t.Errorf("result monomial mask = %#x, want %#x", m[anf.BankV], target)
		}
	}
}

func TestMulS6NoComplementIsEmpty(t *testing.T) {
	c1 := polyMapFromMasks(0x0000FFFF)
	c2 := polyMapFromMasks(0x00FF00FF) // does not complement c1 w.r.t. target below

	got := MulS6(c1, c2, 0xFFFFFFFF)
	if len(got) != 0 {
		t.Errorf("MulS6 with no matching complement = %v, want empty", got)
	}
}

func TestSerializeConstantAloneIsOne(t *testing.T) {
	got := Serialize(anf.NewCoor(anf.One))
	if got != "1" {
		t.Errorf("Serialize(constant only) = %q, want %q", got, "1")
	}
}

func TestSerializeConstantSortsBeforeOtherTerms(t *testing.T) {
	a0 := anf.Monomial{}
	a0[anf.BankA] = uint64(1) << 63 // a0
	withTerm := anf.NewCoor(a0, anf.One)

	got := Serialize(withTerm)
	want := "1 + a0"
	if got != want {
		t.Errorf("Serialize(1 + a0) = %q, want %q (constant monomial sorts first)", got, want)
	}
}

func TestSerializeNoConstant(t *testing.T) {
	a0 := anf.Monomial{}
	a0[anf.BankA] = uint64(1) << 63 // a0
	a1 := anf.Monomial{}
	a1[anf.BankA] = uint64(1) << 62 // a1

	got := Serialize(anf.NewCoor(a0, a1))
	if !strings.Contains(got, "a0") || !strings.Contains(got, "a1") || !strings.Contains(got, " + ") {
		t.Errorf("Serialize(a0,a1) = %q, want both terms joined by \" + \"", got)
	}
}

func TestSerializeEmptyIsZero(t *testing.T) {
	if got := Serialize(anf.NewCoor()); got != "0" {
		t.Errorf("Serialize(empty) = %q, want %q", got, "0")
	}
}

func compactPolyMapFromMasks(degree7, degree8 []uint64) anf.CompactPolyMap {
	pm := make(anf.CompactPolyMap)
	for _, mask := range degree7 {
		var c anf.CompactCoeff
		c[anf.BIndex] = 1 // tag with a distinguishable non-constant b_63 term
		pm[mask] = c
	}
	for _, mask := range degree8 {
		var c anf.CompactCoeff
		c[anf.ConstIndex] = 1 // degree-8 monomials carry the trivial coefficient 1
		pm[mask] = c
	}
	return pm
}

func TestMulS5CompactSelectsDegree7Coefficient(t *testing.T) {
	const deg7 = 0b1111111        // 7 bits set
	const deg8 = 0b11111111 << 7  // 8 bits set, disjoint from deg7

	c1 := compactPolyMapFromMasks([]uint64{deg7}, nil)
	c2 := compactPolyMapFromMasks(nil, []uint64{deg8})

	prod := MulS5Compact(c1, c2)
	tmp := deg7 | deg8
	got, ok := prod[tmp]
	if !ok {
		t.Fatalf("MulS5Compact did not produce an entry for %#x", tmp)
	}
	if got[anf.BIndex] != 1 {
		t.Errorf("expected the degree-7 side's coefficient (b_63) to be selected, got %v", got)
	}
}

func TestMulS6CompactComplementAndCovering(t *testing.T) {
	const target = 0xFFFFFFFF

	lowMask := uint64(0x00007FFF) // degree 15
	highMask := uint64(0xFFFF8000)

	c1 := make(anf.CompactPolyMap)
	var coeff1 anf.CompactCoeff
	coeff1[anf.CIndex] = 1
	c1[lowMask] = coeff1

	c2 := make(anf.CompactPolyMap)
	var coeff2 anf.CompactCoeff
	coeff2[anf.ConstIndex] = 1
	c2[highMask] = coeff2

	got := MulS6Compact(c1, c2, target)
	if got[anf.CIndex] != 1 {
		t.Errorf("expected subleading side's coefficient to be carried through, got %v", got)
	}
}

func TestSerializeCompactOrdersConstBCThenBThenC(t *testing.T) {
	var c anf.CompactCoeff
	c[anf.ConstIndex] = 1
	c[anf.BCIndex] = uint64(1) << 63 // b0*c0
	c[anf.BIndex] = uint64(1) << 62  // b1
	c[anf.CIndex] = uint64(1) << 61  // c2

	got := SerializeCompact(c)
	want := "1 + b0*c0 + b1 + c2"
	if got != want {
		t.Errorf("SerializeCompact = %q, want %q", got, want)
	}
}

func TestSerializeCompactEmptyIsZero(t *testing.T) {
	if got := SerializeCompact(anf.CompactCoeff{}); got != "0" {
		t.Errorf("SerializeCompact(empty) = %q, want %q", got, "0")
	}
}
