package ctbig

import (
	"math/big"
	"math/rand"
	"testing"
)

var two64 = new(big.Int).Lsh(big.NewInt(1), 64)

func checkLimbSub(t *testing.T, a, b Limb, c uint64) {
	t.Helper()
	flag := Limb(0)
	if c == 1 {
		flag = ^Limb(0)
	}
	d, borrow := a.BorrowingSub(b, flag)

	want := new(big.Int).SetUint64(uint64(a))
	want.Sub(want, new(big.Int).SetUint64(uint64(b)))
	want.Sub(want, new(big.Int).SetUint64(c))
	wantBorrow := want.Sign() < 0
	want.Mod(want, two64)

	if uint64(d) != want.Uint64() {
		t.Fatalf("%#x - %#x - %d: got %#x want %#x", uint64(a), uint64(b), c, uint64(d), want.Uint64())
	}
	if wantBorrow && borrow != ^Limb(0) {
		t.Fatalf("%#x - %#x - %d: borrow flag %#x, want all ones", uint64(a), uint64(b), c, uint64(borrow))
	}
	if !wantBorrow && borrow != 0 {
		t.Fatalf("%#x - %#x - %d: borrow flag %#x, want 0", uint64(a), uint64(b), c, uint64(borrow))
	}
}

func TestLimbBorrowingSubEdges(t *testing.T) {
	edges := []Limb{0, 1, 2, 1 << 63, (1 << 63) - 1, ^Limb(0) - 1, ^Limb(0)}
	for _, a := range edges {
		for _, b := range edges {
			for c := uint64(0); c <= 1; c++ {
				checkLimbSub(t, a, b, c)
			}
		}
	}
}

func TestLimbBorrowingSubRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		checkLimbSub(t, Limb(rng.Uint64()), Limb(rng.Uint64()), uint64(i&1))
	}
}

func TestLimbBorrowReadsTopBitOnly(t *testing.T) {
	a, b := Limb(5), Limb(3)
	d1, f1 := a.BorrowingSub(b, 1<<63)
	d2, f2 := a.BorrowingSub(b, ^Limb(0))
	if d1 != 1 || d2 != 1 || f1 != 0 || f2 != 0 {
		t.Fatalf("top-bit and all-ones flags disagree: (%d,%#x) (%d,%#x)", d1, f1, d2, f2)
	}
	// Low bits alone are not a borrow.
	if d, _ := a.BorrowingSub(b, 1); d != 2 {
		t.Fatalf("flag without top bit was consumed: got %d", d)
	}
}

func TestLimbEqualAndIsZero(t *testing.T) {
	cases := []struct {
		a, b Limb
		eq   bool
	}{
		{0, 0, true},
		{1, 0, false},
		{^Limb(0), ^Limb(0), true},
		{1 << 63, 0, false},
		{42, 43, false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b).Bool(); got != c.eq {
			t.Fatalf("Equal(%#x,%#x)=%v want %v", uint64(c.a), uint64(c.b), got, c.eq)
		}
	}
	if !Limb(0).IsZero().Bool() || Limb(1<<63).IsZero().Bool() {
		t.Fatal("IsZero wrong")
	}
}

func TestChoiceOps(t *testing.T) {
	if yes.Not() != no || no.Not() != yes {
		t.Fatal("Not")
	}
	if yes.And(no) != no || yes.And(yes) != yes {
		t.Fatal("And")
	}
	if no.Or(no) != no || no.Or(yes) != yes {
		t.Fatal("Or")
	}
	if choiceFromFlag(^Limb(0)) != yes || choiceFromFlag(1<<63) != yes || choiceFromFlag(0) != no {
		t.Fatal("choiceFromFlag")
	}
}
