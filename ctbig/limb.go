package ctbig

import "math/bits"

// LimbBits is the width of a Limb.
const LimbBits = 64

// Limb is one 64-bit word of a multi-limb integer.
type Limb uint64

// Choice is a constant-time boolean. It only ever holds 0 or 1 and is kept
// as an integer so callers combine it with masks instead of branching on it.
type Choice uint8

const (
	no  Choice = 0
	yes Choice = 1
)

// Not returns the negation of c.
func (c Choice) Not() Choice { return c ^ 1 }

// And returns c & d.
func (c Choice) And(d Choice) Choice { return c & d }

// Or returns c | d.
func (c Choice) Or(d Choice) Choice { return c | d }

// Bool converts c to a native boolean. Call it only once the result is public.
func (c Choice) Bool() bool { return c == yes }

// choiceFromFlag reads the top bit of a borrow flag.
func choiceFromFlag(flag Limb) Choice {
	return Choice(flag >> (LimbBits - 1))
}

// BorrowingSub returns lhs - rhs - b mod 2^64, where b is the top bit of
// borrow, and the outgoing borrow flag: 0, or all ones when the subtraction
// wrapped.
//
// bits.Sub64 is an intrinsic whose execution time does not depend on its
// inputs; the flag is widened by negation, never by a comparison.
func (lhs Limb) BorrowingSub(rhs, borrow Limb) (Limb, Limb) {
	d, b := bits.Sub64(uint64(lhs), uint64(rhs), uint64(borrow>>(LimbBits-1)))
	return Limb(d), Limb(-b)
}

// IsZero reports whether l is zero.
func (l Limb) IsZero() Choice {
	return isZeroWord(uint64(l))
}

// Equal reports whether l == rhs.
func (l Limb) Equal(rhs Limb) Choice {
	return isZeroWord(uint64(l ^ rhs))
}

// isZeroWord is 1 iff w == 0: w|-w has its top bit set for every non-zero w.
func isZeroWord(w uint64) Choice {
	return Choice((w|-w)>>(LimbBits-1)) ^ 1
}
