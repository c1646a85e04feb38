package ctbig

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

const (
	// Limbs is the number of limbs in a Uint.
	Limbs = 5
	// Bits is the storage width of a Uint.
	Bits = Limbs * LimbBits
	// Bytes is the big-endian encoding size of a Uint.
	Bytes = Bits / 8
)

// ErrWidth is returned when a value does not fit in a Uint.
var ErrWidth = errors.New("ctbig: value exceeds fixed width")

// Uint is a fixed-width unsigned integer; limb 0 is least significant.
// The zero value is 0.
type Uint struct {
	limbs [Limbs]Limb
}

var (
	// Zero is the all-zero Uint.
	Zero = Uint{}
	// Max is 2^Bits - 1.
	Max = Uint{limbs: [Limbs]Limb{^Limb(0), ^Limb(0), ^Limb(0), ^Limb(0), ^Limb(0)}}
)

// NewUint builds a Uint from its limbs.
func NewUint(limbs [Limbs]Limb) Uint {
	return Uint{limbs: limbs}
}

// FromUint64 returns v as a Uint.
func FromUint64(v uint64) Uint {
	var u Uint
	u.limbs[0] = Limb(v)
	return u
}

// FromLimbs copies a little-endian limb slice into a Uint.
func FromLimbs(limbs []Limb) (Uint, error) {
	var u Uint
	if len(limbs) > Limbs {
		return u, fmt.Errorf("%w: %d limbs", ErrWidth, len(limbs))
	}
	copy(u.limbs[:], limbs)
	return u, nil
}

// SetBytes interprets b as a big-endian integer.
func SetBytes(b []byte) (Uint, error) {
	var u Uint
	for len(b) > Bytes {
		if b[0] != 0 {
			return u, fmt.Errorf("%w: %d bytes", ErrWidth, len(b))
		}
		b = b[1:]
	}
	var buf [Bytes]byte
	copy(buf[Bytes-len(b):], b)
	for i := 0; i < Limbs; i++ {
		off := Bytes - 8*(i+1)
		u.limbs[i] = Limb(binary.BigEndian.Uint64(buf[off : off+8]))
	}
	return u, nil
}

// FromHex parses a big-endian hex string, with or without a 0x prefix.
func FromHex(s string) (Uint, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Uint{}, fmt.Errorf("parse hex: %w", err)
	}
	return SetBytes(b)
}

// Bytes returns the fixed-size big-endian encoding of u.
func (u Uint) Bytes() [Bytes]byte {
	var out [Bytes]byte
	for i := 0; i < Limbs; i++ {
		off := Bytes - 8*(i+1)
		binary.BigEndian.PutUint64(out[off:off+8], uint64(u.limbs[i]))
	}
	return out
}

// Hex returns the full-width big-endian hex encoding of u with a 0x prefix.
func (u Uint) Hex() string {
	b := u.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

func (u Uint) String() string { return u.Hex() }

// Limbs returns a copy of the limbs of u.
func (u Uint) Limbs() [Limbs]Limb { return u.limbs }

// Limb returns limb i of u.
func (u Uint) Limb(i int) Limb { return u.limbs[i] }

// BigInt converts u to a big.Int. The conversion is not constant time.
func (u Uint) BigInt() *big.Int {
	b := u.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// BorrowingSub computes u - rhs - borrow limb by limb, threading the borrow
// flag from the least significant limb upward. Every limb is processed; the
// final flag is set iff u < rhs (for a zero incoming borrow).
func (u Uint) BorrowingSub(rhs Uint, borrow Limb) (Uint, Limb) {
	var out Uint
	for i := 0; i < Limbs; i++ {
		out.limbs[i], borrow = u.limbs[i].BorrowingSub(rhs.limbs[i], borrow)
	}
	return out, borrow
}

// Sub returns u - rhs mod 2^Bits.
func (u Uint) Sub(rhs Uint) Uint {
	d, _ := u.BorrowingSub(rhs, 0)
	return d
}

// Lt reports whether u < rhs.
func (u Uint) Lt(rhs Uint) Choice {
	_, borrow := u.BorrowingSub(rhs, 0)
	return choiceFromFlag(borrow)
}

// Gt reports whether u > rhs.
func (u Uint) Gt(rhs Uint) Choice {
	return rhs.Lt(u)
}

// Equal reports whether u == rhs.
func (u Uint) Equal(rhs Uint) Choice {
	var acc Limb
	for i := 0; i < Limbs; i++ {
		acc |= u.limbs[i] ^ rhs.limbs[i]
	}
	return isZeroWord(uint64(acc))
}

// IsZero reports whether u == 0.
func (u Uint) IsZero() Choice {
	return u.Equal(Zero)
}

// BitLen returns the bit length of u. It is variable time and meant for
// public values such as a modulus.
func (u Uint) BitLen() int {
	for i := Limbs - 1; i >= 0; i-- {
		if u.limbs[i] != 0 {
			return i*LimbBits + bits.Len64(uint64(u.limbs[i]))
		}
	}
	return 0
}

// LessThan is a constant-time a < b whose result is converted to bool only
// after the full comparison.
func LessThan(a, b Uint) bool { return a.Lt(b).Bool() }

// Equals is a constant-time a == b.
func Equals(a, b Uint) bool { return a.Equal(b).Bool() }
