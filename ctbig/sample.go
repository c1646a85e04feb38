package ctbig

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"time"

	"ctsample/prof"
)

// MaxAttempts bounds the rejection loop. Every draw at a width that covers
// the modulus is accepted with probability above 1/2, so reaching the bound
// means the source is broken.
const MaxAttempts uint64 = math.MaxUint32

var (
	// ErrZeroModulus is returned when the zero value of NonZero is used
	// instead of one built by NewNonZero.
	ErrZeroModulus = errors.New("ctbig: zero modulus")
	// ErrRetryCeiling is the panic value raised when MaxAttempts draws were
	// all rejected.
	ErrRetryCeiling = errors.New("ctbig: rejection sampling exceeded retry ceiling")
)

// SampleBelow returns a value drawn uniformly from [0, modulus). Candidates
// are drawn at the full storage width and compared in constant time; a
// rejected candidate is discarded and redrawn. Errors from src are returned
// as is, wrapped.
func SampleBelow(src io.Reader, modulus NonZeroUint) (Uint, error) {
	return SampleBelowN(src, modulus, Bits)
}

// SampleBelowN is SampleBelow with an explicit draw width. nBits must cover
// the bit length of the modulus, which is treated as public.
func SampleBelowN(src io.Reader, modulus NonZeroUint, nBits uint) (Uint, error) {
	m := modulus.Get()
	if m.IsZero().Bool() {
		return Zero, ErrZeroModulus
	}
	if mBits := m.BitLen(); nBits > Bits || int(nBits) < mBits {
		return Zero, fmt.Errorf("%w: draw width %d for a %d-bit modulus", ErrWidth, nBits, mBits)
	}
	return sampleBelow(src, m, nBits, MaxAttempts)
}

func sampleBelow(src io.Reader, m Uint, nBits uint, ceiling uint64) (Uint, error) {
	defer prof.Track(time.Now(), "ctbig.SampleBelow")
	var n Uint
	for attempt := uint64(1); attempt <= ceiling; attempt++ {
		if err := randomBits(src, n.limbs[:], nBits); err != nil {
			return Zero, err
		}
		if n.Lt(m).Bool() {
			prof.RecordAttempts("ctbig.SampleBelow", attempt)
			return n, nil
		}
	}
	panic(fmt.Errorf("%w: %d attempts", ErrRetryCeiling, ceiling))
}

// SampleLimbBelow returns a limb drawn uniformly from [0, modulus) using
// nBits-wide candidates. nBits must lie in [bits.Len64(modulus), 64].
func SampleLimbBelow(src io.Reader, modulus NonZeroLimb, nBits uint) (Limb, error) {
	m := modulus.Get()
	if m.IsZero().Bool() {
		return 0, ErrZeroModulus
	}
	if nBits > LimbBits || int(nBits) < bits.Len64(uint64(m)) {
		return 0, fmt.Errorf("%w: draw width %d for modulus %#x", ErrWidth, nBits, uint64(m))
	}
	return sampleLimbBelow(src, m, nBits, MaxAttempts)
}

func sampleLimbBelow(src io.Reader, m Limb, nBits uint, ceiling uint64) (Limb, error) {
	defer prof.Track(time.Now(), "ctbig.SampleLimbBelow")
	var n [1]Limb
	for attempt := uint64(1); attempt <= ceiling; attempt++ {
		if err := randomBits(src, n[:], nBits); err != nil {
			return 0, err
		}
		if _, borrow := n[0].BorrowingSub(m, 0); choiceFromFlag(borrow).Bool() {
			prof.RecordAttempts("ctbig.SampleLimbBelow", attempt)
			return n[0], nil
		}
	}
	panic(fmt.Errorf("%w: %d attempts", ErrRetryCeiling, ceiling))
}
