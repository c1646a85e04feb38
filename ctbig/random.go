package ctbig

import (
	"encoding/binary"
	"fmt"
	"io"
)

// randomBits fills the low bitLength bits of zeroed from src. Limbs below
// the top active limb take eight little-endian bytes each; the top limb takes
// four bytes when at most 32 of its bits are used and eight otherwise, and is
// masked down to bitLength. Limbs past the active ones are not written, so
// the caller must pass them zeroed.
func randomBits(src io.Reader, zeroed []Limb, bitLength uint) error {
	if bitLength == 0 {
		return nil
	}
	active := int((bitLength + LimbBits - 1) / LimbBits)
	if active > len(zeroed) {
		return fmt.Errorf("%w: %d bits into %d limbs", ErrWidth, bitLength, len(zeroed))
	}
	partial := bitLength % LimbBits
	mask := ^Limb(0) >> ((LimbBits - partial) % LimbBits)

	var buf [8]byte
	for i := 0; i < active-1; i++ {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return fmt.Errorf("read random bits: %w", err)
		}
		zeroed[i] = Limb(binary.LittleEndian.Uint64(buf[:]))
	}

	buf = [8]byte{}
	top := buf[:]
	if partial > 0 && partial <= 32 {
		top = buf[:4]
	}
	if _, err := io.ReadFull(src, top); err != nil {
		return fmt.Errorf("read random bits: %w", err)
	}
	zeroed[active-1] = Limb(binary.LittleEndian.Uint64(buf[:])) & mask
	return nil
}

// RandomBits returns a Uint whose low bitLength bits are read from src and
// whose remaining bits are zero.
func RandomBits(src io.Reader, bitLength uint) (Uint, error) {
	var u Uint
	if err := randomBits(src, u.limbs[:], bitLength); err != nil {
		return Zero, err
	}
	return u, nil
}

// RandomNonZeroLimb reads one little-endian limb from src and forces its low
// bit, so the result is odd.
func RandomNonZeroLimb(src io.Reader) (NonZeroLimb, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return NonZeroLimb{}, fmt.Errorf("read random limb: %w", err)
	}
	return MustNonZero(Limb(binary.LittleEndian.Uint64(buf[:]) | 1)), nil
}
