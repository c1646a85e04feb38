package ctbig

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// FillPolyUniform sets every coefficient of out to a value drawn uniformly
// below the modulus of its level. Candidates are drawn at the bit length of
// each level modulus.
func FillPolyUniform(r *ring.Ring, src io.Reader, out *ring.Poly) error {
	if r == nil || out == nil {
		return fmt.Errorf("nil ring or polynomial")
	}
	levels := len(out.Coeffs)
	if levels == 0 {
		return fmt.Errorf("polynomial has no levels")
	}
	if len(r.Modulus) < levels {
		return fmt.Errorf("ring modulus vector shorter than polynomial levels")
	}
	for level := 0; level < levels; level++ {
		q, ok := NewNonZero(Limb(r.Modulus[level]))
		if !ok {
			return fmt.Errorf("zero modulus at level %d", level)
		}
		width := uint(bits.Len64(r.Modulus[level]))
		coeffs := out.Coeffs[level]
		for i := range coeffs {
			c, err := SampleLimbBelow(src, q, width)
			if err != nil {
				return fmt.Errorf("level %d coefficient %d: %w", level, i, err)
			}
			coeffs[i] = uint64(c)
		}
	}
	return nil
}
