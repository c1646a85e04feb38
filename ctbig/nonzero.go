package ctbig

// Zeroer is implemented by values that can test themselves for zero.
type Zeroer interface {
	IsZero() Choice
}

// NonZero holds a value that is known not to be zero. The only way to build
// one is NewNonZero (or MustNonZero), so holders may skip the check.
type NonZero[T Zeroer] struct {
	v T
}

type (
	// NonZeroUint is a non-zero Uint, used as a modulus.
	NonZeroUint = NonZero[Uint]
	// NonZeroLimb is a non-zero Limb.
	NonZeroLimb = NonZero[Limb]
)

// NewNonZero wraps v, reporting false when v is zero.
func NewNonZero[T Zeroer](v T) (NonZero[T], bool) {
	if v.IsZero().Bool() {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// MustNonZero is like NewNonZero but panics on zero.
func MustNonZero[T Zeroer](v T) NonZero[T] {
	nz, ok := NewNonZero(v)
	if !ok {
		panic("ctbig: zero value passed to MustNonZero")
	}
	return nz
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T { return n.v }
