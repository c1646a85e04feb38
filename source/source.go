// Package source provides the byte streams consumed by the samplers in
// ctbig. Seeded streams are deterministic so that sampling runs can be
// replayed; System is backed by the operating system.
package source

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// ErrExhausted is returned by a Limited stream once its budget is spent.
var ErrExhausted = errors.New("source: stream exhausted")

// Kind names a stream construction.
type Kind string

const (
	ChaCha20 Kind = "chacha20"
	Shake256 Kind = "shake256"
	Keyed    Kind = "keyed"
	System   Kind = "system"
)

// ParseKind validates a stream name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case ChaCha20, Shake256, Keyed, System:
		return k, nil
	}
	return "", fmt.Errorf("unknown source kind %q", s)
}

// New opens a stream of the given kind. seed is ignored for System.
func New(kind Kind, seed uint64) (io.Reader, error) {
	switch kind {
	case ChaCha20:
		return NewChaCha20(seed)
	case Shake256:
		return NewShake256(SeedBytes(seed)), nil
	case Keyed:
		return NewKeyed(SeedBytes(seed))
	case System:
		return rand.Reader, nil
	}
	return nil, fmt.Errorf("unknown source kind %q", kind)
}

// SeedBytes is the little-endian encoding of seed.
func SeedBytes(seed uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, seed)
	return b
}

type chachaStream struct {
	c *chacha20.Cipher
}

// NewChaCha20 returns the ChaCha20 keystream keyed by seed in little-endian
// order followed by zero bytes, with an all-zero nonce.
func NewChaCha20(seed uint64) (io.Reader, error) {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("chacha20: %w", err)
	}
	return &chachaStream{c: c}, nil
}

func (s *chachaStream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.c.XORKeyStream(p, p)
	return len(p), nil
}

// NewShake256 returns the SHAKE256 output stream absorbing seed.
func NewShake256(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write(seed)
	return h
}

// NewKeyed returns lattigo's keyed PRNG for seed.
func NewKeyed(seed []byte) (io.Reader, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("keyed prng: %w", err)
	}
	return prng, nil
}

type limited struct {
	r io.Reader
	n int
}

// Limited returns a stream that yields at most n bytes of r and then fails
// with ErrExhausted.
func Limited(r io.Reader, n int) io.Reader {
	return &limited{r: r, n: n}
}

func (l *limited) Read(p []byte) (int, error) {
	if l.n <= 0 {
		return 0, ErrExhausted
	}
	if len(p) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= n
	return n, err
}
