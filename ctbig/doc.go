// Package ctbig implements fixed-width unsigned integers whose comparisons
// run in constant time, together with a rejection sampler that draws values
// uniformly below a non-zero modulus.
//
// Integers are five 64-bit limbs stored little-limb-endian in a fixed array.
// Comparisons are built on a single ripple-borrow subtractor so that the
// instruction sequence never depends on limb values. Randomness comes from any
// io.Reader; see package source for deterministic and system streams.
package ctbig
