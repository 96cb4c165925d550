// Package pauli defines core types and sentinel errors for Pauli words,
// wire maps and binary symplectic vectors.
package pauli

import "errors"

// Sentinel errors for encoding, decoding and relation evaluation.
var (
	// ErrUnknownWire indicates a word mentions a wire absent from the supplied WireMap.
	ErrUnknownWire = errors.New("pauli: wire not present in wire map")

	// ErrBadWireMap indicates a supplied WireMap is not a bijection onto 0..N-1.
	ErrBadWireMap = errors.New("pauli: wire map is not a bijection onto 0..N-1")

	// ErrVectorLength indicates vector lengths differ, are odd, or do not match the map.
	ErrVectorLength = errors.New("pauli: binary vector has wrong length")

	// ErrNotBinary indicates a vector entry outside {0, 1}.
	ErrNotBinary = errors.New("pauli: vector entry is not 0 or 1")
)

// Wire labels a qubit/register location. Labels are arbitrary tokens;
// numeric labels ("0", "12") order numerically before non-numeric labels,
// which order lexicographically. That ordering fixes the default wire→index
// assignment of a batch, so groupings are reproducible run to run.
type Wire string

// Factor is a single-qubit Pauli operator, including the identity.
type Factor byte

const (
	// I is the single-qubit identity.
	I Factor = iota
	// X is the Pauli-X operator.
	X
	// Y is the Pauli-Y operator.
	Y
	// Z is the Pauli-Z operator.
	Z
)

// String returns the conventional one-letter name of the factor.
func (f Factor) String() string {
	switch f {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "I"
	}
}

// xBit reports the X component of the factor in the symplectic encoding.
func (f Factor) xBit() float64 {
	if f == X || f == Y {
		return 1
	}

	return 0
}

// zBit reports the Z component of the factor in the symplectic encoding.
func (f Factor) zBit() float64 {
	if f == Z || f == Y {
		return 1
	}

	return 0
}

// Word is a Pauli word: a commutative tensor product of single-qubit factors,
// keyed by wire. Wires not present act as identity. Mentioning a wire with
// factor I records the wire in the word's support without changing the
// operator — identity observables widen the wire union of a batch this way.
//
// A Word literal reads close to the operator it denotes:
//
//	pauli.Word{"0": pauli.X, "1": pauli.Y} // X(0)⊗Y(1)
type Word map[Wire]Factor

// WireMap is a bijection from wire labels to vector indices 0..N-1. One map
// is fixed per batch of words being compared; encoding each word against its
// own local wires is what this type exists to prevent.
type WireMap map[Wire]int

// BinaryVector is a length-2N vector over GF(2), stored as 0/1 float64 values
// so it slots directly into gonum matrices: index i is the X-bit and index
// i+N the Z-bit of wire i. The all-zero vector denotes the identity.
type BinaryVector []float64

// IsZero reports whether v is the all-zero (identity) vector.
func (v BinaryVector) IsZero() bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}

	return true
}
