package pauli

import (
	"sort"
	"strconv"
	"strings"
)

// Wires returns the wires the word mentions, in the default deterministic
// order (numeric labels first, ascending; then the rest, lexicographic).
//
// Time complexity: O(W log W) over W mentioned wires.
func (w Word) Wires() []Wire {
	out := make([]Wire, 0, len(w))
	for wire := range w {
		out = append(out, wire)
	}
	sortWires(out)

	return out
}

// IsIdentity reports whether the word is the identity operator, i.e. every
// mentioned factor is I (or nothing is mentioned at all).
func (w Word) IsIdentity() bool {
	for _, f := range w {
		if f != I {
			return false
		}
	}

	return true
}

// Equal reports whether two words denote the same operator. Equality is
// order-independent and ignores identity mentions: X(0)⊗I(5) equals X(0),
// and any two pure-identity words are equal regardless of the wires they
// idle on. This mirrors the encode/decode round trip, which never
// reproduces identity placement.
func (w Word) Equal(v Word) bool {
	for wire, f := range w {
		if f != I && v[wire] != f {
			return false
		}
	}
	for wire, f := range v {
		if f != I && w[wire] != f {
			return false
		}
	}

	return true
}

// Tensor returns the commutative tensor product of w and v as a new word.
// Both inputs are left untouched. When both mention the same wire, a
// non-identity factor wins over I; two differing non-identity factors on one
// wire do not form a Pauli word, and the later operand's factor is kept.
func (w Word) Tensor(v Word) Word {
	out := make(Word, len(w)+len(v))
	for wire, f := range w {
		out[wire] = f
	}
	for wire, f := range v {
		if f == I && out[wire] != I {
			continue
		}
		out[wire] = f
	}

	return out
}

// String renders the word as a ⊗-joined factor product in default wire
// order, e.g. "X(0)⊗Y(1)". A word mentioning no wires renders as "I".
func (w Word) String() string {
	if len(w) == 0 {
		return "I"
	}

	var sb strings.Builder
	for i, wire := range w.Wires() {
		if i > 0 {
			sb.WriteString("⊗")
		}
		sb.WriteString(w[wire].String())
		sb.WriteByte('(')
		sb.WriteString(string(wire))
		sb.WriteByte(')')
	}

	return sb.String()
}

// compareWires orders two wire labels: numeric labels first in ascending
// numeric order, then non-numeric labels in lexicographic order.
func compareWires(a, b Wire) int {
	na, aErr := strconv.Atoi(string(a))
	nb, bErr := strconv.Atoi(string(b))
	switch {
	case aErr == nil && bErr == nil:
		return na - nb
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(string(a), string(b))
	}
}

// sortWires sorts labels in-place into the default deterministic order.
func sortWires(wires []Wire) {
	sort.Slice(wires, func(i, j int) bool {
		return compareWires(wires[i], wires[j]) < 0
	})
}
