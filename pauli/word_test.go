package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pauligroup/pauli"
)

// TestWord_WiresDefaultOrder verifies the deterministic default ordering:
// numeric labels ascending first, then non-numeric labels lexicographic.
func TestWord_WiresDefaultOrder(t *testing.T) {
	w := pauli.Word{"b": pauli.Z, "10": pauli.X, "2": pauli.Y, "a": pauli.X}

	assert.Equal(t, []pauli.Wire{"2", "10", "a", "b"}, w.Wires(),
		"numeric wires sort numerically before lexicographic labels")
}

// TestWord_EqualOrderIndependent verifies equality ignores construction order.
func TestWord_EqualOrderIndependent(t *testing.T) {
	w1 := pauli.Word{"0": pauli.X, "1": pauli.Y}
	w2 := pauli.Word{"1": pauli.Y, "0": pauli.X}
	w3 := pauli.Word{"1": pauli.X, "2": pauli.Z}

	assert.True(t, w1.Equal(w2), "same factors, any order")
	assert.False(t, w1.Equal(w3), "different factors must not be equal")
}

// TestWord_EqualIgnoresIdentityMentions verifies identity factors do not
// distinguish operators: X(0)⊗I(5) equals X(0), and pure identities are all
// equal regardless of the wires they idle on.
func TestWord_EqualIgnoresIdentityMentions(t *testing.T) {
	assert.True(t,
		pauli.Word{"0": pauli.X, "5": pauli.I}.Equal(pauli.Word{"0": pauli.X}),
		"identity mention must not break equality")
	assert.True(t,
		pauli.Word{"0": pauli.I}.Equal(pauli.Word{"7": pauli.I}),
		"pure identities are the same operator")
	assert.True(t,
		pauli.Word{"0": pauli.I}.Equal(pauli.Word{}),
		"identity equals the empty word")
	assert.False(t,
		pauli.Word{"0": pauli.I}.Equal(pauli.Word{"0": pauli.Z}),
		"identity differs from any non-identity word")
}

// TestWord_Tensor verifies the commutative tensor product keeps both
// operands intact and lets non-identity factors win over identity mentions.
func TestWord_Tensor(t *testing.T) {
	w1 := pauli.Word{"0": pauli.X}
	w2 := pauli.Word{"1": pauli.Y, "0": pauli.I}

	got := w1.Tensor(w2)
	assert.True(t, got.Equal(pauli.Word{"0": pauli.X, "1": pauli.Y}), "X(0)⊗Y(1)")
	assert.Equal(t, pauli.Word{"0": pauli.X}, w1, "receiver untouched")
	assert.Equal(t, pauli.Word{"1": pauli.Y, "0": pauli.I}, w2, "argument untouched")
}

// TestWord_IsIdentity covers the empty word, identity mentions and
// non-identity factors.
func TestWord_IsIdentity(t *testing.T) {
	assert.True(t, pauli.Word{}.IsIdentity())
	assert.True(t, pauli.Word{"0": pauli.I, "7": pauli.I}.IsIdentity())
	assert.False(t, pauli.Word{"0": pauli.I, "7": pauli.X}.IsIdentity())
}

// TestWord_String verifies the rendering is deterministic and uses the
// default wire order.
func TestWord_String(t *testing.T) {
	assert.Equal(t, "I", pauli.Word{}.String())
	assert.Equal(t, "X(0)⊗Y(1)", pauli.Word{"1": pauli.Y, "0": pauli.X}.String())
	assert.Equal(t, "I(0)⊗Z(q)", pauli.Word{"q": pauli.Z, "0": pauli.I}.String())
}

// TestNewWireMap_UnionAcrossBatch verifies the map covers the union of all
// mentioned wires, indexed in default order, identity mentions included.
func TestNewWireMap_UnionAcrossBatch(t *testing.T) {
	words := []pauli.Word{
		{"1": pauli.X},
		{"0": pauli.I},
		{"b": pauli.Z, "1": pauli.Y},
	}

	m := pauli.NewWireMap(words...)
	assert.Equal(t, pauli.WireMap{"0": 0, "1": 1, "b": 2}, m,
		"sorted union of every mentioned wire")
	assert.Equal(t, 3, m.Len())
}

// TestNewWireMap_Empty verifies an empty batch produces an empty map.
func TestNewWireMap_Empty(t *testing.T) {
	assert.Equal(t, 0, pauli.NewWireMap().Len())
}
