package pauli

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Encode converts a word into its binary symplectic vector against this map.
// For each mentioned wire the factor's X-bit lands at the wire's index i and
// the Z-bit at i+N; unmentioned wires stay (0,0). Every wire the word
// mentions must be present in the map, identity factors included — a map
// narrower than the word cannot represent it.
//
// Time complexity: O(N).
func (m WireMap) Encode(w Word) (BinaryVector, error) {
	n := len(m)
	vec := make(BinaryVector, 2*n)
	for wire, f := range w {
		idx, ok := m[wire]
		if !ok {
			return nil, fmt.Errorf("pauli: word mentions wire %q: %w", wire, ErrUnknownWire)
		}
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("pauli: wire %q maps to index %d outside 0..%d: %w",
				wire, idx, n-1, ErrBadWireMap)
		}
		vec[idx] = f.xBit()
		vec[idx+n] = f.zBit()
	}

	return vec, nil
}

// Decode converts a binary symplectic vector back into a word against this
// map: bit pair (0,0) is omitted, (1,0) decodes to X, (0,1) to Z and (1,1)
// to Y. The all-zero vector decodes to the identity word, which mentions no
// wires — so Decode(Encode(w)) reproduces w's non-identity factors exactly.
//
// Time complexity: O(N).
func (m WireMap) Decode(v BinaryVector) (Word, error) {
	n := len(m)
	if len(v) != 2*n {
		return nil, fmt.Errorf("pauli: vector length %d, want %d for %d wires: %w",
			len(v), 2*n, n, ErrVectorLength)
	}
	if err := checkBinary(v); err != nil {
		return nil, err
	}
	wires, err := m.ordered()
	if err != nil {
		return nil, err
	}

	w := make(Word)
	for i := 0; i < n; i++ {
		switch {
		case v[i] == 1 && v[i+n] == 0:
			w[wires[i]] = X
		case v[i] == 0 && v[i+n] == 1:
			w[wires[i]] = Z
		case v[i] == 1 && v[i+n] == 1:
			w[wires[i]] = Y
		}
	}

	return w, nil
}

// BinaryMatrix encodes a whole batch of words into one 2N×M matrix, one
// column per word, all against the same shared wire map. A nil map derives
// NewWireMap(words...). Returns a nil matrix (and no error) when the batch
// is empty or touches no wires — gonum cannot allocate zero-sized matrices,
// and there is nothing to compare in either case.
//
// Time complexity: O(N·M).
func BinaryMatrix(words []Word, m WireMap) (*mat.Dense, error) {
	if m == nil {
		m = NewWireMap(words...)
	}
	rows, cols := 2*m.Len(), len(words)
	if rows == 0 || cols == 0 {
		return nil, nil
	}

	out := mat.NewDense(rows, cols, nil)
	for j, w := range words {
		vec, err := m.Encode(w)
		if err != nil {
			return nil, fmt.Errorf("pauli: encoding word %d (%v): %w", j, w, err)
		}
		out.SetCol(j, vec)
	}

	return out, nil
}

// checkBinary rejects vector entries outside {0, 1}.
func checkBinary(v BinaryVector) error {
	for i, b := range v {
		if b != 0 && b != 1 {
			return fmt.Errorf("pauli: entry %g at index %d: %w", b, i, ErrNotBinary)
		}
	}

	return nil
}
