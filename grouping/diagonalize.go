package grouping

import (
	"fmt"

	"github.com/katalvlaran/pauligroup/pauli"
)

// DiagonalizeWord rewrites a Pauli word into the Z measurement basis: every
// non-identity factor becomes Z on the same wire, identity factors stay
// identity. The rewrite preserves the word's support, so the diagonal form
// of X(0)⊗Y(2) is Z(0)⊗Z(2).
func DiagonalizeWord(w pauli.Word) pauli.Word {
	out := make(pauli.Word, len(w))
	for wire, f := range w {
		if f == pauli.I {
			out[wire] = pauli.I
			continue
		}
		out[wire] = pauli.Z
	}

	return out
}

// DiagonalizeGroup rewrites a qubit-wise commuting group of words into its
// shared Z measurement basis. Membership is verified first: within a qwc
// group, every wire is touched by at most one non-identity single-qubit
// basis, so replacing each non-identity factor by Z is a valid common
// eigenbasis rewrite. A pair that is not qubit-wise commuting fails with
// ErrNotQWC naming both words; no partial result is returned.
//
// Time complexity: O(M²·N) for the verification, O(M·N) for the rewrite.
func DiagonalizeGroup(group []pauli.Word) ([]pauli.Word, error) {
	vecs, err := encodeBatch(group, pauli.NewWireMap(group...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			ok, qwcErr := pauli.IsQWC(vecs[i], vecs[j])
			if qwcErr != nil {
				return nil, qwcErr
			}
			if !ok {
				return nil, fmt.Errorf("grouping: %v and %v: %w", group[i], group[j], ErrNotQWC)
			}
		}
	}

	out := make([]pauli.Word, len(group))
	for i, w := range group {
		out[i] = DiagonalizeWord(w)
	}

	return out, nil
}
