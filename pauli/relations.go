package pauli

import "fmt"

// IsQWC reports whether two binary symplectic vectors are qubit-wise
// commuting: on every wire the bit pairs are equal, or at least one side is
// identity (0,0). Qubit-wise commutation is stricter than global
// commutation — it is the condition under which one shared single-qubit
// measurement basis exists per wire.
//
// Both relations on vectors are symmetric; IsQWC is also reflexive.
//
// Time complexity: O(N).
func IsQWC(u, v BinaryVector) (bool, error) {
	n, err := checkPair(u, v)
	if err != nil {
		return false, err
	}

	for i := 0; i < n; i++ {
		if (u[i] == 0 && u[i+n] == 0) || (v[i] == 0 && v[i+n] == 0) {
			continue
		}
		if u[i] != v[i] || u[i+n] != v[i+n] {
			return false, nil
		}
	}

	return true, nil
}

// Commute reports whether two binary symplectic vectors represent commuting
// Pauli words: the symplectic inner product Σ(x1·z2 + z1·x2) vanishes
// mod 2. Symmetric and reflexive.
//
// Time complexity: O(N).
func Commute(u, v BinaryVector) (bool, error) {
	n, err := checkPair(u, v)
	if err != nil {
		return false, err
	}

	sum := 0
	for i := 0; i < n; i++ {
		sum += int(u[i])*int(v[i+n]) + int(u[i+n])*int(v[i])
	}

	return sum%2 == 0, nil
}

// Anticommute reports whether two binary symplectic vectors represent
// anticommuting Pauli words. The identity overrides the raw symplectic
// formula: any pair involving an all-zero vector never anticommutes, the
// identity included against itself. The override is applied by direct case
// analysis, not derived from Commute.
//
// Time complexity: O(N).
func Anticommute(u, v BinaryVector) (bool, error) {
	if _, err := checkPair(u, v); err != nil {
		return false, err
	}
	if u.IsZero() || v.IsZero() {
		return false, nil
	}

	commute, err := Commute(u, v)
	if err != nil {
		return false, err
	}

	return !commute, nil
}

// checkPair validates a vector pair for relation evaluation and returns N,
// the shared half-length.
func checkPair(u, v BinaryVector) (int, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("pauli: vector lengths %d and %d differ: %w",
			len(u), len(v), ErrVectorLength)
	}
	if len(u)%2 != 0 {
		return 0, fmt.Errorf("pauli: vector length %d is odd: %w", len(u), ErrVectorLength)
	}
	if err := checkBinary(u); err != nil {
		return 0, err
	}
	if err := checkBinary(v); err != nil {
		return 0, err
	}

	return len(u) / 2, nil
}
