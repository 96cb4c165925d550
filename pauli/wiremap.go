package pauli

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// NewWireMap builds the shared wire→index bijection for a batch of words:
// the union of every wire mentioned by any word, in the default deterministic
// order, indexed 0..N-1. One map per batch is mandatory — it is what makes
// every encoded vector in the batch the same length.
//
// Time complexity: O(W log W) over W distinct wires.
func NewWireMap(words ...Word) WireMap {
	union := redblacktree.NewWith(func(a, b interface{}) int {
		return compareWires(a.(Wire), b.(Wire))
	})
	for _, w := range words {
		for wire := range w {
			union.Put(wire, struct{}{})
		}
	}

	m := make(WireMap, union.Size())
	it := union.Iterator()
	for i := 0; it.Next(); i++ {
		m[it.Key().(Wire)] = i
	}

	return m
}

// Len returns N, the number of wires the map indexes.
func (m WireMap) Len() int { return len(m) }

// ordered inverts the map into an index→wire slice, validating that the map
// is a bijection onto 0..N-1.
func (m WireMap) ordered() ([]Wire, error) {
	wires := make([]Wire, len(m))
	seen := make([]bool, len(m))
	for wire, idx := range m {
		if idx < 0 || idx >= len(m) {
			return nil, fmt.Errorf("pauli: wire %q maps to index %d outside 0..%d: %w",
				wire, idx, len(m)-1, ErrBadWireMap)
		}
		if seen[idx] {
			return nil, fmt.Errorf("pauli: index %d assigned to more than one wire: %w",
				idx, ErrBadWireMap)
		}
		seen[idx] = true
		wires[idx] = wire
	}

	return wires, nil
}
