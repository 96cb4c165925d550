package grouping

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pauligroup/pauli"
)

// ComplementMatrix builds the M×M incompatibility adjacency matrix for a
// batch of words under the chosen relation: entry (i,j)=1 iff the relation
// is false for the pair, so an edge marks two observables that must not
// share a group. The diagonal is always zero.
//
// All words are encoded against one shared wire map covering the union of
// wires across the entire batch. Every pair is evaluated directly — in
// particular the anticommuting identity table (distinct identity operators
// never anticommute, hence are mutually incompatible) falls out of the
// relation itself, not out of any derivation from the commuting case.
//
// Returns a nil matrix (and no error) for an empty batch; a single word
// yields the trivial 1×1 zero matrix.
//
// Time complexity: O(M²·N).
func ComplementMatrix(words []pauli.Word, rel Relation) (*mat.Dense, error) {
	evaluate, err := rel.evaluator()
	if err != nil {
		return nil, err
	}
	m := len(words)
	if m == 0 {
		return nil, nil
	}

	vecs, err := encodeBatch(words, pauli.NewWireMap(words...))
	if err != nil {
		return nil, err
	}

	adj := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			related, relErr := evaluate(vecs[i], vecs[j])
			if relErr != nil {
				return nil, relErr
			}
			if !related {
				adj.Set(i, j, 1)
				adj.Set(j, i, 1)
			}
		}
	}

	return adj, nil
}

// evaluator maps a relation tag to its pairwise predicate.
func (r Relation) evaluator() (func(u, v pauli.BinaryVector) (bool, error), error) {
	switch r {
	case QWC:
		return pauli.IsQWC, nil
	case Commuting:
		return pauli.Commute, nil
	case Anticommuting:
		return pauli.Anticommute, nil
	default:
		return nil, fmt.Errorf("grouping: relation %q: %w", string(r), ErrUnknownRelation)
	}
}

// encodeBatch encodes every word against the shared map, via the batch
// binary matrix. When the batch touches no wires at all, every vector is
// the empty identity vector.
func encodeBatch(words []pauli.Word, wm pauli.WireMap) ([]pauli.BinaryVector, error) {
	bm, err := pauli.BinaryMatrix(words, wm)
	if err != nil {
		return nil, err
	}

	vecs := make([]pauli.BinaryVector, len(words))
	for j := range words {
		if bm == nil {
			vecs[j] = pauli.BinaryVector{}
			continue
		}
		vecs[j] = mat.Col(nil, j, bm)
	}

	return vecs, nil
}
