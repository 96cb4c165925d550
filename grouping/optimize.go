package grouping

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pauligroup/coloring"
	"github.com/katalvlaran/pauligroup/pauli"
)

// GroupObservables partitions a batch of observables into groups that are
// pairwise compatible under opts.Relation, colouring the complement graph
// with opts.Method. Words keep their relative input order within each
// group, and groupedCoeffs mirrors that order exactly; it is nil when
// coeffs is nil. A nil opts means DefaultOptions().
//
// Validation happens before any graph work: a coefficient list whose length
// differs from the word list fails with ErrCoefficientCount, and
// unrecognized tags fail with ErrUnknownRelation / ErrUnknownMethod.
//
// Time complexity: O(M²·N + M³) over M words on N wires.
func GroupObservables(words []pauli.Word, coeffs []float64, opts *Options) (groups [][]pauli.Word, groupedCoeffs [][]float64, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if coeffs != nil && len(coeffs) != len(words) {
		return nil, nil, fmt.Errorf("grouping: %d coefficients for %d observables: %w",
			len(coeffs), len(words), ErrCoefficientCount)
	}
	colour, err := o.Method.colourer()
	if err != nil {
		return nil, nil, err
	}

	adj, err := ComplementMatrix(words, o.Relation)
	if err != nil {
		return nil, nil, err
	}

	labels := make([]string, len(words))
	for i, w := range words {
		labels[i] = w.String()
	}
	classes, err := colour(labels, adj)
	if err != nil {
		return nil, nil, err
	}

	groups = make([][]pauli.Word, len(classes))
	if coeffs != nil {
		groupedCoeffs = make([][]float64, len(classes))
	}
	for c, class := range classes {
		groups[c] = make([]pauli.Word, len(class))
		for k, v := range class {
			groups[c][k] = words[v.Index]
		}
		if coeffs != nil {
			groupedCoeffs[c] = make([]float64, len(class))
			for k, v := range class {
				groupedCoeffs[c][k] = coeffs[v.Index]
			}
		}
	}

	if err = verifyGroups(groups, o.Relation); err != nil {
		return nil, nil, err
	}

	return groups, groupedCoeffs, nil
}

// OptimizeMeasurements runs the full measurement-grouping pipeline:
// complement graph, colouring, group assembly and — for QWC groupings —
// the rewrite of every group into its shared Z measurement basis.
//
// Result.Coefficients is nil when coeffs is nil, and Result.Diagonalized is
// nil for Commuting/Anticommuting groupings (no basis-change rule is
// defined for those; the caller owns the basis change). A nil opts means
// DefaultOptions().
//
// Time complexity: O(M²·N + M³).
func OptimizeMeasurements(words []pauli.Word, coeffs []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	groups, groupedCoeffs, err := GroupObservables(words, coeffs, &o)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Groups:       groups,
		Coefficients: groupedCoeffs,
	}
	if o.Relation != QWC {
		return res, nil
	}

	res.Diagonalized = make([][]pauli.Word, len(groups))
	for c, group := range groups {
		res.Diagonalized[c] = make([]pauli.Word, len(group))
		for k, w := range group {
			res.Diagonalized[c][k] = DiagonalizeWord(w)
		}
	}

	return res, nil
}

// colourer maps a method tag to its heuristic.
func (m Method) colourer() (func([]string, *mat.Dense) ([][]coloring.Vertex, error), error) {
	switch m {
	case LargestFirst:
		return coloring.LargestFirst, nil
	case RecursiveLargestFirst:
		return coloring.RecursiveLargestFirst, nil
	default:
		return nil, fmt.Errorf("grouping: colouring method %q: %w", string(m), ErrUnknownMethod)
	}
}

// verifyGroups asserts the grouping invariant: every produced group is
// pairwise compatible under the requested relation. A violation is a defect
// in the engine, surfaced as ErrIncompatibleGroup rather than silently
// returned to the caller.
func verifyGroups(groups [][]pauli.Word, rel Relation) error {
	evaluate, err := rel.evaluator()
	if err != nil {
		return err
	}

	for c, group := range groups {
		vecs, encErr := encodeBatch(group, pauli.NewWireMap(group...))
		if encErr != nil {
			return encErr
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				related, relErr := evaluate(vecs[i], vecs[j])
				if relErr != nil {
					return relErr
				}
				if !related {
					return fmt.Errorf("grouping: group %d holds %v and %v: %w",
						c, group[i], group[j], ErrIncompatibleGroup)
				}
			}
		}
	}

	return nil
}
