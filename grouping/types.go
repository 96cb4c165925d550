// Package grouping defines relation/method tags, options, the result type
// and sentinel errors for measurement grouping.
package grouping

import (
	"errors"

	"github.com/katalvlaran/pauligroup/pauli"
)

// Sentinel errors for grouping operations.
var (
	// ErrUnknownRelation indicates an unrecognized grouping relation tag.
	ErrUnknownRelation = errors.New(`grouping: unknown relation (valid: "qwc", "commuting", "anticommuting")`)

	// ErrUnknownMethod indicates an unrecognized colouring method tag.
	ErrUnknownMethod = errors.New(`grouping: unknown colouring method (valid: "lf", "rlf")`)

	// ErrCoefficientCount indicates the coefficient list length differs from the word list length.
	ErrCoefficientCount = errors.New("grouping: coefficient count does not match observable count")

	// ErrNotQWC indicates a group is not pairwise qubit-wise commuting.
	ErrNotQWC = errors.New("grouping: words are not qubit-wise commuting")

	// ErrIncompatibleGroup indicates a produced group contains a pair that
	// violates the requested relation. This is a defect in the grouping
	// engine, never a caller error.
	ErrIncompatibleGroup = errors.New("grouping: produced group violates the requested relation")
)

// Relation selects the pairwise compatibility predicate that defines which
// observables may share a group.
type Relation string

const (
	// QWC groups qubit-wise commuting observables (the default).
	QWC Relation = "qwc"
	// Commuting groups globally commuting observables.
	Commuting Relation = "commuting"
	// Anticommuting groups pairwise anticommuting observables.
	Anticommuting Relation = "anticommuting"
)

// Method selects the greedy colouring heuristic.
type Method string

const (
	// LargestFirst is degree-descending greedy colouring, O(V²).
	LargestFirst Method = "lf"
	// RecursiveLargestFirst builds one colour class at a time, O(V³);
	// usually fewer groups than LargestFirst.
	RecursiveLargestFirst Method = "rlf"
)

// Options configures a grouping run. The zero value is not meaningful; use
// DefaultOptions and override fields as needed. A nil *Options at any call
// site means DefaultOptions().
type Options struct {
	// Relation is the compatibility predicate; default QWC.
	Relation Relation
	// Method is the colouring heuristic; default RecursiveLargestFirst.
	Method Method
}

// DefaultOptions returns the default configuration:
// qubit-wise commuting groups via recursive-largest-first colouring.
func DefaultOptions() Options {
	return Options{
		Relation: QWC,
		Method:   RecursiveLargestFirst,
	}
}

// Result carries the assembled measurement groups.
//
// Groups[k] holds the original words of colour class k, in their relative
// input order; Coefficients[k] mirrors that order exactly. Coefficients is
// nil when the caller supplied none. Diagonalized[k] is Groups[k] rewritten
// into the shared Z basis — only populated under QWC, since no basis-change
// rule is defined for commuting or anticommuting groupings (extension
// point).
type Result struct {
	Groups       [][]pauli.Word
	Diagonalized [][]pauli.Word
	Coefficients [][]float64
}
