// Package grouping partitions a batch of Pauli-word observables into
// simultaneously-measurable groups.
//
// What:
//
//   - ComplementMatrix turns a word list and a compatibility relation into an
//     incompatibility adjacency matrix: edge (i,j) present iff the relation
//     is false for the pair.
//   - GroupObservables colours the complement graph and maps colour classes
//     back to words, with coefficients kept aligned to their words.
//   - DiagonalizeWord / DiagonalizeGroup rewrite qubit-wise-commuting words
//     into the shared Z measurement basis.
//   - OptimizeMeasurements runs the whole pipeline end to end.
//
// Why:
//
//   - Each group needs only one basis rotation on hardware, so fewer groups
//     means fewer circuit executions per cost-function evaluation.
//   - The pipeline is a synchronous pure function with deterministic
//     tie-breaks throughout: identical inputs always produce identical
//     groupings.
//
// Relations:
//
//   - QWC           — qubit-wise commuting (default); groups are rewritten
//     into a shared Z basis.
//   - Commuting     — globally commuting; returned un-diagonalized, the
//     basis change is the caller's responsibility.
//   - Anticommuting — pairwise anticommuting; likewise un-diagonalized.
//
// Complexity:
//
//   - ComplementMatrix:     O(M²·N) over M words on N wires.
//   - OptimizeMeasurements: O(M²·N + M³) (colouring dominates).
//
// Errors:
//
//   - ErrUnknownRelation:   unrecognized grouping relation tag.
//   - ErrUnknownMethod:     unrecognized colouring method tag.
//   - ErrCoefficientCount:  coefficient list length differs from word list length.
//   - ErrNotQWC:            a group handed to DiagonalizeGroup is not pairwise qwc.
//   - ErrIncompatibleGroup: a produced group violates the requested relation
//     (internal defect, surfaced loudly rather than silently tolerated).
package grouping
