// Package coloring provides greedy proper-colouring heuristics over an
// arbitrary undirected adjacency matrix.
//
// What:
//
//   - LargestFirst processes vertices by non-increasing degree and assigns
//     each the smallest colour unused by its already-coloured neighbours.
//   - RecursiveLargestFirst builds one colour class at a time: seed with the
//     highest-degree uncoloured vertex, then greedily absorb admissible
//     vertices, preferring those most entangled with the still-uncoloured
//     remainder.
//   - Both return colour classes as ordered (index, label) pairs and
//     guarantee a proper colouring: no two adjacent vertices share a class.
//
// Why:
//
//   - Minimum colouring is NP-hard; these heuristics are fast, good-enough
//     and — crucially for reproducible pipelines — fully deterministic, with
//     every tie broken by lowest original index.
//   - The package knows nothing about what the vertices mean. Measurement
//     grouping layers Pauli semantics on top; anything producing a symmetric
//     0/1 matrix can use it as-is.
//
// Complexity:
//
//   - LargestFirst:          O(V²) time, O(V) extra memory.
//   - RecursiveLargestFirst: O(V³) time, O(V) extra memory.
//
// Errors:
//
//   - ErrDimensionMismatch: label count does not match the matrix order.
//   - ErrNotSquare:         the adjacency matrix is not square.
//   - ErrAsymmetric:        the matrix differs from its transpose.
//   - ErrNotBinary:         an entry is outside {0, 1}, or the diagonal is nonzero.
package coloring
