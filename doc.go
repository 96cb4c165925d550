// Package pauligroup partitions quantum observables — Pauli words — into the
// fewest groups that can be measured simultaneously on real hardware.
//
// 🚀 What is pauligroup?
//
//	A small, deterministic measurement-grouping engine that brings together:
//		• Binary symplectic encoding: Pauli word ⇄ GF(2) vector over a shared wire map
//		• Compatibility relations: qubit-wise commuting, commuting, anticommuting
//		• Complement graphs: incompatibility adjacency matrices over a batch of words
//		• Greedy colouring: largest-first and recursive-largest-first heuristics
//		• Group assembly: colour classes back to words, coefficients and a shared Z basis
//
// ✨ Why choose pauligroup?
//
//   - Deterministic – identical inputs always yield identical groupings, no hidden randomness
//   - Pure Go – no cgo, no I/O, a synchronous purely functional pipeline
//   - Generic colouring – the heuristics operate on any adjacency matrix,
//     with no Pauli knowledge baked in
//
// Everything is organized under three subpackages:
//
//	pauli/    — words, wire maps, binary symplectic vectors & pairwise relations
//	coloring/ — greedy proper-colouring heuristics over adjacency matrices
//	grouping/ — complement graphs, group assembly & OptimizeMeasurements
//
// Quick ASCII example (qubit-wise commuting groups):
//
//	    Y(0)   X(0)⊗X(1)   Z(1)
//	      \________|________/
//	               │
//	    group 1: {X(0)⊗X(1)}        → measure in Z(0)⊗Z(1)
//	    group 2: {Y(0), Z(1)}       → measure in Z(0), Z(1)
//
// The grouping targets fast, reproducible heuristics, not the exact chromatic
// number: one basis rotation per group is what it saves you on hardware.
//
//	go get github.com/katalvlaran/pauligroup
package pauligroup
