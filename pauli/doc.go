// Package pauli defines Pauli words over arbitrarily-labelled wires and their
// binary symplectic representation.
//
// What:
//
//   - Word maps wire labels to single-qubit factors {I, X, Y, Z}; wires a word
//     does not mention act as identity.
//   - WireMap fixes one wire→index bijection per batch of words, so every
//     vector in the batch has the same length 2N.
//   - Encode/Decode convert between words and GF(2) vectors: index i holds the
//     X-bit and index i+N the Z-bit of wire i, with I→(0,0), X→(1,0),
//     Z→(0,1), Y→(1,1).
//   - BinaryMatrix stacks a whole batch into one 2N×M matrix, one column per
//     word, all encoded against the same shared map.
//   - IsQWC, Commute and Anticommute are the pairwise compatibility relations
//     used by the measurement-grouping layers above.
//
// Why:
//
//   - Bit-level symplectic algebra decides Pauli commutation exactly and in
//     O(N) per pair, with no operator matrices anywhere.
//   - A single shared wire map is what keeps a batch comparable: per-word
//     local indexing would produce vectors of differing lengths.
//
// Complexity:
//
//   - Encode/Decode:    O(N) per word.
//   - NewWireMap:       O(W log W) over W distinct wires (red-black tree union).
//   - BinaryMatrix:     O(N·M).
//   - Relations:        O(N) per pair.
//
// Errors:
//
//   - ErrUnknownWire:  a word mentions a wire absent from the supplied map.
//   - ErrBadWireMap:   a supplied map is not a bijection onto 0..N-1.
//   - ErrVectorLength: vector lengths differ, are odd, or do not match the map.
//   - ErrNotBinary:    a vector entry is outside {0, 1}.
package pauli
