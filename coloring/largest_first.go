package coloring

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// LargestFirst colours a graph with the largest-first greedy heuristic.
//
// Algorithm outline:
//  1. Compute every vertex's degree once.
//  2. Order vertices by non-increasing degree, ties broken by lowest
//     original index.
//  3. Process in that fixed order, assigning each vertex the
//     smallest-numbered colour not used by any already-coloured neighbour,
//     opening a new colour only when none is free.
//
// The result is a proper colouring: for every edge (i,j) the endpoints land
// in different classes. Classes are returned in ascending colour id, members
// in ascending original index. A zero-edge graph yields exactly one class.
//
// Time complexity: O(V²). Memory: O(V).
func LargestFirst(labels []string, adj *mat.Dense) ([][]Vertex, error) {
	n, err := validate(labels, adj)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return [][]Vertex{}, nil
	}

	deg := make([]int, n)
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			if adj.At(v, u) == 1 {
				deg[v]++
			}
		}
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.SliceStable(order, func(i, j int) bool {
		return deg[order[i]] > deg[order[j]]
	})

	colourOf := make([]int, n)
	for v := range colourOf {
		colourOf[v] = -1
	}

	numColours := 0
	used := make([]bool, n) // scratch: colours blocked by neighbours
	for _, v := range order {
		for c := 0; c < numColours; c++ {
			used[c] = false
		}
		for u := 0; u < n; u++ {
			if adj.At(v, u) == 1 && colourOf[u] >= 0 {
				used[colourOf[u]] = true
			}
		}

		c := 0
		for c < numColours && used[c] {
			c++
		}
		if c == numColours {
			numColours++
		}
		colourOf[v] = c
	}

	return classesOf(colourOf, numColours, labels), nil
}
