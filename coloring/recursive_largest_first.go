package coloring

import "gonum.org/v1/gonum/mat"

// RecursiveLargestFirst colours a graph one colour class at a time.
//
// Algorithm outline:
//  1. Seed a new class with the highest-degree uncoloured vertex, degree
//     taken on the subgraph induced by the currently-uncoloured vertices;
//     ties broken by lowest original index.
//  2. Grow the class one vertex at a time: a candidate is admissible when it
//     is uncoloured and adjacent to no member of the class. Among admissible
//     candidates, prefer the one with the most adjacencies to vertices not
//     yet in any finished class — absorbing it keeps the remaining problem
//     easiest. Ties broken by lowest original index.
//  3. Finalize the class when no admissible vertex remains; repeat until
//     every vertex is coloured.
//
// The result is a proper colouring with classes in ascending colour id and
// members in ascending original index. A zero-edge graph yields exactly one
// class containing every vertex.
//
// Time complexity: O(V³). Memory: O(V).
func RecursiveLargestFirst(labels []string, adj *mat.Dense) ([][]Vertex, error) {
	n, err := validate(labels, adj)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return [][]Vertex{}, nil
	}

	colourOf := make([]int, n)
	for v := range colourOf {
		colourOf[v] = -1
	}
	uncoloured := n

	numColours := 0
	inClass := make([]bool, n) // scratch: membership in the class being grown
	for uncoloured > 0 {
		seed := -1
		best := -1
		for v := 0; v < n; v++ {
			if colourOf[v] >= 0 {
				continue
			}
			d := inducedDegree(adj, colourOf, v, n)
			if d > best {
				best, seed = d, v
			}
		}

		colour := numColours
		numColours++
		for v := range inClass {
			inClass[v] = false
		}
		colourOf[seed] = colour
		inClass[seed] = true
		uncoloured--

		for {
			cand := -1
			bestScore := -1
			for v := 0; v < n; v++ {
				if colourOf[v] >= 0 || !admissible(adj, inClass, v, n) {
					continue
				}
				if score := inducedDegree(adj, colourOf, v, n); score > bestScore {
					bestScore, cand = score, v
				}
			}
			if cand < 0 {
				break
			}
			colourOf[cand] = colour
			inClass[cand] = true
			uncoloured--
		}
	}

	return classesOf(colourOf, numColours, labels), nil
}

// inducedDegree counts v's neighbours among the still-uncoloured vertices.
func inducedDegree(adj *mat.Dense, colourOf []int, v, n int) int {
	d := 0
	for u := 0; u < n; u++ {
		if colourOf[u] < 0 && adj.At(v, u) == 1 {
			d++
		}
	}

	return d
}

// admissible reports whether v is adjacent to no member of the growing class.
func admissible(adj *mat.Dense, inClass []bool, v, n int) bool {
	for u := 0; u < n; u++ {
		if inClass[u] && adj.At(v, u) == 1 {
			return false
		}
	}

	return true
}
