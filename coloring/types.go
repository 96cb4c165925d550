// Package coloring defines result types and sentinel errors for the
// graph-colouring heuristics.
package coloring

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for adjacency-matrix validation.
var (
	// ErrDimensionMismatch indicates the label count differs from the matrix order.
	ErrDimensionMismatch = errors.New("coloring: label count does not match matrix order")

	// ErrNotSquare indicates the adjacency matrix is not square.
	ErrNotSquare = errors.New("coloring: adjacency matrix must be square")

	// ErrAsymmetric indicates the adjacency matrix differs from its transpose.
	ErrAsymmetric = errors.New("coloring: adjacency matrix must be symmetric")

	// ErrNotBinary indicates an entry outside {0,1} or a nonzero diagonal.
	ErrNotBinary = errors.New("coloring: adjacency matrix must be 0/1 with zero diagonal")
)

// Vertex is one coloured vertex: its index into the input adjacency matrix
// and the caller-supplied label at that index.
type Vertex struct {
	// Index is the vertex's position in the input matrix and label slice.
	Index int
	// Label is the caller-supplied vertex label.
	Label string
}

// validate checks labels against adj and returns the vertex count.
// A nil matrix with no labels is the empty graph.
func validate(labels []string, adj *mat.Dense) (int, error) {
	if adj == nil {
		if len(labels) != 0 {
			return 0, fmt.Errorf("coloring: %d labels for a nil matrix: %w",
				len(labels), ErrDimensionMismatch)
		}

		return 0, nil
	}

	r, c := adj.Dims()
	if r != c {
		return 0, fmt.Errorf("coloring: matrix is %d×%d: %w", r, c, ErrNotSquare)
	}
	if len(labels) != r {
		return 0, fmt.Errorf("coloring: %d labels for a %d-vertex matrix: %w",
			len(labels), r, ErrDimensionMismatch)
	}

	for i := 0; i < r; i++ {
		if adj.At(i, i) != 0 {
			return 0, fmt.Errorf("coloring: nonzero diagonal at vertex %d: %w", i, ErrNotBinary)
		}
		for j := i + 1; j < r; j++ {
			v := adj.At(i, j)
			if v != 0 && v != 1 {
				return 0, fmt.Errorf("coloring: entry %g at (%d,%d): %w", v, i, j, ErrNotBinary)
			}
			if v != adj.At(j, i) {
				return 0, fmt.Errorf("coloring: entries (%d,%d) and (%d,%d) differ: %w",
					i, j, j, i, ErrAsymmetric)
			}
		}
	}

	return r, nil
}

// classesOf assembles colour classes from a per-vertex colour assignment,
// ascending colour id, members in ascending original index.
func classesOf(colourOf []int, numColours int, labels []string) [][]Vertex {
	classes := make([][]Vertex, numColours)
	for v, c := range colourOf {
		classes[c] = append(classes[c], Vertex{Index: v, Label: labels[v]})
	}

	return classes
}
