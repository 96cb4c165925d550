package coloring_test

import (
	"testing"

	"github.com/katalvlaran/pauligroup/coloring"
)

// Benchmarks colour a seeded pseudo-random 64-vertex graph, the scale of a
// medium molecular Hamiltonian's complement graph.

func BenchmarkLargestFirst(b *testing.B) {
	const n = 64
	adj := randomAdjacency(n, 1)
	labels := indexLabels(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.LargestFirst(labels, adj); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecursiveLargestFirst(b *testing.B) {
	const n = 64
	adj := randomAdjacency(n, 1)
	labels := indexLabels(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.RecursiveLargestFirst(labels, adj); err != nil {
			b.Fatal(err)
		}
	}
}
