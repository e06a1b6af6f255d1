package components_test

import (
	"testing"

	"github.com/katalvlaran/lapgraph/adjacency"
	"github.com/katalvlaran/lapgraph/components"
)

// BenchmarkLabel_RandomSparse measures labeling on a sparse random graph
// with a handful of mid-sized components.
func BenchmarkLabel_RandomSparse(b *testing.B) {
	g, err := adjacency.RandomSparseGraph(2000, 0.002, 42)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := components.Label(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLabel_DisjointPaths measures the dense path: many small
// index-contiguous blocks on a dense matrix.
func BenchmarkLabel_DisjointPaths(b *testing.B) {
	const n, block = 1024, 8
	g, err := adjacency.NewDense(n)
	if err != nil {
		b.Fatal(err)
	}
	for v := 0; v+1 < n; v++ {
		if v%block == block-1 {
			continue // block boundary
		}
		g.Set(v, v+1, 1)
		g.Set(v+1, v, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := components.Label(g); err != nil {
			b.Fatal(err)
		}
	}
}
