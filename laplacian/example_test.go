package laplacian_test

import (
	"fmt"

	"github.com/katalvlaran/lapgraph/adjacency"
	"github.com/katalvlaran/lapgraph/laplacian"
)

// ExampleBuild computes the combinatorial Laplacian of the path 0-1-2
// and reads a few entries back: degrees on the diagonal, negated weights
// off it.
func ExampleBuild() {
	g, _ := adjacency.PathGraph(3)

	lap, _, err := laplacian.Build(g)
	if err != nil {
		fmt.Println("unexpected error:", err)
		return
	}
	d := lap.(*adjacency.Dense)

	fmt.Println("middle degree:", d.At(1, 1))
	fmt.Println("edge entry:  ", d.At(0, 1))
	// Output:
	// middle degree: 2
	// edge entry:   -1
}

// ExampleBuild_normalized builds the symmetric normalization of a
// 3-node star and shows the unit diagonal next to a scaled hub-leaf
// entry.
func ExampleBuild_normalized() {
	g, _ := adjacency.StarGraph(3)

	lap, w, _ := laplacian.Build(g,
		laplacian.WithNormalized(),
		laplacian.WithReturnDiag(),
	)
	d := lap.(*adjacency.Dense)

	fmt.Printf("hub scale:  %.4f\n", w[0])
	fmt.Printf("diagonal:   %.0f\n", d.At(0, 0))
	fmt.Printf("hub-leaf:   %.4f\n", d.At(0, 1))
	// Output:
	// hub scale:  1.4142
	// diagonal:   1
	// hub-leaf:   -0.7071
}
