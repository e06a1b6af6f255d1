// SPDX-License-Identifier: MIT
// Package: lapgraph/laplacian
//
// dense.go - the dense kernel: negate a flat copy, clear the diagonal,
// fold row sums into degrees, then either write degrees back or apply the
// symmetric normalization.

package laplacian

import (
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lapgraph/adjacency"
)

// denseLaplacian computes L (optionally normalized) for a Dense matrix.
// It returns the fresh matrix plus the degree vector — post-clamp square
// roots when normed.
// Time: O(n²). Memory: O(n²).
func denseLaplacian(g *adjacency.Dense, normed bool) (*adjacency.Dense, []float64) {
	n := g.Order()
	lap := g.Clone()
	data := lap.Data()

	// lap = -A; multiplying by -1 is an exact sign flip
	vek.MulNumber_Inplace(data, -1)

	// the diagonal carries no adjacency meaning; clear it before summing
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	// degree(i) = sum of the original weights in row i
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = -floats.Sum(lap.Row(i))
	}

	if !normed {
		for i := 0; i < n; i++ {
			data[i*n+i] = w[i]
		}

		return lap, w
	}

	// w ← sqrt(degree); zero-degree nodes scale by 1 instead of dividing
	// by zero
	for i := 0; i < n; i++ {
		if w[i] == 0 {
			w[i] = 1
		} else {
			w[i] = math.Sqrt(w[i])
		}
	}
	// lap[i,j] /= w[i]; lap[i,j] /= w[j] — two divisions, matching the
	// sparse kernel term for term
	for i := 0; i < n; i++ {
		row := lap.Row(i)
		for j := range row {
			row[j] /= w[i]
			row[j] /= w[j]
		}
	}
	// unit diagonal for every node, isolated ones included
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}

	return lap, w
}
