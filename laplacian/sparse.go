// SPDX-License-Identifier: MIT
// Package: lapgraph/laplacian
//
// sparse.go - the sparse kernel. Pipeline over a coordinate-triple copy:
//
//	negate → repair missing diagonal slots → zero diagonal →
//	fold row sums into degrees → write degrees back or normalize →
//	rebuild the row-indexed matrix.
//
// The repair step exists because a sparse adjacency matrix usually stores
// no diagonal at all; every row must own a structural diagonal slot
// before the degree can be written into it. Placeholder entries carry
// value 1 purely to occupy a slot — they are zeroed immediately after.

package laplacian

import (
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/lapgraph/adjacency"
)

// placeholderDiag occupies a structurally missing diagonal slot until the
// degree (or unit) value overwrites it.
const placeholderDiag = 1.0

// sparseLaplacian computes L (optionally normalized) for a Sparse matrix
// without materializing the dense grid. It returns the fresh matrix plus
// the degree vector — post-clamp square roots when normed.
// Time: O(n + nnz). Memory: O(n + nnz).
func sparseLaplacian(g *adjacency.Sparse, normed bool) (*adjacency.Sparse, []float64, error) {
	n := g.Order()
	rows, cols, vals := g.Triples() // fresh copies, safe to mutate

	// vals = -A values; multiplying by -1 is an exact sign flip
	vek.MulNumber_Inplace(vals, -1)

	// every row needs a stored diagonal slot to overwrite
	diag := diagonalPositions(rows, cols)
	if len(diag) != n {
		rows, cols, vals = repairDiagonal(n, rows, cols, vals)
		diag = diagonalPositions(rows, cols)
	}
	for _, k := range diag {
		vals[k] = 0
	}

	// degree(i) = -rowsum now that diagonal slots are zero
	w := make([]float64, n)
	for k, r := range rows {
		w[r] -= vals[k]
	}

	if !normed {
		for _, k := range diag {
			vals[k] = w[rows[k]]
		}
		lap, err := adjacency.SparseFromTriples(n, rows, cols, vals)
		if err != nil {
			return nil, nil, err
		}

		return lap, w, nil
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
	// vals[k] /= w[row]; vals[k] /= w[col] — two divisions, matching the
	// dense kernel term for term
	for k := range vals {
		vals[k] /= w[rows[k]]
		vals[k] /= w[cols[k]]
	}
	// unit diagonal for every node, isolated ones included
	for _, k := range diag {
		vals[k] = 1
	}
	lap, err := adjacency.SparseFromTriples(n, rows, cols, vals)
	if err != nil {
		return nil, nil, err
	}

	return lap, w, nil
}

// diagonalPositions returns the indexes of the triples sitting on the
// diagonal, in encounter order.
func diagonalPositions(rows, cols []int) []int {
	var diag []int
	for k, r := range rows {
		if r == cols[k] {
			diag = append(diag, k)
		}
	}

	return diag
}

// repairDiagonal merge-inserts a placeholder entry at every diagonal
// position the matrix does not store, preserving row-major triple order.
// Time: O(n + nnz). Memory: O(n + nnz).
func repairDiagonal(n int, rows, cols []int, vals []float64) ([]int, []int, []float64) {
	present := make([]bool, n)
	for k, r := range rows {
		if r == cols[k] {
			present[r] = true
		}
	}

	outR := make([]int, 0, len(rows)+n)
	outC := make([]int, 0, len(cols)+n)
	outV := make([]float64, 0, len(vals)+n)
	var k int
	for i := 0; i < n; i++ {
		inserted := present[i]
		for ; k < len(rows) && rows[k] == i; k++ {
			// slot the new diagonal before the first column beyond it
			if !inserted && cols[k] > i {
				outR = append(outR, i)
				outC = append(outC, i)
				outV = append(outV, placeholderDiag)
				inserted = true
			}
			outR = append(outR, rows[k])
			outC = append(outC, cols[k])
			outV = append(outV, vals[k])
		}
		if !inserted {
			outR = append(outR, i)
			outC = append(outC, i)
			outV = append(outV, placeholderDiag)
		}
	}

	return outR, outC, outV
}
