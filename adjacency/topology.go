// SPDX-License-Identifier: MIT
// Package: lapgraph/adjacency
//
// topology.go - deterministic builders for standard graph shapes, used
// heavily by tests, examples and benchmarks.
//
// Contract:
//   - Every builder emits a symmetric matrix with zero diagonal and unit
//     edge weights; callers reweight via Set afterwards when needed.
//   - Edge emission order is stable (i ascending, then j ascending), so a
//     fixed seed makes RandomSparseGraph fully reproducible.

package adjacency

import "math/rand"

// File-local parameter minima (no magic literals at call sites).
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2

	unitWeight = 1.0

	probMin = 0.0
	probMax = 1.0
)

// PathGraph returns the path P_n: edges (i, i+1) for i = 0..n-2.
// Time: O(n²) for the dense backing. Memory: O(n²).
func PathGraph(n int) (*Dense, error) {
	if n < minPathNodes {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		m.Set(i, i+1, unitWeight)
		m.Set(i+1, i, unitWeight)
	}

	return m, nil
}

// CycleGraph returns the cycle C_n: the path P_n plus the closing edge
// (n-1, 0).
// Time: O(n²). Memory: O(n²).
func CycleGraph(n int) (*Dense, error) {
	if n < minCycleNodes {
		return nil, ErrInvalidDimensions
	}
	m, err := PathGraph(n)
	if err != nil {
		return nil, err
	}
	m.Set(n-1, 0, unitWeight)
	m.Set(0, n-1, unitWeight)

	return m, nil
}

// CompleteGraph returns K_n: every off-diagonal entry set to 1.
// Time: O(n²). Memory: O(n²).
func CompleteGraph(n int) (*Dense, error) {
	if n < minCompleteNodes {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m.Set(i, j, unitWeight)
			}
		}
	}

	return m, nil
}

// StarGraph returns the star S_n: node 0 connected to every other node.
// Time: O(n²). Memory: O(n²).
func StarGraph(n int) (*Dense, error) {
	if n < minStarNodes {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for j := 1; j < n; j++ {
		m.Set(0, j, unitWeight)
		m.Set(j, 0, unitWeight)
	}

	return m, nil
}

// RandomSparseGraph samples an Erdős–Rényi-style graph over n nodes:
// each unordered pair {i, j}, i < j, carries a unit edge independently
// with probability p. A fixed seed yields the same graph every run.
// Time: O(n²) Bernoulli trials. Memory: O(n + nnz).
func RandomSparseGraph(n int, p float64, seed int64) (*Sparse, error) {
	if n < minCompleteNodes {
		return nil, ErrInvalidDimensions
	}
	if p < probMin || p > probMax {
		return nil, ErrInvalidProbability
	}
	m, err := NewSparse(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				m.Set(i, j, unitWeight)
				m.Set(j, i, unitWeight)
			}
		}
	}

	return m, nil
}
