// SPDX-License-Identifier: MIT
// Package: lapgraph/adjacency
//
// sparse.go - Sparse, the row-indexed variant: one sorted column slice and
// one parallel value slice per row (list-of-lists layout).
//
// Contract:
//   - Set follows building semantics: storing 0 REMOVES the entry, so a
//     hand-built Sparse holds nonzero weights only.
//   - SparseFromTriples follows coordinate semantics: duplicates are
//     summed and explicit zeros are KEPT as stored entries. The Laplacian
//     uses this path to emit matrices whose diagonal is structurally
//     present even where its value is zero.
//   - At/Set/RowIndices panic with ErrIndexOutOfBounds outside [0,n).
//
// Complexity:
//   - At O(log k) per row of k entries; Set O(k) worst case (slice shift);
//     RowIndices O(1); Triples O(nnz).

package adjacency

import (
	"fmt"
	"sort"
)

// Sparse is a square adjacency matrix storing only its structurally
// present entries, row-indexed. The zero value is unusable; construct via
// NewSparse, SparseFromTriples or SparseFromDense.
type Sparse struct {
	n    int
	cols [][]int     // per row: ascending column indices of stored entries
	vals [][]float64 // parallel to cols
	nnz  int
}

// NewSparse returns an n×n Sparse with no stored entries.
// Time: O(n). Memory: O(n).
func NewSparse(n int) (*Sparse, error) {
	// Validate order
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Sparse{n: n, cols: make([][]int, n), vals: make([][]float64, n)}, nil
}

// SparseFromTriples builds a Sparse from parallel coordinate slices.
// Duplicate positions are summed; explicit zeros are stored. Returns
// ErrDimensionMismatch when the slices disagree in length and a wrapped
// ErrIndexOutOfBounds for any coordinate outside [0, n).
// Time: O(nnz·k) worst case for rows of k entries. Memory: O(nnz).
func SparseFromTriples(n int, rows, cols []int, vals []float64) (*Sparse, error) {
	m, err := NewSparse(n)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(cols) || len(cols) != len(vals) {
		return nil, fmt.Errorf("adjacency: triple slices of length %d/%d/%d: %w",
			len(rows), len(cols), len(vals), ErrDimensionMismatch)
	}
	for k := range rows {
		r, c := rows[k], cols[k]
		if r < 0 || r >= n || c < 0 || c >= n {
			return nil, fmt.Errorf("adjacency: triple %d at (%d,%d): %w", k, r, c, ErrIndexOutOfBounds)
		}
		if pos, ok := m.locate(r, c); ok {
			m.vals[r][pos] += vals[k] // coordinate semantics: duplicates sum
		} else {
			m.insert(r, pos, c, vals[k])
		}
	}

	return m, nil
}

// Order returns the number of nodes.
func (m *Sparse) Order() int { return m.n }

// NNZ returns the count of stored entries (explicit zeros included).
func (m *Sparse) NNZ() int { return m.nnz }

// boundsCheck panics unless 0 ≤ row, col < n.
func (m *Sparse) boundsCheck(row, col int) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(ErrIndexOutOfBounds)
	}
}

// locate finds col within row's sorted column slice. It returns the
// insertion position and whether an entry is already stored there.
func (m *Sparse) locate(row, col int) (int, bool) {
	cs := m.cols[row]
	pos := sort.SearchInts(cs, col)

	return pos, pos < len(cs) && cs[pos] == col
}

// insert places a new entry at position pos of row, shifting the tail.
func (m *Sparse) insert(row, pos, col int, v float64) {
	m.cols[row] = append(m.cols[row], 0)
	copy(m.cols[row][pos+1:], m.cols[row][pos:])
	m.cols[row][pos] = col

	m.vals[row] = append(m.vals[row], 0)
	copy(m.vals[row][pos+1:], m.vals[row][pos:])
	m.vals[row][pos] = v

	m.nnz++
}

// At returns the stored weight at (row, col), or 0 for a structural zero.
func (m *Sparse) At(row, col int) float64 {
	m.boundsCheck(row, col)
	if pos, ok := m.locate(row, col); ok {
		return m.vals[row][pos]
	}

	return 0
}

// Set stores v at (row, col) with building semantics: v == 0 removes any
// stored entry, keeping hand-built matrices free of explicit zeros.
func (m *Sparse) Set(row, col int, v float64) {
	m.boundsCheck(row, col)
	pos, ok := m.locate(row, col)
	switch {
	case ok && v == 0: // drop the stored entry
		m.cols[row] = append(m.cols[row][:pos], m.cols[row][pos+1:]...)
		m.vals[row] = append(m.vals[row][:pos], m.vals[row][pos+1:]...)
		m.nnz--
	case ok:
		m.vals[row][pos] = v
	case v == 0: // structural zero stays structural
	default:
		m.insert(row, pos, col, v)
	}
}

// RowIndices returns the ascending columns of the stored entries in row.
// The result is an internal view; callers must not mutate it.
// Time: O(1).
func (m *Sparse) RowIndices(row int) []int {
	if row < 0 || row >= m.n {
		panic(ErrIndexOutOfBounds)
	}

	return m.cols[row]
}

// Triples returns the stored entries as parallel coordinate slices in
// row-major order. The slices are fresh copies owned by the caller.
// Time: O(nnz). Memory: O(nnz).
func (m *Sparse) Triples() (rows, cols []int, vals []float64) {
	rows = make([]int, 0, m.nnz)
	cols = make([]int, 0, m.nnz)
	vals = make([]float64, 0, m.nnz)
	for i := 0; i < m.n; i++ {
		for k, c := range m.cols[i] {
			rows = append(rows, i)
			cols = append(cols, c)
			vals = append(vals, m.vals[i][k])
		}
	}

	return rows, cols, vals
}

// Clone returns a deep copy.
// Time: O(n + nnz). Memory: O(n + nnz).
func (m *Sparse) Clone() *Sparse {
	c := &Sparse{n: m.n, cols: make([][]int, m.n), vals: make([][]float64, m.n), nnz: m.nnz}
	for i := 0; i < m.n; i++ {
		if len(m.cols[i]) == 0 {
			continue
		}
		c.cols[i] = append([]int(nil), m.cols[i]...)
		c.vals[i] = append([]float64(nil), m.vals[i]...)
	}

	return c
}

func (*Sparse) sealed() {}
