// SPDX-License-Identifier: MIT
// Package: lapgraph/adjacency
//
// dense.go - Dense, the fully materialized n×n variant, stored row-major
// in one flat slice.
//
// Contract:
//   - NewDense(n): n ≥ 1, zero-initialized backing.
//   - DenseFromRows(rows): square non-ragged input, deep-copied.
//   - At/Set/Row/RowIndices panic with ErrIndexOutOfBounds outside [0,n).
//   - Row and Data return live views into the backing slice (no copy).
//
// Complexity:
//   - Element access O(1); RowIndices O(n); Clone O(n²).

package adjacency

import "fmt"

// Dense is a square adjacency matrix backed by a flat row-major slice.
// The zero value is unusable; construct via NewDense or DenseFromRows.
type Dense struct {
	n    int
	data []float64 // length n*n, row-major
}

// NewDense returns an n×n Dense with every entry zero.
// Time: O(n²). Memory: O(n²).
func NewDense(n int) (*Dense, error) {
	// Validate order
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// DenseFromRows deep-copies a square [][]float64 grid into a Dense.
// Returns ErrInvalidDimensions for an empty grid and ErrDimensionMismatch
// when any row length differs from the row count.
// Time: O(n²). Memory: O(n²).
func DenseFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Dense{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("adjacency: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Order returns the number of nodes.
func (m *Dense) Order() int { return m.n }

// boundsCheck panics unless 0 ≤ row, col < n.
func (m *Dense) boundsCheck(row, col int) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(ErrIndexOutOfBounds)
	}
}

// At returns the weight at (row, col); 0 means "no edge".
func (m *Dense) At(row, col int) float64 {
	m.boundsCheck(row, col)

	return m.data[row*m.n+col]
}

// Set stores v at (row, col). Storing 0 clears the edge.
func (m *Dense) Set(row, col int, v float64) {
	m.boundsCheck(row, col)
	m.data[row*m.n+col] = v
}

// Row returns the live backing slice of one row. Mutating it mutates the
// matrix; the Laplacian kernels rely on this to stay copy-free.
func (m *Dense) Row(row int) []float64 {
	if row < 0 || row >= m.n {
		panic(ErrIndexOutOfBounds)
	}

	return m.data[row*m.n : (row+1)*m.n]
}

// Data returns the live flat row-major backing slice, length n*n.
func (m *Dense) Data() []float64 { return m.data }

// RowIndices returns the columns of the nonzero entries in row, ascending.
// Time: O(n). Memory: O(k) for k nonzero entries.
func (m *Dense) RowIndices(row int) []int {
	if row < 0 || row >= m.n {
		panic(ErrIndexOutOfBounds)
	}
	var idx []int
	base := row * m.n
	for j := 0; j < m.n; j++ {
		if m.data[base+j] != 0 {
			idx = append(idx, j)
		}
	}

	return idx
}

// Clone returns a deep copy.
// Time: O(n²). Memory: O(n²).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.n; i++ {
		s += "["
		for j := 0; j < m.n; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.n+j])
			if j < m.n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}

func (*Dense) sealed() {}
