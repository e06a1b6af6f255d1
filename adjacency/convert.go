// SPDX-License-Identifier: MIT
// Package: lapgraph/adjacency
//
// convert.go - lossless conversion between the Dense and Sparse variants.

package adjacency

// SparseFromDense copies the nonzero pattern of d into a fresh Sparse.
// Zero cells of d become structural zeros.
// Time: O(n²). Memory: O(n + nnz).
func SparseFromDense(d *Dense) (*Sparse, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	s, err := NewSparse(d.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.n; i++ {
		base := i * d.n
		for j := 0; j < d.n; j++ {
			if v := d.data[base+j]; v != 0 {
				// columns arrive in ascending order, so append directly
				s.cols[i] = append(s.cols[i], j)
				s.vals[i] = append(s.vals[i], v)
				s.nnz++
			}
		}
	}

	return s, nil
}

// Dense materializes the receiver into a Dense grid. Stored zeros fold
// into structural zeros.
// Time: O(n² + nnz). Memory: O(n²).
func (m *Sparse) Dense() *Dense {
	d := &Dense{n: m.n, data: make([]float64, m.n*m.n)}
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for k, c := range m.cols[i] {
			d.data[base+c] = m.vals[i][k]
		}
	}

	return d
}
