// SPDX-License-Identifier: MIT
// Package: lapgraph/adjacency
//
// validators.go - opt-in structural checks. The algorithms never run these
// unconditionally; symmetry stays a documented caller obligation because
// enforcing it costs O(n²) dense or O(nnz·log k) sparse per call.

package adjacency

import (
	"fmt"
	"math"
)

// ValidateSymmetric verifies that every mirrored pair of entries agrees
// within the absolute tolerance eps (DefaultEpsilon is a sensible choice).
// A stored entry whose mirror is a structural zero counts as a mismatch
// unless its value is within eps of zero.
//
// Returns nil, ErrNilMatrix, or a wrapped ErrAsymmetric naming the first
// offending pair.
// Time: O(n²) for Dense, O(nnz·log k) for Sparse. Memory: O(1).
func ValidateSymmetric(m Matrix, eps float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	switch t := m.(type) {
	case *Dense:
		n := t.n
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				upper, lower := t.data[i*n+j], t.data[j*n+i]
				if math.Abs(upper-lower) > eps {
					return asymmetryError(i, j, upper, lower)
				}
			}
		}
	case *Sparse:
		for i := 0; i < t.n; i++ {
			for k, j := range t.cols[i] {
				if v := t.vals[i][k]; math.Abs(v-t.At(j, i)) > eps {
					return asymmetryError(i, j, v, t.At(j, i))
				}
			}
		}
	}

	return nil
}

// asymmetryError wraps ErrAsymmetric with the first offending pair.
func asymmetryError(i, j int, upper, lower float64) error {
	return fmt.Errorf("adjacency: entry (%d,%d)=%g but (%d,%d)=%g: %w",
		i, j, upper, j, i, lower, ErrAsymmetric)
}
