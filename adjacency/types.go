// SPDX-License-Identifier: MIT
// Package: lapgraph/adjacency
//
// types.go - the Matrix interface, the shared sentinel errors, and the
// package-wide comparison tolerance.

package adjacency

import "errors"

// DefaultEpsilon is the absolute tolerance ValidateSymmetric applies when
// comparing mirrored entries.
const DefaultEpsilon = 1e-12

// Sentinel errors shared by constructors, converters and validators.
var (
	// ErrNilMatrix is returned when a nil Matrix is supplied.
	ErrNilMatrix = errors.New("adjacency: matrix is nil")

	// ErrInvalidDimensions indicates a non-positive matrix order.
	ErrInvalidDimensions = errors.New("adjacency: order must be > 0")

	// ErrDimensionMismatch indicates ragged rows, a non-square grid, or
	// parallel triple slices of unequal length.
	ErrDimensionMismatch = errors.New("adjacency: dimension mismatch")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("adjacency: index out of bounds")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("adjacency: edge probability must be in [0,1]")

	// ErrAsymmetric is returned by ValidateSymmetric when a mirrored pair
	// of entries disagrees beyond the tolerance.
	ErrAsymmetric = errors.New("adjacency: matrix is not symmetric")
)

// Matrix is the read surface shared by Dense and Sparse. The
// implementation set is closed: algorithms that depend on the concrete
// representation (laplacian.Build) dispatch with a type switch and can
// rely on exactly two cases.
//
// All methods are pure reads. Index arguments outside [0, n) panic with
// ErrIndexOutOfBounds: element access sits inside tight loops, and the
// public entry points validate their inputs once at the boundary instead.
type Matrix interface {
	// Order returns n, the number of nodes.
	Order() int

	// At returns the stored weight at (row, col), or 0 when the position
	// holds a structural zero.
	At(row, col int) float64

	// RowIndices returns the ascending column indices of the structurally
	// present entries in row. Treat the result as read-only: Sparse
	// returns an internal view to stay allocation-free.
	RowIndices(row int) []int

	// sealed restricts Matrix to the in-package implementations.
	sealed()
}
