// Package spectral defines the error sentinels for the eigenstructure
// helpers built on top of package laplacian.
//
// Errors (sentinel):
//
//	– ErrMatrixNil         if the supplied matrix is nil.
//	– ErrTooFewNodes       if the graph is too small for the request.
//	– ErrBadDimension      if an embedding dimension is outside [1, n-1].
//	– ErrDimensionMismatch if a signal vector length differs from n.
//	– ErrFactorization     if the eigendecomposition does not converge.
package spectral

import "errors"

// Sentinel errors returned by the spectral helpers.
var (
	// ErrMatrixNil indicates that a nil adjacency matrix was passed.
	ErrMatrixNil = errors.New("spectral: matrix is nil")

	// ErrTooFewNodes indicates that the graph has fewer nodes than the
	// requested quantity needs (Fiedler requires n ≥ 2).
	ErrTooFewNodes = errors.New("spectral: too few nodes")

	// ErrBadDimension indicates an embedding dimension outside [1, n-1].
	ErrBadDimension = errors.New("spectral: embedding dimension out of range")

	// ErrDimensionMismatch indicates a signal vector whose length does
	// not match the matrix order.
	ErrDimensionMismatch = errors.New("spectral: signal length mismatch")

	// ErrFactorization indicates that the symmetric eigendecomposition
	// failed to converge.
	ErrFactorization = errors.New("spectral: eigendecomposition failed")
)
