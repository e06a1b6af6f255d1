// Package laplacian defines the configuration options and error
// sentinels for graph-Laplacian construction.
//
// Options:
//
//	– WithNormalized: emit D^{-1/2} (D−A) D^{-1/2} instead of D−A.
//	– WithReturnDiag: also return the degree vector (post-clamp square
//	  roots in normalized mode).
//
// Errors (sentinel):
//
//	– ErrMatrixNil          if the supplied matrix is nil.
//	– ErrUnsupportedMatrix  if the matrix is neither Dense nor Sparse;
//	  unreachable for values built via package adjacency, kept so the
//	  dispatch stays total.
package laplacian

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrMatrixNil indicates that a nil adjacency matrix was passed.
	ErrMatrixNil = errors.New("laplacian: matrix is nil")

	// ErrUnsupportedMatrix indicates a Matrix implementation outside the
	// sealed Dense/Sparse set.
	ErrUnsupportedMatrix = errors.New("laplacian: unsupported matrix implementation")
)

// Option configures Build behavior via functional arguments.
type Option func(*Options)

// Options holds the Build flags.
type Options struct {
	// Normalized selects the symmetric normalization D^{-1/2} L D^{-1/2}.
	Normalized bool

	// ReturnDiag requests the degree vector alongside the matrix.
	ReturnDiag bool
}

// DefaultOptions returns Options with both flags off: combinatorial
// Laplacian, no degree vector.
func DefaultOptions() Options {
	return Options{Normalized: false, ReturnDiag: false}
}

// WithNormalized switches Build to the symmetric normalization.
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}

// WithReturnDiag makes Build return the degree vector as its second
// result instead of nil.
func WithReturnDiag() Option {
	return func(o *Options) { o.ReturnDiag = true }
}
