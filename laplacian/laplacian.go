package laplacian

import (
	"github.com/katalvlaran/lapgraph/adjacency"
)

// Build computes the graph Laplacian of g, dispatching on the concrete
// representation so a Dense input yields a Dense result and a Sparse
// input a Sparse one. The caller's matrix is never mutated.
//
// The second return value is the degree vector when WithReturnDiag is
// supplied and nil otherwise. In normalized mode it holds the exact
// scales applied to rows and columns: sqrt(degree), with zero degrees
// clamped to 1.
//
// Returns ErrMatrixNil for nil input and ErrUnsupportedMatrix for a
// Matrix outside the sealed Dense/Sparse set.
func Build(g adjacency.Matrix, opts ...Option) (adjacency.Matrix, []float64, error) {
	if g == nil {
		return nil, nil, ErrMatrixNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		lap adjacency.Matrix
		w   []float64
	)
	switch t := g.(type) {
	case *adjacency.Dense:
		lap, w = denseLaplacian(t, o.Normalized)
	case *adjacency.Sparse:
		var err error
		lap, w, err = sparseLaplacian(t, o.Normalized)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, ErrUnsupportedMatrix
	}

	if !o.ReturnDiag {
		w = nil
	}

	return lap, w, nil
}
