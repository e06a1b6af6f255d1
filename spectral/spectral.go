package spectral

import (
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lapgraph/adjacency"
	"github.com/katalvlaran/lapgraph/laplacian"
)

// fiedlerIndex is the position of the second-smallest eigenvalue in the
// ascending spectrum.
const fiedlerIndex = 1

// Fiedler returns the algebraic connectivity λ₂ of g — the second
// smallest eigenvalue of its combinatorial Laplacian — together with the
// matching eigenvector. λ₂ > 0 exactly when the graph is connected. The
// eigenvector's overall sign is arbitrary.
//
// Returns ErrMatrixNil, ErrTooFewNodes (n < 2), or ErrFactorization.
// Time: O(n³). Memory: O(n²).
func Fiedler(g adjacency.Matrix) (float64, []float64, error) {
	if g == nil {
		return 0, nil, ErrMatrixNil
	}
	n := g.Order()
	if n < 2 {
		return 0, nil, ErrTooFewNodes
	}

	es, err := decompose(g)
	if err != nil {
		return 0, nil, err
	}
	lambda := es.Values(nil)[fiedlerIndex]

	vecs := mat.NewDense(n, n, nil)
	es.VectorsTo(vecs)

	return lambda, mat.Col(nil, fiedlerIndex, vecs), nil
}

// Embedding maps the graph into dim spectral coordinates: the columns of
// the returned n×dim matrix are the eigenvectors of the NORMALIZED
// Laplacian belonging to the smallest non-trivial eigenvalues (the
// constant direction at position 0 is skipped). Column signs are
// arbitrary.
//
// Returns ErrMatrixNil, ErrBadDimension (dim outside [1, n-1]), or
// ErrFactorization.
// Time: O(n³). Memory: O(n²).
func Embedding(g adjacency.Matrix, dim int) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrMatrixNil
	}
	n := g.Order()
	if dim < 1 || dim > n-1 {
		return nil, ErrBadDimension
	}

	es, err := decompose(g, laplacian.WithNormalized())
	if err != nil {
		return nil, err
	}
	vecs := mat.NewDense(n, n, nil)
	es.VectorsTo(vecs)

	out := mat.NewDense(n, dim, nil)
	for d := 0; d < dim; d++ {
		out.SetCol(d, mat.Col(nil, fiedlerIndex+d, vecs))
	}

	return out, nil
}

// Energy returns the Dirichlet energy xᵀLx of the node signal x over the
// combinatorial Laplacian of g: 0 for a constant signal on a connected
// graph, larger the more x disagrees across heavy edges.
//
// Returns ErrMatrixNil or ErrDimensionMismatch (len(x) != n).
// Time: O(n²) dense, O(n + nnz) sparse. Memory: O(n).
func Energy(g adjacency.Matrix, x []float64) (float64, error) {
	if g == nil {
		return 0, ErrMatrixNil
	}
	if len(x) != g.Order() {
		return 0, ErrDimensionMismatch
	}

	lap, _, err := laplacian.Build(g)
	if err != nil {
		return 0, err
	}

	var energy float64
	switch t := lap.(type) {
	case *adjacency.Dense:
		// xᵀLx row by row: energy += x[i] · (L[i,:] · x)
		for i := 0; i < t.Order(); i++ {
			energy += x[i] * vek.Dot(t.Row(i), x)
		}
	case *adjacency.Sparse:
		rows, cols, vals := t.Triples()
		for k, v := range vals {
			energy += v * x[rows[k]] * x[cols[k]]
		}
	}

	return energy, nil
}

// decompose builds the requested Laplacian of g, densifies it if needed,
// and factorizes it as a symmetric eigenproblem (the upper triangle is
// read as truth, matching the symmetric-input obligation).
func decompose(g adjacency.Matrix, opts ...laplacian.Option) (*mat.EigenSym, error) {
	lap, _, err := laplacian.Build(g, opts...)
	if err != nil {
		return nil, err
	}

	var dense *adjacency.Dense
	switch t := lap.(type) {
	case *adjacency.Dense:
		dense = t
	case *adjacency.Sparse:
		dense = t.Dense()
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(lap.Order(), dense.Data()), true); !ok {
		return nil, ErrFactorization
	}

	return &es, nil
}
