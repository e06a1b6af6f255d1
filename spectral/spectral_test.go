// Package spectral_test contains unit tests for algebraic connectivity,
// spectral embedding, and Dirichlet energy.
package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapgraph/adjacency"
	"github.com/katalvlaran/lapgraph/spectral"
)

// TestFiedler_Errors covers nil input and graphs too small to carry a
// second eigenvalue.
func TestFiedler_Errors(t *testing.T) {
	_, _, err := spectral.Fiedler(nil)
	require.ErrorIs(t, err, spectral.ErrMatrixNil)

	single, err := adjacency.NewDense(1)
	require.NoError(t, err)
	_, _, err = spectral.Fiedler(single)
	require.ErrorIs(t, err, spectral.ErrTooFewNodes)
}

// TestFiedler_PathConnectivity pins λ₂ of the 4-node path against the
// closed form 2−√2 and checks the eigenvector shape up to sign: unit
// norm, zero mean, opposite ends of the path on opposite sides.
func TestFiedler_PathConnectivity(t *testing.T) {
	g, err := adjacency.PathGraph(4)
	require.NoError(t, err)

	lambda, vec, err := spectral.Fiedler(g)
	require.NoError(t, err)
	require.InDelta(t, 2-math.Sqrt2, lambda, 1e-9)
	require.Len(t, vec, 4)

	var sum, norm2 float64
	for _, v := range vec {
		sum += v
		norm2 += v * v
	}
	require.InDelta(t, 0, sum, 1e-9, "orthogonal to the constant vector")
	require.InDelta(t, 1, norm2, 1e-9, "unit norm")
	require.Negative(t, vec[0]*vec[3], "path ends split by sign")
}

// TestFiedler_DisconnectedZero checks that a graph with two components
// has vanishing algebraic connectivity.
func TestFiedler_DisconnectedZero(t *testing.T) {
	g, err := adjacency.DenseFromRows([][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.NoError(t, err)

	lambda, _, err := spectral.Fiedler(g)
	require.NoError(t, err)
	require.InDelta(t, 0, lambda, 1e-9)
}

// TestFiedler_SparseMatchesDense feeds the same ring through both
// representations and expects the same spectrum.
func TestFiedler_SparseMatchesDense(t *testing.T) {
	d, err := adjacency.CycleGraph(9)
	require.NoError(t, err)
	s, err := adjacency.SparseFromDense(d)
	require.NoError(t, err)

	lamD, _, err := spectral.Fiedler(d)
	require.NoError(t, err)
	lamS, _, err := spectral.Fiedler(s)
	require.NoError(t, err)
	require.InDelta(t, lamD, lamS, 1e-12)
}

// TestEmbedding_Shape checks result dimensions and the orthonormality
// the eigensolver guarantees per coordinate column.
func TestEmbedding_Shape(t *testing.T) {
	g, err := adjacency.CycleGraph(6)
	require.NoError(t, err)

	emb, err := spectral.Embedding(g, 2)
	require.NoError(t, err)
	r, c := emb.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 2, c)

	for d := 0; d < c; d++ {
		var norm2 float64
		for i := 0; i < r; i++ {
			norm2 += emb.At(i, d) * emb.At(i, d)
		}
		require.InDelta(t, 1, norm2, 1e-9, "column %d norm", d)
	}
}

// TestEmbedding_DimBounds rejects dimensions outside [1, n-1].
func TestEmbedding_DimBounds(t *testing.T) {
	g, err := adjacency.PathGraph(4)
	require.NoError(t, err)

	_, err = spectral.Embedding(g, 0)
	require.ErrorIs(t, err, spectral.ErrBadDimension)
	_, err = spectral.Embedding(g, 4)
	require.ErrorIs(t, err, spectral.ErrBadDimension)

	_, err = spectral.Embedding(nil, 1)
	require.ErrorIs(t, err, spectral.ErrMatrixNil)
}

// TestEnergy_ConstantZero checks that a constant signal carries no
// Dirichlet energy: every quadratic-form term cancels against the row
// sums.
func TestEnergy_ConstantZero(t *testing.T) {
	g, err := adjacency.CompleteGraph(5)
	require.NoError(t, err)

	x := []float64{3, 3, 3, 3, 3}
	e, err := spectral.Energy(g, x)
	require.NoError(t, err)
	require.InDelta(t, 0, e, 1e-12)
}

// TestEnergy_EdgeDisagreement pins the closed form on a single weighted
// edge: energy = w·(x_u − x_v)².
func TestEnergy_EdgeDisagreement(t *testing.T) {
	g, err := adjacency.DenseFromRows([][]float64{
		{0, 3},
		{3, 0},
	})
	require.NoError(t, err)

	e, err := spectral.Energy(g, []float64{2, 5})
	require.NoError(t, err)
	require.InDelta(t, 27, e, 1e-12) // 3·(2−5)²
}

// TestEnergy_DenseSparseAgree compares the dense row-dot path with the
// sparse triple path on the same graph and signal.
func TestEnergy_DenseSparseAgree(t *testing.T) {
	s, err := adjacency.RandomSparseGraph(20, 0.2, 13)
	require.NoError(t, err)

	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i%5) - 2
	}

	eS, err := spectral.Energy(s, x)
	require.NoError(t, err)
	eD, err := spectral.Energy(s.Dense(), x)
	require.NoError(t, err)
	require.InDelta(t, eD, eS, 1e-9)
}

// TestEnergy_Errors covers nil input and signal length mismatch.
func TestEnergy_Errors(t *testing.T) {
	_, err := spectral.Energy(nil, nil)
	require.ErrorIs(t, err, spectral.ErrMatrixNil)

	g, err := adjacency.PathGraph(3)
	require.NoError(t, err)
	_, err = spectral.Energy(g, []float64{1, 2})
	require.ErrorIs(t, err, spectral.ErrDimensionMismatch)
}
