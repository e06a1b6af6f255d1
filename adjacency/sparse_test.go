// Package adjacency_test contains unit tests for the Sparse implementation
// of the Matrix interface in the adjacency package.
package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/lapgraph/adjacency"
	"github.com/stretchr/testify/require"
)

// TestNewSparseInvalidDimensions ensures that NewSparse rejects a
// non-positive order.
func TestNewSparseInvalidDimensions(t *testing.T) {
	_, err := adjacency.NewSparse(0)
	require.ErrorIs(t, err, adjacency.ErrInvalidDimensions)
}

// TestSparseSetBuildingSemantics verifies insert, overwrite, and the
// zero-removes-entry rule.
func TestSparseSetBuildingSemantics(t *testing.T) {
	m, err := adjacency.NewSparse(3)
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())

	m.Set(0, 2, 5)
	m.Set(0, 1, 3)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, []int{1, 2}, m.RowIndices(0)) // kept sorted on insert

	m.Set(0, 2, 7) // overwrite keeps one entry
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 7.0, m.At(0, 2))

	m.Set(0, 1, 0) // zero removes the stored entry
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, []int{2}, m.RowIndices(0))

	m.Set(1, 1, 0) // zero over a structural zero stores nothing
	require.Equal(t, 1, m.NNZ())
}

// TestSparseFromTriples verifies coordinate semantics: duplicates sum,
// explicit zeros stay stored, invalid triples fail.
func TestSparseFromTriples(t *testing.T) {
	m, err := adjacency.SparseFromTriples(3,
		[]int{0, 0, 2, 1},
		[]int{1, 1, 2, 1},
		[]float64{2, 3, 4, 0},
	)
	require.NoError(t, err)

	require.Equal(t, 5.0, m.At(0, 1)) // duplicate (0,1) entries summed
	require.Equal(t, 4.0, m.At(2, 2))
	require.Equal(t, 3, m.NNZ())                // explicit zero at (1,1) is stored
	require.Equal(t, []int{1}, m.RowIndices(1)) // …and structurally present
	require.Equal(t, 0.0, m.At(1, 1))           // …with value zero

	_, err = adjacency.SparseFromTriples(2, []int{0}, []int{2}, []float64{1})
	require.ErrorIs(t, err, adjacency.ErrIndexOutOfBounds)

	_, err = adjacency.SparseFromTriples(2, []int{0, 1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, adjacency.ErrDimensionMismatch)

	_, err = adjacency.SparseFromTriples(0, nil, nil, nil)
	require.ErrorIs(t, err, adjacency.ErrInvalidDimensions)
}

// TestSparseTriplesRowMajor ensures Triples flattens in row-major order
// and returns caller-owned copies.
func TestSparseTriplesRowMajor(t *testing.T) {
	m, err := adjacency.NewSparse(3)
	require.NoError(t, err)
	m.Set(2, 0, 9)
	m.Set(0, 2, 9)
	m.Set(0, 1, 1)

	rows, cols, vals := m.Triples()
	require.Equal(t, []int{0, 0, 2}, rows)
	require.Equal(t, []int{1, 2, 0}, cols)
	require.Equal(t, []float64{1, 9, 9}, vals)

	vals[0] = 777 // mutating the copy must not touch the matrix
	require.Equal(t, 1.0, m.At(0, 1))
}

// TestSparseCloneIndependence ensures Clone returns a deep copy that does
// not share row storage.
func TestSparseCloneIndependence(t *testing.T) {
	m, err := adjacency.NewSparse(2)
	require.NoError(t, err)
	m.Set(0, 1, 1)

	c := m.Clone()
	c.Set(0, 1, 5)
	require.Equal(t, 1.0, m.At(0, 1))
	require.Equal(t, 5.0, c.At(0, 1))
	require.Equal(t, m.NNZ(), c.NNZ())
}

// TestSparseDenseRoundTrip checks the converters preserve every entry in
// both directions.
func TestSparseDenseRoundTrip(t *testing.T) {
	d, err := adjacency.DenseFromRows([][]float64{
		{0, 1.5, 0},
		{1.5, 0, 2},
		{0, 2, 0.25},
	})
	require.NoError(t, err)

	s, err := adjacency.SparseFromDense(d)
	require.NoError(t, err)
	require.Equal(t, 5, s.NNZ())

	back := s.Dense()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, d.At(i, j), back.At(i, j), "entry (%d,%d)", i, j)
		}
	}

	_, err = adjacency.SparseFromDense(nil)
	require.ErrorIs(t, err, adjacency.ErrNilMatrix)
}

// TestSparseBoundsPanic ensures out-of-range access panics with the
// sentinel.
func TestSparseBoundsPanic(t *testing.T) {
	m, err := adjacency.NewSparse(2)
	require.NoError(t, err)

	require.PanicsWithValue(t, adjacency.ErrIndexOutOfBounds, func() { m.At(0, 2) })
	require.PanicsWithValue(t, adjacency.ErrIndexOutOfBounds, func() { m.Set(-1, 0, 1) })
	require.PanicsWithValue(t, adjacency.ErrIndexOutOfBounds, func() { m.RowIndices(2) })
}
