// Package adjacency defines the weighted undirected graph representations
// consumed by every lapgraph algorithm: a fully materialized Dense matrix
// and a row-indexed Sparse matrix, both square, both behind the read-only
// Matrix interface.
//
// Conventions:
//
//   - Weights are float64; zero means "no edge".
//   - Matrices are symmetric by convention, never by enforcement. The
//     traversal algorithms read only the upper triangle and document
//     symmetry as a caller obligation; ValidateSymmetric is the opt-in
//     debug check for callers who want to pay for certainty.
//   - Diagonal entries carry no self-loop meaning. Algorithms that emit
//     matrices (laplacian.Build) overwrite the diagonal outright.
//
// Representations:
//
//   - Dense: one flat row-major []float64. O(1) element access, O(n) row
//     scans. Choose it when n is small or fill-in is high.
//   - Sparse: per-row sorted column/value slices (list-of-lists). O(log k)
//     element access, O(1) row-index views, convertible to coordinate
//     triples via Triples. Choose it when most entries are structural
//     zeros.
//
// SparseFromDense and Sparse.Dense convert between the two without
// changing semantics. Builders for standard topologies (PathGraph,
// CycleGraph, CompleteGraph, StarGraph, RandomSparseGraph) keep tests and
// benchmarks terse.
package adjacency
