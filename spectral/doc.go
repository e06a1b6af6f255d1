// Package spectral derives spectral quantities of a weighted undirected
// graph from its Laplacian: algebraic connectivity, low-dimensional
// embeddings, and Dirichlet energy.
//
// What
//
//   - Fiedler: the second-smallest eigenvalue λ₂ of the combinatorial
//     Laplacian and its eigenvector. λ₂ > 0 exactly when the graph is
//     connected; the vector's sign pattern yields the classic two-way
//     partition.
//   - Embedding: the eigenvectors of the normalized Laplacian belonging
//     to the smallest non-trivial eigenvalues, as the columns of an
//     n×dim coordinate matrix.
//   - Energy: the Dirichlet energy xᵀLx of a node signal x — zero for
//     constant signals on a connected graph, growing with disagreement
//     across heavy edges.
//
// Symmetry
//
//	All entry points assume the symmetric-input obligation documented in
//	package adjacency; the eigensolver reads the upper triangle as truth.
//
// Complexity
//
//	Eigendecomposition is O(n³) time, O(n²) memory: both Fiedler and
//	Embedding densify sparse inputs. Energy stays O(n²) dense or
//	O(n + nnz) sparse.
package spectral
