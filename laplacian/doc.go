// Package laplacian builds the graph Laplacian L = D − A of a weighted
// undirected graph supplied as an adjacency.Matrix, preserving the
// concrete representation: Dense in, Dense out; Sparse in, Sparse out.
//
// Definitions
//
//	L = D − A             combinatorial Laplacian (default)
//	Lsym = D^{-1/2} L D^{-1/2}   symmetric normalization (WithNormalized)
//
// where D is the diagonal matrix of weighted degrees, degree(i) being the
// sum of the weights stored in row i (the diagonal never contributes —
// whatever it held is cleared and recomputed).
//
// Normalization edge case
//
//	A zero-degree node would divide by zero. Its scale factor is clamped
//	to 1 instead, and every diagonal entry of the normalized Laplacian —
//	isolated nodes included — ends at exactly 1, never 0/0 or NaN.
//
// Sparsity
//
//	The sparse pipeline never materializes the n×n grid. It works on a
//	coordinate-triple copy: negate, insert a placeholder entry at every
//	structurally missing diagonal slot (so each row owns a diagonal to
//	overwrite), zero the diagonal, fold row sums into degrees, rescale,
//	rebuild. Off-diagonal structure survives untouched beyond the value
//	change, and the result always stores a full diagonal of n entries —
//	explicit zeros included for isolated nodes in combinatorial mode.
//
// Usage
//
//	lap, _, err := laplacian.Build(g)
//	lap, diag, err := laplacian.Build(g,
//	    laplacian.WithNormalized(),
//	    laplacian.WithReturnDiag(),
//	)
//
// The degree vector is nil unless WithReturnDiag is supplied; in
// normalized mode it carries the square roots of the degrees with zero
// degrees clamped to 1 (the exact scales the entries were divided by).
//
// Build never mutates the caller's matrix and holds no state between
// calls; concurrent invocations on shared inputs are safe.
//
// Complexity (n = Order, nnz = stored entries)
//
//   - Dense:  Time O(n²), Memory O(n²)
//   - Sparse: Time O(n + nnz), Memory O(n + nnz)
package laplacian
