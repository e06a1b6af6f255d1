// Package lapgraph turns a symmetric adjacency matrix — dense or sparse —
// into answers: hop-count reachability, connected components, graph
// Laplacians, and the spectral quantities built on top of them.
//
// 🚀 What is lapgraph?
//
//	A small, focused library for weighted undirected graphs kept in
//	matrix form:
//		• Representations: Dense (flat row-major) & Sparse (row-indexed
//		  lists, coordinate-triple convertible), one sealed interface
//		• Reachability: single-source breadth-first level scan with an
//		  inclusive distance cutoff
//		• Structure: connected-component labeling with isolated-row
//		  detection
//		• Laplacians: combinatorial and symmetric-normalized, degree
//		  vector on request, sparsity class preserved
//		• Spectra: algebraic connectivity, spectral embeddings, Dirichlet
//		  energy (gonum-powered)
//
// ✨ Why choose lapgraph?
//
//   - Pure functions – inputs are never mutated, calls share no state,
//     concurrent use is safe by construction
//   - Predictable edge cases – isolated nodes, missing sparse diagonals
//     and zero degrees are handled exactly, never as NaN surprises
//   - Matrix-native – no graph object to build first; bring the
//     adjacency structure you already have
//   - Explicit contracts – sentinel errors, documented preconditions,
//     opt-in symmetry validation
//
// Everything is organized under five subpackages:
//
//	adjacency/  — Dense & Sparse matrix types, converters, validators,
//	              topology builders
//	bfs/        — upper-triangle breadth-first scan → DistanceMap
//	components/ — component labeling over repeated scans
//	laplacian/  — L = D − A and D^{-1/2} L D^{-1/2}, dense & sparse
//	spectral/   — Fiedler value/vector, embeddings, Dirichlet energy
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3        4 (isolated)
//
//	labels to (1, [0 0 0 0 -1]): one square component, node 4 unlabeled.
//
//	go get github.com/katalvlaran/lapgraph
package lapgraph
