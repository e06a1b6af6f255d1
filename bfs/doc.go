// Package bfs provides single-source breadth-first level search over an
// adjacency.Matrix, returning hop-count distances for every reached node.
//
// What
//
//   - Expand the frontier level by level from one source node.
//   - Follow only upper-triangle neighbors: from node v, stored entries
//     (v, u) with u > v. On a symmetric matrix this crosses each
//     undirected edge exactly once.
//   - Returns a DistanceMap: node → hop count, containing exactly the
//     nodes reached within the cutoff (inclusive).
//
// Why
//
//   - Hop-count reachability in O(n + e) over the explored structure.
//   - The flooding primitive behind components.Label.
//
// Symmetry
//
//	The upper-triangle restriction is only meaningful when the matrix is
//	symmetric; with an asymmetric input the result is unspecified. The
//	check is never run unconditionally (it costs a full pass over the
//	matrix); use WithSymmetryCheck when debugging caller-supplied data.
//
// Cutoff semantics
//
//	The cutoff is a maximum distance, inclusive. Scan with cutoff k keeps
//	every node at distance ≤ k; cutoff 0 yields {source: 0}. The level
//	that reaches the cutoff is still expanded internally before the scan
//	stops, mirroring the level-break placement callers depend on.
//
// Complexity (n = Order, e = stored entries on explored rows)
//
//   - Time:   O(n + e)
//   - Memory: O(n) for the seen map and frontiers
//
// Usage
//
//	dm, err := bfs.Scan(g, 0)
//	if err != nil {
//	    // ErrMatrixNil, ErrSourceOutOfRange, ErrOptionViolation,
//	    // or a wrapped adjacency.ErrAsymmetric from WithSymmetryCheck
//	}
//	dm, err = bfs.Scan(g, 2, bfs.WithCutoff(1))
//
// Scan is a pure function: it never mutates the matrix, keeps no state
// between calls, and is safe to invoke concurrently on shared inputs.
package bfs
