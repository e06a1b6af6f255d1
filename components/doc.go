// Package components partitions the nodes of a symmetric adjacency matrix
// into connected components by repeated breadth-first scans.
//
// What
//
//   - Label walks candidate sources in ascending index order, restricted
//     to nodes with at least one stored row entry (a stored diagonal
//     counts), and floods each unvisited candidate with bfs.Scan.
//   - Every node swept by a scan receives the current component index;
//     nodes whose entire row is structurally empty keep the Unlabeled
//     mark (-1) and are excluded from the component count.
//
// Symmetry
//
//	Labeling inherits the upper-triangle traversal of bfs.Scan, so the
//	partition matches undirected reachability only when the caller
//	supplies a symmetric matrix. Later scans may re-stamp nodes first
//	reached from a lower-indexed source; discovery order decides the
//	final label.
//
// Complexity (n = Order, e = stored entries)
//
//   - Time:   O(n + e) amortized across all scans
//   - Memory: O(n)
//
// Usage
//
//	nComp, labels, err := components.Label(g)
//	// labels[v] ∈ {-1, 0, …, nComp-1}
package components
