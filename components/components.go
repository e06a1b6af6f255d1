package components

import (
	"errors"

	"github.com/katalvlaran/lapgraph/adjacency"
	"github.com/katalvlaran/lapgraph/bfs"
)

// Unlabeled marks a node with no recorded adjacency: a row holding no
// stored entry at all, diagonal included.
const Unlabeled = -1

// ErrMatrixNil is returned if a nil adjacency matrix is passed.
var ErrMatrixNil = errors.New("components: matrix is nil")

// Label assigns a component index to every reachable node of g and
// returns the component count plus the per-node label slice. Labels are
// handed out in discovery order: the scan from the lowest-indexed
// unvisited candidate defines component 0, and so on. Nodes with an
// entirely empty row stay Unlabeled and do not count.
//
// Time: O(n + e) amortized. Memory: O(n).
func Label(g adjacency.Matrix) (int, []int, error) {
	if g == nil {
		return 0, nil, ErrMatrixNil
	}

	n := g.Order()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Unlabeled
	}

	var nComp int
	for v := 0; v < n; v++ {
		if len(g.RowIndices(v)) == 0 {
			continue // empty row: never a source
		}
		if labels[v] != Unlabeled {
			continue // swept by an earlier scan
		}
		dm, err := bfs.Scan(g, v)
		if err != nil {
			return 0, nil, err
		}
		for u := range dm {
			labels[u] = nComp
		}
		nComp++
	}

	return nComp, labels, nil
}
