// Package bfs provides breadth-first level search over an adjacency
// matrix, restricted to upper-triangle neighbors so each undirected edge
// of a symmetric matrix is crossed exactly once.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lapgraph/adjacency"
)

// scanner encapsulates mutable state for one Scan call.
type scanner struct {
	g      adjacency.Matrix
	cutoff int
	seen   DistanceMap
}

// Scan runs a breadth-first level search on g starting from source,
// applying any number of functional Options. The result maps every node
// reached within the cutoff (inclusive) to its hop count; a source with
// no stored upper-triangle neighbors yields {source: 0}.
//
// Returns ErrMatrixNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, and a wrapped
// adjacency.ErrAsymmetric when WithSymmetryCheck detects a mismatch.
//
// Time: O(n + e) over explored rows. Memory: O(n).
func Scan(g adjacency.Matrix, source int, opts ...Option) (DistanceMap, error) {
	if g == nil {
		return nil, ErrMatrixNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate the source index
	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d, order %d", ErrSourceOutOfRange, source, n)
	}
	// Optional debug-mode symmetry validation
	if o.CheckSymmetry {
		if err := adjacency.ValidateSymmetric(g, adjacency.DefaultEpsilon); err != nil {
			return nil, fmt.Errorf("bfs: %w", err)
		}
	}

	s := &scanner{g: g, cutoff: o.Cutoff, seen: make(DistanceMap)}
	s.run(source)

	return s.seen, nil
}

// run expands frontiers level by level until the frontier empties or the
// cutoff is reached.
func (s *scanner) run(source int) {
	level := 0
	frontier := []int{source}
	for len(frontier) > 0 {
		next := s.expand(frontier, level)
		// The cutoff is an inclusive maximum distance: stop after
		// recording the level that reaches it. The break sits before the
		// increment, so cutoff 0 still performs this one expansion and
		// returns only the source.
		if s.cutoff != NoCutoff && s.cutoff <= level {
			break
		}
		level++
		frontier = next
	}
}

// expand records the level of every not-yet-seen frontier node and
// gathers the deduplicated next frontier from its upper-triangle
// neighbors, preserving discovery order.
func (s *scanner) expand(frontier []int, level int) []int {
	var next []int
	pending := make(map[int]struct{})
	for _, v := range frontier {
		if _, ok := s.seen[v]; ok {
			continue // reached on an earlier level
		}
		s.seen[v] = level
		for _, u := range s.g.RowIndices(v) {
			if u <= v {
				continue // upper triangle only
			}
			if _, dup := pending[u]; dup {
				continue
			}
			pending[u] = struct{}{}
			next = append(next, u)
		}
	}

	return next
}
