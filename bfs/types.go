// Package bfs defines the tunable options and error sentinels for the
// breadth-first scan over an adjacency matrix.
package bfs

import (
	"errors"
	"fmt"
)

// NoCutoff disables the distance bound; Scan explores until the frontier
// empties.
const NoCutoff = -1

// Sentinel errors for Scan execution.
var (
	// ErrMatrixNil is returned if a nil adjacency matrix is passed.
	ErrMatrixNil = errors.New("bfs: matrix is nil")

	// ErrSourceOutOfRange is returned when the source index is outside [0, n).
	ErrSourceOutOfRange = errors.New("bfs: source out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// DistanceMap maps each reached node to its hop count from the source.
type DistanceMap map[int]int

// Option configures Scan behavior via functional arguments.
// If an Option is invalid (e.g. negative cutoff), it is recorded
// internally and surfaced as ErrOptionViolation when Scan is invoked.
type Option func(*Options)

// Options holds parameters customizing a single Scan call.
type Options struct {
	// Cutoff is the maximum distance to explore, inclusive.
	// NoCutoff (the default) disables the bound.
	Cutoff int

	// CheckSymmetry, when set, validates the matrix with
	// adjacency.ValidateSymmetric before scanning and fails fast on a
	// mirrored-pair mismatch. Off by default: the check costs a full
	// pass over the matrix.
	CheckSymmetry bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no distance bound (Cutoff == NoCutoff)
//   - no symmetry validation
func DefaultOptions() Options {
	return Options{
		Cutoff:        NoCutoff,
		CheckSymmetry: false,
		err:           nil,
	}
}

// WithCutoff bounds the scan at the given distance, inclusive.
//
//	c > 0: keep nodes within c hops
//	c == 0: keep only the source
//	c < 0: invalid option → ErrOptionViolation
func WithCutoff(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: cutoff cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.Cutoff = c
	}
}

// WithSymmetryCheck validates input symmetry (within
// adjacency.DefaultEpsilon) before scanning. Intended for debugging;
// symmetric input is otherwise an undocumented-failure caller obligation.
func WithSymmetryCheck() Option {
	return func(o *Options) {
		o.CheckSymmetry = true
	}
}
