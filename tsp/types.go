// SPDX-License-Identifier: MIT
// Package tsp: public result type and sentinel error set.
// This file defines ONLY the shared result value and package-level sentinel
// errors. All solvers MUST return these sentinels and tests MUST check them
// via errors.Is. Matrix-shape violations surface as sentinels from the
// matrix package (matrix.ErrNonSquare, matrix.ErrNonZeroDiagonal,
// matrix.ErrNegativeCost, matrix.ErrNilMatrix); everything tour-specific
// lives here.

package tsp

import "errors"

// StartVertex is the fixed start (and end) city of every tour produced by
// this package. The convention is part of the public contract: a returned
// Tour always satisfies Tour[0] == Tour[len(Tour)-1] == StartVertex.
const StartVertex = 0

var (
	// ErrEmptyMatrix is returned for an instance with zero cities.
	// There is nothing to tour; this is a typed input error, not a
	// sentinel cost value.
	ErrEmptyMatrix = errors.New("tsp: empty cost matrix")

	// ErrDimensionMismatch indicates an input whose shape violates a
	// contract: a tour of the wrong length, an index outside [0..n-1],
	// a permutation with duplicates, and similar.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start vertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNoMove is an internal invariant violation: path reconstruction
	// found no recorded transition for a reachable state. It indicates a
	// bug in the recurrence, never a property of the input; the solve is
	// aborted rather than returning a silently wrong tour.
	ErrNoMove = errors.New("tsp: no recorded move for reachable state")

	// ErrTooLarge is returned by the brute-force oracle for instances
	// beyond its factorial practicality bound.
	ErrTooLarge = errors.New("tsp: instance too large for brute force")
)

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at
	// StartVertex. For n cities, len(Tour) == n+1.
	Tour []int

	// Cost is the exact total cost of the cycle. Costs are integer
	// throughout; there is no floating-point rounding anywhere.
	Cost int64
}
