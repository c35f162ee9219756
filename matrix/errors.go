// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still match via errors.Is.

var (
	// ErrBadShape is returned when a requested matrix order is non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// was ragged or rectangular.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonZeroDiagonal signals that a cost matrix carries a non-zero
	// self-cost entry (cost[i][i] != 0).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal entry not zero")

	// ErrNegativeCost signals that a cost matrix carries a negative entry.
	// All travel costs are non-negative by contract.
	ErrNegativeCost = errors.New("matrix: negative cost entry")
)
