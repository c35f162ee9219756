// SPDX-License-Identifier: MIT
// Package satsp: options and sentinel error set.

package satsp

import (
	"errors"
	"time"
)

var (
	// ErrTimeLimit is returned when the time budget was exhausted before
	// optimality was proven. It means "no answer within the allotted
	// time" — NOT "no tour exists", which cannot occur for a complete
	// instance without conflicting required positions. Harnesses must
	// treat it as a skipped sample, never as a disagreement.
	ErrTimeLimit = errors.New("satsp: time limit exhausted")

	// ErrInfeasible is returned when the required-position constraints
	// admit no tour at all (e.g. two cities pinned to the same position).
	ErrInfeasible = errors.New("satsp: required positions are infeasible")

	// ErrBadPosition is returned when a required position references a
	// city or position outside [0..n-1].
	ErrBadPosition = errors.New("satsp: required position out of range")

	// ErrNoModel is an internal invariant violation: the solver reported
	// satisfiable but produced no usable model. Surfaced instead of a
	// silently wrong tour.
	ErrNoModel = errors.New("satsp: satisfiable but no model")

	// ErrCostOverflow is returned when n·maxCost does not fit the
	// pseudo-Boolean weight range of the underlying solver.
	ErrCostOverflow = errors.New("satsp: cost magnitude exceeds pseudo-Boolean weight range")
)

// Options configures a single Solve call.
type Options struct {
	// TimeLimit bounds the total solve duration. Zero means unlimited.
	// The limit is checked between decision probes; a single probe runs
	// to completion regardless.
	TimeLimit time.Duration

	// Required pins cities to absolute visiting positions: Required[c] = k
	// forces city c to be the k-th city visited (position 0 is the fixed
	// start, so Required[0] may only be 0). Nil means unconstrained.
	Required map[int]int
}
