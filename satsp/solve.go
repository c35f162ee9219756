// Package satsp - optimality search over the pseudo-Boolean encoding.
package satsp

import (
	"time"

	"github.com/tourlab/exactour/matrix"
	"github.com/tourlab/exactour/tsp"
)

// Solve finds a minimum-cost Hamiltonian cycle for dist under opts,
// independently of the DP solver in package tsp.
//
// Contracts:
//   - Input validation mirrors tsp.Exact: matrix sentinels for malformed
//     costs, tsp.ErrEmptyMatrix for nil/order-0, trivial result for n==1.
//   - opts.Required pins cities to absolute positions; out-of-range
//     references yield ErrBadPosition, contradictory ones ErrInfeasible.
//   - A spent time budget yields ErrTimeLimit — "no answer in time",
//     never "no tour exists".
//
// The returned tour starts and ends at tsp.StartVertex and its cost is
// recomputed from the matrix, so the pair is always mutually consistent.
//
// Complexity: O(n³) encoding plus O(log(n·maxCost)) NP-hard decision
// probes. Practical for the small instances cross-validation cares about.
func Solve(dist *matrix.Dense, opts Options) (tsp.Result, error) {
	// Stage 1 - strict up-front validation; never a partial result.
	if dist == nil || dist.Rows() == 0 {
		return tsp.Result{}, tsp.ErrEmptyMatrix
	}
	if err := matrix.ValidateCosts(dist); err != nil {
		return tsp.Result{}, err
	}

	var n = dist.Rows()
	if err := validateRequired(opts.Required, n); err != nil {
		return tsp.Result{}, err
	}

	if n == 1 {
		return tsp.Result{Tour: []int{tsp.StartVertex, tsp.StartVertex}, Cost: 0}, nil
	}

	// Stage 2 - build the encoding once; probes reuse it.
	e, err := newEngine(dist, opts.Required)
	if err != nil {
		return tsp.Result{}, err
	}

	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	// Stage 3 - feasibility probe at the loosest possible bound. Any
	// tour costs at most n·maxW, so Unsat here means the required
	// positions themselves are contradictory.
	if err = checkDeadline(deadline); err != nil {
		return tsp.Result{}, err
	}
	best, bestCost, found, err := e.probe(int64(n) * e.maxW)
	if err != nil {
		return tsp.Result{}, err
	}
	if !found {
		return tsp.Result{}, ErrInfeasible
	}

	// Stage 4 - monotone binary search on the cost bound. Invariant:
	// a tour of cost bestCost exists; none of cost < lo exists.
	var (
		lo  int64 = 0
		mid int64
	)
	for lo < bestCost {
		if err = checkDeadline(deadline); err != nil {
			return tsp.Result{}, err
		}
		mid = lo + (bestCost-lo)/2

		tour, cost, ok, perr := e.probe(mid)
		if perr != nil {
			return tsp.Result{}, perr
		}
		if ok {
			best, bestCost = tour, cost
		} else {
			lo = mid + 1
		}
	}

	return tsp.Result{Tour: best, Cost: bestCost}, nil
}

// validateRequired rejects out-of-range references (ErrBadPosition) and
// cheaply detectable contradictions (ErrInfeasible) before any encoding.
//
// Complexity: O(|required|) time and space.
func validateRequired(required map[int]int, n int) error {
	if len(required) == 0 {
		return nil
	}

	var taken = make(map[int]int, len(required)) // position -> city
	for city, pos := range required {
		if city < 0 || city >= n || pos < 0 || pos >= n {
			return ErrBadPosition
		}
		// Position 0 is the fixed start: only city 0 may sit there,
		// and city 0 may sit nowhere else.
		if (city == 0) != (pos == 0) {
			return ErrInfeasible
		}
		if _, dup := taken[pos]; dup {
			return ErrInfeasible
		}
		taken[pos] = city
	}

	return nil
}

// checkDeadline maps a spent budget to ErrTimeLimit. The zero deadline
// means "unlimited".
func checkDeadline(deadline time.Time) error {
	if !deadline.IsZero() && time.Now().After(deadline) {
		return ErrTimeLimit
	}

	return nil
}
