// Package tsp - Held–Karp exact solver (subset DP with path reconstruction).
//
// Exact computes a minimum-cost Hamiltonian cycle over an integer cost
// matrix using the Held–Karp recurrence, memoized top-down over bit-packed
// visited sets.
//
// State design:
//   - A state is the pair (mask, pos): mask is a bitmask of visited cities
//     (bit i set ⇔ city i visited), pos is the current city. Bit 0 (the
//     fixed start) is set in every reachable mask, and pos ∈ mask.
//   - memo[mask*n+pos] caches the minimum cost of completing a tour from
//     that state back to the start; once written an entry is immutable
//     for the remainder of the solve.
//   - next[mask*n+pos] records the city chosen by the optimal decision at
//     that state; it is consumed only by path reconstruction.
//
// Recurrence:
//   - Base case, mask == full: cost of completing from pos is w[pos][0].
//   - Otherwise: min over every c ∉ mask of w[pos][c] + solve(mask|bit(c), c).
//     Ties are broken by the first-encountered minimum (ascending c), so
//     repeated runs on identical input yield identical tours.
//   - The answer is solve({0}, 0).
//
// Complexity:
//   - Time:   O(n²·2ⁿ) — n candidate cities scanned per reachable state.
//   - Memory: O(n·2ⁿ)  — the memo and move tables dominate; this is the
//     practical ceiling on n (≈ 20–24), not recursion depth, which is
//     bounded by n.
//
// Numeric policy: all sums are 64-bit integer; with costs bounded by
// maxInstanceCost per edge an n-city tour cannot overflow int64.
package tsp

import (
	"math"

	"github.com/tourlab/exactour/matrix"
)

// unset marks a memo entry that has not been computed yet. Costs are
// non-negative, so a negative value can never collide with a real cost.
const unset int64 = -1

// noMove marks a move-table entry with no recorded transition.
const noMove = -1

// dpEngine holds the per-call solve state. A dedicated engine struct
// (instead of closures) keeps the hot path predictable and the tables
// explicitly scoped to one solve call: nothing survives a call, so
// independent solves are safe to run concurrently.
type dpEngine struct {
	n    int     // number of cities
	full int     // bitmask with all n cities visited
	w    []int64 // dense cost buffer, w[u*n+v]
	memo []int64 // memo[mask*n+pos]; unset when not computed
	next []int   // next[mask*n+pos]; noMove when no transition recorded
}

// Exact solves the instance described by dist and returns the optimal cost
// together with one optimal tour of length n+1, starting and ending at
// StartVertex.
//
// Contracts:
//   - dist must be a valid cost matrix: square (structural for Dense),
//     zero diagonal, non-negative entries. Violations surface as matrix
//     sentinels before any recursion begins.
//   - A nil or order-0 matrix yields ErrEmptyMatrix.
//   - n == 1 returns Cost 0 and Tour [0 0] without recursion.
//
// The matrix is only read for the duration of the call; the solver retains
// no reference to it or to the returned tour.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func Exact(dist *matrix.Dense) (Result, error) {
	// Stage 1 - strict up-front validation; never a partial result.
	if dist == nil || dist.Rows() == 0 {
		return Result{}, ErrEmptyMatrix
	}
	if err := matrix.ValidateCosts(dist); err != nil {
		return Result{}, err
	}

	var n = dist.Rows()

	// Stage 2 - trivial single-city tour: stay home, pay nothing.
	if n == 1 {
		return Result{Tour: []int{StartVertex, StartVertex}, Cost: 0}, nil
	}

	// Stage 3 - build the engine: prefetch the matrix into a dense buffer
	// and allocate the two O(n·2ⁿ) tables.
	var e = newDPEngine(dist, n)

	// Stage 4 - run the recurrence from the initial state ({0}, 0).
	var cost = e.solve(1<<StartVertex, StartVertex)

	// Stage 5 - replay the recorded moves into a concrete tour.
	tour, err := e.reconstructTour()
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: cost}, nil
}

// newDPEngine prefetches dist into a flat buffer and initializes the memo
// and move tables to their unset markers.
//
// Complexity: O(n·2ⁿ) time and space (table initialization dominates).
func newDPEngine(dist *matrix.Dense, n int) *dpEngine {
	var (
		e = &dpEngine{
			n:    n,
			full: (1 << n) - 1,
			w:    make([]int64, n*n),
			memo: make([]int64, (1<<n)*n),
			next: make([]int, (1<<n)*n),
		}
		i int // state / row index
	)

	// Prefetch rows to avoid interface-style accessor calls in hot loops.
	for i = 0; i < n; i++ {
		copy(e.w[i*n:(i+1)*n], dist.Row(i))
	}

	for i = range e.memo {
		e.memo[i] = unset
		e.next[i] = noMove
	}

	return e
}

// solve returns the minimum cost of completing a tour that has visited
// exactly the cities in mask, currently sits at pos, and must eventually
// return to StartVertex. Each reachable state is computed once; repeated
// requests are O(1) lookups.
func (e *dpEngine) solve(mask, pos int) int64 {
	// Base case: everything visited, close the cycle.
	if mask == e.full {
		return e.w[pos*e.n+StartVertex]
	}

	var key = mask*e.n + pos
	if e.memo[key] != unset {
		return e.memo[key]
	}

	var (
		best int64 = math.MaxInt64 // running minimum over candidate moves
		cand int64                 // cost of the move under evaluation
		c    int                   // candidate next city
	)
	for c = 0; c < e.n; c++ {
		if mask&(1<<c) != 0 {
			continue // already visited
		}
		cand = e.w[pos*e.n+c] + e.solve(mask|(1<<c), c)
		// Strict < keeps the first-encountered minimum: deterministic
		// tie-breaking across runs.
		if cand < best {
			best = cand
			e.next[key] = c
		}
	}

	e.memo[key] = best

	return best
}

// reconstructTour replays the move table from the initial state into the
// concrete visiting order. This is a pure replay: it performs no cost
// comparisons and cannot disagree with the cost returned by solve. A
// missing entry for a reachable state is an internal invariant violation
// (ErrNoMove) and aborts the solve.
//
// Complexity: O(n) time, O(n) space.
func (e *dpEngine) reconstructTour() ([]int, error) {
	var (
		tour = make([]int, 0, e.n+1) // result, closed at the end
		mask = 1 << StartVertex      // visited set during replay
		pos  = StartVertex           // current city during replay
		c    int                     // recorded next city
	)
	tour = append(tour, StartVertex)

	for len(tour) < e.n {
		c = e.next[mask*e.n+pos]
		if c == noMove {
			return nil, ErrNoMove
		}
		tour = append(tour, c)
		mask |= 1 << c
		pos = c
	}

	// Close the cycle back at the start.
	tour = append(tour, StartVertex)

	return tour, nil
}
