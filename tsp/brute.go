// Package tsp - brute-force oracle (exhaustive permutation search).
//
// Brute enumerates every visiting order of the non-start cities in
// lexicographic order and keeps the cheapest closed tour. It exists as a
// correctness oracle for the DP solver on small instances and is not part
// of any production solve path.
//
// Determinism: enumeration order is lexicographic and the running minimum
// is replaced only on strict improvement, so the reported tour is the
// lexicographically first optimal one — stable across runs.
package tsp

import (
	"math"

	"github.com/tourlab/exactour/matrix"
)

// bruteMaxCities bounds the factorial search. 12 cities already mean
// 11! ≈ 4·10⁷ permutations; beyond that the oracle is useless in practice.
const bruteMaxCities = 12

// Brute solves the instance by exhaustive search and returns the optimal
// cost with the lexicographically first optimal tour.
//
// Contracts:
//   - Same input validation as Exact: matrix sentinels for malformed
//     costs, ErrEmptyMatrix for nil/order-0, trivial result for n == 1.
//   - n > bruteMaxCities yields ErrTooLarge.
//
// Complexity: O(n!·n) time, O(n) space beyond the result.
func Brute(dist *matrix.Dense) (Result, error) {
	if dist == nil || dist.Rows() == 0 {
		return Result{}, ErrEmptyMatrix
	}
	if err := matrix.ValidateCosts(dist); err != nil {
		return Result{}, err
	}

	var n = dist.Rows()
	if n == 1 {
		return Result{Tour: []int{StartVertex, StartVertex}, Cost: 0}, nil
	}
	if n > bruteMaxCities {
		return Result{}, ErrTooLarge
	}

	var e = &bruteEngine{
		n:    n,
		w:    make([]int64, n*n),
		used: make([]bool, n),
		path: make([]int, 0, n),
		best: math.MaxInt64,
	}

	var i int
	for i = 0; i < n; i++ {
		copy(e.w[i*n:(i+1)*n], dist.Row(i))
	}

	// Fix the start and enumerate the remaining n-1 cities.
	e.used[StartVertex] = true
	e.path = append(e.path, StartVertex)
	e.permute(StartVertex, 0)

	// A complete matrix with finite costs always admits a tour.
	tour := make([]int, n+1)
	copy(tour, e.bestPath)
	tour[n] = StartVertex

	return Result{Tour: tour, Cost: e.best}, nil
}

// bruteEngine carries the enumeration state for one Brute call.
type bruteEngine struct {
	n        int     // number of cities
	w        []int64 // dense cost buffer, w[u*n+v]
	used     []bool  // cities already placed on the current path
	path     []int   // current partial visiting order, path[0] == StartVertex
	cost     int64   // cost of the current partial path
	best     int64   // cheapest closed tour seen so far
	bestPath []int   // visiting order achieving best (without closure)
}

// permute extends the current path from city last with every unused city in
// ascending index order; at full depth it closes the cycle and updates the
// incumbent on strict improvement.
func (e *bruteEngine) permute(last, depth int) {
	if depth == e.n-1 {
		var total = e.cost + e.w[last*e.n+StartVertex]
		if total < e.best {
			e.best = total
			e.bestPath = append(e.bestPath[:0], e.path...)
		}

		return
	}

	var c int // candidate next city
	for c = 0; c < e.n; c++ {
		if e.used[c] {
			continue
		}
		e.used[c] = true
		e.path = append(e.path, c)
		e.cost += e.w[last*e.n+c]

		e.permute(c, depth+1)

		e.cost -= e.w[last*e.n+c]
		e.path = e.path[:len(e.path)-1]
		e.used[c] = false
	}
}
