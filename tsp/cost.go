// Package tsp - cost utilities shared by solvers and the harness.
//
// TourCost recomputes the total cost of a closed tour directly from the
// matrix. The harness uses it as the round-trip check: a solver's reported
// cost must always equal the recomputed cost of its reported tour.
package tsp

import "github.com/tourlab/exactour/matrix"

// TourCost sums the costs along the cycle edges tour[i]→tour[i+1].
//
// Contracts:
//   - dist non-nil and tour a closed sequence: len(tour) >= 2 with every
//     index inside [0..n-1]; otherwise ErrDimensionMismatch.
//   - Entries are read as-is; call matrix.ValidateCosts separately when
//     the matrix itself is untrusted.
//
// Complexity: O(n) time, O(1) space.
func TourCost(dist *matrix.Dense, tour []int) (int64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = dist.Rows() // matrix order
		sum int64         // running total
		i   int           // edge index
		u   int           // edge origin
		v   int           // edge destination
		w   int64         // edge cost
		err error
	)

	for i = 0; i < len(tour)-1; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return sum, nil
}
