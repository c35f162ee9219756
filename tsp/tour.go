// Package tsp - tour utilities shared by solvers, harness, and tests.
//
// These helpers operate purely on tour structure (index sequences) without
// touching cost matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - CopyTour: independent copy of a tour slice.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time, in-place where possible.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each city v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
