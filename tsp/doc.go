// Package tsp provides exact Travelling Salesman Problem solvers over
// integer cost matrices.
//
// It includes two algorithms on a cost matrix (*matrix.Dense):
//
//   - Exact — Held–Karp dynamic programming over bit-packed subsets.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//     The practical ceiling is n ≈ 20–24 before the tables exhaust memory.
//
//   - Brute — exhaustive permutation search, the correctness oracle for
//     small instances (n ≤ 12). Complexity: O(n!).
//
// Both accept asymmetric matrices: the recurrence never assumes
// cost[i][j] == cost[j][i]. All costs are non-negative int64 and all
// arithmetic is 64-bit integer, so results are bit-for-bit reproducible.
//
// Determinism: ties among equally optimal next cities are broken by the
// first-encountered minimum (ascending city index). Two runs on the same
// matrix return the identical cost and the identical tour.
//
// A solve call holds no global state and performs no I/O; independent
// solves may run concurrently from multiple goroutines as long as each
// call gets its own matrix. There is no cancellation inside a single
// solve: callers needing a timeout must enforce it externally.
package tsp
