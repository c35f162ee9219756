// Package exactour is a small toolkit for solving the Travelling Salesman
// Problem exactly on integer cost matrices, and for benchmarking the exact
// solver against an independent constraint-based solver.
//
// What lives where:
//
//	matrix/       — dense integer cost matrices with strict validation
//	tsp/          — Held–Karp exact DP solver + brute-force oracle + tour utils
//	satsp/        — pseudo-Boolean (SAT-backed) solver for cross-validation,
//	                including MTZ-style required-position constraints
//	bench/        — size-sweep benchmark harness (workers, medians, plots)
//	cmd/tspbench/ — CLI front-end for the harness
//
// Costs are non-negative int64 throughout: results are bit-for-bit
// reproducible and there is no floating-point rounding anywhere.
//
// The exact solver is practical up to n ≈ 20–24; beyond that the
// O(2ⁿ·n) tables dominate memory and the wall-clock becomes unbounded
// in practice. That ceiling is a property of the algorithm, not a bug.
//
//	go get github.com/tourlab/exactour/tsp
package exactour
