// Package satsp solves TSP instances with a pseudo-Boolean (SAT-backed)
// position encoding. It exists to cross-validate the dynamic-programming
// solver in package tsp: two independently derived optima agreeing on
// random instances is strong evidence both are correct.
//
// Encoding (order-indexed, not subset-indexed):
//   - p(i,k)   — city i occupies tour position k.
//   - y(k,i,j) — the tour moves from city i at position k to city j at
//     position k+1 (mod n). Linking clauses force y true whenever both
//     placements hold; the cost bound makes spurious y assignments
//     pointless, so Σ cost·y equals the tour cost in any optimal model.
//
// Optimality is found by monotone binary search on a pseudo-Boolean upper
// bound over the arc costs: each probe is a plain decision solve, which is
// the solver surface gophersat guarantees.
//
// Because the state is indexed by explicit visiting order, this solver
// natively supports MTZ-style precedence constraints: "city X must be the
// k-th city visited" is a single unit clause. The DP core cannot express
// that without a materially different algorithm, so callers needing
// required positions must use this package.
//
// Scaling: the encoding carries O(n³) variables and clauses and each probe
// is NP-hard in principle; this is a cross-check and research tool, not a
// production path. A single decision probe is not interruptible — the
// TimeLimit is enforced between probes, and callers wanting a hard
// wall-clock cap must run the solve in a worker they can abandon.
package satsp
