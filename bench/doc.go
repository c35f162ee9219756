// Package bench sweeps TSP instance sizes, racing the exact DP solver
// against the SAT-backed solver and collecting wall-clock samples.
//
// A sweep enumerates (size, iteration) jobs, generates one deterministic
// random instance per job (an independent RNG stream per job, so results
// do not depend on worker scheduling), and runs every enabled solver on
// it. Jobs run on a bounded worker pool; the only shared inputs are the
// immutable generation parameters, and every job produces an independent
// sample set.
//
// Cross-validation is built in: when both the DP and SAT solvers run on
// the same instance, their costs must agree. A SAT timeout is recorded as
// a skipped sample — "no answer in time" is not a disagreement. A true
// cost mismatch aborts the sweep with an error, because it means one of
// the solvers is wrong.
//
// Medians rather than means summarize each size: a single slow outlier
// (GC pause, cold cache) should not move the curve.
package bench
