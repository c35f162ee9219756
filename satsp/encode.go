// Package satsp - pseudo-Boolean encoding of the position-indexed tour.
//
// Variable layout (1-based, as gophersat expects):
//   - p(i,k) = i·n + k + 1            city i sits at position k
//   - y(k,i,j) = n² + (k·n+i)·n + j + 1   arc i→j is taken at step k
//
// Structural constraints:
//   - every city occupies exactly one position,
//   - every position hosts exactly one city,
//   - position 0 is the fixed start city 0,
//   - linking: p(i,k) ∧ p(j,k+1 mod n) ⇒ y(k,i,j).
//
// The y variables appear positively only in the cost bound, so assigning
// one true without its arc being taken can never help the solver; in any
// model the weighted sum over y is exactly the tour cost.
package satsp

import (
	"math"

	"github.com/crillab/gophersat/solver"

	"github.com/tourlab/exactour/matrix"
)

// engine holds the per-call encoding state.
type engine struct {
	n    int               // number of cities
	w    []int64           // dense cost buffer, w[u*n+v]
	base []solver.PBConstr // structural constraints, probe-independent
	lits []int             // arc literals with non-zero cost
	wts  []int             // matching arc weights
	maxW int64             // largest single cost entry
}

// pVar returns the placement variable for city i at position k.
func (e *engine) pVar(i, k int) int { return i*e.n + k + 1 }

// yVar returns the arc variable for step k moving from city i to city j.
func (e *engine) yVar(k, i, j int) int { return e.n*e.n + (k*e.n+i)*e.n + j + 1 }

// newEngine prefetches the matrix and builds all probe-independent
// constraints, including the user's required positions.
//
// Complexity: O(n³) time and space (linking clauses dominate).
func newEngine(dist *matrix.Dense, required map[int]int) (*engine, error) {
	var (
		n = dist.Rows()
		e = &engine{n: n, w: make([]int64, n*n)}
		i int // city / row index
		j int // city / column index
		k int // position index
	)

	for i = 0; i < n; i++ {
		copy(e.w[i*n:(i+1)*n], dist.Row(i))
		for j = 0; j < n; j++ {
			if e.w[i*n+j] > e.maxW {
				e.maxW = e.w[i*n+j]
			}
		}
	}

	// Weight range guard: every probe bounds a sum of up to n entries.
	if e.maxW > 0 && int64(n) > math.MaxInt/e.maxW {
		return nil, ErrCostOverflow
	}

	// Placement cardinality: rows (cities) and columns (positions).
	var lits = make([]int, n)
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			lits[k] = e.pVar(i, k)
		}
		e.base = appendExactlyOne(e.base, lits)
	}
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			lits[i] = e.pVar(i, k)
		}
		e.base = appendExactlyOne(e.base, lits)
	}

	// The tour starts (and implicitly ends) at city 0.
	e.base = append(e.base, solver.PropClause(e.pVar(0, 0)))

	// Required absolute positions (validated in Solve).
	for i, k = range required {
		e.base = append(e.base, solver.PropClause(e.pVar(i, k)))
	}

	// Linking clauses and the weighted arc literals.
	var next int // successor position of k, wrapping to the start
	for k = 0; k < n; k++ {
		next = (k + 1) % n
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				e.base = append(e.base, solver.PropClause(
					-e.pVar(i, k), -e.pVar(j, next), e.yVar(k, i, j),
				))
				if e.w[i*n+j] > 0 {
					e.lits = append(e.lits, e.yVar(k, i, j))
					e.wts = append(e.wts, int(e.w[i*n+j]))
				}
			}
		}
	}

	return e, nil
}

// appendExactlyOne appends the at-least-one / at-most-one pair over lits.
// The constraint constructors take ownership of their literal slice, so
// each constraint gets a private copy of the caller's scratch buffer.
func appendExactlyOne(base []solver.PBConstr, lits []int) []solver.PBConstr {
	var (
		lo = make([]int, len(lits))
		hi = make([]int, len(lits))
	)
	copy(lo, lits)
	copy(hi, lits)

	return append(base, solver.AtLeast(lo, 1), solver.AtMost(hi, 1))
}

// probe runs one decision solve asking for a tour of total cost <= bound.
// It returns the tour and its exact cost when one exists, or found=false
// on unsatisfiability.
func (e *engine) probe(bound int64) (tour []int, cost int64, found bool, err error) {
	// Assemble base constraints plus the cost bound for this probe.
	var constrs = make([]solver.PBConstr, len(e.base), len(e.base)+1)
	copy(constrs, e.base)
	// An all-zero matrix has no weighted arcs; the bound is then vacuous.
	if len(e.lits) > 0 {
		// LtEq rewrites its slices while normalizing, and the engine
		// reuses e.lits/e.wts on every probe, so each bound gets
		// private copies.
		var (
			lits = make([]int, len(e.lits))
			wts  = make([]int, len(e.wts))
		)
		copy(lits, e.lits)
		copy(wts, e.wts)
		constrs = append(constrs, solver.LtEq(lits, wts, int(bound)))
	}

	var s = solver.New(solver.ParsePBConstrs(constrs))
	switch s.Solve() {
	case solver.Sat:
		// fallthrough to model extraction below
	case solver.Unsat:
		return nil, 0, false, nil
	default:
		// Indet should not happen without a stop channel; treat it as
		// a spent budget rather than inventing an answer.
		return nil, 0, false, ErrTimeLimit
	}

	var model = s.Model()
	if len(model) < e.n*e.n {
		return nil, 0, false, ErrNoModel
	}

	tour, err = e.extractTour(model)
	if err != nil {
		return nil, 0, false, err
	}

	// Recompute the exact cost from the matrix, not from the bound: the
	// probe only proves cost <= bound, the model is usually cheaper.
	var k int
	for k = 0; k < e.n; k++ {
		cost += e.w[tour[k]*e.n+tour[k+1]]
	}

	return tour, cost, true, nil
}

// extractTour reads the placement variables out of a model and rebuilds
// the visiting order.
//
// Complexity: O(n²).
func (e *engine) extractTour(model []bool) ([]int, error) {
	var (
		tour = make([]int, e.n+1)
		k    int // position
		i    int // city
		hit  int // city found for the current position, -1 when missing
	)
	for k = 0; k < e.n; k++ {
		hit = -1
		for i = 0; i < e.n; i++ {
			if model[e.pVar(i, k)-1] {
				hit = i
				break
			}
		}
		if hit < 0 {
			return nil, ErrNoModel
		}
		tour[k] = hit
	}
	tour[e.n] = 0

	return tour, nil
}
