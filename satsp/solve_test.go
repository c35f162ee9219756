package satsp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tourlab/exactour/matrix"
	"github.com/tourlab/exactour/satsp"
	"github.com/tourlab/exactour/tsp"
)

func mustDense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestSolve_Classic4(t *testing.T) {
	m := mustDense(t, [][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})

	res, err := satsp.Solve(m, satsp.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(80), res.Cost)

	// Any optimal tour is acceptable; it must be valid and achieve the cost.
	require.NoError(t, tsp.ValidateTour(res.Tour, 4, tsp.StartVertex))
	sum, err := tsp.TourCost(m, res.Tour)
	require.NoError(t, err)
	require.Equal(t, res.Cost, sum)
}

// TestSolve_AgreesWithExact cross-validates the two independent solvers
// on random instances: the optima must coincide (costs, not tours).
func TestSolve_AgreesWithExact(t *testing.T) {
	var stream uint64
	for n := 2; n <= 6; n++ {
		for iter := 0; iter < 3; iter++ {
			stream++
			m, err := tsp.Random(n, 50, tsp.DeriveRNG(777, stream))
			require.NoError(t, err)

			dp, err := tsp.Exact(m)
			require.NoError(t, err, "n=%d iter=%d", n, iter)
			sat, err := satsp.Solve(m, satsp.Options{})
			require.NoError(t, err, "n=%d iter=%d", n, iter)

			require.Equal(t, dp.Cost, sat.Cost, "n=%d iter=%d", n, iter)
			require.NoError(t, tsp.ValidateTour(sat.Tour, n, tsp.StartVertex))
		}
	}
}

// TestSolve_WideCostRange spreads the edge costs over several orders of
// magnitude so the search over the cost bound takes many tightening steps.
// Every step re-encodes the bound over the same arc-literal buffers, so
// this exercises repeated solves against one engine; the optimum must
// still match the dynamic-programming solver exactly.
func TestSolve_WideCostRange(t *testing.T) {
	m, err := tsp.Random(5, 10000, tsp.DeriveRNG(31, 7))
	require.NoError(t, err)

	dp, err := tsp.Exact(m)
	require.NoError(t, err)

	sat, err := satsp.Solve(m, satsp.Options{})
	require.NoError(t, err)
	require.Equal(t, dp.Cost, sat.Cost)
	require.NoError(t, tsp.ValidateTour(sat.Tour, 5, tsp.StartVertex))
	sum, err := tsp.TourCost(m, sat.Tour)
	require.NoError(t, err)
	require.Equal(t, sat.Cost, sum)
}

func TestSolve_Trivial(t *testing.T) {
	m, err := matrix.NewDense(1)
	require.NoError(t, err)

	res, err := satsp.Solve(m, satsp.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
	require.Equal(t, []int{0, 0}, res.Tour)

	_, err = satsp.Solve(nil, satsp.Options{})
	require.ErrorIs(t, err, tsp.ErrEmptyMatrix)
}

func TestSolve_MalformedInput(t *testing.T) {
	m := mustDense(t, [][]int64{{0, 1}, {1, 4}})
	_, err := satsp.Solve(m, satsp.Options{})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	m = mustDense(t, [][]int64{{0, -1}, {1, 0}})
	_, err = satsp.Solve(m, satsp.Options{})
	require.ErrorIs(t, err, matrix.ErrNegativeCost)
}

// TestSolve_RequiredPosition pins a city to a fixed slot: the solver must
// return the best tour honoring the pin, which here is strictly dearer
// than the unconstrained optimum.
func TestSolve_RequiredPosition(t *testing.T) {
	m := mustDense(t, [][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})

	// Force city 2 to be visited first. Remaining tours:
	//   0→2→1→3→0 = 15+35+25+20 = 95
	//   0→2→3→1→0 = 15+30+25+10 = 80
	res, err := satsp.Solve(m, satsp.Options{Required: map[int]int{2: 1}})
	require.NoError(t, err)
	require.Equal(t, int64(80), res.Cost)
	require.Equal(t, 2, res.Tour[1])
}

func TestSolve_RequiredPosition_Binding(t *testing.T) {
	// Asymmetric triangle: free optimum is 0→1→2→0 = 3.
	m := mustDense(t, [][]int64{
		{0, 1, 50},
		{50, 0, 1},
		{1, 50, 0},
	})

	free, err := satsp.Solve(m, satsp.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(3), free.Cost)

	// Pinning city 2 first forces the reverse direction: 0→2→1→0 = 150.
	pinned, err := satsp.Solve(m, satsp.Options{Required: map[int]int{2: 1}})
	require.NoError(t, err)
	require.Equal(t, int64(150), pinned.Cost)
	require.Equal(t, []int{0, 2, 1, 0}, pinned.Tour)
}

func TestSolve_RequiredPosition_Errors(t *testing.T) {
	m := mustDense(t, [][]int64{{0, 1}, {1, 0}})

	_, err := satsp.Solve(m, satsp.Options{Required: map[int]int{5: 1}})
	require.ErrorIs(t, err, satsp.ErrBadPosition)

	_, err = satsp.Solve(m, satsp.Options{Required: map[int]int{1: -1}})
	require.ErrorIs(t, err, satsp.ErrBadPosition)

	// A non-start city pinned to the start slot can never be satisfied.
	_, err = satsp.Solve(m, satsp.Options{Required: map[int]int{1: 0}})
	require.ErrorIs(t, err, satsp.ErrInfeasible)

	// Two cities pinned to the same slot.
	m3 := mustDense(t, [][]int64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	_, err = satsp.Solve(m3, satsp.Options{Required: map[int]int{1: 1, 2: 1}})
	require.ErrorIs(t, err, satsp.ErrInfeasible)
}

// TestSolve_TimeLimit: an already-spent budget must surface as the
// timeout sentinel before any probe runs.
func TestSolve_TimeLimit(t *testing.T) {
	m := mustDense(t, [][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})

	_, err := satsp.Solve(m, satsp.Options{TimeLimit: time.Nanosecond})
	require.ErrorIs(t, err, satsp.ErrTimeLimit)
}
