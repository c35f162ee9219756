package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tourlab/exactour/matrix"
	"github.com/tourlab/exactour/tsp"
)

// TestRandom_Shape verifies the generated instance is a valid cost matrix.
func TestRandom_Shape(t *testing.T) {
	m, err := tsp.Random(6, 100, tsp.NewRNG(7))
	require.NoError(t, err)
	require.Equal(t, 6, m.Rows())
	require.NoError(t, matrix.ValidateCosts(m))

	var i, j int
	for i = 0; i < 6; i++ {
		for j = 0; j < 6; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.GreaterOrEqual(t, v, int64(0))
			require.LessOrEqual(t, v, int64(100))
		}
	}
}

// TestRandom_Deterministic: identical seeds produce identical instances,
// distinct streams produce distinct ones.
func TestRandom_Deterministic(t *testing.T) {
	a, err := tsp.Random(8, 50, tsp.DeriveRNG(99, 1))
	require.NoError(t, err)
	b, err := tsp.Random(8, 50, tsp.DeriveRNG(99, 1))
	require.NoError(t, err)
	c, err := tsp.Random(8, 50, tsp.DeriveRNG(99, 2))
	require.NoError(t, err)

	var i, j int
	var same = true
	for i = 0; i < 8; i++ {
		for j = 0; j < 8; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			cv, _ := c.At(i, j)
			require.Equal(t, av, bv)
			if av != cv {
				same = false
			}
		}
	}
	require.False(t, same, "derived streams must be decorrelated")
}

func TestRandom_MaxCostZero(t *testing.T) {
	m, err := tsp.Random(4, 0, nil)
	require.NoError(t, err)

	res, err := tsp.Exact(m)
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
}

func TestRandom_Errors(t *testing.T) {
	_, err := tsp.Random(0, 10, nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.Random(3, -1, nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
