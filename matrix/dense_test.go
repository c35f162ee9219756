// Package matrix_test contains unit tests for the Dense cost matrix and
// its validation helpers.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tourlab/exactour/matrix"
)

// TestNewDense_BadShape ensures that NewDense rejects non-positive orders.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(-3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRows_RoundTrip verifies FromRows copies entries and reports shape.
func TestFromRows_RoundTrip(t *testing.T) {
	rows := [][]int64{
		{0, 10, 15},
		{10, 0, 35},
		{15, 35, 0},
	}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(35), v)

	// Mutating the source rows must not leak into the matrix.
	rows[1][2] = -1
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(35), v)
}

// TestFromRows_NonSquare ensures ragged and rectangular inputs are rejected.
func TestFromRows_NonSquare(t *testing.T) {
	_, err := matrix.FromRows([][]int64{{0, 1}, {1, 0, 2}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows([][]int64{{0, 1, 2}, {1, 0, 2}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSet_OutOfRange ensures indexers return ErrOutOfRange, never panic.
func TestAtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestClone_Independence verifies Clone produces a deep copy.
func TestClone_Independence(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{0, 2}, {3, 0}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 99))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	v, err = cp.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(99), v)
}

// TestRow_Copy verifies Row returns an independent copy and nil out of range.
func TestRow_Copy(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{0, 5}, {7, 0}})
	require.NoError(t, err)

	r := m.Row(1)
	require.Equal(t, []int64{7, 0}, r)

	r[0] = 42
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	require.Nil(t, m.Row(2))
	require.Nil(t, m.Row(-1))
}

// TestValidateCosts covers the three cost invariants and the nil case.
func TestValidateCosts(t *testing.T) {
	t.Run("valid asymmetric", func(t *testing.T) {
		m, err := matrix.FromRows([][]int64{
			{0, 3, 9},
			{1, 0, 4},
			{8, 2, 0},
		})
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateCosts(m))
	})

	t.Run("nil matrix", func(t *testing.T) {
		require.ErrorIs(t, matrix.ValidateCosts(nil), matrix.ErrNilMatrix)
	})

	t.Run("non-zero diagonal", func(t *testing.T) {
		m, err := matrix.FromRows([][]int64{{0, 1}, {1, 5}})
		require.NoError(t, err)
		require.ErrorIs(t, matrix.ValidateCosts(m), matrix.ErrNonZeroDiagonal)
	})

	t.Run("negative cost", func(t *testing.T) {
		m, err := matrix.FromRows([][]int64{{0, -1}, {1, 0}})
		require.NoError(t, err)
		require.ErrorIs(t, matrix.ValidateCosts(m), matrix.ErrNegativeCost)
	})
}
