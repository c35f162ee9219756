// Package matrix provides the integer cost-matrix entity shared by all
// solvers in this repository. Dense is a row-major square matrix of int64
// travel costs, stored in a flat slice for cache friendliness.
//
// Design:
//   - Integer-only: costs are exact; there is no floating point here.
//   - Strict sentinels from errors.go; no panics on user input.
//   - The matrix is caller-owned: solvers only read it for the duration
//     of a single solve call.
package matrix

// Dense is a row-major n×n matrix of int64 values.
type Dense struct {
	n    int     // matrix order (rows == cols == n)
	data []int64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrBadShape when n <= 0.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// FromRows builds a Dense matrix from nested rows, copying every entry.
// The input must be square: len(rows[i]) == len(rows) for all i; otherwise
// ErrNonSquare. An empty input yields ErrBadShape.
//
// The returned matrix is independent of the input slices.
//
// Complexity: O(n²) time and memory.
func FromRows(rows [][]int64) (*Dense, error) {
	var n = len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}

	var (
		m   *Dense
		err error
		i   int
	)
	m, err = NewDense(n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows.
//
// Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns.
//
// Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// index computes the flat offset for (row, col), or ErrOutOfRange.
func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on an invalid index.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on an invalid index.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy of the matrix.
//
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{n: m.n, data: make([]int64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Row returns a copy of row i, or nil when i is out of range.
// A copy keeps the backing storage unreachable from callers.
//
// Complexity: O(n).
func (m *Dense) Row(i int) []int64 {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]int64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}
