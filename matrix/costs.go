// Package matrix - cost-matrix validation shared by all TSP solvers.
//
// ValidateCosts is the single up-front gate every solver runs before any
// recursion or search begins: a malformed matrix must never produce a
// partially computed, misleading result.
package matrix

// ValidateCosts verifies the travel-cost invariants of m:
//   - m non-nil (ErrNilMatrix),
//   - zero diagonal: m[i][i] == 0 for all i (ErrNonZeroDiagonal),
//   - non-negative entries everywhere (ErrNegativeCost).
//
// Square-ness is structural for Dense and is not re-checked here.
// Costs need not be symmetric: asymmetric instances are valid.
//
// Complexity: O(n²) time, O(1) space.
func ValidateCosts(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	var (
		n = m.n // matrix order
		i int   // row index
		j int   // column index
		v int64 // entry under inspection
	)

	// Diagonal first: a non-zero self-cost is the most common authoring bug.
	for i = 0; i < n; i++ {
		if m.data[i*n+i] != 0 {
			return ErrNonZeroDiagonal
		}
	}

	// Full scan for negative entries.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = m.data[i*n+j]
			if v < 0 {
				return ErrNegativeCost
			}
		}
	}

	return nil
}
